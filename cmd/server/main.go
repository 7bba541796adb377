package main

import (
	"log"
	"net/http"

	"github.com/anonto42/snapgram/backend/internal/router"
	"github.com/anonto42/snapgram/backend/internal/token"
	"github.com/anonto42/snapgram/backend/internal/validators"
	"github.com/anonto42/snapgram/backend/pkg/config"
	"github.com/anonto42/snapgram/backend/pkg/github"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	// Identity provider and token issuer
	provider := github.NewProvider(cfg.GitHubClientID, cfg.GitHubClientSecret, cfg.OAuthCallbackURL)
	tokens, err := token.NewIssuer(cfg.JWTSecret)
	if err != nil {
		log.Fatalf("Failed to initialize token issuer: %v", err)
	}

	// Create Echo instance
	e := echo.New()
	e.HTTPErrorHandler = httpErrorHandler

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, db.Mongo, provider, tokens)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

// httpErrorHandler shapes every failure as {"error": message}. Unexpected
// errors stay a generic 500 so internal detail never reaches the caller.
func httpErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := "Internal server error"
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok && code != http.StatusInternalServerError {
			message = msg
		}
	}
	if c.Response().Committed {
		return
	}
	if err := c.JSON(code, map[string]string{"error": message}); err != nil {
		c.Logger().Error(err)
	}
}
