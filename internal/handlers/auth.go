package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/anonto42/snapgram/backend/internal/repositories"
	"github.com/anonto42/snapgram/backend/pkg/github"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// identityProviderTimeout bounds the outbound calls to GitHub so a slow or
// unreachable provider surfaces as an upstream error instead of hanging.
const identityProviderTimeout = 10 * time.Second

// IdentityProvider abstracts the external OAuth provider
type IdentityProvider interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*github.User, error)
}

// TokenIssuer issues bearer tokens for internal user IDs
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// AuthHandler handles the OAuth login flow
type AuthHandler struct {
	provider       IdentityProvider
	tokens         TokenIssuer
	userRepository repositories.UserRepository
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(provider IdentityProvider, tokens TokenIssuer, userRepo repositories.UserRepository) *AuthHandler {
	return &AuthHandler{
		provider:       provider,
		tokens:         tokens,
		userRepository: userRepo,
	}
}

// RegisterAuthRoutes registers the login routes
func (h *AuthHandler) RegisterAuthRoutes(e *echo.Echo) {
	e.GET("/login/start", h.StartLogin)
	e.GET("/login/callback", h.CompleteLogin)
}

// StartLogin returns the provider authorization URL for the client to follow
func (h *AuthHandler) StartLogin(c echo.Context) error {
	state := uuid.NewString()
	return c.JSON(http.StatusOK, echo.Map{"auth_url": h.provider.AuthURL(state)})
}

// CompleteLogin exchanges the authorization code for the GitHub profile,
// finds or creates the local user and returns a bearer token.
func (h *AuthHandler) CompleteLogin(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing fields: code")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), identityProviderTimeout)
	defer cancel()

	ghUser, err := h.provider.Exchange(ctx, code)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "GitHub authorization failed")
	}

	user, err := h.userRepository.FindOrCreateByGitHubID(ghUser.ID, ghUser.Login, ghUser.AvatarURL)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	accessToken, err := h.tokens.Issue(user.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(http.StatusOK, echo.Map{"access_token": accessToken})
}
