package router

import (
	"context"
	"log"
	"time"

	"github.com/anonto42/snapgram/backend/internal/handlers"
	"github.com/anonto42/snapgram/backend/internal/middleware"
	"github.com/anonto42/snapgram/backend/internal/models"
	"github.com/anonto42/snapgram/backend/internal/repositories"
	"github.com/anonto42/snapgram/backend/internal/token"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, provider handlers.IdentityProvider, tokens *token.Issuer) {
	// AutoMigrate the user directory
	if err := pgdb.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed.")

	db := mgClient.Database("snapgram")

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	postRepo := repositories.NewMongoPostRepository(db)
	followRepo := repositories.NewMongoFollowRepository(db)
	likeRepo := repositories.NewMongoLikeRepository(db)
	commentRepo := repositories.NewMongoCommentRepository(db)

	// Unique indexes back the idempotent follow/like creates; without them a
	// concurrent check-then-insert could write duplicate edges.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for name, ensure := range map[string]func(context.Context) error{
		"posts":    postRepo.EnsureIndexes,
		"follows":  followRepo.EnsureIndexes,
		"likes":    likeRepo.EnsureIndexes,
		"comments": commentRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatalf("Failed to create %s indexes: %v", name, err)
		}
	}
	log.Println("MongoDB indexes ensured.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	auth := middleware.JWTAuth(tokens)

	authHandler := handlers.NewAuthHandler(provider, tokens, userRepo)
	authHandler.RegisterAuthRoutes(e)
	log.Println("Auth routes configured.")

	userHandler := handlers.NewUserHandler(userRepo, postRepo)
	userHandler.RegisterProfileRoutes(e, auth)
	log.Println("User profile routes configured.")

	postHandler := handlers.NewPostHandler(postRepo, userRepo, likeRepo, commentRepo)
	postHandler.RegisterPostRoutes(e, auth)
	log.Println("Post routes configured.")

	feedHandler := handlers.NewFeedHandler(postRepo, followRepo)
	feedHandler.RegisterFeedRoutes(e, auth)
	log.Println("Feed routes configured.")

	followHandler := handlers.NewFollowHandler(followRepo, userRepo)
	followHandler.RegisterFollowRoutes(e, auth)
	log.Println("Follow routes configured.")

	likeHandler := handlers.NewLikeHandler(likeRepo, postRepo)
	likeHandler.RegisterLikeRoutes(e, auth)
	log.Println("Like routes configured.")

	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo)
	commentHandler.RegisterCommentRoutes(e, auth)
	log.Println("Comment routes configured.")

	log.Println("All routes configured.")
}
