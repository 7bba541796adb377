package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/snapgram/backend/internal/models"
	"github.com/anonto42/snapgram/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// UserHandler handles HTTP requests related to user profiles
type UserHandler struct {
	userRepository repositories.UserRepository
	postRepository repositories.PostRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, postRepo repositories.PostRepository) *UserHandler {
	return &UserHandler{
		userRepository: userRepo,
		postRepository: postRepo,
	}
}

// RegisterProfileRoutes registers user profile routes
func (h *UserHandler) RegisterProfileRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/user/profile", h.GetProfile, auth)
}

// GetProfile returns the authenticated user's profile and owned posts
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID := userIDFromContext(c)

	user, err := h.userRepository.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	posts, err := h.postRepository.GetPostsByPublisher(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if posts == nil {
		posts = []models.Post{}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"username":        user.Username,
		"profile_picture": user.ProfilePicture,
		"posts":           posts,
	})
}
