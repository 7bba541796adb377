package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/snapgram/backend/internal/models"
	"github.com/anonto42/snapgram/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// FollowHandler handles follow HTTP requests
type FollowHandler struct {
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, userRepo repositories.UserRepository) *FollowHandler {
	return &FollowHandler{
		followRepository: followRepo,
		userRepository:   userRepo,
	}
}

// RegisterFollowRoutes registers follow routes
func (h *FollowHandler) RegisterFollowRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.POST("/follow", h.FollowUser, auth)
}

// FollowUser creates a follow edge from the authenticated user to the target.
// Following an already-followed user is a no-op success.
func (h *FollowHandler) FollowUser(c echo.Context) error {
	userID := userIDFromContext(c)

	var req models.FollowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.userRepository.GetByUserID(req.FollowUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User to follow does not exist")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	created, err := h.followRepository.CreateFollow(c.Request().Context(), userID, req.FollowUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !created {
		return c.JSON(http.StatusOK, echo.Map{"message": "Already following"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Successfully followed"})
}
