package handlers

import (
	"net/http"

	"github.com/anonto42/snapgram/backend/internal/models"
	"github.com/anonto42/snapgram/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	postRepository   repositories.PostRepository
	followRepository repositories.FollowRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(postRepo repositories.PostRepository, followRepo repositories.FollowRepository) *FeedHandler {
	return &FeedHandler{
		postRepository:   postRepo,
		followRepository: followRepo,
	}
}

// RegisterFeedRoutes registers feed routes
func (h *FeedHandler) RegisterFeedRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/feed", h.GetFeed, auth)
}

// GetFeed returns the posts of every followed user, newest first
func (h *FeedHandler) GetFeed(c echo.Context) error {
	userID := userIDFromContext(c)
	ctx := c.Request().Context()

	followingIDs, err := h.followRepository.GetFollowingIDs(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if len(followingIDs) == 0 {
		return c.JSON(http.StatusOK, []models.Post{})
	}

	posts, err := h.postRepository.GetPostsByPublishers(ctx, followingIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if posts == nil {
		posts = []models.Post{}
	}

	return c.JSON(http.StatusOK, posts)
}
