package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/snapgram/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeRepository repositories.LikeRepository
	postRepository repositories.PostRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, postRepo repositories.PostRepository) *LikeHandler {
	return &LikeHandler{
		likeRepository: likeRepo,
		postRepository: postRepo,
	}
}

// RegisterLikeRoutes registers like routes
func (h *LikeHandler) RegisterLikeRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.POST("/post/:post_id/like", h.LikePost, auth)
	e.DELETE("/post/:post_id/like", h.UnlikePost, auth)
}

// LikePost likes a post. Liking twice is a no-op success.
func (h *LikeHandler) LikePost(c echo.Context) error {
	userID := userIDFromContext(c)
	postID := c.Param("post_id")
	ctx := c.Request().Context()

	// Verify post exists
	if _, err := h.postRepository.GetPostByPostID(ctx, postID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	created, err := h.likeRepository.AddLike(ctx, postID, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !created {
		return c.JSON(http.StatusOK, echo.Map{"message": "Post already liked"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Post liked successfully"})
}

// UnlikePost removes a like. Unliking a post that was never liked is a no-op.
func (h *LikeHandler) UnlikePost(c echo.Context) error {
	userID := userIDFromContext(c)
	postID := c.Param("post_id")
	ctx := c.Request().Context()

	// Verify post exists
	if _, err := h.postRepository.GetPostByPostID(ctx, postID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	removed, err := h.likeRepository.RemoveLike(ctx, postID, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !removed {
		return c.JSON(http.StatusOK, echo.Map{"message": "Post not liked yet"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Post unliked successfully"})
}
