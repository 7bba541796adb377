package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/snapgram/backend/internal/models"
	"github.com/anonto42/snapgram/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		postRepository:    postRepo,
	}
}

// RegisterCommentRoutes registers comment routes
func (h *CommentHandler) RegisterCommentRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.POST("/post/:post_id/comment", h.AddComment, auth)
	e.GET("/post/:post_id/comments", h.GetComments)
}

// AddComment adds a comment by the authenticated user to an existing post
func (h *CommentHandler) AddComment(c echo.Context) error {
	userID := userIDFromContext(c)
	postID := c.Param("post_id")
	ctx := c.Request().Context()

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	// Verify post exists
	if _, err := h.postRepository.GetPostByPostID(ctx, postID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	comment := &models.Comment{
		PostID:  postID,
		UserID:  userID,
		Comment: req.Comment,
	}
	if err := h.commentRepository.CreateComment(ctx, comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":    "Comment added successfully",
		"comment_id": comment.CommentID,
	})
}

// GetComments lists all comments on a post
func (h *CommentHandler) GetComments(c echo.Context) error {
	postID := c.Param("post_id")
	ctx := c.Request().Context()

	if _, err := h.postRepository.GetPostByPostID(ctx, postID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	comments, err := h.commentRepository.GetCommentsByPostID(ctx, postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if comments == nil {
		comments = []models.Comment{}
	}

	return c.JSON(http.StatusOK, comments)
}
