package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/snapgram/backend/internal/models"
	"github.com/anonto42/snapgram/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository    repositories.PostRepository
	userRepository    repositories.UserRepository
	likeRepository    repositories.LikeRepository
	commentRepository repositories.CommentRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	likeRepo repositories.LikeRepository,
	commentRepo repositories.CommentRepository,
) *PostHandler {
	return &PostHandler{
		postRepository:    postRepo,
		userRepository:    userRepo,
		likeRepository:    likeRepo,
		commentRepository: commentRepo,
	}
}

// RegisterPostRoutes registers post routes
func (h *PostHandler) RegisterPostRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.POST("/post", h.CreatePost, auth)
	e.GET("/post/:post_id", h.GetPost)
}

// CreatePost creates a new post published by the authenticated user
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID := userIDFromContext(c)

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post := &models.Post{
		Caption:     req.Caption,
		ImageURL:    req.ImageURL,
		MusicURL:    req.MusicURL,
		Category:    req.Category,
		PublisherID: userID,
	}

	if err := h.postRepository.CreatePost(c.Request().Context(), post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Post created successfully",
		"post_id": post.PostID,
	})
}

// GetPost returns a post with its publisher summary and like/comment counts.
// The publisher may have vanished from the directory; the response then
// carries a null publisher instead of failing.
func (h *PostHandler) GetPost(c echo.Context) error {
	postID := c.Param("post_id")
	ctx := c.Request().Context()

	post, err := h.postRepository.GetPostByPostID(ctx, postID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var publisher *models.PublisherSummary
	user, err := h.userRepository.GetByUserID(post.PublisherID)
	if err == nil {
		publisher = user.ToPublisherSummary()
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	likesCount, err := h.likeRepository.CountLikesByPostID(ctx, postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	commentsCount, err := h.commentRepository.CountCommentsByPostID(ctx, postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, models.PostDetail{
		Caption:        post.Caption,
		ImageURL:       post.ImageURL,
		MusicURL:       post.MusicURL,
		Category:       post.Category,
		DatetimePosted: post.DatetimePosted,
		Publisher:      publisher,
		LikesCount:     likesCount,
		CommentsCount:  commentsCount,
	})
}
