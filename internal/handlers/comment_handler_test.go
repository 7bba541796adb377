package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/anonto42/snapgram/backend/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentFixture(t *testing.T) (*CommentHandler, *fakeCommentRepo) {
	t.Helper()
	commentRepo := newFakeCommentRepo()
	postRepo := newFakePostRepo()
	postRepo.add(models.Post{PostID: "p1", Caption: "c", ImageURL: "i", PublisherID: "u9"})
	return NewCommentHandler(commentRepo, postRepo), commentRepo
}

func TestAddComment_MissingText(t *testing.T) {
	h, _ := newCommentFixture(t)

	c, _ := newTestContext(t, http.MethodPost, "/post/p1/comment", `{}`)
	c.SetParamNames("post_id")
	c.SetParamValues("p1")
	c.Set("userID", "u1")

	err := h.AddComment(c)
	require.Error(t, err)
	he := err.(*echo.HTTPError)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	assert.Contains(t, he.Message, "comment")
}

func TestAddComment_PostMissing(t *testing.T) {
	h, _ := newCommentFixture(t)

	c, _ := newTestContext(t, http.MethodPost, "/post/missing/comment", `{"comment":"hello"}`)
	c.SetParamNames("post_id")
	c.SetParamValues("missing")
	c.Set("userID", "u1")

	err := h.AddComment(c)
	assert.Equal(t, http.StatusNotFound, httpErrorCode(t, err))
}

func TestAddComment_ReturnsCommentID(t *testing.T) {
	h, commentRepo := newCommentFixture(t)

	c, rec := newTestContext(t, http.MethodPost, "/post/p1/comment", `{"comment":"great shot"}`)
	c.SetParamNames("post_id")
	c.SetParamValues("p1")
	c.Set("userID", "u1")

	require.NoError(t, h.AddComment(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Message   string `json:"message"`
		CommentID string `json:"comment_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Comment added successfully", body.Message)
	assert.NotEmpty(t, body.CommentID)

	require.Len(t, commentRepo.comments, 1)
	assert.Equal(t, "great shot", commentRepo.comments[0].Comment)
	assert.Equal(t, "u1", commentRepo.comments[0].UserID)
}

func TestGetComments_ListsPostComments(t *testing.T) {
	h, commentRepo := newCommentFixture(t)
	ctx := context.Background()
	require.NoError(t, commentRepo.CreateComment(ctx, &models.Comment{PostID: "p1", UserID: "u1", Comment: "first"}))
	require.NoError(t, commentRepo.CreateComment(ctx, &models.Comment{PostID: "other", UserID: "u1", Comment: "elsewhere"}))

	c, rec := newTestContext(t, http.MethodGet, "/post/p1/comments", "")
	c.SetParamNames("post_id")
	c.SetParamValues("p1")

	require.NoError(t, h.GetComments(c))

	var comments []models.Comment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comments))
	require.Len(t, comments, 1)
	assert.Equal(t, "first", comments[0].Comment)
}
