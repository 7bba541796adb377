package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/anonto42/snapgram/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFeed_FollowingNobody(t *testing.T) {
	h := NewFeedHandler(newFakePostRepo(), newFakeFollowRepo())

	c, rec := newTestContext(t, http.MethodGet, "/feed", "")
	c.Set("userID", "u1")

	require.NoError(t, h.GetFeed(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetFeed_NewestFirstAcrossPublishers(t *testing.T) {
	postRepo := newFakePostRepo()
	followRepo := newFakeFollowRepo()
	h := NewFeedHandler(postRepo, followRepo)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	postRepo.add(models.Post{PostID: "a-old", PublisherID: "a", Caption: "a old", ImageURL: "i", DatetimePosted: base})
	postRepo.add(models.Post{PostID: "b-mid", PublisherID: "b", Caption: "b mid", ImageURL: "i", DatetimePosted: base.Add(time.Hour)})
	postRepo.add(models.Post{PostID: "a-new", PublisherID: "a", Caption: "a new", ImageURL: "i", DatetimePosted: base.Add(2 * time.Hour)})
	// Not followed, must never appear
	postRepo.add(models.Post{PostID: "c-any", PublisherID: "c", Caption: "c", ImageURL: "i", DatetimePosted: base.Add(3 * time.Hour)})

	ctx := context.Background()
	_, err := followRepo.CreateFollow(ctx, "u1", "a")
	require.NoError(t, err)
	_, err = followRepo.CreateFollow(ctx, "u1", "b")
	require.NoError(t, err)

	c, rec := newTestContext(t, http.MethodGet, "/feed", "")
	c.Set("userID", "u1")
	require.NoError(t, h.GetFeed(c))

	var feed []models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &feed))
	require.Len(t, feed, 3)
	assert.Equal(t, "a-new", feed[0].PostID)
	assert.Equal(t, "b-mid", feed[1].PostID)
	assert.Equal(t, "a-old", feed[2].PostID)
	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i].DatetimePosted.After(feed[i-1].DatetimePosted),
			"feed must be sorted newest first")
	}
}
