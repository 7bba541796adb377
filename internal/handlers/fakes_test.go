package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/anonto42/snapgram/backend/internal/models"
	"github.com/anonto42/snapgram/backend/internal/validators"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// In-memory repository fakes mirroring the store contracts: idempotent
// creates report created=false on duplicates, lookups fail with the same
// sentinel errors the real stores return.

type fakeUserRepo struct {
	usersByID     map[string]*models.User
	usersByGitHub map[int64]*models.User
	getCalls      int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		usersByID:     map[string]*models.User{},
		usersByGitHub: map[int64]*models.User{},
	}
}

func (f *fakeUserRepo) add(user *models.User) {
	f.usersByID[user.UserID] = user
	f.usersByGitHub[user.GitHubID] = user
}

func (f *fakeUserRepo) FindOrCreateByGitHubID(githubID int64, username, profilePicture string) (*models.User, error) {
	if user, ok := f.usersByGitHub[githubID]; ok {
		return user, nil
	}
	user := &models.User{
		UserID:         uuid.NewString(),
		Username:       username,
		GitHubID:       githubID,
		ProfilePicture: profilePicture,
		CreatedAt:      time.Now().UTC(),
	}
	f.add(user)
	return user, nil
}

func (f *fakeUserRepo) GetByUserID(userID string) (*models.User, error) {
	f.getCalls++
	user, ok := f.usersByID[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

type fakePostRepo struct {
	posts map[string]models.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[string]models.Post{}}
}

func (f *fakePostRepo) add(post models.Post) {
	f.posts[post.PostID] = post
}

func (f *fakePostRepo) CreatePost(_ context.Context, post *models.Post) error {
	post.PostID = uuid.NewString()
	post.DatetimePosted = time.Now().UTC()
	f.posts[post.PostID] = *post
	return nil
}

func (f *fakePostRepo) GetPostByPostID(_ context.Context, postID string) (*models.Post, error) {
	post, ok := f.posts[postID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &post, nil
}

func (f *fakePostRepo) GetPostsByPublisher(_ context.Context, publisherID string) ([]models.Post, error) {
	var posts []models.Post
	for _, p := range f.posts {
		if p.PublisherID == publisherID {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

func (f *fakePostRepo) GetPostsByPublishers(_ context.Context, publisherIDs []string) ([]models.Post, error) {
	wanted := map[string]bool{}
	for _, id := range publisherIDs {
		wanted[id] = true
	}
	var posts []models.Post
	for _, p := range f.posts {
		if wanted[p.PublisherID] {
			posts = append(posts, p)
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].DatetimePosted.After(posts[j].DatetimePosted)
	})
	return posts, nil
}

type fakeFollowRepo struct {
	edges map[string]bool // "follower/following"
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{edges: map[string]bool{}}
}

func (f *fakeFollowRepo) CreateFollow(_ context.Context, followerID, followingID string) (bool, error) {
	key := followerID + "/" + followingID
	if f.edges[key] {
		return false, nil
	}
	f.edges[key] = true
	return true, nil
}

func (f *fakeFollowRepo) GetFollowingIDs(_ context.Context, followerID string) ([]string, error) {
	var ids []string
	for key := range f.edges {
		parts := strings.SplitN(key, "/", 2)
		if parts[0] == followerID {
			ids = append(ids, parts[1])
		}
	}
	return ids, nil
}

type fakeLikeRepo struct {
	likes map[string]bool // "post/user"
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: map[string]bool{}}
}

func (f *fakeLikeRepo) AddLike(_ context.Context, postID, userID string) (bool, error) {
	key := postID + "/" + userID
	if f.likes[key] {
		return false, nil
	}
	f.likes[key] = true
	return true, nil
}

func (f *fakeLikeRepo) RemoveLike(_ context.Context, postID, userID string) (bool, error) {
	key := postID + "/" + userID
	if !f.likes[key] {
		return false, nil
	}
	delete(f.likes, key)
	return true, nil
}

func (f *fakeLikeRepo) CountLikesByPostID(_ context.Context, postID string) (int64, error) {
	var count int64
	for key := range f.likes {
		if strings.HasPrefix(key, postID+"/") {
			count++
		}
	}
	return count, nil
}

type fakeCommentRepo struct {
	comments []models.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{}
}

func (f *fakeCommentRepo) CreateComment(_ context.Context, comment *models.Comment) error {
	comment.CommentID = uuid.NewString()
	comment.CommentedAt = time.Now().UTC()
	f.comments = append(f.comments, *comment)
	return nil
}

func (f *fakeCommentRepo) GetCommentsByPostID(_ context.Context, postID string) ([]models.Comment, error) {
	var comments []models.Comment
	for _, c := range f.comments {
		if c.PostID == postID {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

func (f *fakeCommentRepo) CountCommentsByPostID(_ context.Context, postID string) (int64, error) {
	var count int64
	for _, c := range f.comments {
		if c.PostID == postID {
			count++
		}
	}
	return count, nil
}

// newTestContext builds an echo context the way handlers see it in
// production: request validator installed, JSON content type on bodies.
func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = validators.NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// httpErrorCode unwraps the status code from a handler error
func httpErrorCode(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T: %v", err, err)
	}
	return he.Code
}
