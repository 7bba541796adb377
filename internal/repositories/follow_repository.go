package repositories

import (
	"context"
	"time"

	"github.com/anonto42/snapgram/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FollowRepository defines the interface for follow edge operations
type FollowRepository interface {
	// CreateFollow inserts a follow edge. Returns false when the edge
	// already existed; duplicates are a no-op, not an error.
	CreateFollow(ctx context.Context, followerID, followingID string) (bool, error)
	GetFollowingIDs(ctx context.Context, followerID string) ([]string, error)
}

// MongoFollowRepository implements FollowRepository for MongoDB
type MongoFollowRepository struct {
	collection *mongo.Collection
}

// NewMongoFollowRepository creates a new MongoFollowRepository
func NewMongoFollowRepository(db *mongo.Database) *MongoFollowRepository {
	return &MongoFollowRepository{collection: db.Collection("follows")}
}

// EnsureIndexes creates the unique compound index on (follower_id, following_id).
// Uniqueness lives in the store, not in a handler-level check, so two
// concurrent identical follows cannot both insert.
func (r *MongoFollowRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "follower_id", Value: 1}, {Key: "following_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// CreateFollow inserts the edge, treating a duplicate-key conflict as the
// already-following success path.
func (r *MongoFollowRepository) CreateFollow(ctx context.Context, followerID, followingID string) (bool, error) {
	follow := models.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
		FollowedAt:  time.Now().UTC(),
	}
	if _, err := r.collection.InsertOne(ctx, follow); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GetFollowingIDs returns the IDs of every user the follower follows
func (r *MongoFollowRepository) GetFollowingIDs(ctx context.Context, followerID string) ([]string, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"follower_id": followerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var follows []models.Follow
	if err = cursor.All(ctx, &follows); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(follows))
	for _, f := range follows {
		ids = append(ids, f.FollowingID)
	}
	return ids, nil
}
