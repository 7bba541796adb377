package repositories

import (
	"context"
	"time"

	"github.com/anonto42/snapgram/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	// AddLike returns false when the user already liked the post.
	AddLike(ctx context.Context, postID, userID string) (bool, error)
	// RemoveLike returns false when there was no like to remove.
	RemoveLike(ctx context.Context, postID, userID string) (bool, error)
	CountLikesByPostID(ctx context.Context, postID string) (int64, error)
}

// MongoLikeRepository implements LikeRepository for MongoDB
type MongoLikeRepository struct {
	collection *mongo.Collection
}

// NewMongoLikeRepository creates a new MongoLikeRepository
func NewMongoLikeRepository(db *mongo.Database) *MongoLikeRepository {
	return &MongoLikeRepository{collection: db.Collection("likes")}
}

// EnsureIndexes creates the unique compound index on (post_id, user_id)
func (r *MongoLikeRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "post_id", Value: 1}, {Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// AddLike inserts the like, treating a duplicate-key conflict as already liked
func (r *MongoLikeRepository) AddLike(ctx context.Context, postID, userID string) (bool, error) {
	like := models.Like{
		PostID:  postID,
		UserID:  userID,
		LikedAt: time.Now().UTC(),
	}
	if _, err := r.collection.InsertOne(ctx, like); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RemoveLike deletes the like if present
func (r *MongoLikeRepository) RemoveLike(ctx context.Context, postID, userID string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"post_id": postID, "user_id": userID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// CountLikesByPostID counts the likes on a post
func (r *MongoLikeRepository) CountLikesByPostID(ctx context.Context, postID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"post_id": postID})
}
