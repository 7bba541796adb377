package repositories

import (
	"context"
	"time"

	"github.com/anonto42/snapgram/backend/internal/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByPostID(ctx context.Context, postID string) (*models.Post, error)
	GetPostsByPublisher(ctx context.Context, publisherID string) ([]models.Post, error)
	GetPostsByPublishers(ctx context.Context, publisherIDs []string) ([]models.Post, error)
}

// MongoPostRepository implements PostRepository for MongoDB
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection("posts")}
}

// EnsureIndexes creates the unique index on post_id
func (r *MongoPostRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "post_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// CreatePost assigns a fresh post ID and timestamp and inserts the post
func (r *MongoPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	post.PostID = uuid.NewString()
	post.DatetimePosted = time.Now().UTC()
	_, err := r.collection.InsertOne(ctx, post)
	return err
}

// GetPostByPostID retrieves a post by its ID from MongoDB.
// Returns mongo.ErrNoDocuments when the post does not exist.
func (r *MongoPostRepository) GetPostByPostID(ctx context.Context, postID string) (*models.Post, error) {
	var post models.Post
	if err := r.collection.FindOne(ctx, bson.M{"post_id": postID}).Decode(&post); err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPostsByPublisher retrieves all posts published by one user, unordered
func (r *MongoPostRepository) GetPostsByPublisher(ctx context.Context, publisherID string) ([]models.Post, error) {
	var posts []models.Post
	cursor, err := r.collection.Find(ctx, bson.M{"publisher_id": publisherID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPostsByPublishers retrieves all posts by any of the given publishers,
// newest first. This backs the feed; ordering happens in the store query.
func (r *MongoPostRepository) GetPostsByPublishers(ctx context.Context, publisherIDs []string) ([]models.Post, error) {
	var posts []models.Post
	findOptions := options.Find().SetSort(bson.D{{Key: "datetime_posted", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"publisher_id": bson.M{"$in": publisherIDs}}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
