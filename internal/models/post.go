package models

import "time"

// Post represents a social media post stored in MongoDB
type Post struct {
	PostID         string    `json:"post_id" bson:"post_id"`
	Caption        string    `json:"caption" bson:"caption"`
	ImageURL       string    `json:"image_url" bson:"image_url"`
	MusicURL       string    `json:"music_url,omitempty" bson:"music_url,omitempty"`
	Category       string    `json:"category,omitempty" bson:"category,omitempty"`
	DatetimePosted time.Time `json:"datetime_posted" bson:"datetime_posted"`
	PublisherID    string    `json:"publisher_id" bson:"publisher_id"` // Internal user ID of the publisher
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Caption  string `json:"caption" validate:"required"`
	ImageURL string `json:"image_url" validate:"required"`
	MusicURL string `json:"music_url,omitempty"`
	Category string `json:"category,omitempty"`
}

// PostDetail is the enriched post shape returned by the post detail endpoint.
// Publisher is nil when the publishing user no longer resolves in the directory.
type PostDetail struct {
	Caption        string            `json:"caption"`
	ImageURL       string            `json:"image_url"`
	MusicURL       string            `json:"music_url,omitempty"`
	Category       string            `json:"category,omitempty"`
	DatetimePosted time.Time         `json:"datetime_posted"`
	Publisher      *PublisherSummary `json:"publisher"`
	LikesCount     int64             `json:"likes_count"`
	CommentsCount  int64             `json:"comments_count"`
}
