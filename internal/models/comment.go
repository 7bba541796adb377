package models

import "time"

// Comment represents a comment on a post
type Comment struct {
	CommentID   string    `json:"comment_id" bson:"comment_id"`
	PostID      string    `json:"post_id" bson:"post_id"`
	UserID      string    `json:"user_id" bson:"user_id"`
	Comment     string    `json:"comment" bson:"comment"`
	CommentedAt time.Time `json:"commented_at" bson:"commented_at"`
}

// CreateCommentRequest defines the request body for commenting on a post
type CreateCommentRequest struct {
	Comment string `json:"comment" validate:"required"`
}
