package models

import "time"

// Like represents a like on a post, unique per (post_id, user_id)
type Like struct {
	PostID  string    `json:"post_id" bson:"post_id"`
	UserID  string    `json:"user_id" bson:"user_id"`
	LikedAt time.Time `json:"liked_at" bson:"liked_at"`
}
