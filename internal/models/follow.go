package models

import "time"

// Follow represents a directed follow edge stored in MongoDB.
// The (follower_id, following_id) pair carries a unique compound index so
// concurrent duplicate follows collapse into a single edge.
type Follow struct {
	FollowerID  string    `json:"follower_id" bson:"follower_id"`
	FollowingID string    `json:"following_id" bson:"following_id"`
	FollowedAt  time.Time `json:"followed_at" bson:"followed_at"`
}

// FollowRequest defines the request body for following a user
type FollowRequest struct {
	FollowUserID string `json:"follow_user_id" validate:"required"`
}
