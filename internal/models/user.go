package models

import "time"

// User is a local account created on first GitHub login.
// The row ID is internal to PostgreSQL; UserID is the public identifier
// referenced by posts, follows, likes and comments.
type User struct {
	ID             uint      `json:"-" gorm:"primaryKey"`
	UserID         string    `json:"user_id" gorm:"size:36;uniqueIndex"`
	Username       string    `json:"username"`
	GitHubID       int64     `json:"-" gorm:"column:github_id;uniqueIndex"` // Ensure one local account per GitHub identity
	ProfilePicture string    `json:"profile_picture"`
	CreatedAt      time.Time `json:"created_at"`
}

// PublisherSummary is the compact user shape embedded in post detail responses
type PublisherSummary struct {
	Username       string `json:"username"`
	ProfilePicture string `json:"profile_picture"`
}

// ToPublisherSummary converts a User to its compact form
func (u *User) ToPublisherSummary() *PublisherSummary {
	return &PublisherSummary{
		Username:       u.Username,
		ProfilePicture: u.ProfilePicture,
	}
}
