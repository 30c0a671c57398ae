// internal/model/delivery.go
package model

import "time"

// Delivery is one queued hand-off of a post to a single profile,
// created when the post is published.
type Delivery struct {
	ID           int       `db:"id" json:"id"`
	PostID       string    `db:"post_id" json:"post_id"`
	ProfileID    string    `db:"profile_id" json:"profile_id"`
	Status       string    `db:"status" json:"status"` // pending, sent, failed
	RenderedLink string    `db:"rendered_link" json:"rendered_link"`
	LastError    string    `db:"last_error,omitempty" json:"last_error,omitempty"`
	RetryCount   int       `db:"retry_count" json:"retry_count"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
