// internal/model/post.go
package model

import "time"

const (
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusSent      = "sent"
)

type Media struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Type      string `json:"type"` // image, video, gif
	Thumbnail string `json:"thumbnail,omitempty"`
}

type Post struct {
	// CampaignID is a weak reference: lookup only, never enforced.
	CampaignID  string     `db:"campaign_id" json:"campaignId,omitempty"`
	ID          string     `db:"id" json:"id"`
	Profiles    []Profile  `db:"profiles" json:"profiles"`
	Content     string     `db:"content" json:"content"`
	Media       []Media    `db:"media" json:"media"`
	PublishDate *time.Time `db:"publish_date" json:"publishDate,omitempty"`
	Status      string     `db:"status" json:"status"`
	LinkInBio   string     `db:"link_in_bio" json:"linkInBio,omitempty"`
	Comments    string     `db:"comments" json:"comments,omitempty"`
	CreatedBy   string     `db:"created_by" json:"createdBy"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
}
