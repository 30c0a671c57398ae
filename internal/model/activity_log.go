// internal/model/activity_log.go
package model

import "time"

// ActivityLog is a placeholder for a future audit trail. Nothing writes
// it yet.
type ActivityLog struct {
	ID         string    `db:"id" json:"id"`
	CampaignID string    `db:"campaign_id" json:"campaignId"`
	UserID     string    `db:"user_id" json:"userId"`
	Action     string    `db:"action" json:"action"`
	Details    string    `db:"details" json:"details"`
	Timestamp  time.Time `db:"timestamp" json:"timestamp"`
}
