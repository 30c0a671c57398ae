// internal/model/campaign.go
package model

import "time"

// Campaign statuses are an open vocabulary; these are the values the
// planner UI knows about.
const (
	CampaignStatusNotStarted = "not-started"
	CampaignStatusInProgress = "in-progress"
	CampaignStatusRunning    = "running"
	CampaignStatusDraft      = "draft"
	CampaignStatusWaiting    = "waiting"
	CampaignStatusNoAction   = "no-action"
)

// Visibility values shared by campaigns and notes.
const (
	VisibilityPrivate = "private"
	VisibilityGlobal  = "global"
	VisibilityShared  = "shared"
)

// Repeat cadences. Stored as entered; nothing downstream expands them yet.
const (
	RepeatNone    = "none"
	RepeatDaily   = "daily"
	RepeatWeekly  = "weekly"
	RepeatMonthly = "monthly"
	RepeatYearly  = "yearly"
)

type Campaign struct {
	ID            string            `db:"id" json:"id"`
	Name          string            `db:"name" json:"name"`
	Color         string            `db:"color" json:"color"`
	Type          string            `db:"type" json:"type"`
	UniqueID      string            `db:"unique_id" json:"uniqueId,omitempty"`
	StartDate     time.Time         `db:"start_date" json:"startDate"`
	EndDate       time.Time         `db:"end_date" json:"endDate"`
	Repeat        string            `db:"repeat" json:"repeat,omitempty"`
	Brief         string            `db:"brief" json:"brief"`
	UTMTemplateID string            `db:"utm_template_id" json:"utmTemplateId"`
	UTMParams     map[string]string `db:"utm_params" json:"utmParams"`
	ContentLabels []string          `db:"content_labels" json:"contentLabels"`
	Status        string            `db:"status" json:"status"`
	Visibility    string            `db:"visibility" json:"visibility"`
	SharedWith    []string          `db:"shared_with" json:"sharedWith,omitempty"`
	CreatedBy     string            `db:"created_by" json:"createdBy"`
	CreatedAt     time.Time         `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time         `db:"updated_at" json:"updatedAt"`
}
