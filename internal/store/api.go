// Package store holds the planner's client-side state containers: one
// per entity, dependency-injected, optimistically mutated and synced to
// the backend through the API interfaces below.
package store

import (
	"context"
	"time"

	"github.com/emplanner/planner-backend/internal/model"
)

// CampaignAPI is the slice of the backend the campaign store talks to.
type CampaignAPI interface {
	ListCampaigns(ctx context.Context) ([]model.Campaign, error)
	CreateCampaign(ctx context.Context, c model.Campaign) (model.Campaign, error)
	UpdateCampaign(ctx context.Context, c model.Campaign) (model.Campaign, error)
	DeleteCampaign(ctx context.Context, id string) error
}

type PostAPI interface {
	ListPosts(ctx context.Context) ([]model.Post, error)
	CreatePost(ctx context.Context, p model.Post) (model.Post, error)
	UpdatePost(ctx context.Context, p model.Post) (model.Post, error)
	DeletePost(ctx context.Context, id string) error
}

type NoteAPI interface {
	ListNotes(ctx context.Context) ([]model.Note, error)
	CreateNote(ctx context.Context, n model.Note) (model.Note, error)
	PatchNote(ctx context.Context, id string, patch NotePatch) (model.Note, error)
	DeleteNote(ctx context.Context, id string) error
}

// CampaignPatch is a field-level partial update; nil means "leave as is".
type CampaignPatch struct {
	Name          *string            `json:"name,omitempty"`
	Color         *string            `json:"color,omitempty"`
	Type          *string            `json:"type,omitempty"`
	UniqueID      *string            `json:"uniqueId,omitempty"`
	StartDate     *time.Time         `json:"startDate,omitempty"`
	EndDate       *time.Time         `json:"endDate,omitempty"`
	Repeat        *string            `json:"repeat,omitempty"`
	Brief         *string            `json:"brief,omitempty"`
	UTMTemplateID *string            `json:"utmTemplateId,omitempty"`
	UTMParams     *map[string]string `json:"utmParams,omitempty"`
	ContentLabels *[]string          `json:"contentLabels,omitempty"`
	Status        *string            `json:"status,omitempty"`
	Visibility    *string            `json:"visibility,omitempty"`
	SharedWith    *[]string          `json:"sharedWith,omitempty"`
}

type PostPatch struct {
	CampaignID  *string          `json:"campaignId,omitempty"`
	Profiles    *[]model.Profile `json:"profiles,omitempty"`
	Content     *string          `json:"content,omitempty"`
	Media       *[]model.Media   `json:"media,omitempty"`
	PublishDate *time.Time       `json:"publishDate,omitempty"`
	Status      *string          `json:"status,omitempty"`
	LinkInBio   *string          `json:"linkInBio,omitempty"`
	Comments    *string          `json:"comments,omitempty"`
}

type NotePatch struct {
	Content    *string    `json:"content,omitempty"`
	Date       *time.Time `json:"date,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	Repeat     *string    `json:"repeat,omitempty"`
	Visibility *string    `json:"visibility,omitempty"`
	Color      *string    `json:"color,omitempty"`
}

// FilterState restricts what the campaign views show; unset means "no
// restriction".
type FilterState struct {
	CampaignID string
	Status     []string
	Type       []string
	Query      string
}

// FilterPatch merges into FilterState; nil fields are untouched.
type FilterPatch struct {
	CampaignID *string
	Status     *[]string
	Type       *[]string
	Query      *string
}
