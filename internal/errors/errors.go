// internal/errors/errors.go
package appErrors

import "fmt"

// ErrCampaignNotFound is a sentinel error
type ErrCampaignNotFound struct {
	CampaignID string
}

func (e *ErrCampaignNotFound) Error() string {
	return fmt.Sprintf("campaign with ID %s not found", e.CampaignID)
}

// Helper constructor
func NewCampaignNotFound(id string) error {
	return &ErrCampaignNotFound{CampaignID: id}
}

type ErrPostNotFound struct {
	PostID string
}

func (e *ErrPostNotFound) Error() string {
	return fmt.Sprintf("post with ID %s not found", e.PostID)
}

func NewPostNotFound(id string) error {
	return &ErrPostNotFound{PostID: id}
}

type ErrNoteNotFound struct {
	NoteID string
}

func (e *ErrNoteNotFound) Error() string {
	return fmt.Sprintf("note with ID %s not found", e.NoteID)
}

func NewNoteNotFound(id string) error {
	return &ErrNoteNotFound{NoteID: id}
}
