// internal/model/note.go
package model

import "time"

// Note is a lightweight calendar annotation. Notes are replaced whole on
// update and have no server-side id reconciliation.
type Note struct {
	ID         string     `db:"id" json:"id"`
	Content    string     `db:"content" json:"content"`
	Date       time.Time  `db:"date" json:"date"`
	EndDate    *time.Time `db:"end_date" json:"endDate,omitempty"`
	Repeat     string     `db:"repeat" json:"repeat,omitempty"`
	Visibility string     `db:"visibility" json:"visibility"`
	Color      string     `db:"color" json:"color,omitempty"`
	CreatedBy  string     `db:"created_by" json:"createdBy"`
	CreatedAt  time.Time  `db:"created_at" json:"createdAt"`
}
