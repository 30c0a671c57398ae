package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	appErrors "github.com/emplanner/planner-backend/internal/errors"
	"github.com/emplanner/planner-backend/internal/model"
)

type NoteRepositoryInterface interface {
	ListNotes() ([]*model.Note, error)
	GetByID(id string) (*model.Note, error)
	Create(n *model.Note) error
	Update(n *model.Note) error
	Delete(id string) error
}

type NoteRepository struct {
	DB *sql.DB
}

const noteColumns = `id, content, date, end_date, repeat, visibility, color, created_by, created_at`

func (r *NoteRepository) Create(n *model.Note) error {
	n.CreatedAt = time.Now()
	// Notes may arrive with a client-minted id; keep it if present since
	// notes have no promotion lifecycle.
	if n.ID == "" {
		n.ID = uuid.NewString()
	}

	query := `
        INSERT INTO notes (` + noteColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	_, err := r.DB.Exec(query,
		n.ID, n.Content, n.Date, n.EndDate, n.Repeat, n.Visibility, n.Color,
		n.CreatedBy, n.CreatedAt,
	)
	return err
}

func (r *NoteRepository) Update(n *model.Note) error {
	query := `
        UPDATE notes
        SET content=$1, date=$2, end_date=$3, repeat=$4, visibility=$5, color=$6
        WHERE id=$7
    `
	res, err := r.DB.Exec(query, n.Content, n.Date, n.EndDate, n.Repeat, n.Visibility, n.Color, n.ID)
	if err != nil {
		return err
	}
	if count, _ := res.RowsAffected(); count == 0 {
		return appErrors.NewNoteNotFound(n.ID)
	}
	return nil
}

func (r *NoteRepository) GetByID(id string) (*model.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id=$1`
	var n model.Note
	err := r.DB.QueryRow(query, id).Scan(
		&n.ID, &n.Content, &n.Date, &n.EndDate, &n.Repeat, &n.Visibility,
		&n.Color, &n.CreatedBy, &n.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewNoteNotFound(id)
		}
		return nil, err
	}
	return &n, nil
}

func (r *NoteRepository) ListNotes() ([]*model.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes ORDER BY date, id`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []*model.Note{}
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(
			&n.ID, &n.Content, &n.Date, &n.EndDate, &n.Repeat, &n.Visibility,
			&n.Color, &n.CreatedBy, &n.CreatedAt,
		); err != nil {
			return nil, err
		}
		notes = append(notes, &n)
	}
	return notes, rows.Err()
}

func (r *NoteRepository) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM notes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if count, _ := res.RowsAffected(); count == 0 {
		return appErrors.NewNoteNotFound(id)
	}
	return nil
}

var _ NoteRepositoryInterface = (*NoteRepository)(nil)
