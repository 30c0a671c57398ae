package repository

import (
	"database/sql"

	"github.com/emplanner/planner-backend/internal/model"
)

// ProfileRepositoryInterface defines methods used by service
type ProfileRepositoryInterface interface {
	GetByID(id string) (*model.Profile, error)
	ListAll() ([]model.Profile, error)
}

// ProfileRepository is the concrete implementation
type ProfileRepository struct {
	DB *sql.DB
}

// GetByID fetches a profile by ID
func (r *ProfileRepository) GetByID(id string) (*model.Profile, error) {
	query := `
        SELECT id, name, username, platform, avatar
        FROM profiles
        WHERE id = $1
    `
	row := r.DB.QueryRow(query, id)

	var p model.Profile
	if err := row.Scan(&p.ID, &p.Name, &p.Username, &p.Platform, &p.Avatar); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // not found
		}
		return nil, err
	}
	return &p, nil
}

// ListAll fetches every connected profile (the composer's pick list)
func (r *ProfileRepository) ListAll() ([]model.Profile, error) {
	query := `
        SELECT id, name, username, platform, avatar
        FROM profiles
        ORDER BY id
    `
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := []model.Profile{}
	for rows.Next() {
		var p model.Profile
		if err := rows.Scan(&p.ID, &p.Name, &p.Username, &p.Platform, &p.Avatar); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

var _ ProfileRepositoryInterface = (*ProfileRepository)(nil)
