package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	appErrors "github.com/emplanner/planner-backend/internal/errors"
	"github.com/emplanner/planner-backend/internal/model"
)

type PostRepositoryInterface interface {
	ListPosts(status, campaignID string) ([]*model.Post, error)
	ListDue(now time.Time) ([]*model.Post, error)
	GetByID(id string) (*model.Post, error)
	Create(p *model.Post) error
	Update(p *model.Post) error
	UpdateStatus(id, status string) error
	Delete(id string) error
}

type PostRepository struct {
	DB *sql.DB
}

const postColumns = `id, campaign_id, profiles, content, media, publish_date, status,
		link_in_bio, comments, created_by, created_at, updated_at`

func (r *PostRepository) Create(p *model.Post) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	p.ID = uuid.NewString()
	if p.Status == "" {
		p.Status = model.PostStatusDraft
	}

	profiles, media, err := marshalPostBlobs(p)
	if err != nil {
		return err
	}

	query := `
        INSERT INTO posts (` + postColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    `
	_, err = r.DB.Exec(query,
		p.ID, nullString(p.CampaignID), profiles, p.Content, media, p.PublishDate,
		p.Status, p.LinkInBio, p.Comments, p.CreatedBy, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *PostRepository) Update(p *model.Post) error {
	p.UpdatedAt = time.Now()

	profiles, media, err := marshalPostBlobs(p)
	if err != nil {
		return err
	}

	query := `
        UPDATE posts
        SET campaign_id=$1, profiles=$2, content=$3, media=$4, publish_date=$5,
            status=$6, link_in_bio=$7, comments=$8, updated_at=$9
        WHERE id=$10
    `
	res, err := r.DB.Exec(query,
		nullString(p.CampaignID), profiles, p.Content, media, p.PublishDate,
		p.Status, p.LinkInBio, p.Comments, p.UpdatedAt, p.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.NewPostNotFound(p.ID)
	}
	return nil
}

func (r *PostRepository) UpdateStatus(id, status string) error {
	query := `UPDATE posts SET status=$1, updated_at=$2 WHERE id=$3`
	_, err := r.DB.Exec(query, status, time.Now(), id)
	return err
}

func (r *PostRepository) GetByID(id string) (*model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id=$1`
	p, err := scanPost(r.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewPostNotFound(id)
		}
		return nil, err
	}
	return p, nil
}

func (r *PostRepository) ListPosts(status, campaignID string) ([]*model.Post, error) {
	posts := []*model.Post{}
	query := `SELECT ` + postColumns + ` FROM posts WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if status != "" {
		query += fmt.Sprintf(" AND status=$%d", argPos)
		args = append(args, status)
		argPos++
	}
	if campaignID != "" {
		query += fmt.Sprintf(" AND campaign_id=$%d", argPos)
		args = append(args, campaignID)
		argPos++
	}

	query += " ORDER BY publish_date NULLS LAST, id"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// ListDue returns scheduled posts whose publish date has passed.
func (r *PostRepository) ListDue(now time.Time) ([]*model.Post, error) {
	posts := []*model.Post{}
	query := `SELECT ` + postColumns + ` FROM posts
              WHERE status=$1 AND publish_date IS NOT NULL AND publish_date <= $2
              ORDER BY publish_date, id`

	rows, err := r.DB.Query(query, model.PostStatusScheduled, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM posts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.NewPostNotFound(id)
	}
	return nil
}

func marshalPostBlobs(p *model.Post) ([]byte, []byte, error) {
	if p.Profiles == nil {
		p.Profiles = []model.Profile{}
	}
	if p.Media == nil {
		p.Media = []model.Media{}
	}
	profiles, err := json.Marshal(p.Profiles)
	if err != nil {
		return nil, nil, err
	}
	media, err := json.Marshal(p.Media)
	if err != nil {
		return nil, nil, err
	}
	return profiles, media, nil
}

func scanPost(row rowScanner) (*model.Post, error) {
	var p model.Post
	var campaignID sql.NullString
	var profiles, media []byte
	err := row.Scan(
		&p.ID, &campaignID, &profiles, &p.Content, &media, &p.PublishDate,
		&p.Status, &p.LinkInBio, &p.Comments, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.CampaignID = campaignID.String
	if err := json.Unmarshal(profiles, &p.Profiles); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(media, &p.Media); err != nil {
		return nil, err
	}
	return &p, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

var _ PostRepositoryInterface = (*PostRepository)(nil)
