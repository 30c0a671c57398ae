package repository

import (
	"database/sql"
	"time"

	"github.com/emplanner/planner-backend/internal/model"
)

type DeliveryRepositoryInterface interface {
	CreateDelivery(postID, profileID string) (*model.Delivery, error)
	GetDelivery(postID, profileID string) (*model.Delivery, error)
	GetByID(id int) (*model.Delivery, error)
	Update(d *model.Delivery) error
	UpdateStatus(id int, status, lastError string) error
	UpdateRenderedLink(id int, link string) error
	GetPostStats(postID string) (map[string]int, error)
}

type DeliveryRepository struct {
	DB *sql.DB
}

// Idempotent insert: publishing the same post twice must not fan out
// duplicate deliveries.
func (r *DeliveryRepository) CreateDelivery(postID, profileID string) (*model.Delivery, error) {
	existing, err := r.GetDelivery(postID, profileID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	query := `
        INSERT INTO deliveries (post_id, profile_id, status, retry_count, created_at, updated_at)
        VALUES ($1, $2, 'pending', 0, NOW(), NOW())
        RETURNING id, status, retry_count, created_at, updated_at
    `
	var d model.Delivery
	err = r.DB.QueryRow(query, postID, profileID).Scan(
		&d.ID, &d.Status, &d.RetryCount, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	d.PostID = postID
	d.ProfileID = profileID
	return &d, nil
}

func (r *DeliveryRepository) GetDelivery(postID, profileID string) (*model.Delivery, error) {
	query := `SELECT id, post_id, profile_id, status, rendered_link, last_error, retry_count, created_at, updated_at
              FROM deliveries
              WHERE post_id=$1 AND profile_id=$2`
	var d model.Delivery
	err := r.DB.QueryRow(query, postID, profileID).Scan(
		&d.ID, &d.PostID, &d.ProfileID, &d.Status,
		&d.RenderedLink, &d.LastError, &d.RetryCount,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *DeliveryRepository) GetByID(id int) (*model.Delivery, error) {
	query := `
        SELECT id, post_id, profile_id, status, rendered_link, last_error, retry_count, created_at, updated_at
        FROM deliveries
        WHERE id=$1
    `
	var d model.Delivery
	err := r.DB.QueryRow(query, id).Scan(
		&d.ID, &d.PostID, &d.ProfileID, &d.Status,
		&d.RenderedLink, &d.LastError, &d.RetryCount,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *DeliveryRepository) Update(d *model.Delivery) error {
	d.UpdatedAt = time.Now()
	query := `
        UPDATE deliveries
        SET status=$1, last_error=$2, retry_count=$3, updated_at=$4
        WHERE id=$5
    `
	_, err := r.DB.Exec(query, d.Status, d.LastError, d.RetryCount, d.UpdatedAt, d.ID)
	return err
}

func (r *DeliveryRepository) UpdateStatus(id int, status, lastError string) error {
	query := `UPDATE deliveries SET status=$1, last_error=$2, retry_count=retry_count+1, updated_at=NOW() WHERE id=$3`
	_, err := r.DB.Exec(query, status, lastError, id)
	return err
}

func (r *DeliveryRepository) UpdateRenderedLink(id int, link string) error {
	query := `UPDATE deliveries SET rendered_link=$1, updated_at=NOW() WHERE id=$2`
	_, err := r.DB.Exec(query, link, id)
	return err
}

func (r *DeliveryRepository) GetPostStats(postID string) (map[string]int, error) {
	query := `SELECT status, COUNT(*) FROM deliveries WHERE post_id=$1 GROUP BY status`
	rows, err := r.DB.Query(query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := map[string]int{"pending": 0, "sent": 0, "failed": 0}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats[status] = count
	}
	return stats, nil
}

var _ DeliveryRepositoryInterface = (*DeliveryRepository)(nil)
