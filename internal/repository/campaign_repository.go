package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	appErrors "github.com/emplanner/planner-backend/internal/errors"
	"github.com/emplanner/planner-backend/internal/model"
)

type CampaignRepositoryInterface interface {
	ListCampaigns(status, campaignType string) ([]*model.Campaign, error)
	GetByID(id string) (*model.Campaign, error)
	Create(c *model.Campaign) error
	Update(c *model.Campaign) error
	UpdateStatus(id, status string) error
	Delete(id string) error
}

type CampaignRepository struct {
	DB *sql.DB
}

const campaignColumns = `id, name, color, type, unique_id, start_date, end_date, repeat, brief,
		utm_template_id, utm_params, content_labels, status, visibility, shared_with,
		created_by, created_at, updated_at`

// ====================== Campaign CRUD ======================

func (r *CampaignRepository) Create(c *model.Campaign) error {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	// Server is the id authority: client draft ids are replaced here.
	c.ID = uuid.NewString()
	if c.Status == "" {
		c.Status = model.CampaignStatusDraft
	}

	params, err := json.Marshal(c.UTMParams)
	if err != nil {
		return err
	}

	query := `
        INSERT INTO campaigns (` + campaignColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
    `
	_, err = r.DB.Exec(query,
		c.ID, c.Name, c.Color, c.Type, c.UniqueID, c.StartDate, c.EndDate, c.Repeat, c.Brief,
		c.UTMTemplateID, params, pq.Array(c.ContentLabels), c.Status, c.Visibility,
		pq.Array(c.SharedWith), c.CreatedBy, c.CreatedAt, c.UpdatedAt,
	)
	return err
}

func (r *CampaignRepository) Update(c *model.Campaign) error {
	c.UpdatedAt = time.Now()

	params, err := json.Marshal(c.UTMParams)
	if err != nil {
		return err
	}

	query := `
        UPDATE campaigns
        SET name=$1, color=$2, type=$3, unique_id=$4, start_date=$5, end_date=$6, repeat=$7,
            brief=$8, utm_template_id=$9, utm_params=$10, content_labels=$11, status=$12,
            visibility=$13, shared_with=$14, updated_at=$15
        WHERE id=$16
    `
	res, err := r.DB.Exec(query,
		c.Name, c.Color, c.Type, c.UniqueID, c.StartDate, c.EndDate, c.Repeat,
		c.Brief, c.UTMTemplateID, params, pq.Array(c.ContentLabels), c.Status,
		c.Visibility, pq.Array(c.SharedWith), c.UpdatedAt, c.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.NewCampaignNotFound(c.ID)
	}
	return nil
}

func (r *CampaignRepository) UpdateStatus(id, status string) error {
	query := `UPDATE campaigns SET status=$1, updated_at=$2 WHERE id=$3`
	_, err := r.DB.Exec(query, status, time.Now(), id)
	return err
}

func (r *CampaignRepository) GetByID(id string) (*model.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id=$1`
	c, err := scanCampaign(r.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewCampaignNotFound(id)
		}
		return nil, err
	}
	return c, nil
}

func (r *CampaignRepository) ListCampaigns(status, campaignType string) ([]*model.Campaign, error) {
	campaigns := []*model.Campaign{}
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if status != "" {
		query += fmt.Sprintf(" AND status=$%d", argPos)
		args = append(args, status)
		argPos++
	}
	if campaignType != "" {
		query += fmt.Sprintf(" AND type=$%d", argPos)
		args = append(args, campaignType)
		argPos++
	}

	query += " ORDER BY start_date, id"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

func (r *CampaignRepository) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM campaigns WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.NewCampaignNotFound(id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCampaign(row rowScanner) (*model.Campaign, error) {
	var c model.Campaign
	var params []byte
	err := row.Scan(
		&c.ID, &c.Name, &c.Color, &c.Type, &c.UniqueID, &c.StartDate, &c.EndDate,
		&c.Repeat, &c.Brief, &c.UTMTemplateID, &params,
		pq.Array(&c.ContentLabels), &c.Status, &c.Visibility, pq.Array(&c.SharedWith),
		&c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(params) > 0 {
		if err := json.Unmarshal(params, &c.UTMParams); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
