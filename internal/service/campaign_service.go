// internal/service/campaign_service.go
package service

import (
	"github.com/emplanner/planner-backend/internal/model"
	"github.com/emplanner/planner-backend/internal/repository"
	"github.com/emplanner/planner-backend/internal/utm"
)

type CampaignService struct {
	CampaignRepo repository.CampaignRepositoryInterface
}

// CreateCampaign fills in quick-create defaults before persisting. The
// client may have sent a draft id; the repository replaces it.
func (s *CampaignService) CreateCampaign(c *model.Campaign) (*model.Campaign, error) {
	if c.Status == "" {
		c.Status = model.CampaignStatusDraft
	}
	if c.Visibility == "" {
		c.Visibility = model.VisibilityGlobal
	}
	if c.Repeat == "" {
		c.Repeat = model.RepeatNone
	}
	if c.Type == "" {
		c.Type = "General"
	}
	if c.UTMParams == nil {
		c.UTMParams = utm.ParamMap(utm.DefaultParams(c.Name))
	}
	if c.ContentLabels == nil {
		c.ContentLabels = []string{}
	}
	// Date ranges are stored as given; range validation belongs to the form.

	if err := s.CampaignRepo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCampaign replaces the full record and bumps updated_at.
func (s *CampaignService) UpdateCampaign(c *model.Campaign) (*model.Campaign, error) {
	if err := s.CampaignRepo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListCampaigns fetches campaigns, optionally filtered
func (s *CampaignService) ListCampaigns(status, campaignType string) ([]model.Campaign, error) {
	ptrs, err := s.CampaignRepo.ListCampaigns(status, campaignType)
	if err != nil {
		return nil, err
	}

	campaigns := make([]model.Campaign, len(ptrs))
	for i, c := range ptrs {
		campaigns[i] = *c
	}
	return campaigns, nil
}

func (s *CampaignService) GetCampaign(id string) (*model.Campaign, error) {
	return s.CampaignRepo.GetByID(id)
}

func (s *CampaignService) DeleteCampaign(id string) error {
	return s.CampaignRepo.Delete(id)
}
