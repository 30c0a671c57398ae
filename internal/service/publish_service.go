// internal/service/publish_service.go
package service

import (
	"fmt"
	"log"
	"time"

	"github.com/emplanner/planner-backend/internal/model"
	"github.com/emplanner/planner-backend/internal/queue"
	"github.com/emplanner/planner-backend/internal/repository"
	"github.com/emplanner/planner-backend/internal/utm"
)

// Fallback base for tracking links when no link-in-bio is set.
const defaultLinkBase = "https://example.com"

type PublishService struct {
	PostRepo     repository.PostRepositoryInterface
	CampaignRepo repository.CampaignRepositoryInterface
	DeliveryRepo repository.DeliveryRepositoryInterface
	Queue        queue.Queue
	LinkBase     string
}

// Result struct for PublishPost
type PublishPostResult struct {
	PostID           string
	DeliveriesQueued int
	Status           string
	DeliveryIDs      []int
}

func (s *PublishService) PublishPost(postID string) (*PublishPostResult, error) {
	post, err := s.PostRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}

	if post.Status == model.PostStatusSent {
		return nil, fmt.Errorf("post cannot be published in status: %s", post.Status)
	}
	if post.PublishDate == nil {
		return nil, fmt.Errorf("post %s has no publish date", postID)
	}

	// Weak reference: a missing campaign is fine, the link just loses
	// its campaign variables.
	var campaign *model.Campaign
	if post.CampaignID != "" {
		campaign, err = s.CampaignRepo.GetByID(post.CampaignID)
		if err != nil {
			log.Println("⚠️ campaign lookup failed for post", postID, ":", err)
			campaign = nil
		}
	}

	result := &PublishPostResult{
		PostID:           postID,
		DeliveriesQueued: 0,
		Status:           model.PostStatusScheduled,
		DeliveryIDs:      []int{},
	}

	for _, profile := range post.Profiles {
		// Idempotent create (returns existing if already exists)
		d, err := s.DeliveryRepo.CreateDelivery(postID, profile.ID)
		if err != nil {
			log.Println("⚠️ failed to create/get delivery:", err)
			continue
		}

		if d.RenderedLink == "" {
			link := s.renderLink(post, campaign, profile)
			if err := s.DeliveryRepo.UpdateRenderedLink(d.ID, link); err != nil {
				log.Println("⚠️ failed to update rendered link:", err)
				continue
			}
			d.RenderedLink = link
		}

		if err := s.Queue.Publish(queue.TopicPostPublishes, d.ID); err != nil {
			log.Println("⚠️ failed to enqueue delivery ID", d.ID, ":", err)
			continue
		}

		result.DeliveryIDs = append(result.DeliveryIDs, d.ID)
		result.DeliveriesQueued++
	}

	if post.Status != model.PostStatusScheduled {
		if err := s.PostRepo.UpdateStatus(postID, model.PostStatusScheduled); err != nil {
			return result, err
		}
	}

	return result, nil
}

// SendDuePosts sweeps scheduled posts whose publish date has passed and
// publishes each one. Returns how many posts were picked up.
func (s *PublishService) SendDuePosts(now time.Time) (int, error) {
	due, err := s.PostRepo.ListDue(now)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, post := range due {
		if _, err := s.PublishPost(post.ID); err != nil {
			log.Println("⚠️ failed to publish due post", post.ID, ":", err)
			continue
		}
		count++
	}
	return count, nil
}

func (s *PublishService) renderLink(post *model.Post, campaign *model.Campaign, profile model.Profile) string {
	base := s.LinkBase
	if base == "" {
		base = defaultLinkBase
	}
	if post.LinkInBio != "" {
		base = post.LinkInBio
	}

	params := map[string]string{}
	campaignName := ""
	if campaign != nil {
		params = campaign.UTMParams
		campaignName = campaign.Name
	}

	vars := map[string]string{
		utm.VarProfile:      profile.Username,
		utm.VarPostType:     profile.Platform,
		utm.VarCampaignName: campaignName,
		utm.VarPostID:       post.ID,
	}
	return utm.BuildLink(base, params, vars)
}
