package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	appErrors "github.com/emplanner/planner-backend/internal/errors"
	"github.com/emplanner/planner-backend/internal/model"
)

// CampaignStore owns the campaign collection. Mutators apply locally
// first and mirror to the backend on a separate goroutine; each
// outgoing mutation carries a per-record sequence number and responses
// that are not the highest-seen for their record are discarded, so a
// slow confirmation can never overwrite a newer edit.
type CampaignStore struct {
	api  CampaignAPI
	user string

	mu         sync.Mutex
	campaigns  []model.Campaign
	selectedID string
	filters    FilterState
	loading    bool
	err        string
	seq        map[string]uint64

	wg sync.WaitGroup
}

func NewCampaignStore(api CampaignAPI) *CampaignStore {
	return &CampaignStore{
		api:       api,
		user:      "current-user",
		campaigns: []model.Campaign{},
		seq:       make(map[string]uint64),
	}
}

// SetUser changes who new records are attributed to.
func (s *CampaignStore) SetUser(user string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// Fetch replaces the whole collection from the backend. On failure the
// existing collection is left untouched.
func (s *CampaignStore) Fetch(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		campaigns, err := s.api.ListCampaigns(ctx)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.loading = false
		if err != nil {
			s.err = err.Error()
			return
		}
		s.campaigns = campaigns
	}()
}

// Create inserts an optimistic record under a local draft handle and
// returns it. On confirmation the draft id is promoted to the
// server-issued one, rewriting the selection; on failure the optimistic
// record is rolled back.
func (s *CampaignStore) Create(draft model.Campaign) string {
	now := time.Now()
	draftID := "draft-" + uuid.NewString()
	draft.ID = draftID
	draft.CreatedAt = now
	draft.UpdatedAt = now

	s.mu.Lock()
	if draft.CreatedBy == "" {
		draft.CreatedBy = s.user
	}
	s.campaigns = append(s.campaigns, draft)
	seqNo := s.nextSeq(draftID)
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		created, err := s.api.CreateCampaign(context.Background(), draft)
		s.mu.Lock()
		defer s.mu.Unlock()
		superseded := s.seq[draftID] != seqNo
		s.loading = false
		if err != nil {
			// Roll the optimistic record back.
			if i := s.indexOf(draftID); i >= 0 {
				s.campaigns = append(s.campaigns[:i], s.campaigns[i+1:]...)
			}
			if s.selectedID == draftID {
				s.selectedID = ""
			}
			delete(s.seq, draftID)
			s.err = err.Error()
			return
		}
		// Promote the draft handle to the canonical id. The sequence
		// guard only covers field values: an edit issued while the
		// create was in flight keeps its values, but the id promotion
		// must still happen or later saves would target a handle the
		// backend never knew.
		if i := s.indexOf(draftID); i >= 0 {
			if superseded {
				s.campaigns[i].ID = created.ID
			} else {
				s.campaigns[i] = created
			}
		}
		if s.selectedID == draftID {
			s.selectedID = created.ID
		}
		s.seq[created.ID] = s.seq[draftID]
		delete(s.seq, draftID)
	}()

	return draftID
}

// Save merges the patch into the identified record, bumps updatedAt and
// mirrors the change. An unknown id fails locally without touching the
// network.
func (s *CampaignStore) Save(id string, patch CampaignPatch) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		err := appErrors.NewCampaignNotFound(id)
		s.err = err.Error()
		s.mu.Unlock()
		return err
	}

	applyCampaignPatch(&s.campaigns[i], patch)
	prev := s.campaigns[i].UpdatedAt
	now := time.Now()
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	s.campaigns[i].UpdatedAt = now

	record := s.campaigns[i]
	seqNo := s.nextSeq(id)
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		updated, err := s.api.UpdateCampaign(context.Background(), record)
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.seq[id] != seqNo {
			return // stale confirmation, a newer edit owns the record
		}
		s.loading = false
		if err != nil {
			s.err = err.Error()
			return
		}
		if j := s.indexOf(id); j >= 0 {
			s.campaigns[j] = updated
		}
	}()

	return nil
}

// Remove deletes locally before the backend confirms.
func (s *CampaignStore) Remove(id string) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		err := appErrors.NewCampaignNotFound(id)
		s.err = err.Error()
		s.mu.Unlock()
		return err
	}
	s.campaigns = append(s.campaigns[:i], s.campaigns[i+1:]...)
	if s.selectedID == id {
		s.selectedID = ""
	}
	delete(s.seq, id)
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		err := s.api.DeleteCampaign(context.Background(), id)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.loading = false
		if err != nil {
			s.err = err.Error()
		}
	}()

	return nil
}

// Select sets the current campaign; an absent id yields no selection.
func (s *CampaignStore) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == "" || s.indexOf(id) < 0 {
		s.selectedID = ""
		return
	}
	s.selectedID = id
}

// SetFilters merges the patch; unspecified fields keep their value.
func (s *CampaignStore) SetFilters(patch FilterPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if patch.CampaignID != nil {
		s.filters.CampaignID = *patch.CampaignID
	}
	if patch.Status != nil {
		s.filters.Status = *patch.Status
	}
	if patch.Type != nil {
		s.filters.Type = *patch.Type
	}
	if patch.Query != nil {
		s.filters.Query = *patch.Query
	}
}

// Campaigns returns a snapshot of the collection.
func (s *CampaignStore) Campaigns() []model.Campaign {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Campaign, len(s.campaigns))
	copy(out, s.campaigns)
	return out
}

// Filtered returns the snapshot restricted by the current filters.
func (s *CampaignStore) Filtered() []model.Campaign {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Campaign{}
	for _, c := range s.campaigns {
		if s.filters.CampaignID != "" && c.ID != s.filters.CampaignID {
			continue
		}
		if len(s.filters.Status) > 0 && !contains(s.filters.Status, c.Status) {
			continue
		}
		if len(s.filters.Type) > 0 && !contains(s.filters.Type, c.Type) {
			continue
		}
		if s.filters.Query != "" &&
			!strings.Contains(strings.ToLower(c.Name), strings.ToLower(s.filters.Query)) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (s *CampaignStore) Get(id string) (model.Campaign, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.campaigns[i], true
	}
	return model.Campaign{}, false
}

func (s *CampaignStore) Selected() (model.Campaign, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedID == "" {
		return model.Campaign{}, false
	}
	if i := s.indexOf(s.selectedID); i >= 0 {
		return s.campaigns[i], true
	}
	return model.Campaign{}, false
}

func (s *CampaignStore) Filters() FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

func (s *CampaignStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *CampaignStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Wait blocks until every in-flight backend call has resolved.
func (s *CampaignStore) Wait() {
	s.wg.Wait()
}

func (s *CampaignStore) indexOf(id string) int {
	for i := range s.campaigns {
		if s.campaigns[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *CampaignStore) nextSeq(id string) uint64 {
	s.seq[id]++
	return s.seq[id]
}

func applyCampaignPatch(c *model.Campaign, p CampaignPatch) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.UniqueID != nil {
		c.UniqueID = *p.UniqueID
	}
	if p.StartDate != nil {
		c.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		c.EndDate = *p.EndDate
	}
	if p.Repeat != nil {
		c.Repeat = *p.Repeat
	}
	if p.Brief != nil {
		c.Brief = *p.Brief
	}
	if p.UTMTemplateID != nil {
		c.UTMTemplateID = *p.UTMTemplateID
	}
	if p.UTMParams != nil {
		c.UTMParams = *p.UTMParams
	}
	if p.ContentLabels != nil {
		c.ContentLabels = *p.ContentLabels
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Visibility != nil {
		c.Visibility = *p.Visibility
	}
	if p.SharedWith != nil {
		c.SharedWith = *p.SharedWith
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
