package calendar

import (
	"time"

	"github.com/emplanner/planner-backend/internal/store"
)

// Handlers translates calendar gestures into store mutations. It never
// touches projection output; the next render recomputes from the stores.
type Handlers struct {
	Campaigns *store.CampaignStore
	Posts     *store.PostStore
	UI        *store.UIStore
}

// SelectRange seeds and opens the quick-create campaign flow for the
// selected date range.
func (h *Handlers) SelectRange(start, end time.Time) {
	h.UI.SetQuickCreateRange(store.DateRange{Start: start, End: end})
	h.UI.SetQuickCreateCampaignOpen(true)
}

// ClickEvent selects the underlying record; campaign clicks also open
// the detail view.
func (h *Handlers) ClickEvent(ev Event) {
	switch ev.Kind {
	case KindCampaign:
		h.Campaigns.Select(ev.ID)
		h.UI.SetCampaignDetailOpen(true)
	case KindPost:
		h.Posts.Select(ev.ID)
		// No post detail modal is wired yet.
	}
}

// DropEvent persists a drag-move: campaigns get the full dropped range,
// posts only the new publish instant. A missing drop end collapses to
// the start, matching the calendar surface's behavior for all-day drops.
func (h *Handlers) DropEvent(ev Event, start time.Time, end *time.Time) error {
	switch ev.Kind {
	case KindCampaign:
		rangeEnd := start
		if end != nil {
			rangeEnd = *end
		}
		return h.Campaigns.Save(ev.ID, store.CampaignPatch{
			StartDate: &start,
			EndDate:   &rangeEnd,
		})
	case KindPost:
		return h.Posts.Save(ev.ID, store.PostPatch{
			PublishDate: &start,
		})
	}
	return nil
}

// ResizeEvent persists a boundary change. Campaigns only; the surface
// does not offer resize handles on posts.
func (h *Handlers) ResizeEvent(ev Event, start, end time.Time) error {
	if ev.Kind != KindCampaign {
		return nil
	}
	return h.Campaigns.Save(ev.ID, store.CampaignPatch{
		StartDate: &start,
		EndDate:   &end,
	})
}
