// Package calendar turns the campaign and post collections into the
// unified event sequence the calendar surface renders, and translates
// its gestures back into store mutations.
package calendar

import (
	"time"

	"github.com/emplanner/planner-backend/internal/model"
)

type EventKind string

const (
	KindCampaign EventKind = "campaign"
	KindPost     EventKind = "post"
)

// FallbackColor is used for posts whose campaign reference resolves to
// nothing.
const FallbackColor = "#9CA3AF"

const titleLimit = 50

// Event is one displayable time-ranged entry.
type Event struct {
	ID     string
	Kind   EventKind
	Title  string
	Start  time.Time
	End    *time.Time
	AllDay bool
	Color  string
}

// Project maps the current collections to events: campaigns first, then
// posts, each in collection order. It is a pure function; equal inputs
// give structurally identical output.
func Project(campaigns []model.Campaign, posts []model.Post) []Event {
	byID := make(map[string]model.Campaign, len(campaigns))
	for _, c := range campaigns {
		byID[c.ID] = c
	}

	events := make([]Event, 0, len(campaigns)+len(posts))

	for _, c := range campaigns {
		end := c.EndDate
		events = append(events, Event{
			ID:     c.ID,
			Kind:   KindCampaign,
			Title:  c.Name,
			Start:  c.StartDate,
			End:    &end,
			AllDay: true,
			Color:  c.Color,
		})
	}

	for _, p := range posts {
		color := FallbackColor
		if c, ok := byID[p.CampaignID]; ok {
			color = c.Color
		}
		var start time.Time
		if p.PublishDate != nil {
			start = *p.PublishDate
		}
		events = append(events, Event{
			ID:    p.ID,
			Kind:  KindPost,
			Title: truncateTitle(p.Content),
			Start: start,
			Color: color,
		})
	}

	return events
}

// truncateTitle cuts post content to 50 characters with an ellipsis
// marker. Counted in runes so multibyte content is not split.
func truncateTitle(content string) string {
	runes := []rune(content)
	if len(runes) <= titleLimit {
		return content
	}
	return string(runes[:titleLimit]) + "..."
}
