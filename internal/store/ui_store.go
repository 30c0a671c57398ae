package store

import (
	"sync"
	"time"
)

// Views and calendar granularities.
const (
	ViewCalendar  = "calendar"
	ViewCampaigns = "campaigns"
	ViewPosts     = "posts"

	CalendarMonth  = "month"
	CalendarWeek   = "week"
	CalendarDay    = "day"
	CalendarAgenda = "agenda"
)

// DateRange seeds the quick-create flow from a calendar selection.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// UIStore holds ephemeral view state. Nothing here is ever persisted.
type UIStore struct {
	mu sync.Mutex

	sidebarOpen  bool
	currentView  string
	calendarView string

	quickCreateCampaignOpen bool
	campaignDetailOpen      bool
	createPostOpen          bool
	quickCreateRange        *DateRange
}

func NewUIStore() *UIStore {
	return &UIStore{
		sidebarOpen:  true,
		currentView:  ViewCalendar,
		calendarView: CalendarWeek,
	}
}

func (s *UIStore) ToggleSidebar() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebarOpen = !s.sidebarOpen
}

func (s *UIStore) SetSidebarOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebarOpen = open
}

func (s *UIStore) SidebarOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sidebarOpen
}

func (s *UIStore) SetCurrentView(view string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentView = view
}

func (s *UIStore) CurrentView() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentView
}

func (s *UIStore) SetCalendarView(view string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calendarView = view
}

func (s *UIStore) CalendarView() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calendarView
}

func (s *UIStore) SetQuickCreateCampaignOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quickCreateCampaignOpen = open
	if !open {
		s.quickCreateRange = nil
	}
}

func (s *UIStore) QuickCreateCampaignOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quickCreateCampaignOpen
}

func (s *UIStore) SetQuickCreateRange(r DateRange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quickCreateRange = &r
}

func (s *UIStore) QuickCreateRange() (DateRange, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quickCreateRange == nil {
		return DateRange{}, false
	}
	return *s.quickCreateRange, true
}

func (s *UIStore) SetCampaignDetailOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaignDetailOpen = open
}

func (s *UIStore) CampaignDetailOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.campaignDetailOpen
}

func (s *UIStore) SetCreatePostOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createPostOpen = open
}

func (s *UIStore) CreatePostOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createPostOpen
}
