package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	appErrors "github.com/emplanner/planner-backend/internal/errors"
	"github.com/emplanner/planner-backend/internal/model"
)

// NoteStore is the simplest of the three: notes keep their locally
// assigned id for life, so there is no promotion and no rollback.
type NoteStore struct {
	api  NoteAPI
	user string

	mu         sync.Mutex
	notes      []model.Note
	selectedID string
	err        string

	wg sync.WaitGroup
}

func NewNoteStore(api NoteAPI) *NoteStore {
	return &NoteStore{
		api:   api,
		user:  "current-user",
		notes: []model.Note{},
	}
}

func (s *NoteStore) SetUser(user string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

func (s *NoteStore) Fetch(ctx context.Context) {
	s.mu.Lock()
	s.err = ""
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		notes, err := s.api.ListNotes(ctx)
		s.mu.Lock()
		defer s.mu.Unlock()
		if err != nil {
			s.err = err.Error()
			return
		}
		s.notes = notes
	}()
}

// Add assigns id, author and creation time locally and syncs in the
// background.
func (s *NoteStore) Add(note model.Note) string {
	note.ID = "note-" + uuid.NewString()
	note.CreatedAt = time.Now()

	s.mu.Lock()
	if note.CreatedBy == "" {
		note.CreatedBy = s.user
	}
	s.notes = append(s.notes, note)
	s.err = ""
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if _, err := s.api.CreateNote(context.Background(), note); err != nil {
			s.mu.Lock()
			s.err = err.Error()
			s.mu.Unlock()
		}
	}()

	return note.ID
}

func (s *NoteStore) Update(id string, patch NotePatch) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		err := appErrors.NewNoteNotFound(id)
		s.err = err.Error()
		s.mu.Unlock()
		return err
	}
	applyNotePatch(&s.notes[i], patch)
	s.err = ""
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if _, err := s.api.PatchNote(context.Background(), id, patch); err != nil {
			s.mu.Lock()
			s.err = err.Error()
			s.mu.Unlock()
		}
	}()

	return nil
}

func (s *NoteStore) Remove(id string) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		err := appErrors.NewNoteNotFound(id)
		s.err = err.Error()
		s.mu.Unlock()
		return err
	}
	s.notes = append(s.notes[:i], s.notes[i+1:]...)
	if s.selectedID == id {
		s.selectedID = ""
	}
	s.err = ""
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.api.DeleteNote(context.Background(), id); err != nil {
			s.mu.Lock()
			s.err = err.Error()
			s.mu.Unlock()
		}
	}()

	return nil
}

func (s *NoteStore) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == "" || s.indexOf(id) < 0 {
		s.selectedID = ""
		return
	}
	s.selectedID = id
}

func (s *NoteStore) Notes() []model.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

func (s *NoteStore) Selected() (model.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedID == "" {
		return model.Note{}, false
	}
	if i := s.indexOf(s.selectedID); i >= 0 {
		return s.notes[i], true
	}
	return model.Note{}, false
}

func (s *NoteStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *NoteStore) Wait() {
	s.wg.Wait()
}

func (s *NoteStore) indexOf(id string) int {
	for i := range s.notes {
		if s.notes[i].ID == id {
			return i
		}
	}
	return -1
}

func applyNotePatch(n *model.Note, p NotePatch) {
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Date != nil {
		n.Date = *p.Date
	}
	if p.EndDate != nil {
		n.EndDate = p.EndDate
	}
	if p.Repeat != nil {
		n.Repeat = *p.Repeat
	}
	if p.Visibility != nil {
		n.Visibility = *p.Visibility
	}
	if p.Color != nil {
		n.Color = *p.Color
	}
}
