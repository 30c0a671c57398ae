package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/emplanner/planner-backend/internal/controller"
	appErrors "github.com/emplanner/planner-backend/internal/errors"
	"github.com/emplanner/planner-backend/internal/model"
)

type MockNoteRepo struct {
	notes map[string]*model.Note
}

func NewMockNoteRepo(notes ...*model.Note) *MockNoteRepo {
	m := &MockNoteRepo{notes: map[string]*model.Note{}}
	for _, n := range notes {
		m.notes[n.ID] = n
	}
	return m
}

func (m *MockNoteRepo) ListNotes() ([]*model.Note, error) {
	out := []*model.Note{}
	for _, n := range m.notes {
		out = append(out, n)
	}
	return out, nil
}

func (m *MockNoteRepo) GetByID(id string) (*model.Note, error) {
	n, ok := m.notes[id]
	if !ok {
		return nil, appErrors.NewNoteNotFound(id)
	}
	copied := *n
	return &copied, nil
}

func (m *MockNoteRepo) Create(n *model.Note) error {
	n.ID = uuid.NewString()
	m.notes[n.ID] = n
	return nil
}

func (m *MockNoteRepo) Update(n *model.Note) error {
	if _, ok := m.notes[n.ID]; !ok {
		return appErrors.NewNoteNotFound(n.ID)
	}
	m.notes[n.ID] = n
	return nil
}

func (m *MockNoteRepo) Delete(id string) error {
	if _, ok := m.notes[id]; !ok {
		return appErrors.NewNoteNotFound(id)
	}
	delete(m.notes, id)
	return nil
}

func newNoteRouter(repo *MockNoteRepo) *chi.Mux {
	ctrl := &controller.NoteController{NoteRepo: repo}

	r := chi.NewRouter()
	r.Get("/notes", ctrl.ListNotes)
	r.Post("/notes", ctrl.CreateNote)
	r.Patch("/notes/{id}", ctrl.PatchNote)
	r.Delete("/notes/{id}", ctrl.DeleteNote)
	return r
}

func TestPatchNoteMergesPartialBody(t *testing.T) {
	date := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	repo := NewMockNoteRepo(&model.Note{
		ID:         "n1",
		Content:    "original",
		Date:       date,
		Visibility: "global",
		Color:      "#F59E0B",
	})
	router := newNoteRouter(repo)

	body := map[string]interface{}{"content": "edited"}
	b, _ := json.Marshal(body)

	req := httptest.NewRequest("PATCH", "/notes/n1", bytes.NewReader(b))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var patched model.Note
	if err := json.NewDecoder(resp.Body).Decode(&patched); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if patched.Content != "edited" {
		t.Errorf("content not patched: %s", patched.Content)
	}
	if patched.Color != "#F59E0B" || !patched.Date.Equal(date) {
		t.Error("untouched fields must survive the patch")
	}
}

func TestPatchNoteNotFound(t *testing.T) {
	router := newNoteRouter(NewMockNoteRepo())

	b, _ := json.Marshal(map[string]interface{}{"content": "x"})
	req := httptest.NewRequest("PATCH", "/notes/missing", bytes.NewReader(b))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Result().StatusCode)
	}
}

func TestCreateNote(t *testing.T) {
	repo := NewMockNoteRepo()
	router := newNoteRouter(repo)

	body := map[string]interface{}{
		"content": "content freeze",
		"date":    "2024-05-10T00:00:00Z",
	}
	b, _ := json.Marshal(body)

	req := httptest.NewRequest("POST", "/notes", bytes.NewReader(b))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var created model.Note
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.ID == "" {
		t.Error("server must assign an id")
	}
}
