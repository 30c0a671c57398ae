// internal/controller/note_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/emplanner/planner-backend/internal/errors"
	"github.com/emplanner/planner-backend/internal/model"
	"github.com/emplanner/planner-backend/internal/repository"
)

type NoteController struct {
	NoteRepo repository.NoteRepositoryInterface
}

func (c *NoteController) CreateNote(w http.ResponseWriter, r *http.Request) {
	var body model.Note
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	if err := c.NoteRepo.Create(&body); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(body)
}

func (c *NoteController) ListNotes(w http.ResponseWriter, r *http.Request) {
	ptrs, err := c.NoteRepo.ListNotes()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	notes := make([]model.Note, len(ptrs))
	for i, n := range ptrs {
		notes[i] = *n
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(notes)
}

// PatchNote applies a partial body over the stored note.
func (c *NoteController) PatchNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Content    *string    `json:"content"`
		Date       *time.Time `json:"date"`
		EndDate    *time.Time `json:"endDate"`
		Repeat     *string    `json:"repeat"`
		Visibility *string    `json:"visibility"`
		Color      *string    `json:"color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	note, err := c.NoteRepo.GetByID(id)
	if err != nil {
		if _, ok := err.(*appErrors.ErrNoteNotFound); ok {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if body.Content != nil {
		note.Content = *body.Content
	}
	if body.Date != nil {
		note.Date = *body.Date
	}
	if body.EndDate != nil {
		note.EndDate = body.EndDate
	}
	if body.Repeat != nil {
		note.Repeat = *body.Repeat
	}
	if body.Visibility != nil {
		note.Visibility = *body.Visibility
	}
	if body.Color != nil {
		note.Color = *body.Color
	}

	if err := c.NoteRepo.Update(note); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(note)
}

func (c *NoteController) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := c.NoteRepo.Delete(id); err != nil {
		if _, ok := err.(*appErrors.ErrNoteNotFound); ok {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
