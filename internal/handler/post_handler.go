// internal/handler/post_handler.go
package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/emplanner/planner-backend/internal/model"
	"github.com/emplanner/planner-backend/internal/repository"
)

// PostHandler holds the dependencies for post-related HTTP handlers
type PostHandler struct {
	PostRepo     repository.PostRepositoryInterface
	DeliveryRepo repository.DeliveryRepositoryInterface
}

type postWithStats struct {
	model.Post
	Stats map[string]int `json:"stats"`
}

// GetPostHandlerWithStats returns a post plus its delivery counts by status
func (h *PostHandler) GetPostHandlerWithStats(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	log.Println("📥 Handler called for post ID:", id)

	post, err := h.PostRepo.GetByID(id)
	if err != nil {
		log.Println("❌ Error fetching post:", err)
		http.Error(w, "failed to fetch post: "+err.Error(), http.StatusInternalServerError)
		return
	}

	stats, err := h.DeliveryRepo.GetPostStats(id)
	if err != nil {
		log.Println("❌ Error fetching delivery stats:", err)
		http.Error(w, "failed to fetch delivery stats: "+err.Error(), http.StatusInternalServerError)
		return
	}
	total := 0
	for _, n := range stats {
		total += n
	}
	stats["total"] = total

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(postWithStats{Post: *post, Stats: stats})
}
