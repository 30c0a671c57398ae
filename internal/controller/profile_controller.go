// internal/controller/profile_controller.go
package controller

import (
	"encoding/json"
	"net/http"

	"github.com/emplanner/planner-backend/internal/repository"
)

type ProfileController struct {
	ProfileRepo repository.ProfileRepositoryInterface
}

// ListProfiles serves the composer's profile pick list.
func (c *ProfileController) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := c.ProfileRepo.ListAll()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profiles)
}
