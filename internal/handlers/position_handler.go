package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"hireloop/internal/middleware"
	"hireloop/internal/models"
	"hireloop/internal/repositories"
	"hireloop/internal/utils"
)

// PositionHandler manages job position CRUD for recruiters.
type PositionHandler struct {
	Repo *repositories.PositionRepository
}

func NewPositionHandler(repo *repositories.PositionRepository) *PositionHandler {
	return &PositionHandler{Repo: repo}
}

func (h *PositionHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var position models.Position
	if err := json.NewDecoder(r.Body).Decode(&position); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if position.Title == "" {
		utils.JSONError(w, http.StatusBadRequest, "Title is required")
		return
	}

	position.RecruiterID = middleware.GetRecruiterID(r)
	if err := h.Repo.Create(&position); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to create position")
		return
	}
	utils.JSON(w, http.StatusCreated, position)
}

func (h *PositionHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	positions, err := h.Repo.ListByRecruiter(middleware.GetRecruiterID(r))
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to fetch positions")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"total": len(positions), "items": positions})
}

func (h *PositionHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	position, ok := h.loadOwned(w, r)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, position)
}

func (h *PositionHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	position, ok := h.loadOwned(w, r)
	if !ok {
		return
	}

	var updates models.Position
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	// ownership is never transferred through updates
	updates.RecruiterID = 0

	updated, err := h.Repo.Update(position.ID, &updates)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to update position")
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}

func (h *PositionHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	position, ok := h.loadOwned(w, r)
	if !ok {
		return
	}
	if err := h.Repo.Delete(position.ID); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to delete position")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// loadOwned fetches the position in the URL and hides other recruiters'
// positions behind a 404.
func (h *PositionHandler) loadOwned(w http.ResponseWriter, r *http.Request) (*models.Position, bool) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		utils.JSONError(w, http.StatusBadRequest, "Position ID is required")
		return nil, false
	}
	position, err := h.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrPositionNotFound) {
			utils.JSONError(w, http.StatusNotFound, "Position not found")
		} else {
			utils.JSONError(w, http.StatusInternalServerError, "Failed to fetch position")
		}
		return nil, false
	}
	if position.RecruiterID != middleware.GetRecruiterID(r) {
		utils.JSONError(w, http.StatusNotFound, "Position not found")
		return nil, false
	}
	return position, true
}
