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

// CandidateHandler manages a recruiter's candidate pool.
type CandidateHandler struct {
	Repo *repositories.CandidateRepository
}

func NewCandidateHandler(repo *repositories.CandidateRepository) *CandidateHandler {
	return &CandidateHandler{Repo: repo}
}

func (h *CandidateHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var candidate models.Candidate
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if candidate.Name == "" || candidate.Email == "" {
		utils.JSONError(w, http.StatusBadRequest, "Name and email are required")
		return
	}

	recruiterID := middleware.GetRecruiterID(r)
	if existing, _ := h.Repo.GetByEmail(recruiterID, candidate.Email); existing != nil {
		utils.JSONError(w, http.StatusConflict, "Candidate with this email already exists")
		return
	}

	candidate.RecruiterID = recruiterID
	if err := h.Repo.Create(&candidate); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to create candidate")
		return
	}
	utils.JSON(w, http.StatusCreated, candidate)
}

func (h *CandidateHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.Repo.ListByRecruiter(middleware.GetRecruiterID(r))
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to fetch candidates")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"total": len(candidates), "items": candidates})
}

func (h *CandidateHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	candidate, ok := h.loadOwned(w, r)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, candidate)
}

func (h *CandidateHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	candidate, ok := h.loadOwned(w, r)
	if !ok {
		return
	}

	var updates models.Candidate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	updates.RecruiterID = 0

	updated, err := h.Repo.Update(candidate.ID, &updates)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to update candidate")
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}

func (h *CandidateHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	candidate, ok := h.loadOwned(w, r)
	if !ok {
		return
	}
	if err := h.Repo.Delete(candidate.ID); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to delete candidate")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CandidateHandler) loadOwned(w http.ResponseWriter, r *http.Request) (*models.Candidate, bool) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		utils.JSONError(w, http.StatusBadRequest, "Candidate ID is required")
		return nil, false
	}
	candidate, err := h.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCandidateNotFound) {
			utils.JSONError(w, http.StatusNotFound, "Candidate not found")
		} else {
			utils.JSONError(w, http.StatusInternalServerError, "Failed to fetch candidate")
		}
		return nil, false
	}
	if candidate.RecruiterID != middleware.GetRecruiterID(r) {
		utils.JSONError(w, http.StatusNotFound, "Candidate not found")
		return nil, false
	}
	return candidate, true
}
