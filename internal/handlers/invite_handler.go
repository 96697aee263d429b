package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"hireloop/internal/interview"
	"hireloop/internal/middleware"
	"hireloop/internal/models"
	"hireloop/internal/repositories"
	"hireloop/internal/utils"
)

// InviteHandler is the recruiter-side interview surface: issuing token
// invitations, listing them, cancelling and deleting them. The candidate
// never sees these routes.
type InviteHandler struct {
	Interviews *repositories.InterviewRepository
	Quizzes    *repositories.QuizRepository
	Positions  *repositories.PositionRepository
	Candidates *repositories.CandidateRepository
	Lifecycle  *interview.Service
}

func NewInviteHandler(
	interviews *repositories.InterviewRepository,
	quizzes *repositories.QuizRepository,
	positions *repositories.PositionRepository,
	candidates *repositories.CandidateRepository,
	lifecycle *interview.Service,
) *InviteHandler {
	return &InviteHandler{
		Interviews: interviews,
		Quizzes:    quizzes,
		Positions:  positions,
		Candidates: candidates,
		Lifecycle:  lifecycle,
	}
}

type createInviteRequest struct {
	QuizID        uint `json:"quizId"`
	CandidateID   uint `json:"candidateId"`
	ExpiresInDays int  `json:"expiresInDays"`
}

// CreateHandler issues an invitation: a fresh interview in pending with a
// random token the candidate will use as their only credential.
func (h *InviteHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req createInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.QuizID == 0 || req.CandidateID == 0 {
		utils.JSONError(w, http.StatusBadRequest, "quizId and candidateId are required")
		return
	}

	recruiterID := middleware.GetRecruiterID(r)
	if _, ok := h.ownedQuiz(w, req.QuizID, recruiterID); !ok {
		return
	}
	candidate, err := h.Candidates.GetByID(req.CandidateID)
	if err != nil || candidate.RecruiterID != recruiterID {
		utils.JSONError(w, http.StatusNotFound, "Candidate not found")
		return
	}

	iv := &models.Interview{
		Token:       uuid.New().String(),
		QuizID:      req.QuizID,
		CandidateID: req.CandidateID,
		Status:      models.InterviewPending,
		Answers:     models.AnswerMap{},
	}
	if req.ExpiresInDays > 0 {
		expires := time.Now().UTC().AddDate(0, 0, req.ExpiresInDays)
		iv.ExpiresAt = &expires
	}

	if err := h.Interviews.Create(iv); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to create interview")
		return
	}
	utils.JSON(w, http.StatusCreated, iv)
}

func (h *InviteHandler) ListByQuizHandler(w http.ResponseWriter, r *http.Request) {
	quizID, ok := parseIDParam(r, "id")
	if !ok {
		utils.JSONError(w, http.StatusBadRequest, "Quiz ID is required")
		return
	}
	if _, ok := h.ownedQuiz(w, quizID, middleware.GetRecruiterID(r)); !ok {
		return
	}

	interviews, err := h.Interviews.ListByQuiz(quizID)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to fetch interviews")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"total": len(interviews), "items": interviews})
}

func (h *InviteHandler) ListByCandidateHandler(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := parseIDParam(r, "id")
	if !ok {
		utils.JSONError(w, http.StatusBadRequest, "Candidate ID is required")
		return
	}
	candidate, err := h.Candidates.GetByID(candidateID)
	if err != nil || candidate.RecruiterID != middleware.GetRecruiterID(r) {
		utils.JSONError(w, http.StatusNotFound, "Candidate not found")
		return
	}

	interviews, err := h.Interviews.ListByCandidate(candidateID)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to fetch interviews")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"total": len(interviews), "items": interviews})
}

func (h *InviteHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	iv, ok := h.loadOwned(w, r)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, iv)
}

// CancelHandler flips a non-terminal interview to cancelled. The token stops
// working for lifecycle actions but the row is kept.
func (h *InviteHandler) CancelHandler(w http.ResponseWriter, r *http.Request) {
	iv, ok := h.loadOwned(w, r)
	if !ok {
		return
	}

	if err := h.Lifecycle.Cancel(iv.ID); err != nil {
		switch {
		case errors.Is(err, interview.ErrInvalidTransition):
			utils.JSONError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, interview.ErrNotFound):
			utils.JSONError(w, http.StatusNotFound, "Interview not found")
		default:
			utils.JSONError(w, http.StatusInternalServerError, "Failed to cancel interview")
		}
		return
	}
	utils.JSON(w, http.StatusOK, models.ActionResponse{Success: true, Message: "Interview cancelled"})
}

// DeleteHandler removes an interview row. Completed interviews carry the
// candidate's final submission and cannot be deleted.
func (h *InviteHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	iv, ok := h.loadOwned(w, r)
	if !ok {
		return
	}
	if iv.Status == models.InterviewCompleted {
		utils.JSONError(w, http.StatusConflict, "Completed interviews cannot be deleted")
		return
	}
	if err := h.Interviews.Delete(iv.ID); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to delete interview")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// loadOwned fetches the interview in the URL and walks quiz -> position to
// confirm the authenticated recruiter owns it.
func (h *InviteHandler) loadOwned(w http.ResponseWriter, r *http.Request) (*models.Interview, bool) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		utils.JSONError(w, http.StatusBadRequest, "Interview ID is required")
		return nil, false
	}
	iv, err := h.Interviews.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrInterviewNotFound) {
			utils.JSONError(w, http.StatusNotFound, "Interview not found")
		} else {
			utils.JSONError(w, http.StatusInternalServerError, "Failed to fetch interview")
		}
		return nil, false
	}
	if _, ok := h.ownedQuiz(w, iv.QuizID, middleware.GetRecruiterID(r)); !ok {
		return nil, false
	}
	return iv, true
}

func (h *InviteHandler) ownedQuiz(w http.ResponseWriter, quizID, recruiterID uint) (*models.Quiz, bool) {
	quiz, err := h.Quizzes.GetByID(quizID)
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "Quiz not found")
		return nil, false
	}
	position, err := h.Positions.GetByID(quiz.PositionID)
	if err != nil || position.RecruiterID != recruiterID {
		utils.JSONError(w, http.StatusNotFound, "Quiz not found")
		return nil, false
	}
	return quiz, true
}
