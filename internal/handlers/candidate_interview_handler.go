package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"hireloop/internal/interview"
	"hireloop/internal/models"
	"hireloop/internal/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CandidateInterviewHandler is the token-addressed candidate surface. The
// token in the URL is the only credential; there is no account behind it.
type CandidateInterviewHandler struct {
	Lifecycle *interview.Service
	logger    *zap.Logger
}

func NewCandidateInterviewHandler(lifecycle *interview.Service, logger *zap.Logger) *CandidateInterviewHandler {
	return &CandidateInterviewHandler{Lifecycle: lifecycle, logger: logger}
}

// GetHandler resolves a token into the interview, quiz and candidate.
func (h *CandidateInterviewHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	ctx, err := h.Lifecycle.Resolve(token)
	if err != nil {
		h.writeLifecycleError(w, r, err)
		return
	}

	utils.JSON(w, http.StatusOK, models.InterviewContextResponse{
		Interview: ctx.Interview,
		Quiz:      ctx.Quiz,
		Candidate: ctx.Candidate,
	})
}

// ActionHandler applies one lifecycle action to the interview behind the
// token.
func (h *CandidateInterviewHandler) ActionHandler(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var req models.InterviewActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	_, msg, err := h.Lifecycle.Apply(r.Context(), token, interview.Action(req.Action), interview.ActionInput{
		QuestionID: req.QuestionID,
		Answer:     req.Answer,
	})
	if err != nil {
		h.writeLifecycleError(w, r, err)
		return
	}

	utils.JSON(w, http.StatusOK, models.ActionResponse{Success: true, Message: msg})
}

// writeLifecycleError maps the lifecycle taxonomy onto HTTP statuses:
// NotFound -> 404, bad input and bad transitions -> 400, store failures
// -> 500 with the detail kept server-side.
func (h *CandidateInterviewHandler) writeLifecycleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, interview.ErrNotFound):
		utils.JSONError(w, http.StatusNotFound, "Interview not found")
	case errors.Is(err, interview.ErrInvalidInput):
		utils.JSONError(w, http.StatusBadRequest, "Question ID and answer are required")
	case errors.Is(err, interview.ErrUnknownAction):
		utils.JSONError(w, http.StatusBadRequest, "Invalid action")
	case errors.Is(err, interview.ErrInvalidTransition):
		utils.JSONError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("interview action failed",
			zap.String("path", r.URL.Path), zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "Something went wrong, try again")
	}
}
