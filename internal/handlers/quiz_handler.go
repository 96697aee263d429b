package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hireloop/internal/middleware"
	"hireloop/internal/models"
	"hireloop/internal/repositories"
	"hireloop/internal/utils"
)

// QuizHandler manages quizzes and their questions.
type QuizHandler struct {
	Quizzes   *repositories.QuizRepository
	Positions *repositories.PositionRepository
}

func NewQuizHandler(quizzes *repositories.QuizRepository, positions *repositories.PositionRepository) *QuizHandler {
	return &QuizHandler{Quizzes: quizzes, Positions: positions}
}

type createQuizRequest struct {
	PositionID   uint   `json:"positionId"`
	Title        string `json:"title"`
	Difficulty   string `json:"difficulty"`
	TimeLimitMin int    `json:"timeLimitMinutes"`
}

func (h *QuizHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req createQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Title == "" || req.PositionID == 0 {
		utils.JSONError(w, http.StatusBadRequest, "Title and positionId are required")
		return
	}

	difficulty := utils.NormalizeDifficulty(req.Difficulty)
	if difficulty == "" {
		difficulty = models.DefaultDifficulty
	}
	if !models.ValidDifficulties[difficulty] {
		utils.JSONError(w, http.StatusBadRequest,
			"Difficulty must be one of: "+strings.Join(models.ValidDifficultiesList(), ", "))
		return
	}

	if _, ok := h.ownedPosition(w, r, req.PositionID); !ok {
		return
	}

	quiz := &models.Quiz{
		PositionID:   req.PositionID,
		Title:        req.Title,
		Difficulty:   difficulty,
		TimeLimitMin: req.TimeLimitMin,
	}
	if err := h.Quizzes.Create(quiz); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to create quiz")
		return
	}
	utils.JSON(w, http.StatusCreated, quiz)
}

func (h *QuizHandler) ListByPositionHandler(w http.ResponseWriter, r *http.Request) {
	positionID, ok := parseIDParam(r, "id")
	if !ok {
		utils.JSONError(w, http.StatusBadRequest, "Position ID is required")
		return
	}
	if _, ok := h.ownedPosition(w, r, positionID); !ok {
		return
	}

	quizzes, err := h.Quizzes.ListByPosition(positionID)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to fetch quizzes")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"total": len(quizzes), "items": quizzes})
}

func (h *QuizHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	quiz, ok := h.loadOwned(w, r)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, quiz)
}

type addQuestionRequest struct {
	Text    string   `json:"text"`
	Kind    string   `json:"kind"`
	Choices []string `json:"choices"`
}

func (h *QuizHandler) AddQuestionHandler(w http.ResponseWriter, r *http.Request) {
	quiz, ok := h.loadOwned(w, r)
	if !ok {
		return
	}

	var req addQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Text == "" {
		utils.JSONError(w, http.StatusBadRequest, "Question text is required")
		return
	}
	if req.Kind == "" {
		req.Kind = "open_ended"
	}
	if !models.ValidQuestionKinds[req.Kind] {
		utils.JSONError(w, http.StatusBadRequest, "Kind must be multiple_choice or open_ended")
		return
	}
	if req.Kind == "multiple_choice" && len(req.Choices) < 2 {
		utils.JSONError(w, http.StatusBadRequest, "Multiple choice questions need at least 2 choices")
		return
	}

	questions, err := h.Quizzes.AddQuestions(quiz.ID, []models.Question{{
		Text:    req.Text,
		Kind:    req.Kind,
		Choices: req.Choices,
	}})
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to add question")
		return
	}
	utils.JSON(w, http.StatusCreated, questions[0])
}

func (h *QuizHandler) DeleteQuestionHandler(w http.ResponseWriter, r *http.Request) {
	quiz, ok := h.loadOwned(w, r)
	if !ok {
		return
	}
	key := chi.URLParam(r, "key")
	if key == "" {
		utils.JSONError(w, http.StatusBadRequest, "Question key is required")
		return
	}
	if err := h.Quizzes.DeleteQuestion(quiz.ID, key); err != nil {
		utils.JSONError(w, http.StatusNotFound, "Question not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *QuizHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	quiz, ok := h.loadOwned(w, r)
	if !ok {
		return
	}
	if err := h.Quizzes.Delete(quiz.ID); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to delete quiz")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// loadOwned fetches the quiz in the URL and checks the owning position
// belongs to the authenticated recruiter.
func (h *QuizHandler) loadOwned(w http.ResponseWriter, r *http.Request) (*models.Quiz, bool) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		utils.JSONError(w, http.StatusBadRequest, "Quiz ID is required")
		return nil, false
	}
	quiz, err := h.Quizzes.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrQuizNotFound) {
			utils.JSONError(w, http.StatusNotFound, "Quiz not found")
		} else {
			utils.JSONError(w, http.StatusInternalServerError, "Failed to fetch quiz")
		}
		return nil, false
	}
	if _, ok := h.ownedPosition(w, r, quiz.PositionID); !ok {
		return nil, false
	}
	return quiz, true
}

func (h *QuizHandler) ownedPosition(w http.ResponseWriter, r *http.Request, positionID uint) (*models.Position, bool) {
	position, err := h.Positions.GetByID(positionID)
	if err != nil || position.RecruiterID != middleware.GetRecruiterID(r) {
		utils.JSONError(w, http.StatusNotFound, "Position not found")
		return nil, false
	}
	return position, true
}
