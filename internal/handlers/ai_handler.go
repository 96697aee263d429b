package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hireloop/internal/llm"
	"hireloop/internal/middleware"
	"hireloop/internal/models"
	"hireloop/internal/prompts"
	"hireloop/internal/repositories"
	"hireloop/internal/utils"
)

// AIHandler drafts quiz questions with the configured LLM provider.
type AIHandler struct {
	Provider  llm.Provider
	Prompts   prompts.PromptProvider
	Quizzes   *repositories.QuizRepository
	Positions *repositories.PositionRepository
	logger    *zap.Logger
}

func NewAIHandler(
	provider llm.Provider,
	promptProvider prompts.PromptProvider,
	quizzes *repositories.QuizRepository,
	positions *repositories.PositionRepository,
	logger *zap.Logger,
) *AIHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AIHandler{
		Provider:  provider,
		Prompts:   promptProvider,
		Quizzes:   quizzes,
		Positions: positions,
		logger:    logger,
	}
}

// generatedQuestion is the shape the prompt instructs the model to emit.
type generatedQuestion struct {
	Text    string   `json:"text"`
	Kind    string   `json:"kind"`
	Choices []string `json:"choices,omitempty"`
}

// GenerateHandler asks the provider for questions matching the quiz's
// position and appends them to the quiz.
func (h *AIHandler) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.GenerateQuestionsRequest](r)

	quizID, ok := parseIDParam(r, "id")
	if !ok {
		utils.JSONError(w, http.StatusBadRequest, "Quiz ID is required")
		return
	}
	quiz, err := h.Quizzes.GetByID(quizID)
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "Quiz not found")
		return
	}
	position, err := h.Positions.GetByID(quiz.PositionID)
	if err != nil || position.RecruiterID != middleware.GetRecruiterID(r) {
		utils.JSONError(w, http.StatusNotFound, "Quiz not found")
		return
	}

	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}

	prompt, err := h.Prompts.BuildPrompt("questions", req.Difficulty, map[string]string{
		"PositionTitle":       position.Title,
		"Seniority":           position.Seniority,
		"PositionDescription": position.DescriptionMarkdown,
		"Count":               strconv.Itoa(req.Count),
		"Kind":                req.Kind,
	})
	if err != nil {
		h.logger.Error("failed to build generation prompt",
			zap.String("request_id", requestID), zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "Failed to build prompt")
		return
	}

	result, err := h.Provider.GenerateContent(r.Context(), prompt, requestID)
	if err != nil {
		h.logger.Error("question generation failed",
			zap.String("request_id", requestID),
			zap.String("provider", h.Provider.GetProviderName()),
			zap.Error(err))
		utils.JSONError(w, http.StatusBadGateway, "Question generation failed")
		return
	}

	var drafts []generatedQuestion
	if err := json.Unmarshal([]byte(utils.StripFences(result.Text)), &drafts); err != nil {
		h.logger.Error("provider returned unparseable questions",
			zap.String("request_id", requestID), zap.Error(err))
		utils.JSONError(w, http.StatusBadGateway, "Provider returned an unexpected response")
		return
	}
	if len(drafts) == 0 {
		utils.JSONError(w, http.StatusBadGateway, "Provider returned no questions")
		return
	}

	questions := make([]models.Question, 0, len(drafts))
	for _, d := range drafts {
		if d.Text == "" {
			continue
		}
		kind := d.Kind
		if !models.ValidQuestionKinds[kind] {
			kind = req.Kind
		}
		questions = append(questions, models.Question{
			Text:    d.Text,
			Kind:    kind,
			Choices: d.Choices,
		})
	}
	if len(questions) == 0 {
		utils.JSONError(w, http.StatusBadGateway, "Provider returned no usable questions")
		return
	}

	saved, err := h.Quizzes.AddQuestions(quiz.ID, questions)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to save generated questions")
		return
	}

	h.logger.Info("questions generated",
		zap.String("request_id", requestID),
		zap.Uint("quiz_id", quiz.ID),
		zap.Int("count", len(saved)),
		zap.Int("processing_time_ms", result.ProcessingTime))

	utils.JSON(w, http.StatusCreated, models.GenerationResponse{
		Questions: saved,
		RequestID: requestID,
		Metadata: models.GenerationMetadata{
			ProcessingTime: result.ProcessingTime,
			Provider:       h.Provider.GetProviderName(),
			Model:          result.Model,
		},
	})
}
