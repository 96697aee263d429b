package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"hireloop/internal/llm"
	"hireloop/internal/models"
	"hireloop/internal/prompts"
	"hireloop/internal/repositories"
	"hireloop/internal/utils"
)

// Scorer evaluates a completed interview's answers with the LLM and writes
// the score back. The interview lifecycle never calls this directly; it is
// driven by completion events.
type Scorer struct {
	interviews *repositories.InterviewRepository
	quizzes    *repositories.QuizRepository
	positions  *repositories.PositionRepository
	provider   llm.Provider
	prompts    prompts.PromptProvider
}

func NewScorer(
	interviews *repositories.InterviewRepository,
	quizzes *repositories.QuizRepository,
	positions *repositories.PositionRepository,
	provider llm.Provider,
	promptManager prompts.PromptProvider,
) *Scorer {
	return &Scorer{
		interviews: interviews,
		quizzes:    quizzes,
		positions:  positions,
		provider:   provider,
		prompts:    promptManager,
	}
}

type evaluation struct {
	Score   float64 `json:"score"`
	Summary string  `json:"summary"`
}

// ScoreInterview loads the interview and its quiz, asks the model for an
// overall evaluation and persists it.
func (s *Scorer) ScoreInterview(ctx context.Context, interviewID uint) error {
	iv, err := s.interviews.GetByID(interviewID)
	if err != nil {
		return fmt.Errorf("load interview: %w", err)
	}
	if iv.Status != models.InterviewCompleted {
		return fmt.Errorf("interview %d is %s, not completed", interviewID, iv.Status)
	}

	quiz, err := s.quizzes.GetByID(iv.QuizID)
	if err != nil {
		return fmt.Errorf("load quiz: %w", err)
	}

	positionTitle := quiz.Title
	if position, err := s.positions.GetByID(quiz.PositionID); err == nil {
		positionTitle = position.Title
	}

	prompt, err := s.prompts.BuildPrompt("evaluate", "default", map[string]string{
		"PositionTitle": positionTitle,
		"Transcript":    buildTranscript(quiz.Questions, iv.Answers),
	})
	if err != nil {
		return fmt.Errorf("build prompt: %w", err)
	}

	requestID := fmt.Sprintf("score-%d", interviewID)
	result, err := s.provider.GenerateContent(ctx, prompt, requestID)
	if err != nil {
		return fmt.Errorf("generate evaluation: %w", err)
	}

	var eval evaluation
	if err := json.Unmarshal([]byte(utils.StripFences(result.Text)), &eval); err != nil {
		return fmt.Errorf("parse evaluation: %w", err)
	}
	if eval.Score < 0 {
		eval.Score = 0
	}
	if eval.Score > 100 {
		eval.Score = 100
	}

	return s.interviews.SetScore(iv.ID, eval.Score, eval.Summary)
}

// buildTranscript renders questions with the candidate's answers, keeping
// unanswered questions visible to the model.
func buildTranscript(questions []models.Question, answers models.AnswerMap) string {
	var b strings.Builder
	for i, q := range questions {
		b.WriteString(strconv.Itoa(i+1) + ". [" + q.Key + "] " + q.Text + "\n")
		if len(q.Choices) > 0 {
			b.WriteString("   Choices: " + strings.Join(q.Choices, " | ") + "\n")
		}
		answer, ok := answers[q.Key]
		if !ok {
			answer = "(no answer)"
		}
		b.WriteString("   Answer: " + answer + "\n")
	}
	return b.String()
}
