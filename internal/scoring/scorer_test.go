package scoring

import (
	"context"
	"strings"
	"testing"
	"time"

	"hireloop/internal/llm"
	"hireloop/internal/models"
	"hireloop/internal/prompts"
	"hireloop/internal/repositories"
	"hireloop/internal/testhelpers"

	"gorm.io/gorm"
)

type stubProvider struct {
	response string
	err      error
	prompts  []string
}

func (p *stubProvider) GenerateContent(_ context.Context, prompt, _ string) (*llm.Result, error) {
	p.prompts = append(p.prompts, prompt)
	if p.err != nil {
		return nil, p.err
	}
	return &llm.Result{Text: p.response, Model: "stub", ProcessingTime: 1}, nil
}

func (p *stubProvider) GetProviderName() string { return "stub" }

func seedScoringData(t *testing.T, db *gorm.DB, status models.InterviewStatus) *models.Interview {
	t.Helper()
	position := &models.Position{RecruiterID: 1, Title: "Backend Engineer"}
	if err := db.Create(position).Error; err != nil {
		t.Fatalf("seed position: %v", err)
	}
	quiz := &models.Quiz{PositionID: position.ID, Title: "Go Basics", Difficulty: "intermediate"}
	if err := db.Create(quiz).Error; err != nil {
		t.Fatalf("seed quiz: %v", err)
	}
	questions := []models.Question{
		{QuizID: quiz.ID, Key: "q1", Text: "What is a channel?"},
		{QuizID: quiz.ID, Key: "q2", Text: "Pick one", Kind: "multiple_choice", Choices: []string{"a", "b"}},
	}
	if err := db.Create(&questions).Error; err != nil {
		t.Fatalf("seed questions: %v", err)
	}

	now := time.Now().UTC()
	iv := &models.Interview{
		Token:       "tok-score",
		QuizID:      quiz.ID,
		CandidateID: 1,
		Status:      status,
		CompletedAt: &now,
		Answers:     models.AnswerMap{"q1": "a typed pipe"},
	}
	if err := db.Create(iv).Error; err != nil {
		t.Fatalf("seed interview: %v", err)
	}
	return iv
}

func newScorer(t *testing.T, db *gorm.DB, provider llm.Provider) *Scorer {
	t.Helper()
	pm, err := prompts.NewPromptManager()
	if err != nil {
		t.Fatalf("prompt manager: %v", err)
	}
	return NewScorer(
		&repositories.InterviewRepository{DB: db},
		&repositories.QuizRepository{DB: db},
		&repositories.PositionRepository{DB: db},
		provider,
		pm,
	)
}

func TestScoreInterview(t *testing.T) {
	t.Run("persists score and summary", func(t *testing.T) {
		db := testhelpers.SetupTestDB(t)
		iv := seedScoringData(t, db, models.InterviewCompleted)
		provider := &stubProvider{response: "```json\n{\"score\": 85.5, \"summary\": \"Strong fundamentals\"}\n```"}

		if err := newScorer(t, db, provider).ScoreInterview(context.Background(), iv.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var stored models.Interview
		db.First(&stored, iv.ID)
		if stored.Score == nil || *stored.Score != 85.5 {
			t.Fatalf("score not persisted: %v", stored.Score)
		}
		if stored.ScoreSummary != "Strong fundamentals" {
			t.Fatalf("summary not persisted: %q", stored.ScoreSummary)
		}

		// the prompt carries the transcript, answered and unanswered
		if len(provider.prompts) != 1 {
			t.Fatalf("expected one provider call, got %d", len(provider.prompts))
		}
		prompt := provider.prompts[0]
		for _, want := range []string{"Backend Engineer", "a typed pipe", "(no answer)", "a | b"} {
			if !strings.Contains(prompt, want) {
				t.Fatalf("prompt missing %q:\n%s", want, prompt)
			}
		}
	})

	t.Run("clamps out-of-range scores", func(t *testing.T) {
		db := testhelpers.SetupTestDB(t)
		iv := seedScoringData(t, db, models.InterviewCompleted)
		provider := &stubProvider{response: `{"score": 140, "summary": "over"}`}

		if err := newScorer(t, db, provider).ScoreInterview(context.Background(), iv.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var stored models.Interview
		db.First(&stored, iv.ID)
		if *stored.Score != 100 {
			t.Fatalf("expected clamp to 100, got %v", *stored.Score)
		}
	})

	t.Run("refuses non-completed interview", func(t *testing.T) {
		db := testhelpers.SetupTestDB(t)
		iv := seedScoringData(t, db, models.InterviewInProgress)
		provider := &stubProvider{response: `{"score": 50, "summary": "x"}`}

		if err := newScorer(t, db, provider).ScoreInterview(context.Background(), iv.ID); err == nil {
			t.Fatalf("expected error for in_progress interview")
		}
		if len(provider.prompts) != 0 {
			t.Fatalf("provider called for non-completed interview")
		}
	})

	t.Run("unparseable model output", func(t *testing.T) {
		db := testhelpers.SetupTestDB(t)
		iv := seedScoringData(t, db, models.InterviewCompleted)
		provider := &stubProvider{response: "I cannot score this."}

		if err := newScorer(t, db, provider).ScoreInterview(context.Background(), iv.ID); err == nil {
			t.Fatalf("expected parse error")
		}
	})
}
