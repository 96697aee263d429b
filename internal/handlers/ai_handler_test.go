package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"hireloop/internal/llm"
	"hireloop/internal/middleware"
	"hireloop/internal/models"
	"hireloop/internal/prompts"
	"hireloop/internal/repositories"
	"hireloop/internal/testhelpers"
	"hireloop/internal/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type stubProvider struct {
	response string
	err      error
}

func (p *stubProvider) GenerateContent(_ context.Context, _, _ string) (*llm.Result, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &llm.Result{Text: p.response, Model: "stub-1", ProcessingTime: 12}, nil
}

func (p *stubProvider) GetProviderName() string { return "stub" }

type aiFixture struct {
	router *chi.Mux
	db     *gorm.DB
	token  string
	quiz   *models.Quiz
}

func setupAIServer(t *testing.T, provider llm.Provider) *aiFixture {
	t.Helper()
	db := testhelpers.SetupTestDB(t)

	recruiter := &models.Recruiter{Name: "Rae", Email: "rae@example.com", PasswordHash: "hash"}
	if err := db.Create(recruiter).Error; err != nil {
		t.Fatalf("seed recruiter: %v", err)
	}
	position := &models.Position{
		RecruiterID: recruiter.ID, Title: "Backend Engineer", Seniority: "senior",
		DescriptionMarkdown: "Builds APIs in Go",
	}
	if err := db.Create(position).Error; err != nil {
		t.Fatalf("seed position: %v", err)
	}
	quiz := &models.Quiz{PositionID: position.ID, Title: "Go Basics", Difficulty: "senior"}
	if err := db.Create(quiz).Error; err != nil {
		t.Fatalf("seed quiz: %v", err)
	}

	pm, err := prompts.NewPromptManager()
	if err != nil {
		t.Fatalf("prompt manager: %v", err)
	}
	handler := NewAIHandler(provider, pm,
		&repositories.QuizRepository{DB: db},
		&repositories.PositionRepository{DB: db},
		zap.NewNop())

	router := chi.NewRouter()
	router.Route("/api/v1/quizzes", func(r chi.Router) {
		r.Use(middleware.RequireAuth(testJWTSecret))
		r.With(middleware.ValidateRequest[*models.GenerateQuestionsRequest]()).
			Post("/{id}/generate", handler.GenerateHandler)
	})

	signed, err := utils.GenerateToken(recruiter.ID, recruiter.Email, []byte(testJWTSecret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return &aiFixture{router: router, db: db, token: signed, quiz: quiz}
}

func (f *aiFixture) do(t *testing.T, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.token)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *aiFixture) generate(t *testing.T, quizID uint, body string) *models.GenerationResponse {
	t.Helper()
	rec := f.do(t, "/api/v1/quizzes/"+strconv.Itoa(int(quizID))+"/generate", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp models.GenerationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return &resp
}

func TestGenerateQuestions(t *testing.T) {
	t.Run("saves generated questions with keys", func(t *testing.T) {
		provider := &stubProvider{response: "```json\n[" +
			`{"text":"Explain goroutine scheduling","kind":"open_ended"},` +
			`{"text":"Which is a valid receiver?","kind":"multiple_choice","choices":["value","pointer"]}` +
			"]\n```"}
		f := setupAIServer(t, provider)

		resp := f.generate(t, f.quiz.ID, `{"count":2,"difficulty":"senior"}`)
		if len(resp.Questions) != 2 {
			t.Fatalf("expected 2 questions, got %d", len(resp.Questions))
		}
		if resp.Questions[0].Key != "q1" || resp.Questions[1].Key != "q2" {
			t.Fatalf("keys not assigned: %q %q", resp.Questions[0].Key, resp.Questions[1].Key)
		}
		if resp.Metadata.Provider != "stub" || resp.Metadata.Model != "stub-1" {
			t.Fatalf("unexpected metadata: %+v", resp.Metadata)
		}
		if resp.RequestID == "" {
			t.Fatalf("expected a request id to be assigned")
		}

		var count int64
		f.db.Model(&models.Question{}).Where("quiz_id = ?", f.quiz.ID).Count(&count)
		if count != 2 {
			t.Fatalf("questions not persisted: %d", count)
		}
	})

	t.Run("invalid difficulty rejected before the provider", func(t *testing.T) {
		f := setupAIServer(t, &stubProvider{response: "[]"})
		rec := f.do(t, "/api/v1/quizzes/"+strconv.Itoa(int(f.quiz.ID))+"/generate",
			`{"difficulty":"expert"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("unknown quiz", func(t *testing.T) {
		f := setupAIServer(t, &stubProvider{response: "[]"})
		rec := f.do(t, "/api/v1/quizzes/9999/generate", `{"count":1}`)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("unparseable provider output", func(t *testing.T) {
		f := setupAIServer(t, &stubProvider{response: "Sorry, I cannot help with that."})
		rec := f.do(t, "/api/v1/quizzes/"+strconv.Itoa(int(f.quiz.ID))+"/generate", `{"count":1}`)
		if rec.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", rec.Code)
		}
	})

	t.Run("empty question list", func(t *testing.T) {
		f := setupAIServer(t, &stubProvider{response: "[]"})
		rec := f.do(t, "/api/v1/quizzes/"+strconv.Itoa(int(f.quiz.ID))+"/generate", `{"count":1}`)
		if rec.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", rec.Code)
		}
	})
}
