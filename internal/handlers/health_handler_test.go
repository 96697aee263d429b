package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hireloop/internal/prompts"
	"hireloop/internal/testhelpers"
)

func TestHealthzHandler(t *testing.T) {
	handler := NewHealthHandler(testhelpers.SetupTestDB(t), &stubProvider{}, nil)

	rec := httptest.NewRecorder()
	handler.HealthzHandler(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyzHandler(t *testing.T) {
	pm, err := prompts.NewPromptManager()
	if err != nil {
		t.Fatalf("prompt manager: %v", err)
	}

	t.Run("ready", func(t *testing.T) {
		handler := NewHealthHandler(testhelpers.SetupTestDB(t), &stubProvider{}, pm)

		rec := httptest.NewRecorder()
		handler.ReadyzHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var resp struct {
			Status string            `json:"status"`
			Checks map[string]string `json:"checks"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Status != "ready" || resp.Checks["database"] != "ok" {
			t.Fatalf("unexpected readiness report: %+v", resp)
		}
	})

	t.Run("missing provider", func(t *testing.T) {
		handler := NewHealthHandler(testhelpers.SetupTestDB(t), nil, pm)

		rec := httptest.NewRecorder()
		handler.ReadyzHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
	})
}
