package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	router := chi.NewRouter()
	router.Use(Middleware())
	router.Get("/api/v1/interview/{token}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	pattern := "/api/v1/interview/{token}"
	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, pattern, "200"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/interview/tok-123", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	after := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, pattern, "200"))
	if after != before+1 {
		t.Fatalf("expected pattern-labelled counter to increment, got %v -> %v", before, after)
	}

	// the raw tokenized path must never become a label value
	raw := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/api/v1/interview/tok-123", "200"))
	if raw != 0 {
		t.Fatalf("raw path leaked into metric labels: %v", raw)
	}
}
