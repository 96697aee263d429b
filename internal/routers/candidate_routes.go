package routers

import (
	"hireloop/internal/handlers"

	"github.com/go-chi/chi/v5"
)

// CandidateRoutes mounts the token-addressed surface. No auth middleware:
// the unguessable token in the path is the credential.
func CandidateRoutes(router *chi.Mux, interviewHandler *handlers.CandidateInterviewHandler) {
	router.Route("/api/v1/interview/{token}", func(r chi.Router) {
		r.Get("/", interviewHandler.GetHandler)
		r.Post("/action", interviewHandler.ActionHandler)
	})
}
