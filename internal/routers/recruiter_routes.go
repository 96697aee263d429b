package routers

import (
	"net/http"

	"hireloop/internal/handlers"
	"hireloop/internal/middleware"
	"hireloop/internal/models"

	"github.com/go-chi/chi/v5"
)

// RecruiterRoutes mounts everything behind recruiter JWT auth: positions,
// quizzes, candidates, interview invitations and AI generation.
func RecruiterRoutes(
	router *chi.Mux,
	jwtSecret string,
	rateLimit func(http.Handler) http.Handler,
	positionHandler *handlers.PositionHandler,
	quizHandler *handlers.QuizHandler,
	candidateHandler *handlers.CandidateHandler,
	inviteHandler *handlers.InviteHandler,
	aiHandler *handlers.AIHandler,
) {
	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RequireAuth(jwtSecret))

		r.Route("/positions", func(r chi.Router) {
			r.Post("/", positionHandler.CreateHandler)
			r.Get("/", positionHandler.ListHandler)
			r.Get("/{id}", positionHandler.GetHandler)
			r.Put("/{id}", positionHandler.UpdateHandler)
			r.Delete("/{id}", positionHandler.DeleteHandler)
			r.Get("/{id}/quizzes", quizHandler.ListByPositionHandler)
		})

		r.Route("/quizzes", func(r chi.Router) {
			r.Post("/", quizHandler.CreateHandler)
			r.Get("/{id}", quizHandler.GetHandler)
			r.Delete("/{id}", quizHandler.DeleteHandler)
			r.Post("/{id}/questions", quizHandler.AddQuestionHandler)
			r.Delete("/{id}/questions/{key}", quizHandler.DeleteQuestionHandler)
			r.Get("/{id}/interviews", inviteHandler.ListByQuizHandler)
			r.With(rateLimit, middleware.ValidateRequest[*models.GenerateQuestionsRequest]()).
				Post("/{id}/generate", aiHandler.GenerateHandler)
		})

		r.Route("/candidates", func(r chi.Router) {
			r.Post("/", candidateHandler.CreateHandler)
			r.Get("/", candidateHandler.ListHandler)
			r.Get("/{id}", candidateHandler.GetHandler)
			r.Put("/{id}", candidateHandler.UpdateHandler)
			r.Delete("/{id}", candidateHandler.DeleteHandler)
			r.Get("/{id}/interviews", inviteHandler.ListByCandidateHandler)
		})

		r.Route("/interviews", func(r chi.Router) {
			r.Post("/", inviteHandler.CreateHandler)
			r.Get("/{id}", inviteHandler.GetHandler)
			r.Post("/{id}/cancel", inviteHandler.CancelHandler)
			r.Delete("/{id}", inviteHandler.DeleteHandler)
		})
	})
}
