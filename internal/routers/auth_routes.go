package routers

import (
	"hireloop/internal/handlers"

	"github.com/go-chi/chi/v5"
)

func AuthRoutes(r *chi.Mux, authHandler *handlers.AuthHandler) {
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", authHandler.RegisterHandler) // Recruiter signup
		r.Post("/login", authHandler.LoginHandler)       // Recruiter login
	})
}
