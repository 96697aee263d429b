package middleware

import (
	"context"
	"net/http"

	"hireloop/internal/utils"
)

const recruiterIDKey contextKey = "recruiter_id"

// RequireAuth guards recruiter routes with a bearer JWT and injects the
// recruiter id into the request context.
func RequireAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := utils.VerifyToken(r, secret)
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			recruiterID, err := utils.GetRecruiterIDFromClaims(claims)
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			ctx := context.WithValue(r.Context(), recruiterIDKey, recruiterID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetRecruiterID returns the authenticated recruiter id, or 0 when the
// request did not pass through RequireAuth.
func GetRecruiterID(r *http.Request) uint {
	if id, ok := r.Context().Value(recruiterIDKey).(uint); ok {
		return id
	}
	return 0
}
