package handlers

import (
	"encoding/json"
	"net/http"

	"hireloop/internal/models"
	"hireloop/internal/repositories"
	"hireloop/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthHandler manages recruiter authentication endpoints.
type AuthHandler struct {
	Repo      *repositories.RecruiterRepository
	JWTSecret string
}

func NewAuthHandler(repo *repositories.RecruiterRepository, jwtSecret string) *AuthHandler {
	return &AuthHandler{Repo: repo, JWTSecret: jwtSecret}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.JSONError(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}

	if existing, _ := h.Repo.GetByEmail(req.Email); existing != nil {
		utils.JSONError(w, http.StatusConflict, "Email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}
	recruiter := &models.Recruiter{
		Name:         req.Name,
		Email:        req.Email,
		Company:      req.Company,
		PasswordHash: string(hash),
	}
	if err := h.Repo.Create(recruiter); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to create account")
		return
	}
	utils.JSON(w, http.StatusCreated, map[string]any{
		"id":    recruiter.ID,
		"name":  recruiter.Name,
		"email": recruiter.Email,
	})
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	recruiter, err := h.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.JSONError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(recruiter.PasswordHash), []byte(req.Password)) != nil {
		utils.JSONError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	signed, err := utils.GenerateToken(recruiter.ID, recruiter.Email, []byte(h.JWTSecret))
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to sign token")
		return
	}
	utils.JSON(w, http.StatusOK, authResponse{Token: signed})
}
