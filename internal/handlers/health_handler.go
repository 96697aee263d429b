package handlers

import (
	"net/http"

	"gorm.io/gorm"

	"hireloop/internal/llm"
	"hireloop/internal/prompts"
	"hireloop/internal/utils"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	DB       *gorm.DB
	Provider llm.Provider
	Prompts  prompts.PromptProvider
}

func NewHealthHandler(db *gorm.DB, provider llm.Provider, promptProvider prompts.PromptProvider) *HealthHandler {
	return &HealthHandler{DB: db, Provider: provider, Prompts: promptProvider}
}

// HealthzHandler answers as long as the process is up.
func (h *HealthHandler) HealthzHandler(w http.ResponseWriter, _ *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ReadyzHandler checks the database connection, the configured provider
// and the loaded prompt templates.
func (h *HealthHandler) ReadyzHandler(w http.ResponseWriter, _ *http.Request) {
	checks := map[string]string{}
	healthy := true

	sqlDB, err := h.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		checks["database"] = "unreachable"
		healthy = false
	} else {
		checks["database"] = "ok"
	}

	if h.Provider == nil {
		checks["provider"] = "not configured"
		healthy = false
	} else {
		checks["provider"] = h.Provider.GetProviderName()
	}

	if h.Prompts == nil || len(h.Prompts.GetTemplates()) == 0 {
		checks["prompts"] = "no templates loaded"
		healthy = false
	} else {
		checks["prompts"] = "ok"
	}

	status := http.StatusOK
	overall := "ready"
	if !healthy {
		status = http.StatusServiceUnavailable
		overall = "not ready"
	}
	utils.JSON(w, status, map[string]any{"status": overall, "checks": checks})
}
