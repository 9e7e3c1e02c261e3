package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	guard Guard
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(guard Guard) *HealthHandler {
	return &HealthHandler{guard: guard}
}

// Health reports whether the API is up and fully configured.
func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request) {
	checks := map[string]string{"api": "ok", "configuration": "ok"}
	status := map[string]interface{}{
		"status": "healthy",
		"checks": checks,
	}
	statusCode := http.StatusOK

	if err := h.guard.CheckRequired(); err != nil {
		slog.Warn("Health check failed", "error", err)
		status["status"] = "degraded"
		checks["configuration"] = "missing"
		statusCode = http.StatusServiceUnavailable
	}

	JSON(w, statusCode, status)
}

// RegisterHealth registers the health check route.
func (h *HealthHandler) RegisterHealth(r chi.Router) {
	r.Get("/health", h.Health)
}
