package httpx

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type HealthHandler struct{ Start time.Time }

func (h *HealthHandler) Register(r *chi.Mux) {
	r.Get("/health", h.health)
}

func (h *HealthHandler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "OK",
		"uptime":    time.Since(h.Start).Seconds(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
