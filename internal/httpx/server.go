package httpx

import (
	"net/http"
	"time"

	"github.com/dmoralesb/panaderia-api/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20 // requests are tiny carts; 1 MiB is generous

func NewRouter(cfg config.Config, log *zap.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(recoverer(log, cfg.IsDevelopment()))
	r.Use(middleware.Timeout(15 * time.Second))
	r.Use(middleware.RequestSize(maxBodyBytes))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// structured 404 instead of the default text page
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		fail(w, http.StatusNotFound, "route not found: "+req.Method+" "+req.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		fail(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r
}
