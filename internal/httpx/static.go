package httpx

import (
	"net/http"

	"github.com/dmoralesb/panaderia-api/web"
	"github.com/go-chi/chi/v5"
)

// RegisterStatic serves the embedded storefront. Only the known assets
// get routes so the structured 404 stays the catch-all.
func RegisterStatic(r *chi.Mux) {
	serve := func(name string) http.HandlerFunc {
		return func(w http.ResponseWriter, req *http.Request) {
			http.ServeFileFS(w, req, web.Assets, name)
		}
	}
	r.Get("/", serve("index.html"))
	r.Get("/app.js", serve("app.js"))
	r.Get("/styles.css", serve("styles.css"))
}
