package httpx

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dmoralesb/panaderia-api/internal/catalog"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CatalogService is the read-only catalog surface; *catalog.Repo satisfies it.
type CatalogService interface {
	ListActive(ctx context.Context) ([]catalog.Product, error)
	GetActiveByID(ctx context.Context, id int64) (catalog.Product, error)
}

type ProductsHandler struct {
	Catalog CatalogService
	Log     *zap.Logger
	Dev     bool
}

func (h *ProductsHandler) Register(r *chi.Mux) {
	r.Get("/api/products", h.list)
	r.Get("/api/products/{id}", h.get)
}

func (h *ProductsHandler) list(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	ps, err := h.Catalog.ListActive(ctx)
	if err != nil {
		h.Log.Error("list products", zap.Error(err))
		fail(w, http.StatusInternalServerError, internalMessage(err, h.Dev, "error fetching products"))
		return
	}
	okList(w, ps, len(ps))
}

func (h *ProductsHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		fail(w, http.StatusNotFound, "product not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	p, err := h.Catalog.GetActiveByID(ctx, id)
	if errors.Is(err, catalog.ErrNotFound) {
		fail(w, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		h.Log.Error("get product", zap.Int64("id", id), zap.Error(err))
		fail(w, http.StatusInternalServerError, internalMessage(err, h.Dev, "error fetching product"))
		return
	}
	ok(w, p)
}

// internalMessage hides storage detail from clients outside development.
func internalMessage(err error, dev bool, generic string) string {
	if dev {
		return err.Error()
	}
	return generic
}
