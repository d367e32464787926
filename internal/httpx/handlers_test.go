package httpx_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmoralesb/panaderia-api/internal/catalog"
	"github.com/dmoralesb/panaderia-api/internal/config"
	"github.com/dmoralesb/panaderia-api/internal/httpx"
	"github.com/dmoralesb/panaderia-api/internal/orders"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCatalog struct {
	products []catalog.Product
	err      error
}

func (s *stubCatalog) ListActive(context.Context) ([]catalog.Product, error) {
	return s.products, s.err
}

func (s *stubCatalog) GetActiveByID(_ context.Context, id int64) (catalog.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	if s.err != nil {
		return catalog.Product{}, s.err
	}
	return catalog.Product{}, catalog.ErrNotFound
}

type stubStore struct {
	created []orders.CreateOrderInput
	conf    orders.Confirmation
	order   orders.Order
	err     error
}

func (s *stubStore) CreateOrder(_ context.Context, in orders.CreateOrderInput) (orders.Confirmation, error) {
	s.created = append(s.created, in)
	return s.conf, s.err
}

func (s *stubStore) GetOrder(context.Context, int64) (orders.Order, error) {
	if s.err != nil {
		return orders.Order{}, s.err
	}
	return s.order, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Count   int             `json:"count"`
	Message string          `json:"message"`
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func baguette() catalog.Product {
	return catalog.Product{ID: 1, Name: "Baguette Tradicional", Price: d("1200.00"), Active: true, CreatedAt: time.Now(), UpdatedAt: time.Now()}
}

func newTestRouter(cat *stubCatalog, store *stubStore) *chi.Mux {
	cfg := config.Config{Environment: "production", CORSOrigins: []string{"http://localhost:3000"}}
	log := zap.NewNop()
	r := httpx.NewRouter(cfg, log)
	(&httpx.ProductsHandler{Catalog: cat, Log: log}).Register(r)
	(&httpx.OrdersHandler{Orders: orders.NewService(store), Log: log}).Register(r)
	(&httpx.HealthHandler{Start: time.Now()}).Register(r)
	return r
}

func do(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestListProducts(t *testing.T) {
	cat := &stubCatalog{products: []catalog.Product{
		baguette(),
		{ID: 2, Name: "Croissant", Price: d("1500.00"), Active: true},
	}}
	r := newTestRouter(cat, &stubStore{})

	rec, env := do(t, r, http.MethodGet, "/api/products", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, 2, env.Count)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Baguette Tradicional", got[0]["name"])
	assert.Equal(t, "1200.00", got[0]["price"], "prices travel as fixed-point strings")
}

func TestGetProduct(t *testing.T) {
	r := newTestRouter(&stubCatalog{products: []catalog.Product{baguette()}}, &stubStore{})

	rec, env := do(t, r, http.MethodGet, "/api/products/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	var p map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, "Baguette Tradicional", p["name"])
}

func TestGetProduct_SoftHiddenIsNotFound(t *testing.T) {
	// inactive products never leave the repo, so the stub simply omits them
	r := newTestRouter(&stubCatalog{}, &stubStore{})

	rec, env := do(t, r, http.MethodGet, "/api/products/9", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "product not found", env.Message)
}

func TestGetProduct_NonNumericID(t *testing.T) {
	r := newTestRouter(&stubCatalog{}, &stubStore{})

	rec, _ := do(t, r, http.MethodGet, "/api/products/abc", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateOrder_Created(t *testing.T) {
	store := &stubStore{conf: orders.Confirmation{OrderID: 7, TotalAmount: d("2400.00"), Status: orders.StatusPending}}
	r := newTestRouter(&stubCatalog{}, store)

	rec, env := do(t, r, http.MethodPost, "/api/orders",
		`{"customer_name":"Ana","products":[{"product_id":1,"quantity":2}]}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)

	var conf map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &conf))
	assert.Equal(t, float64(7), conf["order_id"])
	assert.Equal(t, "2400.00", conf["total_amount"])
	assert.Equal(t, "pending", conf["status"])
	require.Len(t, store.created, 1)
}

func TestCreateOrder_EmptyCartIs400(t *testing.T) {
	store := &stubStore{}
	r := newTestRouter(&stubCatalog{}, store)

	rec, env := do(t, r, http.MethodPost, "/api/orders",
		`{"customer_name":"Ana","products":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "products must contain at least one item", env.Message)
	assert.Empty(t, store.created)
}

func TestCreateOrder_MalformedBodyIs400(t *testing.T) {
	r := newTestRouter(&stubCatalog{}, &stubStore{})

	rec, env := do(t, r, http.MethodPost, "/api/orders", `{"customer_name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid request body", env.Message)
}

func TestCreateOrder_InactiveProductIs400(t *testing.T) {
	store := &stubStore{err: &orders.ValidationError{Msg: "product with id 9 not found or inactive"}}
	r := newTestRouter(&stubCatalog{}, store)

	rec, env := do(t, r, http.MethodPost, "/api/orders",
		`{"customer_name":"Ana","products":[{"product_id":9,"quantity":1}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "product with id 9 not found or inactive", env.Message)
}

func TestCreateOrder_StorageFailureIsGeneric500(t *testing.T) {
	store := &stubStore{err: assert.AnError}
	r := newTestRouter(&stubCatalog{}, store)

	rec, env := do(t, r, http.MethodPost, "/api/orders",
		`{"customer_name":"Ana","products":[{"product_id":1,"quantity":1}]}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, env.Success)
	assert.NotContains(t, env.Message, assert.AnError.Error(), "internal detail must not leak outside development")
}

func TestGetOrder_NotFound(t *testing.T) {
	store := &stubStore{err: orders.ErrNotFound}
	r := newTestRouter(&stubCatalog{}, store)

	rec, env := do(t, r, http.MethodGet, "/api/orders/404", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "order not found", env.Message)
}

func TestGetOrder_WithLines(t *testing.T) {
	store := &stubStore{order: orders.Order{
		ID:           7,
		CustomerName: "Ana",
		TotalAmount:  d("2400.00"),
		Status:       orders.StatusPending,
		Lines:        orderLine(),
	}}
	r := newTestRouter(&stubCatalog{}, store)

	rec, env := do(t, r, http.MethodGet, "/api/orders/7", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var o map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &o))
	lines := o["order_products"].([]any)
	require.Len(t, lines, 1)
	line := lines[0].(map[string]any)
	assert.Equal(t, "1200.00", line["unit_price"])
	assert.Equal(t, "Baguette Tradicional", line["product"].(map[string]any)["name"])
}

func orderLine() []orders.OrderLine {
	return []orders.OrderLine{{
		ID: 1, OrderID: 7, ProductID: 1, Quantity: 2,
		UnitPrice: d("1200.00"), Subtotal: d("2400.00"),
		Product: baguette(),
	}}
}

func TestUnmatchedRouteIsStructured404(t *testing.T) {
	r := newTestRouter(&stubCatalog{}, &stubStore{})

	rec, env := do(t, r, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "route not found")
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&stubCatalog{}, &stubStore{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "OK", body["status"])
	assert.Contains(t, body, "uptime")
	assert.Contains(t, body, "timestamp")
}

func TestPanicBecomesStructured500(t *testing.T) {
	r := newTestRouter(&stubCatalog{}, &stubStore{})
	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("kaboom") })

	rec, env := do(t, r, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "internal server error", env.Message)
}
