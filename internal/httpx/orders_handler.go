package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	kafkax "github.com/dmoralesb/panaderia-api/internal/kafka"
	"github.com/dmoralesb/panaderia-api/internal/orders"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// OrderService is the checkout surface; *orders.Service satisfies it.
type OrderService interface {
	Create(ctx context.Context, in orders.CreateOrderInput) (orders.Confirmation, error)
	GetByID(ctx context.Context, id int64) (orders.Order, error)
}

type OrdersHandler struct {
	Orders   OrderService
	Producer *kafkax.Producer // nil when events are disabled
	Service  string
	Log      *zap.Logger
	Dev      bool
}

func (h *OrdersHandler) Register(r *chi.Mux) {
	r.Post("/api/orders", h.create)
	r.Get("/api/orders/{id}", h.get)
}

func (h *OrdersHandler) create(w http.ResponseWriter, r *http.Request) {
	var in orders.CreateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	conf, err := h.Orders.Create(ctx, in)
	if orders.IsValidation(err) {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.Log.Error("create order", zap.Error(err))
		fail(w, http.StatusInternalServerError, internalMessage(err, h.Dev, "internal server error creating order"))
		return
	}

	h.publishCreated(r, in, conf)
	created(w, conf)
}

func (h *OrdersHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		fail(w, http.StatusNotFound, "order not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	o, err := h.Orders.GetByID(ctx, id)
	if errors.Is(err, orders.ErrNotFound) {
		fail(w, http.StatusNotFound, "order not found")
		return
	}
	if err != nil {
		h.Log.Error("get order", zap.Int64("id", id), zap.Error(err))
		fail(w, http.StatusInternalServerError, internalMessage(err, h.Dev, "internal server error fetching order"))
		return
	}
	ok(w, o)
}

// publishCreated emits the OrderCreated event when a producer is wired.
// Best effort: the order is already committed, the response never waits
// on the broker.
func (h *OrdersHandler) publishCreated(r *http.Request, in orders.CreateOrderInput, conf orders.Confirmation) {
	if h.Producer == nil {
		return
	}
	lines := make([]orders.OrderCreatedLine, 0, len(in.Products))
	for _, l := range in.Products {
		lines = append(lines, orders.OrderCreatedLine{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	ev := orders.Envelope{
		EventID:      uuid.NewString(),
		EventType:    orders.EventOrderCreated,
		EventVersion: 1,
		OccurredAt:   time.Now().UTC(),
		Producer:     h.Service,
		TraceID:      middleware.GetReqID(r.Context()),
		Payload: kafkax.MustMarshal(orders.OrderCreatedPayload{
			OrderID:      conf.OrderID,
			CustomerName: in.CustomerName,
			TotalAmount:  conf.TotalAmount,
			Lines:        lines,
		}),
	}
	h.Producer.Publish(orders.PartitionKey(conf.OrderID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(orders.EventOrderCreated)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}
