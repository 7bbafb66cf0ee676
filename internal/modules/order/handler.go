package order

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pizzeria-pos/backend/internal/modules/catalog"
)

// Handler exposes order HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/", h.list)    // GET  /api/orders
		r.Post("/", h.create) // POST /api/orders
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.ListOrders(r.Context()))
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var draft Order
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	o, err := h.service.CreateOrder(r.Context(), draft)
	if err != nil {
		var outOfStock *catalog.InsufficientStockError
		code := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrEmptyCart):
			code = http.StatusBadRequest
		case errors.As(err, &outOfStock):
			code = http.StatusUnprocessableEntity
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, o)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
