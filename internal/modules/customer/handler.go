package customer

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// Handler exposes customer and loyalty HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/customers", func(r chi.Router) {
		r.Get("/", h.list)                        // GET    /api/customers
		r.Get("/search", h.searchByPhone)         // GET    /api/customers/search?phone=
		r.Get("/loyalty-config", h.loyaltyConfig) // GET    /api/customers/loyalty-config
		r.Get("/{id}", h.get)                     // GET    /api/customers/{id}
		r.Post("/", h.save)                       // POST   /api/customers
		r.Delete("/{id}", h.delete)               // DELETE /api/customers/{id}
		r.Post("/{id}/redeem", h.redeem)          // POST   /api/customers/{id}/redeem
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.ListCustomers(r.Context()))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	c, ok := h.service.FindCustomer(r.Context(), chi.URLParam(r, "id"))
	if !ok {
		respond(w, http.StatusNotFound, map[string]string{"error": ErrNotFound.Error()})
		return
	}
	respond(w, http.StatusOK, c)
}

func (h *Handler) searchByPhone(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	if phone == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "phone query parameter is required"})
		return
	}
	c, ok := h.service.FindByPhone(r.Context(), phone)
	if !ok {
		respond(w, http.StatusNotFound, map[string]string{"error": ErrNotFound.Error()})
		return
	}
	respond(w, http.StatusOK, c)
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	var c Customer
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	saved, err := h.service.SaveCustomer(r.Context(), c)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, saved)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	h.service.DeleteCustomer(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// loyaltyConfig publishes the programme constants so the till can
// display them without hardcoding.
func (h *Handler) loyaltyConfig(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]interface{}{
		"pointsPerEuro":         PointsPerEuro,
		"pointsPerRedemption":   PointsPerRedemption,
		"discountPerRedemption": DiscountPerRedemption,
	})
}

type redeemRequest struct {
	Points int `json:"points"`
}

func (h *Handler) redeem(w http.ResponseWriter, r *http.Request) {
	var req redeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	discount, err := h.service.RedeemPoints(r.Context(), chi.URLParam(r, "id"), req.Points)
	if err != nil {
		var insufficient *InsufficientPointsError
		code := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrInvalidRedemption):
			code = http.StatusBadRequest
		case errors.As(err, &insufficient):
			code = http.StatusUnprocessableEntity
		case errors.Is(err, ErrNotFound):
			code = http.StatusNotFound
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]decimal.Decimal{"discount": discount})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
