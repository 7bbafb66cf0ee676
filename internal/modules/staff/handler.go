package staff

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes staff HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/salespersons", func(r chi.Router) {
		r.Get("/", h.list)          // GET    /api/salespersons
		r.Post("/", h.save)         // POST   /api/salespersons
		r.Delete("/{id}", h.delete) // DELETE /api/salespersons/{id}
		r.Post("/login", h.login)   // POST   /api/salespersons/login
	})
}

// response mirrors Salesperson without the PIN digest; accounts never
// leave the process with credential material attached.
type response struct {
	ID          string          `json:"id"`
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	Role        string          `json:"role"`
	Active      bool            `json:"isActive"`
	Permissions map[string]bool `json:"permissions"`
}

func toResponse(s Salesperson) response {
	return response{
		ID:          s.ID,
		FirstName:   s.FirstName,
		LastName:    s.LastName,
		Role:        s.Role,
		Active:      s.Active,
		Permissions: s.Permissions,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	all := h.service.ListStaff(r.Context())
	out := make([]response, 0, len(all))
	for _, s := range all {
		out = append(out, toResponse(s))
	}
	respond(w, http.StatusOK, out)
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	saved, err := h.service.SaveStaff(r.Context(), req)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, toResponse(saved))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	h.service.DeleteStaff(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if req.ID == "" || req.PinCode == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "id and pinCode are required"})
		return
	}
	token, err := h.service.Login(r.Context(), req.ID, req.PinCode)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, ErrBadCredentials) {
			code = http.StatusUnauthorized
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"token": token})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
