package settings

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes shop settings HTTP endpoints.
type Handler struct{ store *Store }

func NewHandler(store *Store) *Handler { return &Handler{store: store} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/settings", func(r chi.Router) {
		r.Get("/", h.get)    // GET /api/settings
		r.Put("/", h.update) // PUT /api/settings
	})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.store.Get())
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var s ShopSettings
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, h.store.Update(s))
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
