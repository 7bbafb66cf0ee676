package ingredient

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes ingredient HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/ingredients", func(r chi.Router) {
		r.Get("/", h.list)          // GET    /api/ingredients
		r.Post("/", h.save)         // POST   /api/ingredients
		r.Delete("/{id}", h.delete) // DELETE /api/ingredients/{id}
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.ListIngredients(r.Context()))
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	var ing Ingredient
	if err := json.NewDecoder(r.Body).Decode(&ing); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	saved, err := h.service.SaveIngredient(r.Context(), ing)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, saved)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	h.service.DeleteIngredient(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
