package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/akaver/beautycase/internal/metrics"
	"github.com/akaver/beautycase/internal/store"
)

// looksAPIHandler provides REST handlers for the looks collection.
type looksAPIHandler struct {
	store *store.Store
}

func registerLookRoutes(r chi.Router, s *store.Store) {
	h := &looksAPIHandler{store: s}
	r.Get("/looks", h.List)
	r.Post("/looks", h.Create)
	r.Get("/looks/{id}", h.Get)
	r.Put("/looks/{id}", h.Update)
	r.Delete("/looks/{id}", h.Delete)
	r.Get("/looks/{id}/items", h.Items)
}

// List returns all looks, most recently added first.
// GET /api/v1/looks
func (h *looksAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	looks := h.store.Looks()
	resp := LookListResponse{Looks: make([]LookResponse, 0, len(looks))}
	for _, l := range looks {
		resp.Looks = append(resp.Looks, toLookResponse(l))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create adds a new look to the front of the collection. The cosmetic id
// list is stored de-duplicated, first occurrence kept.
// POST /api/v1/looks
func (h *looksAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req LookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	look := h.store.AddLook(r.Context(), req.Title, req.Note, req.CosmeticIDs)
	if look == nil {
		writeError(w, http.StatusBadRequest, "title is required", "BAD_REQUEST")
		return
	}

	metrics.MutationsTotal.WithLabelValues("add_look").Inc()
	writeJSON(w, http.StatusCreated, toLookResponse(*look))
}

// Get returns a single look by id.
// GET /api/v1/looks/{id}
func (h *looksAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	look, ok := h.store.Look(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
		return
	}
	writeJSON(w, http.StatusOK, toLookResponse(look))
}

// Update replaces a look's mutable fields; id and position are preserved.
// PUT /api/v1/looks/{id}
func (h *looksAPIHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req LookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	id := chi.URLParam(r, "id")
	if _, ok := h.store.Look(id); !ok {
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
		return
	}

	look := h.store.UpdateLook(r.Context(), store.Look{
		ID:          id,
		Title:       req.Title,
		Note:        req.Note,
		CosmeticIDs: req.CosmeticIDs,
	})
	if look == nil {
		writeError(w, http.StatusBadRequest, "title is required", "BAD_REQUEST")
		return
	}

	metrics.MutationsTotal.WithLabelValues("update_look").Inc()
	writeJSON(w, http.StatusOK, toLookResponse(*look))
}

// Delete removes a look and cascades into day references.
// DELETE /api/v1/looks/{id}
func (h *looksAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.store.DeleteLook(r.Context(), chi.URLParam(r, "id"))
	metrics.MutationsTotal.WithLabelValues("delete_look").Inc()
	w.WriteHeader(http.StatusNoContent)
}

// Items resolves the look's referenced items, skipping ids that no longer
// exist. An optional ?limit=N caps the result.
// GET /api/v1/looks/{id}/items
func (h *looksAPIHandler) Items(w http.ResponseWriter, r *http.Request) {
	look, ok := h.store.Look(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
		return
	}

	limit := -1
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer", "BAD_REQUEST")
			return
		}
		limit = n
	}

	items := h.store.CosmeticsForLook(look, limit)
	resp := CosmeticListResponse{Cosmetics: make([]CosmeticResponse, 0, len(items))}
	for _, c := range items {
		resp.Cosmetics = append(resp.Cosmetics, toCosmeticResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}
