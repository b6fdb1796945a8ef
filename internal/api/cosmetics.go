package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akaver/beautycase/internal/metrics"
	"github.com/akaver/beautycase/internal/store"
)

// cosmeticsAPIHandler provides REST handlers for the cosmetics collection.
type cosmeticsAPIHandler struct {
	store *store.Store
}

func registerCosmeticRoutes(r chi.Router, s *store.Store) {
	h := &cosmeticsAPIHandler{store: s}
	r.Get("/cosmetics", h.List)
	r.Post("/cosmetics", h.Create)
	r.Get("/cosmetics/{id}", h.Get)
	r.Put("/cosmetics/{id}", h.Update)
	r.Delete("/cosmetics/{id}", h.Delete)
}

// parseCosmeticFields validates the enum fields of a request. The store
// treats bad values as silent no-ops; the HTTP layer reports them.
func parseCosmeticFields(req CosmeticRequest) (store.Category, *store.ItemType, store.Status, string) {
	category := store.Category(req.Category)
	if !category.Valid() {
		return "", nil, "", "unknown category"
	}
	var typ *store.ItemType
	if req.Type != "" {
		t := store.ItemType(req.Type)
		if !t.Valid() {
			return "", nil, "", "unknown type"
		}
		typ = &t
	}
	status := store.Status(req.Status)
	if !status.Valid() {
		return "", nil, "", "unknown status"
	}
	return category, typ, status, ""
}

// List returns all items, most recently added first. An optional ?status=
// filter accepts the raw status values.
// GET /api/v1/cosmetics
func (h *cosmeticsAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	var items []store.CosmeticItem
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := store.Status(raw)
		if !status.Valid() {
			writeError(w, http.StatusBadRequest, "unknown status", "BAD_REQUEST")
			return
		}
		items = h.store.CosmeticsByStatus(status)
	} else {
		items = h.store.Cosmetics()
	}

	resp := CosmeticListResponse{Cosmetics: make([]CosmeticResponse, 0, len(items))}
	for _, c := range items {
		resp.Cosmetics = append(resp.Cosmetics, toCosmeticResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create adds a new item to the front of the collection.
// POST /api/v1/cosmetics
func (h *cosmeticsAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CosmeticRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	category, typ, status, msg := parseCosmeticFields(req)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg, "BAD_REQUEST")
		return
	}

	item := h.store.AddCosmetic(r.Context(), req.Name, category, typ, status, req.Photo)
	if item == nil {
		writeError(w, http.StatusBadRequest, "name is required", "BAD_REQUEST")
		return
	}

	metrics.MutationsTotal.WithLabelValues("add_cosmetic").Inc()
	writeJSON(w, http.StatusCreated, toCosmeticResponse(*item))
}

// Get returns a single item by id.
// GET /api/v1/cosmetics/{id}
func (h *cosmeticsAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, ok := h.store.Cosmetic(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
		return
	}
	writeJSON(w, http.StatusOK, toCosmeticResponse(item))
}

// Update replaces an item's mutable fields; id and collection position are
// preserved.
// PUT /api/v1/cosmetics/{id}
func (h *cosmeticsAPIHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req CosmeticRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	category, typ, status, msg := parseCosmeticFields(req)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg, "BAD_REQUEST")
		return
	}

	id := chi.URLParam(r, "id")
	if _, ok := h.store.Cosmetic(id); !ok {
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
		return
	}

	item := h.store.UpdateCosmetic(r.Context(), store.CosmeticItem{
		ID:       id,
		Name:     req.Name,
		Category: category,
		Type:     typ,
		Status:   status,
		Photo:    req.Photo,
	})
	if item == nil {
		writeError(w, http.StatusBadRequest, "name is required", "BAD_REQUEST")
		return
	}

	metrics.MutationsTotal.WithLabelValues("update_cosmetic").Inc()
	writeJSON(w, http.StatusOK, toCosmeticResponse(*item))
}

// Delete removes an item and cascades into look and day references. Unknown
// ids delete nothing and still return 204, matching the store's semantics.
// DELETE /api/v1/cosmetics/{id}
func (h *cosmeticsAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.store.DeleteCosmetic(r.Context(), chi.URLParam(r, "id"))
	metrics.MutationsTotal.WithLabelValues("delete_cosmetic").Inc()
	w.WriteHeader(http.StatusNoContent)
}
