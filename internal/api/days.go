package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/akaver/beautycase/internal/metrics"
	"github.com/akaver/beautycase/internal/store"
)

// daysAPIHandler provides REST handlers for day-usage entries.
type daysAPIHandler struct {
	store *store.Store
}

func registerDayRoutes(r chi.Router, s *store.Store) {
	h := &daysAPIHandler{store: s}
	r.Get("/days", h.ListRange)
	r.Get("/days/{key}", h.Get)
	r.Put("/days/{key}", h.Set)
	r.Delete("/days/{key}", h.Clear)
	r.Post("/days/{key}/looks", h.AddLook)
	r.Delete("/days/{key}/looks/{id}", h.RemoveLook)
	r.Post("/days/{key}/cosmetics", h.AddCosmetic)
	r.Delete("/days/{key}/cosmetics/{id}", h.RemoveCosmetic)
	r.Get("/today", h.Today)
}

// dayKeyParam validates the {key} route parameter. Writes a 400 and returns
// "" when the key is not a valid day key.
func dayKeyParam(w http.ResponseWriter, r *http.Request) string {
	key := chi.URLParam(r, "key")
	if _, err := store.ParseDayKey(key); err != nil {
		writeError(w, http.StatusBadRequest, "invalid day key, want YYYY-MM-DD", "BAD_REQUEST")
		return ""
	}
	return key
}

// ListRange returns the entries whose day falls within [from, to] inclusive.
// GET /api/v1/days?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *daysAPIHandler) ListRange(w http.ResponseWriter, r *http.Request) {
	from, err := store.ParseDayKey(r.URL.Query().Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from, want YYYY-MM-DD", "BAD_REQUEST")
		return
	}
	to, err := store.ParseDayKey(r.URL.Query().Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to, want YYYY-MM-DD", "BAD_REQUEST")
		return
	}

	entries := h.store.UsageInRange(from, to)
	resp := DayListResponse{Days: make([]DayResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Days = append(resp.Days, toDayResponse(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns the usage entry for one day. Days with no usage are 404: empty
// entries never exist.
// GET /api/v1/days/{key}
func (h *daysAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := dayKeyParam(w, r)
	if key == "" {
		return
	}
	entry, ok := h.store.UsageForDay(key)
	if !ok {
		writeError(w, http.StatusNotFound, "no usage recorded for day", "NOT_FOUND")
		return
	}
	writeJSON(w, http.StatusOK, toDayResponse(entry))
}

// Set fully replaces both id lists for the day. Setting both lists empty
// removes the entry; the response is then 204.
// PUT /api/v1/days/{key}
func (h *daysAPIHandler) Set(w http.ResponseWriter, r *http.Request) {
	key := dayKeyParam(w, r)
	if key == "" {
		return
	}

	var req DayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	h.store.SetUsageForDay(r.Context(), key, req.LookIDs, req.CosmeticIDs)
	metrics.MutationsTotal.WithLabelValues("set_day").Inc()

	entry, ok := h.store.UsageForDay(key)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, toDayResponse(entry))
}

// Clear removes the day's entry entirely.
// DELETE /api/v1/days/{key}
func (h *daysAPIHandler) Clear(w http.ResponseWriter, r *http.Request) {
	key := dayKeyParam(w, r)
	if key == "" {
		return
	}
	h.store.ClearDay(r.Context(), key)
	metrics.MutationsTotal.WithLabelValues("clear_day").Inc()
	w.WriteHeader(http.StatusNoContent)
}

// AddLook records a look as used on the day (set semantics; duplicate adds
// change nothing).
// POST /api/v1/days/{key}/looks
func (h *daysAPIHandler) AddLook(w http.ResponseWriter, r *http.Request) {
	key := dayKeyParam(w, r)
	if key == "" {
		return
	}

	var req DayRefRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		writeError(w, http.StatusBadRequest, "id is required", "BAD_REQUEST")
		return
	}

	h.store.AddLookToDay(r.Context(), key, req.ID)
	metrics.MutationsTotal.WithLabelValues("add_look_to_day").Inc()

	entry, _ := h.store.UsageForDay(key)
	writeJSON(w, http.StatusOK, toDayResponse(entry))
}

// RemoveLook removes a look from the day, purging the entry when it ends up
// empty.
// DELETE /api/v1/days/{key}/looks/{id}
func (h *daysAPIHandler) RemoveLook(w http.ResponseWriter, r *http.Request) {
	key := dayKeyParam(w, r)
	if key == "" {
		return
	}
	h.store.RemoveLookFromDay(r.Context(), key, chi.URLParam(r, "id"))
	metrics.MutationsTotal.WithLabelValues("remove_look_from_day").Inc()
	w.WriteHeader(http.StatusNoContent)
}

// AddCosmetic records an item as used on the day (set semantics).
// POST /api/v1/days/{key}/cosmetics
func (h *daysAPIHandler) AddCosmetic(w http.ResponseWriter, r *http.Request) {
	key := dayKeyParam(w, r)
	if key == "" {
		return
	}

	var req DayRefRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		writeError(w, http.StatusBadRequest, "id is required", "BAD_REQUEST")
		return
	}

	h.store.AddCosmeticToDay(r.Context(), key, req.ID)
	metrics.MutationsTotal.WithLabelValues("add_cosmetic_to_day").Inc()

	entry, _ := h.store.UsageForDay(key)
	writeJSON(w, http.StatusOK, toDayResponse(entry))
}

// RemoveCosmetic removes an item from the day, purging the entry when it
// ends up empty.
// DELETE /api/v1/days/{key}/cosmetics/{id}
func (h *daysAPIHandler) RemoveCosmetic(w http.ResponseWriter, r *http.Request) {
	key := dayKeyParam(w, r)
	if key == "" {
		return
	}
	h.store.RemoveCosmeticFromDay(r.Context(), key, chi.URLParam(r, "id"))
	metrics.MutationsTotal.WithLabelValues("remove_cosmetic_from_day").Inc()
	w.WriteHeader(http.StatusNoContent)
}

// Today returns the looks and items used today, resolved to full records.
// GET /api/v1/today
func (h *daysAPIHandler) Today(w http.ResponseWriter, r *http.Request) {
	key := store.DayKey(time.Now())

	looks := h.store.TodaysLooks()
	items := h.store.TodaysCosmetics()

	resp := TodayResponse{
		DayKey:    key,
		Looks:     make([]LookResponse, 0, len(looks)),
		Cosmetics: make([]CosmeticResponse, 0, len(items)),
	}
	for _, l := range looks {
		resp.Looks = append(resp.Looks, toLookResponse(l))
	}
	for _, c := range items {
		resp.Cosmetics = append(resp.Cosmetics, toCosmeticResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}
