package api

import (
	"net/http"

	"github.com/akaver/beautycase/internal/metrics"
	"github.com/akaver/beautycase/internal/store"
)

// resetHandler clears all three collections and deletes the persisted
// snapshot. Destructive and not undoable.
// POST /api/v1/admin/reset
func resetHandler(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.ResetAll(r.Context())
		metrics.MutationsTotal.WithLabelValues("reset_all").Inc()
		w.WriteHeader(http.StatusNoContent)
	}
}

// appStateHandler echoes the configured launch state. The client decides
// what to do with it; the service performs no check of its own.
// GET /api/v1/appstate
func appStateHandler(state, supportURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, AppStateResponse{State: state, SupportURL: supportURL})
	}
}
