package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/akaver/beautycase/internal/auth"
	"github.com/akaver/beautycase/internal/build"
	"github.com/akaver/beautycase/internal/store"
)

// Deps holds all dependencies required to build the router.
type Deps struct {
	Bearer     *auth.BearerMiddleware
	Store      *store.Store
	AppState   string
	SupportURL string
}

// NewRouter assembles the full HTTP handler: unauthenticated health and
// metrics endpoints plus the bearer-gated JSON API at /api/v1.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"version": build.Version,
		})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Mount("/api/v1", NewAPIRouter(deps))

	return r
}

// NewAPIRouter creates the chi sub-router for /api/v1. All routes require
// bearer authentication and return application/json.
func NewAPIRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(jsonContentType)
	r.Use(deps.Bearer.Authenticate)

	registerCosmeticRoutes(r, deps.Store)
	registerLookRoutes(r, deps.Store)
	registerDayRoutes(r, deps.Store)

	r.Get("/stats", statsHandler(deps.Store))

	r.Get("/appstate", appStateHandler(deps.AppState, deps.SupportURL))

	r.Post("/admin/reset", resetHandler(deps.Store))

	return r
}

// jsonContentType is a middleware that sets Content-Type: application/json on
// all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
