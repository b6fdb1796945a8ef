package api

import (
	"net/http"
	"time"

	"github.com/akaver/beautycase/internal/stats"
	"github.com/akaver/beautycase/internal/store"
)

// statsHandler returns the statistics report for the requested range.
// GET /api/v1/stats?range=week|month (default week)
func statsHandler(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("range")
		if raw == "" {
			raw = string(stats.RangeWeek)
		}
		rng, err := stats.ParseRange(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
			return
		}

		report := stats.Build(s.SnapshotView(), rng, time.Now())

		resp := StatsResponse{
			Range:           string(report.Range),
			Total:           report.TotalCount,
			PeriodStart:     report.PeriodStart,
			PeriodEnd:       report.PeriodEnd,
			Legend:          make([]LegendRowResponse, 0, len(report.Legend)),
			FavoriteInsight: report.Favorite,
			GapInsight:      report.Gap,
		}
		for _, row := range report.Legend {
			resp.Legend = append(resp.Legend, LegendRowResponse{
				Category: string(row.Category),
				Percent:  row.Percent,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
