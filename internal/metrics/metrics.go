package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "beautycase_mutations_total",
		Help: "Store mutations by operation.",
	}, []string{"op"})

	SnapshotSaveErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "beautycase_snapshot_save_errors_total",
		Help: "Snapshot save failures (in-memory state kept, persisted state stale).",
	})

	SnapshotLoadResetsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "beautycase_snapshot_load_resets_total",
		Help: "Snapshot decode failures that reset the collections to empty.",
	})

	CosmeticsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "beautycase_cosmetics_total",
		Help: "Cataloged cosmetic items.",
	})

	LooksTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "beautycase_looks_total",
		Help: "Saved looks.",
	})

	UsageDaysTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "beautycase_usage_days_total",
		Help: "Calendar days with recorded usage.",
	})
)

// SetEntityCounts refreshes the collection gauges. Wired to the store's
// change hook.
func SetEntityCounts(cosmetics, looks, usageDays int) {
	CosmeticsTotal.Set(float64(cosmetics))
	LooksTotal.Set(float64(looks))
	UsageDaysTotal.Set(float64(usageDays))
}
