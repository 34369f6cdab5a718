// Package metrics exposes the prometheus counters/histograms that
// aspect-driven merges (via the MergeValidator aspect) and diff passes in
// lcfg-core report through, grounded on the
// teacher's engine/metrics.go CounterVec/HistogramVec shape.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// mergeTotal counts merge outcomes by result label. The MergeValidator
	// aspect reports one per-resource outcome per merge decision, labelled
	// with the ChangeCode's String() ("NONE", "ADDED", "REPLACED",
	// "ERROR"). It is the same CounterVec shape as the teacher's
	// enginRequestsTotal.
	mergeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lcfg_core",
			Subsystem: "merge",
			Name:      "total",
			Help:      "Total resource and component merges by result.",
		},
		[]string{"result"},
	)

	// conflictTotal counts merge conflicts (equal priority, differing
	// value) specifically, since that's the one outcome operators
	// typically want alerting on.
	conflictTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lcfg_core",
			Subsystem: "merge",
			Name:      "conflict_total",
			Help:      "Total merge conflicts at equal priority.",
		},
		[]string{"component"},
	)

	// diffDuration times diff passes by level, the same HistogramVec
	// shape as the teacher's enginRequestDuration.
	diffDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lcfg_core",
			Subsystem: "diff",
			Name:      "duration_seconds",
			Help:      "Diff pass latency by level.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"level"},
	)
)

func init() {
	prometheus.MustRegister(mergeTotal, conflictTotal, diffDuration)
}

// ObserveMerge records one merge outcome in mergeTotal, and conflictTotal
// when the result is a conflict for componentName.
func ObserveMerge(result string, componentName string, isConflict bool) {
	mergeTotal.WithLabelValues(result).Inc()
	if isConflict {
		conflictTotal.WithLabelValues(componentName).Inc()
	}
}

// ObserveDiffDuration records seconds spent in a diff pass at the given
// level ("resource", "component", or "profile").
func ObserveDiffDuration(level string, seconds float64) {
	diffDuration.WithLabelValues(level).Observe(seconds)
}
