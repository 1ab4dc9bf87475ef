// Package metrics exposes prometheus counters for the credit plan engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PlanPreviews counts plan previews by interest kind and outcome.
	PlanPreviews = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plan_previews_total",
			Help: "Plan previews computed, by interest kind and status.",
		},
		[]string{"interest_kind", "status"},
	)

	// PlanSubmissions counts credit submissions by schedule mode.
	PlanSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plan_submissions_total",
			Help: "Credit submissions, by schedule mode and status.",
		},
		[]string{"mode", "status"},
	)

	// PreviewCacheLookups counts preview cache hits and misses.
	PreviewCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "preview_cache_lookups_total",
			Help: "Preview cache lookups, by result.",
		},
		[]string{"result"},
	)
)
