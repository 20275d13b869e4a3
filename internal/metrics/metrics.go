// Package metrics holds the Prometheus collectors for the schedule pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CarrierOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schedule_carrier_outcomes_total",
			Help: "Final state reached per carrier lookup",
		},
		[]string{"carrier", "state"},
	)

	PipelineFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schedule_pipeline_failures_total",
			Help: "Failures per carrier and failure kind",
		},
		[]string{"carrier", "kind"},
	)

	LLMCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "schedule_llm_call_duration_seconds",
			Help:    "Duration of model completions",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 80, 120},
		},
		[]string{"purpose"},
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "schedule_recommend_duration_seconds",
			Help:    "End to end duration of a recommendation request",
			Buckets: prometheus.ExponentialBuckets(1, 2, 9),
		},
	)

	CarriersActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "schedule_carriers_active",
			Help: "Carrier lookups currently in flight",
		},
	)
)
