// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type prometheusMetrics struct {
	allocateElapsedTime prometheus.HistogramVec
	courtsFilled        prometheus.CounterVec
	unfilledReasons     prometheus.CounterVec
	searchIterations    prometheus.HistogramVec
}

func setupPrometheusMetrics(registry *prometheus.Registry) prometheusMetrics {
	factory := promauto.With(registry)

	//nolint:promlinter
	allocateElapsedTime := factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "court_allocator_allocate_elapsed_time_ms",
			Help:    "A histogram of allocate elapsed time in milliseconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"mode"})

	courtsFilled := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "court_allocator_courts_filled_total",
			Help: "Number of courts filled by the allocator",
		}, []string{"mode"})

	unfilledReasons := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "court_allocator_unfilled_court_reasons_total",
			Help: "Number of courts left unfilled, by reason",
		}, []string{"reason"})

	searchIterations := factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "court_allocator_search_iterations",
			Help:    "A histogram of search nodes visited per court",
			Buckets: prometheus.ExponentialBuckets(10, 4, 10),
		}, []string{"strategy"})

	return prometheusMetrics{
		allocateElapsedTime: *allocateElapsedTime,
		courtsFilled:        *courtsFilled,
		unfilledReasons:     *unfilledReasons,
		searchIterations:    *searchIterations,
	}
}

func (metrics prometheusMetrics) AddAllocateElapsedTimeMs(mode string, elapsedTime time.Duration) {
	metrics.allocateElapsedTime.With(prometheus.Labels{"mode": mode}).Observe(float64(elapsedTime.Milliseconds()))
}

func (metrics prometheusMetrics) AddCourtsFilled(mode string, numCourts int) {
	metrics.courtsFilled.With(prometheus.Labels{"mode": mode}).Add(float64(numCourts))
}

func (metrics prometheusMetrics) AddUnfilledCourtReason(reason string) {
	metrics.unfilledReasons.With(prometheus.Labels{"reason": reason}).Inc()
}

func (metrics prometheusMetrics) AddSearchIterations(strategy string, iterations int) {
	metrics.searchIterations.With(prometheus.Labels{"strategy": strategy}).Observe(float64(iterations))
}
