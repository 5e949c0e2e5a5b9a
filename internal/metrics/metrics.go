// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "marketplace_api_request_duration_seconds",
			Help:    "API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Recommendations
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_recommendations_total",
			Help: "Recommendation requests by catalog kind and outcome",
		},
		[]string{"kind", "outcome"}, // outcome: "answered", "default", "rejected"
	)

	GeneratorCallDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "marketplace_generator_call_duration_seconds",
			Help:    "Latency of text generator calls in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		},
	)

	GeneratorBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "marketplace_generator_breaker_state",
			Help: "Generator circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)

	// Demo bookings
	DemoBookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_demo_bookings_total",
			Help: "Demo bookings by pipeline stage",
		},
		[]string{"stage"}, // "accepted", "queue_failed", "persisted", "persist_failed", "dropped", "lost"
	)
)

// Recommendation outcomes.
const (
	OutcomeAnswered = "answered"
	OutcomeDefault  = "default"
	OutcomeRejected = "rejected"
)

// Booking stages.
const (
	BookingAccepted      = "accepted"
	BookingQueueFailed   = "queue_failed"
	BookingPersisted     = "persisted"
	BookingPersistFailed = "persist_failed"
	BookingDropped       = "dropped"
	BookingLost          = "lost"
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, route, status string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, status).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordRecommendation counts one recommendation request.
func RecordRecommendation(kind, outcome string) {
	RecommendationsTotal.WithLabelValues(kind, outcome).Inc()
}

// RecordGeneratorCall observes one generator round trip.
func RecordGeneratorCall(duration time.Duration) {
	GeneratorCallDuration.Observe(duration.Seconds())
}

// RecordBooking counts a booking reaching stage.
func RecordBooking(stage string) {
	DemoBookingsTotal.WithLabelValues(stage).Inc()
}
