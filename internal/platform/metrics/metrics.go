package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP handler latency per route and status class.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "clout_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		},
		[]string{"route", "status"},
	)

	// ModerationDecisions counts accept/reject/revert outcomes.
	ModerationDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clout_moderation_decisions_total",
			Help: "Moderation decisions applied to submissions",
		},
		[]string{"decision", "outcome"},
	)

	// SubmissionsCreated counts accepted submission inserts.
	SubmissionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clout_submissions_created_total",
			Help: "Submissions persisted to the ledger",
		},
	)
)

// RecordRequestDuration records one HTTP request observation.
func RecordRequestDuration(route string, status string, seconds float64) {
	RequestDuration.WithLabelValues(route, status).Observe(seconds)
}

// RecordModerationDecision records one moderation action outcome.
func RecordModerationDecision(decision string, outcome string) {
	ModerationDecisions.WithLabelValues(decision, outcome).Inc()
}
