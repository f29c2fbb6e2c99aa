// Package metrics registers the service's Prometheus collectors. Importing
// the package is enough to register them on the default registry; the admin
// HTTP server exposes them via promhttp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Conversation metrics
	ConversationsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "basicd_conversations_started_total",
			Help: "Total number of Talk conversations opened",
		},
	)

	ConversationsEnded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "basicd_conversations_ended_total",
			Help: "Total number of Talk conversations closed",
		},
		[]string{"reason"}, // farewell, client_closed, error
	)

	RepliesGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "basicd_replies_generated_total",
			Help: "Total number of conversation replies generated",
		},
	)

	// Background run metrics
	RunsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "basicd_background_runs_started_total",
			Help: "Total number of background runs started",
		},
	)

	RunsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "basicd_background_runs_completed_total",
			Help: "Total number of background runs reaching a terminal state",
		},
		[]string{"state"},
	)

	RunsCanceled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "basicd_background_runs_canceled_total",
			Help: "Total number of background runs canceled by the caller",
		},
	)

	RunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "basicd_background_run_duration_seconds",
			Help:    "Background run duration from start to terminal state",
			Buckets: prometheus.DefBuckets,
		},
	)

	WorkerCompletions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "basicd_worker_completions_total",
			Help: "Total number of worker unit completions",
		},
		[]string{"outcome"},
	)

	// Wire metrics
	EnvelopesEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "basicd_envelopes_emitted_total",
			Help: "Total number of CloudEvent envelopes emitted",
		},
		[]string{"rpc"},
	)

	RequestsThrottled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "basicd_requests_throttled_total",
			Help: "Total number of stream messages delayed by the rate limiter",
		},
	)
)
