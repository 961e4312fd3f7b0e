// Package metrics holds the prometheus collectors of the client and the stub
// backend. They register on the default registry; a process that wants them
// scraped must serve promhttp.Handler(), as cmd/stubapi does.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APIRequestsTotal tracks calls made by the REST client
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quizclient_api_requests_total",
			Help: "Total number of requests sent to the quiz API",
		},
		[]string{"endpoint", "status"}, // status code or "error"
	)

	// APIRequestDuration tracks REST client latency
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "quizclient_api_request_duration_seconds",
			Help:    "Duration of requests sent to the quiz API in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// StateTransitionsTotal tracks request state changes applied by runners
	StateTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quizclient_state_transitions_total",
			Help: "Total number of request state transitions",
		},
		[]string{"slot", "state"},
	)

	// StaleResultsTotal tracks results dropped because a newer call superseded them
	StaleResultsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quizclient_stale_results_total",
			Help: "Total number of discarded results from superseded or cancelled calls",
		},
		[]string{"slot"},
	)

	// LongOperationsTotal tracks how accepted (202) operations settled
	LongOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quizclient_long_operations_total",
			Help: "Total number of settled long operations",
		},
		[]string{"mode", "outcome"}, // "delay", "poll"; "success", "failed"
	)

	// StubBatchJobsTotal tracks batch jobs processed by the stub backend
	StubBatchJobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quizstub_batch_jobs_total",
			Help: "Total number of batch jobs processed by the stub backend",
		},
		[]string{"status"},
	)
)

func RecordAPIRequest(endpoint string, statusCode int, start time.Time) {
	status := "error"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}

	APIRequestsTotal.WithLabelValues(endpoint, status).Inc()
	APIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}

func RecordStateTransition(slot, state string) {
	StateTransitionsTotal.WithLabelValues(slot, state).Inc()
}

func RecordStaleResult(slot string) {
	StaleResultsTotal.WithLabelValues(slot).Inc()
}

func RecordLongOperation(mode, outcome string) {
	LongOperationsTotal.WithLabelValues(mode, outcome).Inc()
}

func RecordStubBatchJob(status string) {
	StubBatchJobsTotal.WithLabelValues(status).Inc()
}
