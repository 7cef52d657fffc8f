package domain

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// roundsTotal counts finished round attempts by status.
	roundsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gauntlet_rounds_total",
		Help: "Finished round attempts by status",
	}, []string{"status"})

	// mutationsTotal counts classified mutations by verdict.
	mutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gauntlet_mutations_total",
		Help: "Classified mutations by verdict",
	}, []string{"verdict"})

	// testHostSeconds tracks test host invocation latency.
	testHostSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gauntlet_test_host_duration_seconds",
		Help:    "Test host invocation duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 12), // 50ms to ~100s
	}, []string{"mode"})

	// poolWaitSeconds tracks how long rounds wait for an environment.
	poolWaitSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gauntlet_pool_wait_seconds",
		Help:    "Time spent waiting for a free environment",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
	})

	// quarantinedTotal counts candidates excluded after a timeout.
	quarantinedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gauntlet_quarantined_total",
		Help: "Candidates quarantined after a timeout",
	})
)

const (
	roundStatusCompleted = "completed"
	roundStatusFailed    = "failed"

	hostModeCoverage = "coverage"
	hostModeTest     = "test"
)

// WriteMetrics writes every registered metric to path in the Prometheus
// text format, for the node exporter textfile collector.
func WriteMetrics(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}

	return nil
}
