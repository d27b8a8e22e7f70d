// Package observability exports pipeline outcome metrics to Prometheus.
// The flattened key->value map on the result remains the contract for
// collaborators that do not scrape.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records verification runs and per-stage work.
type Metrics struct {
	runs          *prometheus.CounterVec
	runDuration   prometheus.Histogram
	stageDuration *prometheus.HistogramVec
	stageNodes    *prometheus.CounterVec
}

// NewMetrics registers the collectors on reg (nil uses the default
// registerer).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hidato",
			Subsystem: "uniqueness",
			Name:      "runs_total",
			Help:      "Verification runs by decision and deciding stage.",
		}, []string{"decision", "stage"}),
		runDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hidato",
			Subsystem: "uniqueness",
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of full verification runs.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
		}),
		stageDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hidato",
			Subsystem: "uniqueness",
			Name:      "stage_duration_seconds",
			Help:      "Wall-clock duration per pipeline stage.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
		}, []string{"stage"}),
		stageNodes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hidato",
			Subsystem: "uniqueness",
			Name:      "stage_nodes_total",
			Help:      "Search nodes explored per pipeline stage.",
		}, []string{"stage"}),
	}
}

// ObserveRun records one finished verification call. stage may be empty for
// inconclusive runs.
func (m *Metrics) ObserveRun(decision, stage string, elapsed time.Duration) {
	if stage == "" {
		stage = "none"
	}
	m.runs.WithLabelValues(decision, stage).Inc()
	m.runDuration.Observe(elapsed.Seconds())
}

// ObserveStage records one stage's elapsed time and explored nodes.
func (m *Metrics) ObserveStage(stage string, elapsed time.Duration, nodes int) {
	m.stageDuration.WithLabelValues(stage).Observe(elapsed.Seconds())
	m.stageNodes.WithLabelValues(stage).Add(float64(nodes))
}
