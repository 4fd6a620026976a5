// Package metrics exposes Prometheus instrumentation for the property
// checker: evaluation throughput, failures, per-outcome rule results
// and evaluation latency.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the checker's instruments. Create one per process with
// New and share it; all instruments are safe for concurrent use.
type Metrics struct {
	registry *prometheus.Registry

	EvaluationsTotal  prometheus.Counter
	EvaluationErrors  prometheus.Counter
	RuleResults       *prometheus.CounterVec
	EvaluationSeconds prometheus.Histogram
}

// New creates the checker's metrics on a private registry so tests can
// instantiate them repeatedly without duplicate-registration panics.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		EvaluationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "propcheck_evaluations_total",
			Help: "Dataset evaluations completed, successful or not.",
		}),
		EvaluationErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "propcheck_evaluation_errors_total",
			Help: "Dataset evaluations that ended in an error.",
		}),
		RuleResults: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "propcheck_rule_results_total",
			Help: "Rule results by outcome.",
		}, []string{"outcome"}),
		EvaluationSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "propcheck_evaluation_duration_seconds",
			Help:    "Wall time of one dataset evaluation.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Handler serves this instance's registry in the Prometheus exposition
// format, suitable for mounting on /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
