package walet

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NoopMetricsCollector is a no-op implementation of MetricsCollector
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordOperationDuration(string, time.Duration) {}
func (n *NoopMetricsCollector) RecordOperationResult(string, string)          {}
func (n *NoopMetricsCollector) RecordError(string, string)                    {}

// PrometheusMetrics exports walet operation metrics.
type PrometheusMetrics struct {
	duration *prometheus.HistogramVec
	results  *prometheus.CounterVec
	errors   *prometheus.CounterVec
}

// NewPrometheusMetrics registers the walet collectors on reg.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "walet",
				Subsystem: "service",
				Name:      "operation_duration_seconds",
				Help:      "Duration of walet operations",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		results: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "walet",
				Subsystem: "service",
				Name:      "operations_total",
				Help:      "Walet operations by result",
			},
			[]string{"operation", "result"},
		),
		errors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "walet",
				Subsystem: "service",
				Name:      "errors_total",
				Help:      "Walet operation errors by kind",
			},
			[]string{"operation", "error"},
		),
	}
}

func (m *PrometheusMetrics) RecordOperationDuration(op string, duration time.Duration) {
	m.duration.WithLabelValues(op).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordOperationResult(op, result string) {
	m.results.WithLabelValues(op, result).Inc()
}

func (m *PrometheusMetrics) RecordError(op, err string) {
	m.errors.WithLabelValues(op, err).Inc()
}
