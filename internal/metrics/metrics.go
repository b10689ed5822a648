// Package metrics exports classification metrics to Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Cache request results.
const (
	CacheHit      = "hit"
	CacheMiss     = "miss"
	CacheError    = "error"
	CacheRejected = "rejected"
)

// CircuitState represents the state of a circuit breaker.
type CircuitState int

const (
	// CircuitClosed means the circuit breaker is allowing requests through.
	CircuitClosed CircuitState = iota
	// CircuitOpen means the circuit breaker is blocking requests.
	CircuitOpen
	// CircuitHalfOpen means the circuit breaker is testing if the cache has recovered.
	CircuitHalfOpen
)

// String returns the string representation of the circuit state.
func (s CircuitState) String() string {
	switch s {
	case CircuitClosed:
		return "closed"
	case CircuitOpen:
		return "open"
	case CircuitHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// PrometheusCollector records classification and cache metrics.
type PrometheusCollector struct {
	verdicts         *prometheus.CounterVec
	validationErrors *prometheus.CounterVec
	classifyLatency  *prometheus.HistogramVec
	batchRows        prometheus.Histogram
	cacheRequests    *prometheus.CounterVec
	circuitState     prometheus.Gauge
}

// NewPrometheusCollector creates a new Prometheus metrics collector.
func NewPrometheusCollector(namespace string) *PrometheusCollector {
	return &PrometheusCollector{
		verdicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "verdicts_total",
				Help:      "Total number of verdicts per tag",
			},
			[]string{"tag"},
		),
		validationErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_errors_total",
				Help:      "Total number of rejected records per field",
			},
			[]string{"field"},
		),
		classifyLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "classify_duration_seconds",
				Help:      "Classification latency per mode",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 15), // 0.1ms to ~3s
			},
			[]string{"mode"},
		),
		batchRows: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "batch_rows",
				Help:      "Number of rows per uploaded batch",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
		cacheRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_requests_total",
				Help:      "Total number of verdict cache lookups per result",
			},
			[]string{"result"},
		),
		circuitState: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "cache_circuit_state",
				Help:      "Verdict cache circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
		),
	}
}

// Register registers all metrics with the given Prometheus registry.
func (pc *PrometheusCollector) Register(registry prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		pc.verdicts,
		pc.validationErrors,
		pc.classifyLatency,
		pc.batchRows,
		pc.cacheRequests,
		pc.circuitState,
	}

	for _, collector := range collectors {
		if err := registry.Register(collector); err != nil {
			return err
		}
	}

	return nil
}

// RecordVerdict counts a verdict.
func (pc *PrometheusCollector) RecordVerdict(tag string) {
	pc.verdicts.WithLabelValues(tag).Inc()
}

// RecordValidationError counts a record rejected because of field.
func (pc *PrometheusCollector) RecordValidationError(field string) {
	pc.validationErrors.WithLabelValues(field).Inc()
}

// ObserveClassify records inference latency.
func (pc *PrometheusCollector) ObserveClassify(mode string, duration time.Duration) {
	pc.classifyLatency.WithLabelValues(mode).Observe(duration.Seconds())
}

// ObserveBatchRows records the size of an upload.
func (pc *PrometheusCollector) ObserveBatchRows(rows int) {
	pc.batchRows.Observe(float64(rows))
}

// RecordCacheRequest counts a verdict cache lookup.
func (pc *PrometheusCollector) RecordCacheRequest(result string) {
	pc.cacheRequests.WithLabelValues(result).Inc()
}

// RecordCircuitState records the current circuit breaker state.
func (pc *PrometheusCollector) RecordCircuitState(state CircuitState) {
	pc.circuitState.Set(float64(state))
}

// NoOpCollector is a no-op implementation used when metrics are disabled.
type NoOpCollector struct{}

// RecordVerdict does nothing.
func (NoOpCollector) RecordVerdict(tag string) {}

// RecordValidationError does nothing.
func (NoOpCollector) RecordValidationError(field string) {}

// ObserveClassify does nothing.
func (NoOpCollector) ObserveClassify(mode string, duration time.Duration) {}

// ObserveBatchRows does nothing.
func (NoOpCollector) ObserveBatchRows(rows int) {}

// RecordCacheRequest does nothing.
func (NoOpCollector) RecordCacheRequest(result string) {}

// RecordCircuitState does nothing.
func (NoOpCollector) RecordCircuitState(state CircuitState) {}
