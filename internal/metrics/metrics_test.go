package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCollector(t *testing.T) {
	registry := prometheus.NewRegistry()
	pc := NewPrometheusCollector("aml")
	require.NoError(t, pc.Register(registry))

	pc.RecordVerdict("Suspicious")
	pc.RecordVerdict("Suspicious")
	pc.RecordVerdict("Legitimate")
	pc.RecordValidationError("Amount Paid")
	pc.ObserveClassify("batch", 3*time.Millisecond)
	pc.ObserveBatchRows(42)
	pc.RecordCacheRequest(CacheHit)
	pc.RecordCircuitState(CircuitOpen)

	assert.Equal(t, 2.0, testutil.ToFloat64(pc.verdicts.WithLabelValues("Suspicious")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pc.verdicts.WithLabelValues("Legitimate")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pc.validationErrors.WithLabelValues("Amount Paid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pc.cacheRequests.WithLabelValues(CacheHit)))
	assert.Equal(t, 1.0, testutil.ToFloat64(pc.circuitState))

	expected := `
		# HELP aml_batch_rows Number of rows per uploaded batch
		# TYPE aml_batch_rows histogram
		aml_batch_rows_bucket{le="1"} 0
		aml_batch_rows_bucket{le="4"} 0
		aml_batch_rows_bucket{le="16"} 0
		aml_batch_rows_bucket{le="64"} 1
		aml_batch_rows_bucket{le="256"} 1
		aml_batch_rows_bucket{le="1024"} 1
		aml_batch_rows_bucket{le="4096"} 1
		aml_batch_rows_bucket{le="16384"} 1
		aml_batch_rows_bucket{le="65536"} 1
		aml_batch_rows_bucket{le="262144"} 1
		aml_batch_rows_bucket{le="+Inf"} 1
		aml_batch_rows_sum 42
		aml_batch_rows_count 1
	`
	assert.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected), "aml_batch_rows"))
}

func TestPrometheusCollector_RegisterTwice(t *testing.T) {
	registry := prometheus.NewRegistry()
	require.NoError(t, NewPrometheusCollector("aml").Register(registry))
	assert.Error(t, NewPrometheusCollector("aml").Register(registry))
}

func TestCircuitState_String(t *testing.T) {
	assert.Equal(t, "closed", CircuitClosed.String())
	assert.Equal(t, "open", CircuitOpen.String())
	assert.Equal(t, "half-open", CircuitHalfOpen.String())
	assert.Equal(t, "unknown", CircuitState(7).String())
}

func TestNoOpCollector(t *testing.T) {
	var c NoOpCollector
	assert.NotPanics(t, func() {
		c.RecordVerdict("Suspicious")
		c.RecordValidationError("Date")
		c.ObserveClassify("single", time.Second)
		c.ObserveBatchRows(1)
		c.RecordCacheRequest(CacheMiss)
		c.RecordCircuitState(CircuitHalfOpen)
	})
}
