package repositories

//go:generate mockgen -source=resilient_cache.go -destination=resilient_cache_mock.go -package=repositories

import (
	"context"
	"errors"
	"time"

	"github.com/sbilibin2017/aml-detector/internal/logger"
	"github.com/sbilibin2017/aml-detector/internal/metrics"
	"github.com/sbilibin2017/aml-detector/internal/models"
	"github.com/sony/gobreaker"
)

// ErrCacheUnavailable is returned while the circuit breaker is open.
var ErrCacheUnavailable = errors.New("verdict cache unavailable")

// VerdictStore is the cache backend guarded by ResilientVerdictCache.
type VerdictStore interface {
	GetVerdict(ctx context.Context, modelVersion string, row models.FeatureRow) (models.Verdict, error)
	SetVerdict(ctx context.Context, modelVersion string, row models.FeatureRow, verdict models.Verdict) error
}

// CacheMetrics records cache lookups and breaker transitions.
type CacheMetrics interface {
	RecordCacheRequest(result string)
	RecordCircuitState(state metrics.CircuitState)
}

// BreakerConfig configures ResilientVerdictCache.
type BreakerConfig struct {
	Timeout             time.Duration // per-operation deadline, 0 disables it
	MaxRequests         uint32        // requests allowed while half-open
	Interval            time.Duration // closed-state counter reset period
	OpenTimeout         time.Duration // time spent open before probing
	ConsecutiveFailures uint32        // failures that trip the breaker
}

// DefaultBreakerConfig returns the breaker settings used by the service.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Timeout:             100 * time.Millisecond,
		MaxRequests:         1,
		Interval:            time.Minute,
		OpenTimeout:         30 * time.Second,
		ConsecutiveFailures: 5,
	}
}

// ResilientVerdictCache wraps a VerdictStore with a circuit breaker and
// per-operation timeouts.
type ResilientVerdictCache struct {
	store   VerdictStore
	cb      *gobreaker.CircuitBreaker
	timeout time.Duration
	metrics CacheMetrics
}

// NewResilientVerdictCache creates a breaker-guarded cache. A nil metrics
// collector disables metrics.
func NewResilientVerdictCache(store VerdictStore, cfg BreakerConfig, m CacheMetrics) *ResilientVerdictCache {
	if m == nil {
		m = metrics.NoOpCollector{}
	}

	rc := &ResilientVerdictCache{
		store:   store,
		timeout: cfg.Timeout,
		metrics: m,
	}

	threshold := cfg.ConsecutiveFailures
	if threshold == 0 {
		threshold = 5
	}

	rc.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "verdict-cache",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// A miss is a healthy answer.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrVerdictNotCached)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Log.Warnw("circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)

			var state metrics.CircuitState
			switch to {
			case gobreaker.StateClosed:
				state = metrics.CircuitClosed
			case gobreaker.StateHalfOpen:
				state = metrics.CircuitHalfOpen
			case gobreaker.StateOpen:
				state = metrics.CircuitOpen
			}
			rc.metrics.RecordCircuitState(state)
		},
	})

	logger.Log.Infow("resilient verdict cache initialized",
		"timeout", cfg.Timeout,
		"max_requests", cfg.MaxRequests,
		"interval", cfg.Interval,
		"open_timeout", cfg.OpenTimeout,
	)

	return rc
}

// GetVerdict looks a verdict up through the breaker.
func (rc *ResilientVerdictCache) GetVerdict(ctx context.Context, modelVersion string, row models.FeatureRow) (models.Verdict, error) {
	ctx, cancel := rc.withTimeout(ctx)
	defer cancel()

	result, err := rc.cb.Execute(func() (interface{}, error) {
		return rc.store.GetVerdict(ctx, modelVersion, row)
	})

	switch {
	case err == nil:
		rc.metrics.RecordCacheRequest(metrics.CacheHit)
		return result.(models.Verdict), nil
	case errors.Is(err, ErrVerdictNotCached):
		rc.metrics.RecordCacheRequest(metrics.CacheMiss)
		return models.Verdict{}, err
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		rc.metrics.RecordCacheRequest(metrics.CacheRejected)
		return models.Verdict{}, ErrCacheUnavailable
	default:
		rc.metrics.RecordCacheRequest(metrics.CacheError)
		logger.Log.Errorw("verdict cache get failed", "model_version", modelVersion, "error", err)
		return models.Verdict{}, err
	}
}

// SetVerdict stores a verdict through the breaker.
func (rc *ResilientVerdictCache) SetVerdict(ctx context.Context, modelVersion string, row models.FeatureRow, verdict models.Verdict) error {
	ctx, cancel := rc.withTimeout(ctx)
	defer cancel()

	_, err := rc.cb.Execute(func() (interface{}, error) {
		return nil, rc.store.SetVerdict(ctx, modelVersion, row, verdict)
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return ErrCacheUnavailable
	}
	return err
}

// State returns the current breaker state.
func (rc *ResilientVerdictCache) State() metrics.CircuitState {
	switch rc.cb.State() {
	case gobreaker.StateOpen:
		return metrics.CircuitOpen
	case gobreaker.StateHalfOpen:
		return metrics.CircuitHalfOpen
	default:
		return metrics.CircuitClosed
	}
}

func (rc *ResilientVerdictCache) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if rc.timeout > 0 {
		return context.WithTimeout(ctx, rc.timeout)
	}
	return ctx, func() {}
}
