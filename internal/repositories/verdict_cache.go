package repositories

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/aml-detector/internal/logger"
	"github.com/sbilibin2017/aml-detector/internal/models"
)

// ErrVerdictNotCached is returned on a cache miss.
var ErrVerdictNotCached = errors.New("verdict not found in cache")

// VerdictKey builds the cache key of a row classified by a model version.
// Columns are hashed in lexical order so equal rows share a key.
func VerdictKey(modelVersion string, row models.FeatureRow) string {
	h := sha256.New()
	for _, col := range row.Columns() {
		v := row[col]
		fmt.Fprintf(h, "%s\x1f%d\x1f%s\x1e", col, v.Kind, v.String())
	}
	return fmt.Sprintf("verdict:%s:%s", modelVersion, hex.EncodeToString(h.Sum(nil)))
}

// VerdictCacheRepository caches verdicts in Redis.
type VerdictCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached verdicts
}

// NewVerdictCacheRepository creates a new repository instance with optional TTL
func NewVerdictCacheRepository(client *redis.Client, expiration time.Duration) *VerdictCacheRepository {
	return &VerdictCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetVerdict fetches a cached verdict. A miss returns ErrVerdictNotCached.
func (r *VerdictCacheRepository) GetVerdict(ctx context.Context, modelVersion string, row models.FeatureRow) (models.Verdict, error) {
	key := VerdictKey(modelVersion, row)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Named("verdict_cache").Debugw("verdict cache get",
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return models.Verdict{}, ErrVerdictNotCached
		}
		return models.Verdict{}, err
	}

	v, err := decodeVerdict(val)

	logger.Named("verdict_cache").Debugw("verdict cache get",
		"key", key,
		"value", val,
		"result", v,
		"error", err,
	)

	return v, err
}

// SetVerdict caches a verdict with expiration.
func (r *VerdictCacheRepository) SetVerdict(ctx context.Context, modelVersion string, row models.FeatureRow, verdict models.Verdict) error {
	key := VerdictKey(modelVersion, row)
	err := r.client.Set(ctx, key, encodeVerdict(verdict), r.exp).Err()

	logger.Named("verdict_cache").Debugw("verdict cache set",
		"key", key,
		"verdict", verdict,
		"error", err,
	)

	return err
}

func encodeVerdict(v models.Verdict) string {
	return strconv.Itoa(v.Label) + ":" + strconv.FormatFloat(v.Score, 'g', -1, 64)
}

func decodeVerdict(val string) (models.Verdict, error) {
	label, score, ok := strings.Cut(val, ":")
	if !ok {
		return models.Verdict{}, fmt.Errorf("malformed cached verdict %q", val)
	}
	l, err := strconv.Atoi(label)
	if err != nil || (l != models.LabelLegitimate && l != models.LabelSuspicious) {
		return models.Verdict{}, fmt.Errorf("malformed cached verdict %q", val)
	}
	s, err := strconv.ParseFloat(score, 64)
	if err != nil {
		return models.Verdict{}, fmt.Errorf("malformed cached verdict %q", val)
	}
	return models.NewVerdict(l, s), nil
}
