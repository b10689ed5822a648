package services

//go:generate mockgen -source=classification.go -destination=classification_mock.go -package=services

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/aml-detector/internal/batch"
	"github.com/sbilibin2017/aml-detector/internal/logger"
	"github.com/sbilibin2017/aml-detector/internal/models"
	"github.com/sbilibin2017/aml-detector/internal/normalizer"
)

// Classification modes reported to metrics.
const (
	ModeRows   = "rows"
	ModeSingle = "single"
	ModeBatch  = "batch"
)

// Predictor runs inference with a loaded classifier.
type Predictor interface {
	Predict(rows []models.FeatureRow) []models.Verdict // Returns one verdict per row, in order
	FeatureNames() []string                            // Returns the columns the classifier expects
	Version() string                                   // Returns the artifact version
}

// RecordNormalizer turns records into feature rows.
type RecordNormalizer interface {
	NormalizeBatch(recs []models.TransactionRecord) []normalizer.Result           // Validates batch records, keeping errors per index
	NormalizeInteractive(rec models.TransactionRecord) (models.FeatureRow, error) // Validates a form record
}

// BatchReader parses CSV uploads.
type BatchReader interface {
	Read(src io.Reader) (*batch.Batch, error) // Parses the header and rows of an upload
}

// VerdictCache caches verdicts per model version and row.
type VerdictCache interface {
	GetVerdict(ctx context.Context, modelVersion string, row models.FeatureRow) (models.Verdict, error)       // Returns a cached verdict or an error on miss
	SetVerdict(ctx context.Context, modelVersion string, row models.FeatureRow, verdict models.Verdict) error // Caches a verdict
}

// AlertPublisher publishes suspicious verdicts.
type AlertPublisher interface {
	Publish(ctx context.Context, alerts ...models.Alert) error // Publishes alerts
}

// MetricsCollector records classification metrics.
type MetricsCollector interface {
	RecordVerdict(tag string)                            // Counts a verdict by tag
	RecordValidationError(field string)                  // Counts a rejected record by field
	ObserveClassify(mode string, duration time.Duration) // Observes inference latency
	ObserveBatchRows(rows int)                           // Observes the size of an upload
}

// BatchResult is a classified upload.
type BatchResult struct {
	BatchID  string
	Batch    *batch.Batch
	Outcomes []batch.Outcome
	Summary  models.BatchSummary
}

// Response renders the result for the API.
func (r *BatchResult) Response() models.BatchResponse {
	rows := make([]models.BatchRowResponse, len(r.Outcomes))
	for i, o := range r.Outcomes {
		rows[i] = models.BatchRowResponse{Row: i, Verdict: o.Verdict}
		if o.Err != nil {
			rows[i].Error = o.Err.Error()
		}
	}
	return models.BatchResponse{
		BatchID: r.BatchID,
		Summary: r.Summary,
		Rows:    rows,
	}
}

// ClassificationService validates records and classifies them with the loaded model.
type ClassificationService struct {
	predictor   Predictor
	normalizer  RecordNormalizer
	reader      BatchReader
	cache       VerdictCache
	alerts      AlertPublisher
	metrics     MetricsCollector
	fillMissing bool
}

// Opt configures a ClassificationService.
type Opt func(*ClassificationService)

// WithVerdictCache enables verdict caching.
func WithVerdictCache(c VerdictCache) Opt {
	return func(s *ClassificationService) {
		s.cache = c
	}
}

// WithAlertPublisher enables alert publishing for suspicious verdicts.
func WithAlertPublisher(p AlertPublisher) Opt {
	return func(s *ClassificationService) {
		s.alerts = p
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m MetricsCollector) Opt {
	return func(s *ClassificationService) {
		s.metrics = m
	}
}

// WithFillMissing controls whether absent classifier columns are filled with 0
// or rejected with a schema mismatch.
func WithFillMissing(fill bool) Opt {
	return func(s *ClassificationService) {
		s.fillMissing = fill
	}
}

// NewClassificationService creates a new ClassificationService. Missing columns
// are filled by default.
func NewClassificationService(
	predictor Predictor,
	normalizer RecordNormalizer,
	reader BatchReader,
	opts ...Opt,
) *ClassificationService {
	s := &ClassificationService{
		predictor:   predictor,
		normalizer:  normalizer,
		reader:      reader,
		fillMissing: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Classify returns one verdict per row in input order. The rows are not modified.
func (s *ClassificationService) Classify(ctx context.Context, rows []models.FeatureRow) ([]models.Verdict, error) {
	return s.classify(ctx, rows, ModeRows)
}

// ClassifyRecord validates a form record and classifies it.
func (s *ClassificationService) ClassifyRecord(ctx context.Context, rec models.TransactionRecord) (models.Verdict, error) {
	row, err := s.normalizer.NormalizeInteractive(rec)
	if err != nil {
		s.recordValidationError(err)
		logger.Log.Infow("record rejected", "error", err)
		return models.Verdict{}, err
	}

	verdicts, err := s.classify(ctx, []models.FeatureRow{row}, ModeSingle)
	if err != nil {
		return models.Verdict{}, err
	}

	s.publishAlerts(ctx, uuid.NewString(), []int{0}, []models.FeatureRow{row}, verdicts)
	return verdicts[0], nil
}

// ClassifyBatch parses an upload and classifies every valid row. A header missing
// required columns fails the whole batch; bad rows are reported in their outcome.
func (s *ClassificationService) ClassifyBatch(ctx context.Context, src io.Reader) (*BatchResult, error) {
	b, err := s.reader.Read(src)
	if err != nil {
		logger.Log.Errorw("failed to read batch", "error", err)
		return nil, err
	}

	res := &BatchResult{
		BatchID:  uuid.NewString(),
		Batch:    b,
		Outcomes: make([]batch.Outcome, len(b.Rows)),
	}
	s.observeBatchRows(len(b.Rows))

	var (
		parsed []int
		recs   []models.TransactionRecord
	)
	for i, r := range b.Rows {
		if r.Err != nil {
			s.recordValidationError(r.Err)
			res.Outcomes[i].Err = r.Err
			continue
		}
		parsed = append(parsed, i)
		recs = append(recs, r.Record)
	}

	var (
		index []int
		rows  []models.FeatureRow
	)
	for j, nr := range s.normalizer.NormalizeBatch(recs) {
		i := parsed[j]
		if nr.Err != nil {
			s.recordValidationError(nr.Err)
			res.Outcomes[i].Err = nr.Err
			continue
		}
		index = append(index, i)
		rows = append(rows, nr.Row)
	}

	if len(rows) > 0 {
		verdicts, err := s.classify(ctx, rows, ModeBatch)
		if err != nil {
			return nil, err
		}
		for j, i := range index {
			v := verdicts[j]
			res.Outcomes[i].Verdict = &v
		}
		s.publishAlerts(ctx, res.BatchID, index, rows, verdicts)
	}

	res.Summary = summarize(res.Outcomes)
	if n, ok := b.LabeledLaundering(); ok {
		res.Summary.LabeledLaundering = &n
	}

	logger.Log.Infow("batch classified",
		"batch_id", res.BatchID,
		"total", res.Summary.Total,
		"suspicious", res.Summary.Suspicious,
		"invalid", res.Summary.Invalid,
	)
	return res, nil
}

func (s *ClassificationService) classify(ctx context.Context, rows []models.FeatureRow, mode string) ([]models.Verdict, error) {
	start := time.Now()

	filled, err := s.complete(rows)
	if err != nil {
		logger.Log.Errorw("classifier columns missing", "mode", mode, "error", err)
		return nil, err
	}

	verdicts := make([]models.Verdict, len(filled))
	version := s.predictor.Version()

	var (
		missIdx  []int
		missRows []models.FeatureRow
	)
	for i, row := range filled {
		if s.cache != nil {
			if v, err := s.cache.GetVerdict(ctx, version, row); err == nil {
				verdicts[i] = v
				continue
			}
		}
		missIdx = append(missIdx, i)
		missRows = append(missRows, row)
	}

	if len(missRows) > 0 {
		predicted := s.predictor.Predict(missRows)
		for j, i := range missIdx {
			verdicts[i] = predicted[j]
			if s.cache != nil {
				if err := s.cache.SetVerdict(ctx, version, missRows[j], predicted[j]); err != nil {
					logger.Log.Warnw("failed to cache verdict", "model_version", version, "error", err)
				}
			}
		}
	}

	if s.metrics != nil {
		s.metrics.ObserveClassify(mode, time.Since(start))
		for _, v := range verdicts {
			s.metrics.RecordVerdict(v.Tag)
		}
	}
	return verdicts, nil
}

// complete copies every row and adds the classifier columns it lacks.
func (s *ClassificationService) complete(rows []models.FeatureRow) ([]models.FeatureRow, error) {
	expected := s.predictor.FeatureNames()

	var missing []string
	seen := make(map[string]struct{})
	for _, row := range rows {
		for _, col := range expected {
			if row.Has(col) {
				continue
			}
			if _, ok := seen[col]; !ok {
				seen[col] = struct{}{}
				missing = append(missing, col)
			}
		}
	}

	if len(missing) > 0 && !s.fillMissing {
		return nil, &models.SchemaMismatchError{Missing: missing}
	}

	out := make([]models.FeatureRow, len(rows))
	for i, row := range rows {
		c := row.Clone()
		for _, col := range missing {
			if !c.Has(col) {
				c[col] = models.Numeric(0)
			}
		}
		out[i] = c
	}
	return out, nil
}

func (s *ClassificationService) publishAlerts(ctx context.Context, batchID string, index []int, rows []models.FeatureRow, verdicts []models.Verdict) {
	if s.alerts == nil {
		return
	}

	now := time.Now().Unix()
	var alerts []models.Alert
	for j, v := range verdicts {
		if !v.Suspicious() {
			continue
		}
		alerts = append(alerts, models.Alert{
			AlertID:   uuid.NewString(),
			BatchID:   batchID,
			Row:       index[j],
			Tag:       v.Tag,
			Score:     v.Score,
			Features:  rows[j].Strings(),
			Timestamp: now,
		})
	}
	if len(alerts) == 0 {
		return
	}

	if err := s.alerts.Publish(ctx, alerts...); err != nil {
		logger.Log.Errorw("failed to publish alerts", "batch_id", batchID, "alerts", len(alerts), "error", err)
	}
}

func (s *ClassificationService) recordValidationError(err error) {
	if s.metrics == nil {
		return
	}
	var vErr *models.ValidationError
	if errors.As(err, &vErr) {
		s.metrics.RecordValidationError(vErr.Field)
	}
}

func (s *ClassificationService) observeBatchRows(n int) {
	if s.metrics != nil {
		s.metrics.ObserveBatchRows(n)
	}
}

func summarize(outcomes []batch.Outcome) models.BatchSummary {
	sum := models.BatchSummary{Total: len(outcomes)}
	for _, o := range outcomes {
		switch {
		case o.Err != nil:
			sum.Invalid++
		case o.Verdict != nil && o.Verdict.Suspicious():
			sum.Suspicious++
		case o.Verdict != nil:
			sum.Legitimate++
		}
	}
	return sum
}
