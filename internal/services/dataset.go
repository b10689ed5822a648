package services

//go:generate mockgen -source=dataset.go -destination=dataset_mock.go -package=services

import (
	"context"
	"fmt"
	"io"

	"github.com/sbilibin2017/aml-detector/internal/batch"
	"github.com/sbilibin2017/aml-detector/internal/logger"
	"github.com/sbilibin2017/aml-detector/internal/models"
)

// Dataset query bounds.
const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
	DefaultTopDays   = 5
)

// Laundering label names.
const (
	LabelLaundering    = "Laundering"
	LabelNotLaundering = "Not Laundering"
)

// DatasetWriter stores imported transactions.
type DatasetWriter interface {
	Import(ctx context.Context, txs []models.DatasetTransaction) (int, error) // Inserts transactions and returns the count
}

// DatasetReader queries stored transactions.
type DatasetReader interface {
	List(ctx context.Context, filter models.DatasetFilter) ([]models.DatasetTransaction, error) // Returns filtered transactions
	Summary(ctx context.Context) (models.DatasetSummary, error)                                 // Returns dataset totals
	TopDays(ctx context.Context, limit int) ([]models.DayCount, error)                          // Returns the busiest days
	PaymentFormatCounts(ctx context.Context) ([]models.FormatCount, error)                      // Returns counts per payment format
	LaunderingCounts(ctx context.Context) ([]models.LaunderingCount, error)                     // Returns counts per laundering label
}

// DatasetService imports and explores the labeled transactions dataset.
type DatasetService struct {
	writer DatasetWriter
	reader DatasetReader
}

// NewDatasetService creates a new DatasetService.
func NewDatasetService(writer DatasetWriter, reader DatasetReader) *DatasetService {
	return &DatasetService{writer: writer, reader: reader}
}

// Import parses a dataset CSV and stores every row. Any bad row fails the import.
func (s *DatasetService) Import(ctx context.Context, src io.Reader) (int, error) {
	txs, err := batch.ReadDataset(src)
	if err != nil {
		logger.Log.Errorw("failed to parse dataset", "error", err)
		return 0, err
	}

	n, err := s.writer.Import(ctx, txs)
	if err != nil {
		logger.Log.Errorw("failed to import dataset", "rows", len(txs), "error", err)
		return 0, err
	}
	return n, nil
}

// List returns transactions matching the filter.
func (s *DatasetService) List(ctx context.Context, filter models.DatasetFilter) ([]models.DatasetTransaction, error) {
	switch {
	case filter.Limit < 0:
		return nil, &models.ValidationError{Field: "limit", Reason: "must not be negative"}
	case filter.Limit == 0:
		filter.Limit = DefaultListLimit
	case filter.Limit > MaxListLimit:
		filter.Limit = MaxListLimit
	}
	if filter.Offset < 0 {
		return nil, &models.ValidationError{Field: "offset", Reason: "must not be negative"}
	}
	for _, f := range filter.PaymentFormats {
		if !models.PaymentFormat(f).Valid() {
			return nil, &models.ValidationError{Field: "payment_format", Reason: fmt.Sprintf("unknown payment format %q", f)}
		}
	}
	for _, l := range filter.Laundering {
		if l != 0 && l != 1 {
			return nil, &models.ValidationError{Field: "laundering", Reason: "must be 0 or 1"}
		}
	}

	txs, err := s.reader.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list dataset", "error", err)
		return nil, err
	}
	return txs, nil
}

// Summary returns dataset totals.
func (s *DatasetService) Summary(ctx context.Context) (models.DatasetSummary, error) {
	sum, err := s.reader.Summary(ctx)
	if err != nil {
		logger.Log.Errorw("failed to summarize dataset", "error", err)
	}
	return sum, err
}

// TopDays returns the days with the most transactions.
func (s *DatasetService) TopDays(ctx context.Context, limit int) ([]models.DayCount, error) {
	if limit < 0 {
		return nil, &models.ValidationError{Field: "limit", Reason: "must not be negative"}
	}
	if limit == 0 {
		limit = DefaultTopDays
	}
	days, err := s.reader.TopDays(ctx, limit)
	if err != nil {
		logger.Log.Errorw("failed to get top days", "limit", limit, "error", err)
	}
	return days, err
}

// PaymentFormatCounts returns transaction counts per payment format.
func (s *DatasetService) PaymentFormatCounts(ctx context.Context) ([]models.FormatCount, error) {
	counts, err := s.reader.PaymentFormatCounts(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count payment formats", "error", err)
	}
	return counts, err
}

// LaunderingCounts returns transaction counts per laundering label.
func (s *DatasetService) LaunderingCounts(ctx context.Context) ([]models.LaunderingCount, error) {
	counts, err := s.reader.LaunderingCounts(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count laundering labels", "error", err)
		return nil, err
	}
	for i := range counts {
		counts[i].Label = LabelNotLaundering
		if counts[i].IsLaundering == 1 {
			counts[i].Label = LabelLaundering
		}
	}
	return counts, nil
}
