package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/aml-detector/internal/logger"
	"github.com/sbilibin2017/aml-detector/internal/models"
)

// importChunk bounds the rows of one INSERT statement.
const importChunk = 500

// DatasetSchema creates the table holding the labeled dataset.
const DatasetSchema = `
	CREATE TABLE IF NOT EXISTS transactions (
		id BIGSERIAL PRIMARY KEY,
		ts TIMESTAMP NOT NULL,
		from_bank BIGINT NOT NULL,
		from_account VARCHAR(64) NOT NULL,
		to_bank BIGINT NOT NULL,
		to_account VARCHAR(64) NOT NULL,
		amount_received NUMERIC(24,4) NOT NULL,
		receiving_currency VARCHAR(64) NOT NULL,
		amount_paid NUMERIC(24,4) NOT NULL,
		payment_currency VARCHAR(64) NOT NULL,
		payment_format VARCHAR(32) NOT NULL,
		is_laundering SMALLINT NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS transactions_ts_idx ON transactions (ts);
	CREATE INDEX IF NOT EXISTS transactions_payment_format_idx ON transactions (payment_format);
`

// DatasetRepository stores and queries the labeled transactions dataset.
type DatasetRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewDatasetRepository creates a new DatasetRepository.
func NewDatasetRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *DatasetRepository {
	return &DatasetRepository{db: db, txGetter: txGetter}
}

func (r *DatasetRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// EnsureSchema creates the dataset table if it does not exist.
func (r *DatasetRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, DatasetSchema)

	logger.Named("dataset").Infow("dataset schema ensured",
		"query", "ensure dataset schema",
		"error", err,
	)

	return err
}

// Import inserts transactions in chunks and returns the number of rows stored.
func (r *DatasetRepository) Import(ctx context.Context, txs []models.DatasetTransaction) (int, error) {
	query := `
		INSERT INTO transactions (
			ts, from_bank, from_account, to_bank, to_account,
			amount_received, receiving_currency, amount_paid, payment_currency,
			payment_format, is_laundering
		) VALUES (
			:ts, :from_bank, :from_account, :to_bank, :to_account,
			:amount_received, :receiving_currency, :amount_paid, :payment_currency,
			:payment_format, :is_laundering
		)
	`

	executor := r.executor(ctx)
	imported := 0
	for start := 0; start < len(txs); start += importChunk {
		end := min(start+importChunk, len(txs))

		res, err := sqlx.NamedExecContext(ctx, executor, query, txs[start:end])
		if err != nil {
			logger.Named("dataset").Infow("dataset batch imported",
				"query", strings.Join(strings.Fields(query), " "),
				"args", []any{start, end},
				"result", imported,
				"error", err,
			)
			return imported, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return imported, err
		}
		imported += int(n)
	}

	logger.Named("dataset").Infow("dataset imported",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{len(txs)},
		"result", imported,
		"error", nil,
	)

	return imported, nil
}

// List returns transactions matching the filter ordered by time.
func (r *DatasetRepository) List(ctx context.Context, filter models.DatasetFilter) ([]models.DatasetTransaction, error) {
	var (
		where []string
		args  []any
	)
	if filter.Date != nil {
		day := filter.Date.UTC().Truncate(24 * time.Hour)
		where = append(where, "ts >= ? AND ts < ?")
		args = append(args, day, day.Add(24*time.Hour))
	}
	if len(filter.PaymentFormats) > 0 {
		where = append(where, "payment_format IN (?)")
		args = append(args, filter.PaymentFormats)
	}
	if len(filter.Laundering) > 0 {
		where = append(where, "is_laundering IN (?)")
		args = append(args, filter.Laundering)
	}

	query := `
		SELECT id, ts, from_bank, from_account, to_bank, to_account,
			amount_received, receiving_currency, amount_paid, payment_currency,
			payment_format, is_laundering
		FROM transactions`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY ts, id LIMIT ? OFFSET ?"
	args = append(args, filter.Limit, filter.Offset)

	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return nil, err
	}
	query = sqlx.Rebind(sqlx.DOLLAR, query)

	var txs []models.DatasetTransaction
	err = sqlx.SelectContext(ctx, r.executor(ctx), &txs, query, args...)

	logger.Named("dataset").Infow("dataset listed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(txs),
		"error", err,
	)

	return txs, err
}

// Summary returns totals over the whole dataset.
func (r *DatasetRepository) Summary(ctx context.Context) (models.DatasetSummary, error) {
	query := `
		SELECT
			COUNT(*) AS total_records,
			date_trunc('day', MIN(ts)) AS first_date,
			date_trunc('day', MAX(ts)) AS last_date,
			COALESCE(SUM(is_laundering), 0) AS laundering_cases,
			COUNT(DISTINCT payment_format) AS payment_formats
		FROM transactions
	`

	var sum models.DatasetSummary
	err := sqlx.GetContext(ctx, r.executor(ctx), &sum, query)

	logger.Named("dataset").Infow("dataset summarized",
		"query", strings.Join(strings.Fields(query), " "),
		"result", sum,
		"error", err,
	)

	return sum, err
}

// TopDays returns the days with the most transactions, busiest first.
func (r *DatasetRepository) TopDays(ctx context.Context, limit int) ([]models.DayCount, error) {
	query := `
		SELECT date_trunc('day', ts) AS day, COUNT(*) AS count
		FROM transactions
		GROUP BY day
		ORDER BY count DESC, day
		LIMIT $1
	`

	var days []models.DayCount
	err := sqlx.SelectContext(ctx, r.executor(ctx), &days, query, limit)

	logger.Named("dataset").Infow("dataset top days counted",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"result", days,
		"error", err,
	)

	return days, err
}

// PaymentFormatCounts returns transaction counts per payment format, largest first.
func (r *DatasetRepository) PaymentFormatCounts(ctx context.Context) ([]models.FormatCount, error) {
	query := `
		SELECT payment_format, COUNT(*) AS count
		FROM transactions
		GROUP BY payment_format
		ORDER BY count DESC, payment_format
	`

	var counts []models.FormatCount
	err := sqlx.SelectContext(ctx, r.executor(ctx), &counts, query)

	logger.Named("dataset").Infow("dataset payment formats counted",
		"query", strings.Join(strings.Fields(query), " "),
		"result", counts,
		"error", err,
	)

	return counts, err
}

// LaunderingCounts returns transaction counts per laundering label.
func (r *DatasetRepository) LaunderingCounts(ctx context.Context) ([]models.LaunderingCount, error) {
	query := `
		SELECT is_laundering, COUNT(*) AS count
		FROM transactions
		GROUP BY is_laundering
		ORDER BY is_laundering
	`

	var counts []models.LaunderingCount
	err := sqlx.SelectContext(ctx, r.executor(ctx), &counts, query)

	logger.Named("dataset").Infow("dataset laundering labels counted",
		"query", strings.Join(strings.Fields(query), " "),
		"result", counts,
		"error", err,
	)

	return counts, err
}
