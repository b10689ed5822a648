package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/aml-detector/internal/logger"
	"github.com/sbilibin2017/aml-detector/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newMockRepo(t *testing.T) (*DatasetRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewDatasetRepository(sqlx.NewDb(db, "pgx"), nil), mock
}

func TestDatasetRepository_ListQuery(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	day := time.Date(2022, 9, 1, 15, 30, 0, 0, time.UTC)
	start := time.Date(2022, 9, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "ts", "from_bank", "from_account", "to_bank", "to_account",
		"amount_received", "receiving_currency", "amount_paid", "payment_currency",
		"payment_format", "is_laundering",
	}).AddRow(7, start.Add(time.Hour), 10, "8000EBD30", 20, "8000F5340",
		"3697.34", "US Dollar", "3697.34", "US Dollar", "Wire", 1)

	mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE ts >= $1 AND ts < $2 AND payment_format IN ($3, $4) AND is_laundering IN ($5) ORDER BY ts, id LIMIT $6 OFFSET $7",
	)).
		WithArgs(start, start.Add(24*time.Hour), "ACH", "Wire", 1, 10, 20).
		WillReturnRows(rows)

	txs, err := repo.List(ctx, models.DatasetFilter{
		Date:           &day,
		PaymentFormats: []string{"ACH", "Wire"},
		Laundering:     []int{1},
		Limit:          10,
		Offset:         20,
	})
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, int64(7), txs[0].ID)
	assert.Equal(t, "Wire", txs[0].PaymentFormat)
	assert.True(t, decimal.RequireFromString("3697.34").Equal(txs[0].AmountReceived))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatasetRepository_ListNoFilter(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM transactions ORDER BY ts, id LIMIT $1 OFFSET $2")).
		WithArgs(100, 0).
		WillReturnError(errors.New("db error"))

	_, err := repo.List(context.Background(), models.DatasetFilter{Limit: 100})
	assert.EqualError(t, err, "db error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatasetRepository_ImportError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO transactions").WillReturnError(errors.New("constraint violation"))

	n, err := repo.Import(context.Background(), []models.DatasetTransaction{{
		Timestamp:      time.Date(2022, 9, 1, 0, 0, 0, 0, time.UTC),
		FromBank:       1,
		FromAccount:    "A",
		ToBank:         2,
		ToAccount:      "B",
		AmountReceived: decimal.NewFromInt(1),
		AmountPaid:     decimal.NewFromInt(1),
		PaymentFormat:  "ACH",
	}})
	assert.EqualError(t, err, "constraint violation")
	assert.Equal(t, 0, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatasetRepository_TopDaysQuery(t *testing.T) {
	repo, mock := newMockRepo(t)

	day := time.Date(2022, 9, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY count DESC, day LIMIT $1")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"day", "count"}).AddRow(day, 42))

	days, err := repo.TopDays(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []models.DayCount{{Day: day, Count: 42}}, days)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatasetRepository_QueryLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	prev := logger.Log
	logger.Log = zap.New(core).Sugar()
	t.Cleanup(func() { logger.Log = prev })

	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY count DESC, day LIMIT $1")).
		WithArgs(5).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.TopDays(context.Background(), 5)
	require.Error(t, err)

	entries := logs.FilterMessage("dataset top days counted").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "dataset", entries[0].LoggerName)

	fields := entries[0].ContextMap()
	assert.Contains(t, fields["query"], "LIMIT $1")
	assert.Equal(t, "connection reset", fields["error"])
	assert.Zero(t, logs.FilterMessage("Ignored key without a value.").Len())
}
