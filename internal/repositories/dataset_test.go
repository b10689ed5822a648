package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/aml-detector/internal/logger"
	"github.com/sbilibin2017/aml-detector/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	logger.Initialize("debug", "console")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())

	// Порт может открыться раньше, чем сервер примет соединения
	var db *sqlx.DB
	for i := 0; i < 20; i++ {
		if db, err = sqlx.Connect("pgx", dsn); err == nil {
			break
		}
		time.Sleep(500 * time.Millisecond)
	}
	require.NoError(t, err)

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

func datasetFixture() []models.DatasetTransaction {
	day1 := time.Date(2022, 9, 1, 0, 20, 0, 0, time.UTC)
	day2 := time.Date(2022, 9, 2, 11, 0, 0, 0, time.UTC)
	tx := func(ts time.Time, format string, laundering int) models.DatasetTransaction {
		return models.DatasetTransaction{
			Timestamp:         ts,
			FromBank:          10,
			FromAccount:       "8000EBD30",
			ToBank:            20,
			ToAccount:         "8000F5340",
			AmountReceived:    decimal.RequireFromString("3697.34"),
			ReceivingCurrency: models.DefaultCurrency,
			AmountPaid:        decimal.RequireFromString("3697.34"),
			PaymentCurrency:   models.DefaultCurrency,
			PaymentFormat:     format,
			IsLaundering:      laundering,
		}
	}
	return []models.DatasetTransaction{
		tx(day1, "ACH", 0),
		tx(day1.Add(time.Hour), "ACH", 1),
		tx(day1.Add(2*time.Hour), "Cheque", 0),
		tx(day2, "Bitcoin", 1),
	}
}

func TestDatasetRepository(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewDatasetRepository(db, nil)
	require.NoError(t, repo.EnsureSchema(ctx))
	// Повторный вызов не должен падать
	require.NoError(t, repo.EnsureSchema(ctx))

	n, err := repo.Import(ctx, datasetFixture())
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	t.Run("List all", func(t *testing.T) {
		txs, err := repo.List(ctx, models.DatasetFilter{Limit: 100})
		require.NoError(t, err)
		require.Len(t, txs, 4)
		assert.Equal(t, "ACH", txs[0].PaymentFormat)
		assert.True(t, decimal.RequireFromString("3697.34").Equal(txs[0].AmountPaid))
		assert.Equal(t, "Bitcoin", txs[3].PaymentFormat)
	})

	t.Run("List filtered", func(t *testing.T) {
		day := time.Date(2022, 9, 1, 0, 0, 0, 0, time.UTC)
		txs, err := repo.List(ctx, models.DatasetFilter{
			Date:           &day,
			PaymentFormats: []string{"ACH", "Bitcoin"},
			Laundering:     []int{1},
			Limit:          100,
		})
		require.NoError(t, err)
		require.Len(t, txs, 1)
		assert.Equal(t, 1, txs[0].IsLaundering)
		assert.Equal(t, "ACH", txs[0].PaymentFormat)
	})

	t.Run("List paginated", func(t *testing.T) {
		txs, err := repo.List(ctx, models.DatasetFilter{Limit: 2, Offset: 3})
		require.NoError(t, err)
		assert.Len(t, txs, 1)
	})

	t.Run("Summary", func(t *testing.T) {
		sum, err := repo.Summary(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(4), sum.TotalRecords)
		assert.Equal(t, int64(2), sum.LaunderingCases)
		assert.Equal(t, int64(3), sum.PaymentFormats)
		require.NotNil(t, sum.FirstDate)
		require.NotNil(t, sum.LastDate)
		assert.Equal(t, 1, sum.FirstDate.Day())
		assert.Equal(t, 2, sum.LastDate.Day())
	})

	t.Run("TopDays", func(t *testing.T) {
		days, err := repo.TopDays(ctx, 5)
		require.NoError(t, err)
		require.Len(t, days, 2)
		assert.Equal(t, int64(3), days[0].Count)
		assert.Equal(t, 1, days[0].Day.Day())
	})

	t.Run("PaymentFormatCounts", func(t *testing.T) {
		counts, err := repo.PaymentFormatCounts(ctx)
		require.NoError(t, err)
		require.Len(t, counts, 3)
		assert.Equal(t, models.FormatCount{PaymentFormat: "ACH", Count: 2}, counts[0])
	})

	t.Run("LaunderingCounts", func(t *testing.T) {
		counts, err := repo.LaunderingCounts(ctx)
		require.NoError(t, err)
		require.Len(t, counts, 2)
		assert.Equal(t, int64(2), counts[0].Count)
		assert.Equal(t, 1, counts[1].IsLaundering)
	})
}

func TestDatasetRepository_ImportInTx(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, NewDatasetRepository(db, nil).EnsureSchema(ctx))

	tx, err := db.Beginx()
	require.NoError(t, err)

	repo := NewDatasetRepository(db, func(context.Context) *sqlx.Tx { return tx })
	n, err := repo.Import(ctx, datasetFixture())
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	// После отката данных нет
	require.NoError(t, tx.Rollback())

	sum, err := NewDatasetRepository(db, nil).Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), sum.TotalRecords)
	assert.Nil(t, sum.FirstDate)
}
