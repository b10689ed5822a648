package batch

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sbilibin2017/aml-detector/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const datasetHeader = "Timestamp,From Bank,Account,To Bank,Account,Amount Received,Receiving Currency,Amount Paid,Payment Currency,Payment Format,Is Laundering"

func TestReadDataset(t *testing.T) {
	src := datasetHeader + "\n" +
		"2022/09/01 00:20,10,8000EBD30,10,8000EBD30,3697.34,US Dollar,3697.34,US Dollar,Reinvestment,0\n" +
		"2022/09/02 11:00,3208,8000F4580,1,8000F5340,0.01,Euro,0.01,Euro,Cheque,1\n"

	txs, err := ReadDataset(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, time.Date(2022, 9, 1, 0, 20, 0, 0, time.UTC), txs[0].Timestamp)
	assert.Equal(t, "8000EBD30", txs[0].FromAccount)
	assert.Equal(t, "Reinvestment", txs[0].PaymentFormat)
	assert.Equal(t, 0, txs[0].IsLaundering)

	assert.Equal(t, "8000F5340", txs[1].ToAccount)
	assert.Equal(t, "Euro", txs[1].PaymentCurrency)
	assert.Equal(t, 1, txs[1].IsLaundering)
}

func TestReadDataset_DateColumn(t *testing.T) {
	src := strings.Replace(datasetHeader, "Timestamp", "Date", 1) + "\n" +
		"2022-09-01,10,A,10,B,1,US Dollar,1,US Dollar,ACH,0\n"

	txs, err := ReadDataset(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, time.Date(2022, 9, 1, 0, 0, 0, 0, time.UTC), txs[0].Timestamp)
}

func TestReadDataset_Errors(t *testing.T) {
	t.Run("missing label", func(t *testing.T) {
		src := strings.TrimSuffix(datasetHeader, ",Is Laundering") + "\n"
		_, err := ReadDataset(strings.NewReader(src))

		var schemaErr *models.SchemaMismatchError
		require.True(t, errors.As(err, &schemaErr))
		assert.Equal(t, []string{models.ColumnIsLaundering}, schemaErr.Missing)
	})

	t.Run("bad label", func(t *testing.T) {
		src := datasetHeader + "\n" +
			"2022-09-01,10,A,10,B,1,US Dollar,1,US Dollar,ACH,0\n" +
			"2022-09-01,10,A,10,B,1,US Dollar,1,US Dollar,ACH,2\n"
		_, err := ReadDataset(strings.NewReader(src))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 3")

		var vErr *models.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, models.ColumnIsLaundering, vErr.Field)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ReadDataset(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrEmptyUpload)
	})
}
