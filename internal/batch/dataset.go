package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sbilibin2017/aml-detector/internal/models"
)

var datasetColumns = []string{
	models.ColumnFromBank,
	models.ColumnFromAccount,
	models.ColumnToBank,
	models.ColumnToAccount,
	models.ColumnAmountReceived,
	models.ColumnReceivingCurrency,
	models.ColumnAmountPaid,
	models.ColumnPaymentCurrency,
	models.ColumnPaymentFormat,
	models.ColumnIsLaundering,
}

// ReadDataset parses a labeled transactions dataset. The time column is
// "Timestamp" or, failing that, "Date". Unlike Read, any bad cell fails the import.
func ReadDataset(src io.Reader) ([]models.DatasetTransaction, error) {
	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyUpload
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	header = DedupeHeader(header)

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}

	timeColumn := models.ColumnTimestamp
	if _, ok := idx[timeColumn]; !ok {
		timeColumn = models.ColumnDate
	}
	var missing []string
	if _, ok := idx[timeColumn]; !ok {
		missing = append(missing, models.ColumnTimestamp)
	}
	for _, col := range datasetColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &models.SchemaMismatchError{Missing: missing}
	}

	var out []models.DatasetTransaction
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record on line %d: %w", line, err)
		}
		tx, err := parseDatasetRow(record, idx, timeColumn)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, tx)
	}
	return out, nil
}

func parseDatasetRow(record []string, idx map[string]int, timeColumn string) (models.DatasetTransaction, error) {
	cell := func(col string) string {
		i := idx[col]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var tx models.DatasetTransaction
	var err error

	if tx.Timestamp, err = models.ParseDate(timeColumn, cell(timeColumn)); err != nil {
		return tx, err
	}
	if tx.FromBank, err = ParseBank(models.ColumnFromBank, cell(models.ColumnFromBank)); err != nil {
		return tx, err
	}
	if tx.ToBank, err = ParseBank(models.ColumnToBank, cell(models.ColumnToBank)); err != nil {
		return tx, err
	}
	if tx.AmountReceived, err = ParseAmount(models.ColumnAmountReceived, cell(models.ColumnAmountReceived)); err != nil {
		return tx, err
	}
	if tx.AmountPaid, err = ParseAmount(models.ColumnAmountPaid, cell(models.ColumnAmountPaid)); err != nil {
		return tx, err
	}

	label, err := strconv.Atoi(cell(models.ColumnIsLaundering))
	if err != nil || (label != 0 && label != 1) {
		return tx, &models.ValidationError{Field: models.ColumnIsLaundering, Reason: "must be 0 or 1"}
	}

	tx.FromAccount = cell(models.ColumnFromAccount)
	tx.ToAccount = cell(models.ColumnToAccount)
	tx.ReceivingCurrency = cell(models.ColumnReceivingCurrency)
	tx.PaymentCurrency = cell(models.ColumnPaymentCurrency)
	tx.PaymentFormat = cell(models.ColumnPaymentFormat)
	tx.IsLaundering = label
	return tx, nil
}
