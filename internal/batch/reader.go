// Package batch reads uploaded transaction CSVs and writes classified exports.
package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sbilibin2017/aml-detector/internal/models"
	"github.com/shopspring/decimal"
)

// ErrEmptyUpload is returned when the upload has no header row.
var ErrEmptyUpload = errors.New("upload is empty")

// FieldRow names a row that could not be split into cells.
const FieldRow = "row"

// tolerated columns are accepted in strict mode without being features.
var tolerated = map[string]struct{}{
	models.ColumnIsLaundering: {},
	models.ColumnTimestamp:    {},
}

// Row is one parsed upload row. Err is set when a cell could not be parsed;
// the rest of the batch is unaffected.
type Row struct {
	Record     models.TransactionRecord
	Laundering *int
	Err        error
}

// Batch is a parsed upload. Records keeps the original cells in upload order.
type Batch struct {
	Header  []string
	Records [][]string
	Rows    []Row
}

// LabeledLaundering counts rows labeled as laundering. ok is false when the
// upload carries no label column.
func (b *Batch) LabeledLaundering() (n int, ok bool) {
	for _, r := range b.Rows {
		if r.Laundering != nil {
			ok = true
			if *r.Laundering == 1 {
				n++
			}
		}
	}
	return n, ok
}

// Reader parses batch uploads.
type Reader struct {
	strict bool
}

// NewReader creates a Reader. In strict mode columns outside the upload layout
// are rejected, except the dataset label columns.
func NewReader(strict bool) *Reader {
	return &Reader{strict: strict}
}

// Read parses an upload. A header missing required columns fails the whole batch
// with *models.SchemaMismatchError. Malformed lines and cell errors are reported
// per row; Records and Rows stay index-aligned.
func (r *Reader) Read(src io.Reader) (*Batch, error) {
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

	idx, err := r.checkHeader(header)
	if err != nil {
		return nil, err
	}

	b := &Batch{Header: header}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			b.Records = append(b.Records, record)
			b.Rows = append(b.Rows, Row{Err: &models.ValidationError{
				Field:  FieldRow,
				Reason: fmt.Sprintf("line %d: %v", parseErr.StartLine, parseErr.Err),
			}})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		b.Records = append(b.Records, record)
		b.Rows = append(b.Rows, parseRow(record, idx))
	}
	return b, nil
}

func (r *Reader) checkHeader(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}

	var missing []string
	for _, col := range models.RequiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}

	var unexpected []string
	if r.strict {
		required := make(map[string]struct{}, len(models.RequiredColumns))
		for _, col := range models.RequiredColumns {
			required[col] = struct{}{}
		}
		for _, name := range header {
			_, req := required[name]
			_, tol := tolerated[name]
			if !req && !tol {
				unexpected = append(unexpected, name)
			}
		}
	}

	if len(missing) > 0 || len(unexpected) > 0 {
		return nil, &models.SchemaMismatchError{Missing: missing, Unexpected: unexpected}
	}
	return idx, nil
}

// DedupeHeader trims header names and renames repeated ones the way dataframe
// readers do: the second "Account" becomes "Account.1", the third "Account.2".
func DedupeHeader(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			out[i] = fmt.Sprintf("%s.%d", name, n)
			continue
		}
		seen[name] = 1
		out[i] = name
	}
	return out
}

func parseRow(record []string, idx map[string]int) Row {
	cell := func(col string) string {
		i, ok := idx[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var row Row
	if raw := cell(models.ColumnIsLaundering); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			row.Laundering = &n
		}
	}

	fromBank, err := ParseBank(models.ColumnFromBank, cell(models.ColumnFromBank))
	if err != nil {
		row.Err = err
		return row
	}
	toBank, err := ParseBank(models.ColumnToBank, cell(models.ColumnToBank))
	if err != nil {
		row.Err = err
		return row
	}
	paid, err := ParseAmount(models.ColumnAmountPaid, cell(models.ColumnAmountPaid))
	if err != nil {
		row.Err = err
		return row
	}
	received, err := ParseAmount(models.ColumnAmountReceived, cell(models.ColumnAmountReceived))
	if err != nil {
		row.Err = err
		return row
	}
	date, err := models.ParseDate(models.ColumnDate, cell(models.ColumnDate))
	if err != nil {
		row.Err = err
		return row
	}

	row.Record = models.TransactionRecord{
		Date:              date,
		FromBank:          fromBank,
		FromAccount:       models.AccountID(cell(models.ColumnFromAccount)),
		ToBank:            toBank,
		ToAccount:         models.AccountID(cell(models.ColumnToAccount)),
		AmountPaid:        paid,
		AmountReceived:    received,
		PaymentCurrency:   cell(models.ColumnPaymentCurrency),
		ReceivingCurrency: cell(models.ColumnReceivingCurrency),
		PaymentFormat:     models.PaymentFormat(cell(models.ColumnPaymentFormat)),
	}
	return row
}

// ParseBank parses a bank identifier. Integral floats such as "10.0" are accepted.
func ParseBank(field, raw string) (int64, error) {
	if raw == "" {
		return 0, &models.ValidationError{Field: field, Reason: "is required"}
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != float64(int64(f)) {
		return 0, &models.ValidationError{Field: field, Reason: fmt.Sprintf("must be an integer, got %q", raw)}
	}
	return int64(f), nil
}

// ParseAmount parses a decimal amount. Sign is checked by the normalizer.
func ParseAmount(field, raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, &models.ValidationError{Field: field, Reason: "is required"}
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &models.ValidationError{Field: field, Reason: fmt.Sprintf("must be a decimal number, got %q", raw)}
	}
	return d, nil
}
