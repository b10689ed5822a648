package normalizer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sbilibin2017/aml-detector/internal/models"
)

// DateEncoding selects how the transaction date is rendered in the feature row.
// The loaded classifier artifact decides which one applies.
type DateEncoding string

const (
	// DateEpochSeconds renders the UTC midnight of the date as Unix seconds, e.g. "1640995200".
	DateEpochSeconds DateEncoding = "epoch_seconds"
	// DateISO renders the date as "2006-01-02".
	DateISO DateEncoding = "iso_date"
)

// ParseDateEncoding validates an encoding name. An empty name selects DateEpochSeconds.
func ParseDateEncoding(s string) (DateEncoding, error) {
	switch DateEncoding(strings.TrimSpace(s)) {
	case "", DateEpochSeconds:
		return DateEpochSeconds, nil
	case DateISO:
		return DateISO, nil
	default:
		return "", fmt.Errorf("unknown date encoding %q", s)
	}
}

// Normalizer converts transaction records into classifier feature rows.
type Normalizer struct {
	dateEncoding DateEncoding
}

// Opt configures a Normalizer.
type Opt func(*Normalizer)

// WithDateEncoding sets the date representation.
func WithDateEncoding(enc DateEncoding) Opt {
	return func(n *Normalizer) {
		n.dateEncoding = enc
	}
}

// New creates a Normalizer. The default date encoding is DateEpochSeconds.
func New(opts ...Opt) *Normalizer {
	n := &Normalizer{dateEncoding: DateEpochSeconds}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Result is the outcome of normalizing one record of a batch.
type Result struct {
	Row models.FeatureRow
	Err error
}

// Normalize validates rec and builds its feature row.
// It fails with *models.ValidationError naming the first offending field.
func (n *Normalizer) Normalize(rec models.TransactionRecord) (models.FeatureRow, error) {
	if err := validate(rec); err != nil {
		return nil, err
	}
	return n.build(rec), nil
}

// NormalizeInteractive applies the stricter form rules: bank ids must be non-zero
// and account ids non-empty, on top of everything Normalize checks.
func (n *Normalizer) NormalizeInteractive(rec models.TransactionRecord) (models.FeatureRow, error) {
	if rec.FromBank == 0 {
		return nil, &models.ValidationError{Field: models.ColumnFromBank, Reason: "must be non-zero"}
	}
	if rec.ToBank == 0 {
		return nil, &models.ValidationError{Field: models.ColumnToBank, Reason: "must be non-zero"}
	}
	if isZeroAccount(rec.FromAccount) {
		return nil, &models.ValidationError{Field: models.ColumnFromAccount, Reason: "must be non-empty and non-zero"}
	}
	if isZeroAccount(rec.ToAccount) {
		return nil, &models.ValidationError{Field: models.ColumnToAccount, Reason: "must be non-empty and non-zero"}
	}
	return n.Normalize(rec)
}

// NormalizeBatch normalizes every record. A failing record never aborts the batch;
// its error is kept at the same index.
func (n *Normalizer) NormalizeBatch(recs []models.TransactionRecord) []Result {
	out := make([]Result, len(recs))
	for i, rec := range recs {
		row, err := n.Normalize(rec)
		out[i] = Result{Row: row, Err: err}
	}
	return out
}

// EncodeDate renders d with the configured encoding.
func (n *Normalizer) EncodeDate(d time.Time) string {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	if n.dateEncoding == DateISO {
		return day.Format(time.DateOnly)
	}
	return strconv.FormatInt(day.Unix(), 10)
}

func (n *Normalizer) build(rec models.TransactionRecord) models.FeatureRow {
	paymentCurrency := strings.TrimSpace(rec.PaymentCurrency)
	if paymentCurrency == "" {
		paymentCurrency = models.DefaultCurrency
	}
	receivingCurrency := strings.TrimSpace(rec.ReceivingCurrency)
	if receivingCurrency == "" {
		receivingCurrency = models.DefaultCurrency
	}

	return models.FeatureRow{
		models.ColumnFromBank:          models.Text(strconv.FormatInt(rec.FromBank, 10)),
		models.ColumnFromAccount:       models.Text(strings.TrimSpace(string(rec.FromAccount))),
		models.ColumnToBank:            models.Text(strconv.FormatInt(rec.ToBank, 10)),
		models.ColumnToAccount:         models.Text(strings.TrimSpace(string(rec.ToAccount))),
		models.ColumnAmountReceived:    models.Numeric(rec.AmountReceived.InexactFloat64()),
		models.ColumnReceivingCurrency: models.Text(receivingCurrency),
		models.ColumnAmountPaid:        models.Numeric(rec.AmountPaid.InexactFloat64()),
		models.ColumnPaymentCurrency:   models.Text(paymentCurrency),
		models.ColumnPaymentFormat:     models.Text(string(rec.PaymentFormat)),
		models.ColumnDate:              models.Text(n.EncodeDate(rec.Date)),
	}
}

func validate(rec models.TransactionRecord) error {
	switch {
	case rec.Date.IsZero():
		return &models.ValidationError{Field: models.ColumnDate, Reason: "is required"}
	case rec.FromBank < 0:
		return &models.ValidationError{Field: models.ColumnFromBank, Reason: "must be non-negative"}
	case strings.TrimSpace(string(rec.FromAccount)) == "":
		return &models.ValidationError{Field: models.ColumnFromAccount, Reason: "is required"}
	case rec.ToBank < 0:
		return &models.ValidationError{Field: models.ColumnToBank, Reason: "must be non-negative"}
	case strings.TrimSpace(string(rec.ToAccount)) == "":
		return &models.ValidationError{Field: models.ColumnToAccount, Reason: "is required"}
	case !rec.AmountPaid.IsPositive():
		return &models.ValidationError{Field: models.ColumnAmountPaid, Reason: "must be positive"}
	case !rec.AmountReceived.IsPositive():
		return &models.ValidationError{Field: models.ColumnAmountReceived, Reason: "must be positive"}
	case rec.PaymentFormat == "":
		return &models.ValidationError{Field: models.ColumnPaymentFormat, Reason: "is required"}
	case !rec.PaymentFormat.Valid():
		return &models.ValidationError{Field: models.ColumnPaymentFormat, Reason: "must be one of " + formatList()}
	}
	return nil
}

func isZeroAccount(a models.AccountID) bool {
	s := strings.TrimSpace(string(a))
	if s == "" {
		return true
	}
	n, err := strconv.ParseInt(s, 10, 64)
	return err == nil && n == 0
}

func formatList() string {
	names := make([]string, len(models.PaymentFormats))
	for i, f := range models.PaymentFormats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
