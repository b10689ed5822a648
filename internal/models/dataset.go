package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DatasetTransaction is one labeled row of the exploration dataset.
// swagger:model DatasetTransaction
type DatasetTransaction struct {
	ID                int64           `json:"id" db:"id"`
	Timestamp         time.Time       `json:"timestamp" db:"ts"`
	FromBank          int64           `json:"from_bank" db:"from_bank"`
	FromAccount       string          `json:"account" db:"from_account"`
	ToBank            int64           `json:"to_bank" db:"to_bank"`
	ToAccount         string          `json:"account_1" db:"to_account"`
	AmountReceived    decimal.Decimal `json:"amount_received" db:"amount_received" swaggertype:"number"`
	ReceivingCurrency string          `json:"receiving_currency" db:"receiving_currency"`
	AmountPaid        decimal.Decimal `json:"amount_paid" db:"amount_paid" swaggertype:"number"`
	PaymentCurrency   string          `json:"payment_currency" db:"payment_currency"`
	PaymentFormat     string          `json:"payment_format" db:"payment_format"`
	IsLaundering      int             `json:"is_laundering" db:"is_laundering"`
}

// DatasetFilter narrows dataset queries. Empty fields do not filter.
type DatasetFilter struct {
	Date           *time.Time
	PaymentFormats []string
	Laundering     []int
	Limit          int
	Offset         int
}

// DatasetSummary describes the whole dataset.
// swagger:model DatasetSummary
type DatasetSummary struct {
	// example: 10000
	TotalRecords int64 `json:"total_records" db:"total_records"`

	// example: 2022-09-01
	FirstDate *time.Time `json:"first_date,omitempty" db:"first_date"`

	// example: 2022-09-10
	LastDate *time.Time `json:"last_date,omitempty" db:"last_date"`

	// example: 12
	LaunderingCases int64 `json:"laundering_cases" db:"laundering_cases"`

	// example: 7
	PaymentFormats int64 `json:"payment_formats" db:"payment_formats"`
}

// DayCount is the number of transactions on one day.
// swagger:model DayCount
type DayCount struct {
	Day   time.Time `json:"day" db:"day"`
	Count int64     `json:"count" db:"count"`
}

// FormatCount is the number of transactions per payment format.
// swagger:model FormatCount
type FormatCount struct {
	PaymentFormat string `json:"payment_format" db:"payment_format"`
	Count         int64  `json:"count" db:"count"`
}

// LaunderingCount is the number of transactions per laundering label.
// swagger:model LaunderingCount
type LaunderingCount struct {
	IsLaundering int    `json:"is_laundering" db:"is_laundering"`
	Label        string `json:"label" db:"-"`
	Count        int64  `json:"count" db:"count"`
}

// ImportResponse reports a dataset import
// swagger:model ImportResponse
type ImportResponse struct {
	// example: Dataset imported successfully
	Message string `json:"message"`

	// example: 10000
	Imported int `json:"imported"`
}
