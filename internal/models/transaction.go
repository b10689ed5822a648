package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is applied when the caller does not supply a currency.
const DefaultCurrency = "US Dollar"

// Column names of the batch upload layout and of the classifier feature schema.
const (
	ColumnFromBank          = "From Bank"
	ColumnFromAccount       = "Account"
	ColumnToBank            = "To Bank"
	ColumnToAccount         = "Account.1"
	ColumnAmountReceived    = "Amount Received"
	ColumnReceivingCurrency = "Receiving Currency"
	ColumnAmountPaid        = "Amount Paid"
	ColumnPaymentCurrency   = "Payment Currency"
	ColumnPaymentFormat     = "Payment Format"
	ColumnDate              = "Date"

	// ColumnIsLaundering and ColumnTimestamp appear in labeled datasets.
	ColumnIsLaundering = "Is Laundering"
	ColumnTimestamp    = "Timestamp"
)

// RequiredColumns lists the columns every batch upload must carry, in canonical order.
var RequiredColumns = []string{
	ColumnFromBank,
	ColumnFromAccount,
	ColumnToBank,
	ColumnToAccount,
	ColumnAmountReceived,
	ColumnReceivingCurrency,
	ColumnAmountPaid,
	ColumnPaymentCurrency,
	ColumnPaymentFormat,
	ColumnDate,
}

// PaymentFormat is the transfer channel of a transaction.
type PaymentFormat string

const (
	PaymentFormatACH          PaymentFormat = "ACH"
	PaymentFormatBitcoin      PaymentFormat = "Bitcoin"
	PaymentFormatCheque       PaymentFormat = "Cheque"
	PaymentFormatReinvestment PaymentFormat = "Reinvestment"
	PaymentFormatCreditCard   PaymentFormat = "Credit Card"
	PaymentFormatWire         PaymentFormat = "Wire"
	PaymentFormatCash         PaymentFormat = "Cash"
)

// PaymentFormats is the fixed enumeration of accepted payment formats.
var PaymentFormats = []PaymentFormat{
	PaymentFormatACH,
	PaymentFormatBitcoin,
	PaymentFormatCheque,
	PaymentFormatReinvestment,
	PaymentFormatCreditCard,
	PaymentFormatWire,
	PaymentFormatCash,
}

// Valid reports whether f belongs to the enumeration.
func (f PaymentFormat) Valid() bool {
	for _, v := range PaymentFormats {
		if f == v {
			return true
		}
	}
	return false
}

// AccountID identifies an account. Forms send integers, datasets send hex strings.
type AccountID string

// UnmarshalJSON accepts both JSON strings and JSON numbers.
func (a *AccountID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = AccountID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("account id must be a string or an integer: %w", err)
	}
	if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
		return fmt.Errorf("account id must be a string or an integer: %w", err)
	}
	*a = AccountID(n.String())
	return nil
}

// TransactionRecord is one financial transfer submitted for classification.
// swagger:model TransactionRecord
type TransactionRecord struct {
	// Transaction date
	// required: true
	// example: 2022-01-01
	Date time.Time `json:"date" swaggertype:"string" format:"date"`

	// Source bank identifier
	// required: true
	// example: 1
	FromBank int64 `json:"from_bank"`

	// Source account identifier
	// required: true
	// example: A1
	FromAccount AccountID `json:"account" swaggertype:"string"`

	// Destination bank identifier
	// required: true
	// example: 2
	ToBank int64 `json:"to_bank"`

	// Destination account identifier
	// required: true
	// example: A2
	ToAccount AccountID `json:"account_1" swaggertype:"string"`

	// Amount paid
	// required: true
	// example: 100.00
	AmountPaid decimal.Decimal `json:"amount_paid" swaggertype:"number"`

	// Amount received
	// required: true
	// example: 100.00
	AmountReceived decimal.Decimal `json:"amount_received" swaggertype:"number"`

	// Payment currency, defaults to US Dollar
	// example: US Dollar
	PaymentCurrency string `json:"payment_currency,omitempty"`

	// Receiving currency, defaults to US Dollar
	// example: US Dollar
	ReceivingCurrency string `json:"receiving_currency,omitempty"`

	// Payment format
	// required: true
	// example: ACH
	PaymentFormat PaymentFormat `json:"payment_format"`
}

// jsonColumns maps form field names to the column names used in errors.
var jsonColumns = map[string]string{
	"date":               ColumnDate,
	"from_bank":          ColumnFromBank,
	"account":            ColumnFromAccount,
	"to_bank":            ColumnToBank,
	"account_1":          ColumnToAccount,
	"amount_paid":        ColumnAmountPaid,
	"amount_received":    ColumnAmountReceived,
	"payment_currency":   ColumnPaymentCurrency,
	"receiving_currency": ColumnReceivingCurrency,
	"payment_format":     ColumnPaymentFormat,
}

// UnmarshalJSON decodes a form record. The date accepts the upload layouts, and
// a badly typed field fails with *ValidationError naming it.
func (r *TransactionRecord) UnmarshalJSON(data []byte) error {
	type plain TransactionRecord
	aux := struct {
		*plain
		Date           json.RawMessage `json:"date"`
		FromAccount    json.RawMessage `json:"account"`
		ToAccount      json.RawMessage `json:"account_1"`
		AmountPaid     json.RawMessage `json:"amount_paid"`
		AmountReceived json.RawMessage `json:"amount_received"`
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			field := typeErr.Field
			if col, ok := jsonColumns[field]; ok {
				field = col
			}
			return &ValidationError{Field: field, Reason: fmt.Sprintf("must be %s, got %s", typeErr.Type, typeErr.Value)}
		}
		return err
	}

	var err error
	if r.Date, err = decodeDate(aux.Date); err != nil {
		return err
	}
	if err := decodeAccount(ColumnFromAccount, aux.FromAccount, &r.FromAccount); err != nil {
		return err
	}
	if err := decodeAccount(ColumnToAccount, aux.ToAccount, &r.ToAccount); err != nil {
		return err
	}
	if err := decodeAmount(ColumnAmountPaid, aux.AmountPaid, &r.AmountPaid); err != nil {
		return err
	}
	return decodeAmount(ColumnAmountReceived, aux.AmountReceived, &r.AmountReceived)
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func decodeDate(raw json.RawMessage) (time.Time, error) {
	if isNull(raw) {
		return time.Time{}, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return time.Time{}, &ValidationError{Field: ColumnDate, Reason: "must be a date string such as 2022-01-01"}
	}
	if s == "" {
		return time.Time{}, nil
	}
	return ParseDate(ColumnDate, s)
}

func decodeAccount(field string, raw json.RawMessage, dst *AccountID) error {
	if isNull(raw) {
		return nil
	}
	if err := dst.UnmarshalJSON(raw); err != nil {
		return &ValidationError{Field: field, Reason: "must be a string or an integer"}
	}
	return nil
}

func decodeAmount(field string, raw json.RawMessage, dst *decimal.Decimal) error {
	if isNull(raw) {
		return nil
	}
	if err := dst.UnmarshalJSON(raw); err != nil {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must be a decimal number, got %s", raw)}
	}
	return nil
}
