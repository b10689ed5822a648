package models

import (
	"sort"
	"strconv"
)

// FeatureKind is the type a classifier column expects.
type FeatureKind int

const (
	// FeatureText is a categorical column carried as text.
	FeatureText FeatureKind = iota
	// FeatureNumeric is a floating point column.
	FeatureNumeric
)

// FeatureValue is one typed cell of a FeatureRow.
type FeatureValue struct {
	Kind FeatureKind
	Num  float64
	Text string
}

// Numeric builds a numeric cell.
func Numeric(v float64) FeatureValue {
	return FeatureValue{Kind: FeatureNumeric, Num: v}
}

// Text builds a text cell.
func Text(v string) FeatureValue {
	return FeatureValue{Kind: FeatureText, Text: v}
}

// String renders the cell the way it would appear in a CSV.
func (v FeatureValue) String() string {
	if v.Kind == FeatureNumeric {
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	}
	return v.Text
}

// FeatureRow is a model-ready row keyed by column name.
type FeatureRow map[string]FeatureValue

// Clone returns a copy that shares nothing with r.
func (r FeatureRow) Clone() FeatureRow {
	out := make(FeatureRow, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Has reports whether the column is present.
func (r FeatureRow) Has(column string) bool {
	_, ok := r[column]
	return ok
}

// Columns returns the column names in lexical order.
func (r FeatureRow) Columns() []string {
	cols := make([]string, 0, len(r))
	for k := range r {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}

// Strings renders every cell as text, for logging and alerts.
func (r FeatureRow) Strings() map[string]string {
	out := make(map[string]string, len(r))
	for k, v := range r {
		out[k] = v.String()
	}
	return out
}
