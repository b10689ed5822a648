package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/sbilibin2017/aml-detector/internal/models"
)

// Export column names appended to the uploaded header.
const (
	ColumnPrediction      = "Prediction"
	ColumnPredictionLabel = "Prediction Label"
	ColumnError           = "Error"
)

// Outcome is the classification result of one uploaded row.
type Outcome struct {
	Verdict *models.Verdict
	Err     error
}

// WriteExport writes the upload back with Prediction, Prediction Label and Error
// columns appended. Rows keep their order and original cells.
func WriteExport(dst io.Writer, b *Batch, outcomes []Outcome) error {
	if len(outcomes) != len(b.Records) {
		return fmt.Errorf("export: %d outcomes for %d rows", len(outcomes), len(b.Records))
	}

	w := csv.NewWriter(dst)
	header := make([]string, 0, len(b.Header)+3)
	header = append(header, b.Header...)
	header = append(header, ColumnPrediction, ColumnPredictionLabel, ColumnError)
	if err := w.Write(header); err != nil {
		return err
	}

	for i, record := range b.Records {
		line := make([]string, len(b.Header), len(b.Header)+3)
		copy(line, record)

		o := outcomes[i]
		switch {
		case o.Err != nil:
			line = append(line, "", "", o.Err.Error())
		case o.Verdict != nil:
			line = append(line, strconv.Itoa(o.Verdict.Label), o.Verdict.Tag, "")
		default:
			line = append(line, "", "", "")
		}
		if err := w.Write(line); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
