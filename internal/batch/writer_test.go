package batch

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sbilibin2017/aml-detector/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteExport(t *testing.T) {
	b := &Batch{
		Header: []string{"Date", "Payment Format"},
		Records: [][]string{
			{"2022-09-01", "ACH"},
			{"2022-09-01", "Bitcoin"},
			{"bad", "ACH"},
		},
	}
	legit := models.NewVerdict(models.LabelLegitimate, 0.1)
	susp := models.NewVerdict(models.LabelSuspicious, 0.9)
	outcomes := []Outcome{
		{Verdict: &legit},
		{Verdict: &susp},
		{Err: &models.ValidationError{Field: "Date", Reason: "is required"}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteExport(&buf, b, outcomes))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Date,Payment Format,Prediction,Prediction Label,Error", lines[0])
	assert.Equal(t, "2022-09-01,ACH,0,Legitimate,", lines[1])
	assert.Equal(t, "2022-09-01,Bitcoin,1,Suspicious,", lines[2])
	assert.Equal(t, `bad,ACH,,,"invalid field ""Date"": is required"`, lines[3])
}

func TestWriteExport_LengthMismatch(t *testing.T) {
	b := &Batch{Header: []string{"Date"}, Records: [][]string{{"2022-09-01"}}}
	err := WriteExport(&bytes.Buffer{}, b, nil)
	assert.Error(t, err)
}
