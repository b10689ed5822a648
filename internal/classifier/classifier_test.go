package classifier

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sbilibin2017/aml-detector/internal/models"
	"github.com/sbilibin2017/aml-detector/internal/normalizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(bank string, amount float64, format string) models.FeatureRow {
	return models.FeatureRow{
		models.ColumnFromBank:          models.Text(bank),
		models.ColumnFromAccount:       models.Text("A1"),
		models.ColumnToBank:            models.Text("2"),
		models.ColumnToAccount:         models.Text("A2"),
		models.ColumnAmountReceived:    models.Numeric(amount),
		models.ColumnReceivingCurrency: models.Text("US Dollar"),
		models.ColumnAmountPaid:        models.Numeric(amount),
		models.ColumnPaymentCurrency:   models.Text("US Dollar"),
		models.ColumnPaymentFormat:     models.Text(format),
		models.ColumnDate:              models.Text("1640995200"),
	}
}

func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

func TestLoad_Success(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "model.json"))
	require.NoError(t, err)

	assert.Equal(t, "lightgbm_pipeline", c.Name())
	assert.Equal(t, "test-1", c.Version())
	assert.Equal(t, 0.5, c.Threshold())
	assert.Equal(t, 2, c.Trees())
	assert.Equal(t, normalizer.DateEpochSeconds, c.DateEncoding())
	assert.Equal(t, models.RequiredColumns, c.FeatureNames())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "does-not-exist.json"))

	var loadErr *models.LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, loadErr.Path, "does-not-exist.json")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_Corrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"not json", "this is not json", "decode artifact"},
		{"no features", `{"trees":[{"tree_structure":{"leaf_value":1}}]}`, "no feature names"},
		{"no trees", `{"feature_names":["a"],"trees":[]}`, "no trees"},
		{"bad objective", `{"objective":"regression","feature_names":["a"],"trees":[{"tree_structure":{"leaf_value":1}}]}`, "unsupported objective"},
		{"split out of range", `{"feature_names":["a"],"trees":[{"tree_structure":{"split_feature":3,"threshold":1,"left_child":{"leaf_value":0},"right_child":{"leaf_value":1}}}]}`, "out of range"},
		{"missing child", `{"feature_names":["a"],"trees":[{"tree_structure":{"split_feature":0,"threshold":1,"left_child":{"leaf_value":0}}}]}`, "missing tree node"},
		{"bad categorical threshold", `{"feature_names":["a"],"trees":[{"tree_structure":{"split_feature":0,"decision_type":"==","threshold":"x||y","left_child":{"leaf_value":0},"right_child":{"leaf_value":1}}}]}`, "categorical threshold"},
		{"unknown decision", `{"feature_names":["a"],"trees":[{"tree_structure":{"split_feature":0,"decision_type":">","threshold":1,"left_child":{"leaf_value":0},"right_child":{"leaf_value":1}}}]}`, "decision_type"},
		{"duplicate feature", `{"feature_names":["a","a"],"trees":[{"tree_structure":{"leaf_value":1}}]}`, "duplicate"},
		{"bad date encoding", `{"date_encoding":"julian","feature_names":["a"],"trees":[{"tree_structure":{"leaf_value":1}}]}`, "date encoding"},
		{"bad threshold", `{"threshold":1.5,"feature_names":["a"],"trees":[{"tree_structure":{"leaf_value":1}}]}`, "threshold"},
		{"undeclared categorical", `{"feature_names":["a"],"categorical":{"b":["x"]},"trees":[{"tree_structure":{"leaf_value":1}}]}`, "not a declared feature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "model.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := Load(path)
			var loadErr *models.LoadError
			require.True(t, errors.As(err, &loadErr), "expected LoadError, got %v", err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestPredict(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "model.json"))
	require.NoError(t, err)

	rows := []models.FeatureRow{
		row("1", 100, "ACH"),
		row("1", 100, "Bitcoin"),
		row("200", 50000, "Wire"),
		row("200", 100, "Cheque"),
	}

	verdicts := c.Predict(rows)
	require.Len(t, verdicts, len(rows))

	assert.Equal(t, models.NewVerdict(models.LabelLegitimate, sigmoid(-2.5)), verdicts[0])
	assert.Equal(t, models.NewVerdict(models.LabelSuspicious, sigmoid(1.5)), verdicts[1])
	assert.Equal(t, models.NewVerdict(models.LabelSuspicious, sigmoid(1.5)), verdicts[2])
	assert.Equal(t, models.NewVerdict(models.LabelLegitimate, sigmoid(-1.5)), verdicts[3])
	assert.Equal(t, models.TagSuspicious, verdicts[1].Tag)
	assert.Equal(t, models.TagLegitimate, verdicts[0].Tag)
}

func TestPredict_Idempotent(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "model.json"))
	require.NoError(t, err)

	rows := []models.FeatureRow{row("1", 100, "Cash"), row("7", 20000, "ACH")}
	assert.Equal(t, c.Predict(rows), c.Predict(rows))
}

func TestPredict_MissingValuesFollowDefaultDirection(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "model.json"))
	require.NoError(t, err)

	r := row("1", 100, "Barter")
	delete(r, models.ColumnAmountPaid)

	// unknown format goes right, missing amount goes left, bank 1 goes left
	v := c.Predict([]models.FeatureRow{r})
	assert.Equal(t, models.NewVerdict(models.LabelLegitimate, sigmoid(-2.5)), v[0])
}

func TestPredict_NumericCategoryCode(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "model.json"))
	require.NoError(t, err)

	r := row("1", 100, "ACH")
	r[models.ColumnPaymentFormat] = models.Numeric(6)

	v := c.Predict([]models.FeatureRow{r})
	assert.Equal(t, models.LabelSuspicious, v[0].Label)
}

func TestDecode_StringThresholdAndBareCategory(t *testing.T) {
	src := `{"feature_names":["a","b"],"categorical":{"b":["x","y"]},"trees":[
		{"tree_structure":{"split_feature":0,"threshold":"2.5","left_child":{"leaf_value":-1},"right_child":{"leaf_value":1}}},
		{"tree_structure":{"split_feature":1,"decision_type":"==","threshold":1,"left_child":{"leaf_value":3},"right_child":{"leaf_value":0}}}
	]}`
	c, err := Decode(strings.NewReader(src))
	require.NoError(t, err)

	v := c.Predict([]models.FeatureRow{
		{"a": models.Numeric(1), "b": models.Text("y")},
		{"a": models.Numeric(3), "b": models.Text("x")},
	})
	assert.InDelta(t, sigmoid(2), v[0].Score, 1e-12)
	assert.InDelta(t, sigmoid(1), v[1].Score, 1e-12)
}

func TestFeatureNames_ReturnsCopy(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "model.json"))
	require.NoError(t, err)

	names := c.FeatureNames()
	names[0] = "mutated"
	assert.Equal(t, models.ColumnFromBank, c.FeatureNames()[0])
}
