// Package classifier loads a serialized gradient-boosted tree ensemble and
// evaluates it against normalized feature rows.
//
// A Classifier is immutable after Load and safe for concurrent use.
package classifier

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/sbilibin2017/aml-detector/internal/logger"
	"github.com/sbilibin2017/aml-detector/internal/models"
	"github.com/sbilibin2017/aml-detector/internal/normalizer"
)

const defaultThreshold = 0.5

// Classifier is a loaded binary tree ensemble.
type Classifier struct {
	name         string
	version      string
	threshold    float64
	dateEncoding normalizer.DateEncoding
	features     []string
	categories   map[string]map[string]int
	initScore    float64
	trees        []*node
}

// Load reads the artifact at path. Any failure is reported as *models.LoadError.
func Load(path string) (*Classifier, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &models.LoadError{Path: path, Err: err}
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, &models.LoadError{Path: path, Err: err}
	}

	logger.Log.Infow("classifier loaded",
		"path", path,
		"name", c.name,
		"version", c.version,
		"trees", len(c.trees),
		"features", len(c.features),
		"date_encoding", c.dateEncoding,
	)
	return c, nil
}

// Decode parses an artifact from r.
func Decode(r io.Reader) (*Classifier, error) {
	var a artifact
	dec := json.NewDecoder(r)
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	if err := a.validate(); err != nil {
		return nil, err
	}

	enc, err := normalizer.ParseDateEncoding(a.DateEncoding)
	if err != nil {
		return nil, err
	}

	c := &Classifier{
		name:         a.Name,
		version:      a.Version,
		threshold:    defaultThreshold,
		dateEncoding: enc,
		features:     append([]string(nil), a.FeatureNames...),
		categories:   make(map[string]map[string]int, len(a.Categorical)),
		initScore:    a.InitScore,
		trees:        make([]*node, 0, len(a.Trees)),
	}
	if a.Threshold != nil {
		c.threshold = *a.Threshold
	}
	for name, levels := range a.Categorical {
		idx := make(map[string]int, len(levels))
		for i, level := range levels {
			idx[level] = i
		}
		c.categories[name] = idx
	}
	for i, t := range a.Trees {
		root, err := compile(t.TreeStructure, len(c.features), 0)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
		c.trees = append(c.trees, root)
	}
	return c, nil
}

// Name returns the artifact name.
func (c *Classifier) Name() string { return c.name }

// Version returns the artifact version.
func (c *Classifier) Version() string { return c.version }

// Threshold returns the probability at or above which a row is labeled suspicious.
func (c *Classifier) Threshold() float64 { return c.threshold }

// Trees returns the number of trees in the ensemble.
func (c *Classifier) Trees() int { return len(c.trees) }

// DateEncoding returns the date representation the model was trained on.
func (c *Classifier) DateEncoding() normalizer.DateEncoding { return c.dateEncoding }

// FeatureNames returns the expected feature columns in training order.
func (c *Classifier) FeatureNames() []string {
	return append([]string(nil), c.features...)
}

// Predict returns one verdict per row in input order. Columns absent from a row
// are treated as missing values.
func (c *Classifier) Predict(rows []models.FeatureRow) []models.Verdict {
	out := make([]models.Verdict, len(rows))
	x := make([]float64, len(c.features))
	for i, row := range rows {
		c.encode(row, x)
		p := c.probability(x)
		label := models.LabelLegitimate
		if p >= c.threshold {
			label = models.LabelSuspicious
		}
		out[i] = models.NewVerdict(label, p)
	}
	return out
}

func (c *Classifier) probability(x []float64) float64 {
	raw := c.initScore
	for _, t := range c.trees {
		raw += t.eval(x)
	}
	return 1 / (1 + math.Exp(-raw))
}

func (c *Classifier) encode(row models.FeatureRow, x []float64) {
	for i, name := range c.features {
		v, ok := row[name]
		if !ok {
			x[i] = math.NaN()
			continue
		}
		x[i] = c.encodeValue(name, v)
	}
}

func (c *Classifier) encodeValue(name string, v models.FeatureValue) float64 {
	if levels, ok := c.categories[name]; ok {
		if v.Kind == models.FeatureNumeric {
			return v.Num
		}
		if code, ok := levels[v.Text]; ok {
			return float64(code)
		}
		return math.NaN()
	}
	if v.Kind == models.FeatureNumeric {
		return v.Num
	}
	f, err := strconv.ParseFloat(v.Text, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

func (n *node) eval(x []float64) float64 {
	for !n.leaf {
		v := x[n.feature]
		var left bool
		switch {
		case math.IsNaN(v):
			left = n.defaultLeft
		case n.categorical:
			_, left = n.categories[int(v)]
		default:
			left = v <= n.threshold
		}
		if left {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.value
}
