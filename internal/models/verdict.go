package models

// Verdict labels.
const (
	LabelLegitimate = 0
	LabelSuspicious = 1
)

// Verdict tags.
const (
	TagLegitimate = "Legitimate"
	TagSuspicious = "Suspicious"
)

// Verdict is the outcome of classifying one row.
// swagger:model Verdict
type Verdict struct {
	// Binary label, 1 means suspicious
	// example: 0
	Label int `json:"label"`

	// Human-readable tag
	// example: Legitimate
	Tag string `json:"tag"`

	// Positive-class probability reported by the classifier
	// example: 0.12
	Score float64 `json:"score"`
}

// NewVerdict derives the tag from the label.
func NewVerdict(label int, score float64) Verdict {
	tag := TagLegitimate
	if label == LabelSuspicious {
		tag = TagSuspicious
	}
	return Verdict{Label: label, Tag: tag, Score: score}
}

// Suspicious reports whether the verdict flags the transaction.
func (v Verdict) Suspicious() bool {
	return v.Label == LabelSuspicious
}
