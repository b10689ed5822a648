package models

// ClassifyResponse represents a successful single-record classification
// swagger:model ClassifyResponse
type ClassifyResponse struct {
	// Verdict for the submitted record
	Verdict Verdict `json:"verdict"`

	// Human-readable message
	// example: This transaction does not appear to be suspicious.
	Message string `json:"message"`
}

// BatchRowResponse is the outcome of one uploaded row
// swagger:model BatchRowResponse
type BatchRowResponse struct {
	// Zero-based row index, header excluded
	// example: 0
	Row int `json:"row"`

	// Verdict, absent when the row failed validation
	Verdict *Verdict `json:"verdict,omitempty"`

	// Validation error naming the offending field
	// example: invalid field "Amount Paid": must be positive
	Error string `json:"error,omitempty"`
}

// BatchSummary counts verdicts of a batch
// swagger:model BatchSummary
type BatchSummary struct {
	// example: 10
	Total int `json:"total"`

	// example: 8
	Legitimate int `json:"legitimate"`

	// example: 1
	Suspicious int `json:"suspicious"`

	// example: 1
	Invalid int `json:"invalid"`

	// Rows labeled as laundering in the upload, when the column is present
	// example: 1
	LabeledLaundering *int `json:"labeled_laundering,omitempty"`
}

// BatchResponse represents a classified upload
// swagger:model BatchResponse
type BatchResponse struct {
	// Batch identifier, also carried by published alerts
	// example: 0b4d6c1e-3f57-4f6b-9a4e-1c2d3e4f5a6b
	BatchID string `json:"batch_id"`

	// Verdict counts
	Summary BatchSummary `json:"summary"`

	// Per-row outcomes in upload order
	Rows []BatchRowResponse `json:"rows"`
}

// ModelInfoResponse describes the loaded classifier
// swagger:model ModelInfoResponse
type ModelInfoResponse struct {
	// example: lightgbm_pipeline
	Name string `json:"name"`

	// example: 1
	Version string `json:"version"`

	// example: epoch_seconds
	DateEncoding string `json:"date_encoding"`

	// example: 0.5
	Threshold float64 `json:"threshold"`

	FeatureNames []string `json:"feature_names"`

	// example: 100
	Trees int `json:"trees"`
}

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: invalid field "Payment Format": must be one of ACH, Bitcoin, Cheque, Reinvestment, Credit Card, Wire, Cash
	Error string `json:"error"`
}

// Alert is published for every suspicious verdict.
type Alert struct {
	AlertID   string            `json:"alert_id"`  // AlertID is a unique identifier for the alert.
	BatchID   string            `json:"batch_id"`  // BatchID groups alerts of one request.
	Row       int               `json:"row"`       // Row is the zero-based index within the request.
	Tag       string            `json:"tag"`       // Tag is the verdict tag.
	Score     float64           `json:"score"`     // Score is the classifier probability.
	Features  map[string]string `json:"features"`  // Features is the classified row rendered as text.
	Timestamp int64             `json:"timestamp"` // Timestamp is the Unix time (seconds) of classification.
}
