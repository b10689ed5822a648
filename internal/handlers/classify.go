package handlers

//go:generate mockgen -source=classify.go -destination=classify_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/aml-detector/internal/logger"
	"github.com/sbilibin2017/aml-detector/internal/middlewares"
	"github.com/sbilibin2017/aml-detector/internal/models"
)

// Verdict messages shown to the analyst.
const (
	MessageLegitimate = "This transaction does not appear to be suspicious."
	MessageSuspicious = "This transaction is suspicious and may indicate money laundering!"
)

// RecordClassifier defines the interface that the service must implement.
type RecordClassifier interface {
	ClassifyRecord(ctx context.Context, rec models.TransactionRecord) (models.Verdict, error)
}

// NewClassifyHandler returns an HTTP handler classifying one transaction.
// @Summary Classify a transaction
// @Description Validates a single transaction, normalizes it and returns the classifier verdict. Every field is required; banks must be non-zero and amounts positive.
// @Tags classify
// @Accept json
// @Produce json
// @Param request body models.TransactionRecord true "Transaction"
// @Success 200 {object} models.ClassifyResponse "Verdict"
// @Failure 400 {object} models.ErrorResponse "Invalid field"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 422 {object} models.ErrorResponse "Classifier columns missing"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /classify [post]
// @Security BearerAuth
func NewClassifyHandler(svc RecordClassifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var rec models.TransactionRecord
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			logger.Log.Warnw("failed to decode transaction", "request_id", middlewares.RequestIDFromContext(ctx), "error", err)
			var vErr *models.ValidationError
			if errors.As(err, &vErr) {
				writeError(w, http.StatusBadRequest, vErr.Error())
				return
			}
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		verdict, err := svc.ClassifyRecord(ctx, rec)
		if err != nil {
			logger.Log.Warnw("failed to classify transaction", "request_id", middlewares.RequestIDFromContext(ctx), "error", err)
			writeDomainError(w, err)
			return
		}

		msg := MessageLegitimate
		if verdict.Suspicious() {
			msg = MessageSuspicious
		}

		writeJSON(w, http.StatusOK, models.ClassifyResponse{
			Verdict: verdict,
			Message: msg,
		})
	}
}
