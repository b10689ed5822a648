package handlers

//go:generate mockgen -source=batch.go -destination=batch_mock.go -package=handlers

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/sbilibin2017/aml-detector/internal/batch"
	"github.com/sbilibin2017/aml-detector/internal/logger"
	"github.com/sbilibin2017/aml-detector/internal/middlewares"
	"github.com/sbilibin2017/aml-detector/internal/services"
)

// UploadField is the multipart field carrying the CSV.
const UploadField = "file"

// BatchClassifier defines the interface that the service must implement.
type BatchClassifier interface {
	ClassifyBatch(ctx context.Context, src io.Reader) (*services.BatchResult, error)
}

// NewClassifyBatchHandler returns an HTTP handler classifying an uploaded CSV.
// @Summary Classify a CSV batch
// @Description Classifies every row of an uploaded CSV. The upload is either a multipart form with a "file" field or a raw text/csv body. Rows failing validation are reported individually.
// @Tags classify
// @Accept multipart/form-data
// @Accept text/csv
// @Produce json
// @Param file formData file false "Transactions CSV"
// @Success 200 {object} models.BatchResponse "Per-row verdicts"
// @Failure 400 {object} models.ErrorResponse "Empty or malformed upload"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 413 {object} models.ErrorResponse "Upload too large"
// @Failure 422 {object} models.ErrorResponse "Required columns missing"
// @Router /classify/batch [post]
// @Security BearerAuth
func NewClassifyBatchHandler(svc BatchClassifier, maxUploadBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, ok := classifyUpload(w, r, svc, maxUploadBytes)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, res.Response())
	}
}

// NewExportBatchHandler returns an HTTP handler classifying an uploaded CSV and
// returning it with Prediction, Prediction Label and Error columns appended.
// @Summary Export batch predictions
// @Description Same input as /classify/batch. Responds with the uploaded CSV plus Prediction, Prediction Label and Error columns, rows in upload order.
// @Tags classify
// @Accept multipart/form-data
// @Accept text/csv
// @Produce text/csv
// @Param file formData file false "Transactions CSV"
// @Success 200 {file} file "Classified CSV"
// @Failure 400 {object} models.ErrorResponse "Empty or malformed upload"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 413 {object} models.ErrorResponse "Upload too large"
// @Failure 422 {object} models.ErrorResponse "Required columns missing"
// @Router /classify/batch/export [post]
// @Security BearerAuth
func NewExportBatchHandler(svc BatchClassifier, maxUploadBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, ok := classifyUpload(w, r, svc, maxUploadBytes)
		if !ok {
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="predictions.csv"`)
		w.WriteHeader(http.StatusOK)
		if err := batch.WriteExport(w, res.Batch, res.Outcomes); err != nil {
			logger.Log.Errorw("failed to write export", "batch_id", res.BatchID, "error", err)
		}
	}
}

func classifyUpload(w http.ResponseWriter, r *http.Request, svc BatchClassifier, maxUploadBytes int64) (*services.BatchResult, bool) {
	reqID := middlewares.RequestIDFromContext(r.Context())

	src, err := openUpload(w, r, maxUploadBytes)
	if err != nil {
		logger.Log.Warnw("failed to open upload", "request_id", reqID, "error", err)
		writeDomainError(w, err)
		return nil, false
	}
	defer src.Close()

	res, err := svc.ClassifyBatch(r.Context(), src)
	if err != nil {
		logger.Log.Warnw("failed to classify batch", "request_id", reqID, "error", err)
		writeDomainError(w, err)
		return nil, false
	}
	logger.Log.Infow("upload classified", "request_id", reqID, "batch_id", res.BatchID)
	return res, true
}

// openUpload returns the CSV of a multipart form or the raw request body.
func openUpload(w http.ResponseWriter, r *http.Request, maxUploadBytes int64) (io.ReadCloser, error) {
	if maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return r.Body, nil
	}

	file, _, err := r.FormFile(UploadField)
	if err != nil {
		var sizeErr *http.MaxBytesError
		if errors.As(err, &sizeErr) {
			return nil, err
		}
		if errors.Is(err, http.ErrMissingFile) {
			return nil, batch.ErrEmptyUpload
		}
		return nil, err
	}
	return file, nil
}
