package handlers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/aml-detector/internal/batch"
	"github.com/sbilibin2017/aml-detector/internal/logger"
	"github.com/sbilibin2017/aml-detector/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}

// errorStatus maps domain errors to HTTP statuses. Unknown errors are hidden
// behind a generic message.
func errorStatus(err error) (int, string) {
	var (
		vErr     *models.ValidationError
		sErr     *models.SchemaMismatchError
		parseErr *csv.ParseError
		sizeErr  *http.MaxBytesError
	)
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &sErr):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, batch.ErrEmptyUpload), errors.As(err, &parseErr):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &sizeErr):
		return http.StatusRequestEntityTooLarge, "upload exceeds the size limit"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func writeDomainError(w http.ResponseWriter, err error) {
	status, msg := errorStatus(err)
	writeError(w, status, msg)
}
