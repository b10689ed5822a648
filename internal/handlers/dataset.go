package handlers

//go:generate mockgen -source=dataset.go -destination=dataset_mock.go -package=handlers

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sbilibin2017/aml-detector/internal/logger"
	"github.com/sbilibin2017/aml-detector/internal/models"
)

// DateLayout is the format of the date query parameter.
const DateLayout = "2006-01-02"

// DatasetImporter defines the interface that the service must implement.
type DatasetImporter interface {
	Import(ctx context.Context, src io.Reader) (int, error)
}

// DatasetLister defines the interface that the service must implement.
type DatasetLister interface {
	List(ctx context.Context, filter models.DatasetFilter) ([]models.DatasetTransaction, error)
}

// DatasetStats defines the aggregate queries the service must implement.
type DatasetStats interface {
	Summary(ctx context.Context) (models.DatasetSummary, error)             // totals
	TopDays(ctx context.Context, limit int) ([]models.DayCount, error)      // busiest days
	PaymentFormatCounts(ctx context.Context) ([]models.FormatCount, error)  // per format
	LaunderingCounts(ctx context.Context) ([]models.LaunderingCount, error) // per label
}

// NewDatasetImportHandler returns an HTTP handler loading a labeled CSV.
// @Summary Import labeled transactions
// @Description Loads a labeled transactions CSV (Timestamp or Date, banks, accounts, amounts, currencies, Payment Format, Is Laundering) into the dataset store. The import is atomic.
// @Tags dataset
// @Accept multipart/form-data
// @Accept text/csv
// @Produce json
// @Param file formData file false "Labeled transactions CSV"
// @Success 201 {object} models.ImportResponse "Rows imported"
// @Failure 400 {object} models.ErrorResponse "Invalid row"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 413 {object} models.ErrorResponse "Upload too large"
// @Failure 422 {object} models.ErrorResponse "Required columns missing"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /dataset [post]
// @Security BearerAuth
func NewDatasetImportHandler(svc DatasetImporter, maxUploadBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		src, err := openUpload(w, r, maxUploadBytes)
		if err != nil {
			logger.Log.Warnw("failed to open upload", "error", err)
			writeDomainError(w, err)
			return
		}
		defer src.Close()

		n, err := svc.Import(r.Context(), src)
		if err != nil {
			logger.Log.Warnw("failed to import dataset", "error", err)
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.ImportResponse{
			Message:  "Dataset imported",
			Imported: n,
		})
	}
}

// NewDatasetListHandler returns an HTTP handler listing stored transactions.
// @Summary List labeled transactions
// @Tags dataset
// @Produce json
// @Param date query string false "Day filter (YYYY-MM-DD)"
// @Param payment_format query []string false "Payment formats" collectionFormat(multi)
// @Param laundering query []int false "Laundering labels (0 or 1)" collectionFormat(multi)
// @Param limit query int false "Page size (default 100, max 1000)"
// @Param offset query int false "Rows to skip"
// @Success 200 {array} models.DatasetTransaction "Transactions"
// @Failure 400 {object} models.ErrorResponse "Invalid filter"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /dataset/transactions [get]
func NewDatasetListHandler(svc DatasetLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseDatasetFilter(r.URL.Query())
		if err != nil {
			writeDomainError(w, err)
			return
		}

		txs, err := svc.List(r.Context(), filter)
		if err != nil {
			logger.Log.Warnw("failed to list dataset", "error", err)
			writeDomainError(w, err)
			return
		}
		if txs == nil {
			txs = []models.DatasetTransaction{}
		}

		writeJSON(w, http.StatusOK, txs)
	}
}

// NewDatasetSummaryHandler returns an HTTP handler with dataset totals.
// @Summary Dataset summary
// @Tags dataset
// @Produce json
// @Success 200 {object} models.DatasetSummary "Totals"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /dataset/summary [get]
func NewDatasetSummaryHandler(svc DatasetStats) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sum, err := svc.Summary(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to summarize dataset", "error", err)
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sum)
	}
}

// NewTopDaysHandler returns an HTTP handler with the busiest days.
// @Summary Busiest days
// @Tags dataset
// @Produce json
// @Param limit query int false "Number of days (default 5)"
// @Success 200 {array} models.DayCount "Days, busiest first"
// @Failure 400 {object} models.ErrorResponse "Invalid limit"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /dataset/stats/top-days [get]
func NewTopDaysHandler(svc DatasetStats) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := intParam(r.URL.Query(), "limit")
		if err != nil {
			writeDomainError(w, err)
			return
		}

		days, err := svc.TopDays(r.Context(), limit)
		if err != nil {
			logger.Log.Warnw("failed to compute top days", "error", err)
			writeDomainError(w, err)
			return
		}
		if days == nil {
			days = []models.DayCount{}
		}
		writeJSON(w, http.StatusOK, days)
	}
}

// NewPaymentFormatStatsHandler returns an HTTP handler with per-format counts.
// @Summary Payment format distribution
// @Tags dataset
// @Produce json
// @Success 200 {array} models.FormatCount "Counts, largest first"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /dataset/stats/payment-formats [get]
func NewPaymentFormatStatsHandler(svc DatasetStats) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := svc.PaymentFormatCounts(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to count payment formats", "error", err)
			writeDomainError(w, err)
			return
		}
		if counts == nil {
			counts = []models.FormatCount{}
		}
		writeJSON(w, http.StatusOK, counts)
	}
}

// NewLaunderingStatsHandler returns an HTTP handler with per-label counts.
// @Summary Laundering label distribution
// @Tags dataset
// @Produce json
// @Success 200 {array} models.LaunderingCount "Counts per label"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /dataset/stats/laundering [get]
func NewLaunderingStatsHandler(svc DatasetStats) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := svc.LaunderingCounts(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to count laundering labels", "error", err)
			writeDomainError(w, err)
			return
		}
		if counts == nil {
			counts = []models.LaunderingCount{}
		}
		writeJSON(w, http.StatusOK, counts)
	}
}

func parseDatasetFilter(q url.Values) (models.DatasetFilter, error) {
	var (
		filter models.DatasetFilter
		err    error
	)

	if raw := q.Get("date"); raw != "" {
		day, err := time.Parse(DateLayout, raw)
		if err != nil {
			return filter, &models.ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
		}
		filter.Date = &day
	}

	filter.PaymentFormats = multiParam(q, "payment_format")

	for _, raw := range multiParam(q, "laundering") {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return filter, &models.ValidationError{Field: "laundering", Reason: "must be 0 or 1"}
		}
		filter.Laundering = append(filter.Laundering, v)
	}

	if filter.Limit, err = intParam(q, "limit"); err != nil {
		return filter, err
	}
	if filter.Offset, err = intParam(q, "offset"); err != nil {
		return filter, err
	}
	return filter, nil
}

// multiParam accepts both repeated and comma separated values.
func multiParam(q url.Values, name string) []string {
	var out []string
	for _, v := range q[name] {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func intParam(q url.Values, name string) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &models.ValidationError{Field: name, Reason: "must be an integer"}
	}
	return v, nil
}
