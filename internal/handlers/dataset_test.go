package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/aml-detector/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetImportHandler(t *testing.T) {
	tests := []struct {
		name               string
		setupMocks         func(m *MockDatasetImporter)
		expectedStatusCode int
	}{
		{
			name: "imported",
			setupMocks: func(m *MockDatasetImporter) {
				m.EXPECT().Import(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, src io.Reader) (int, error) {
						data, err := io.ReadAll(src)
						require.NoError(t, err)
						assert.True(t, strings.HasPrefix(string(data), "Timestamp"))
						return 2, nil
					})
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name: "invalid row",
			setupMocks: func(m *MockDatasetImporter) {
				m.EXPECT().Import(gomock.Any(), gomock.Any()).
					Return(0, fmt.Errorf("line 3: %w", &models.ValidationError{Field: "is_laundering", Reason: "must be 0 or 1"}))
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "missing columns",
			setupMocks: func(m *MockDatasetImporter) {
				m.EXPECT().Import(gomock.Any(), gomock.Any()).
					Return(0, &models.SchemaMismatchError{Missing: []string{"Is Laundering"}})
			},
			expectedStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name: "database failure",
			setupMocks: func(m *MockDatasetImporter) {
				m.EXPECT().Import(gomock.Any(), gomock.Any()).Return(0, errors.New("db error"))
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockDatasetImporter(ctrl)
			tt.setupMocks(svc)

			body, ct := multipartBody(t, UploadField, "Timestamp,From Bank\n")
			req := httptest.NewRequest(http.MethodPost, "/api/v1/dataset", body)
			req.Header.Set("Content-Type", ct)
			rr := httptest.NewRecorder()

			NewDatasetImportHandler(svc, 1<<20).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			if tt.expectedStatusCode == http.StatusCreated {
				var resp models.ImportResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, 2, resp.Imported)
			}
		})
	}
}

func TestDatasetListHandler(t *testing.T) {
	day := time.Date(2022, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name               string
		query              string
		setupMocks         func(m *MockDatasetLister)
		expectedStatusCode int
		expectedRows       int
	}{
		{
			name:  "all filters",
			query: "?date=2022-09-01&payment_format=ACH&payment_format=Cheque,Wire&laundering=1&limit=10&offset=20",
			setupMocks: func(m *MockDatasetLister) {
				m.EXPECT().List(gomock.Any(), models.DatasetFilter{
					Date:           &day,
					PaymentFormats: []string{"ACH", "Cheque", "Wire"},
					Laundering:     []int{1},
					Limit:          10,
					Offset:         20,
				}).Return([]models.DatasetTransaction{{ID: 1}, {ID: 2}}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedRows:       2,
		},
		{
			name:  "no filters, empty result",
			query: "",
			setupMocks: func(m *MockDatasetLister) {
				m.EXPECT().List(gomock.Any(), models.DatasetFilter{}).Return(nil, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedRows:       0,
		},
		{
			name:               "bad date",
			query:              "?date=01.09.2022",
			setupMocks:         func(m *MockDatasetLister) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "bad laundering",
			query:              "?laundering=yes",
			setupMocks:         func(m *MockDatasetLister) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "bad limit",
			query:              "?limit=ten",
			setupMocks:         func(m *MockDatasetLister) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:  "service validation",
			query: "?payment_format=Barter",
			setupMocks: func(m *MockDatasetLister) {
				m.EXPECT().List(gomock.Any(), gomock.Any()).
					Return(nil, &models.ValidationError{Field: "payment_format", Reason: "unknown"})
			},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockDatasetLister(ctrl)
			tt.setupMocks(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/dataset/transactions"+tt.query, nil)
			rr := httptest.NewRecorder()

			NewDatasetListHandler(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			if tt.expectedStatusCode == http.StatusOK {
				var txs []models.DatasetTransaction
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&txs))
				assert.NotNil(t, txs)
				assert.Len(t, txs, tt.expectedRows)
			}
		})
	}
}

func TestDatasetStatsHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockDatasetStats(ctrl)

	t.Run("summary", func(t *testing.T) {
		svc.EXPECT().Summary(gomock.Any()).Return(models.DatasetSummary{TotalRecords: 4, LaunderingCases: 2}, nil)

		rr := httptest.NewRecorder()
		NewDatasetSummaryHandler(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/dataset/summary", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var sum models.DatasetSummary
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&sum))
		assert.Equal(t, int64(4), sum.TotalRecords)
	})

	t.Run("summary failure", func(t *testing.T) {
		svc.EXPECT().Summary(gomock.Any()).Return(models.DatasetSummary{}, errors.New("db error"))

		rr := httptest.NewRecorder()
		NewDatasetSummaryHandler(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/dataset/summary", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("top days", func(t *testing.T) {
		svc.EXPECT().TopDays(gomock.Any(), 3).Return([]models.DayCount{{Count: 5}}, nil)

		rr := httptest.NewRecorder()
		NewTopDaysHandler(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/dataset/stats/top-days?limit=3", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var days []models.DayCount
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&days))
		assert.Equal(t, int64(5), days[0].Count)
	})

	t.Run("top days bad limit", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewTopDaysHandler(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/dataset/stats/top-days?limit=x", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("payment formats", func(t *testing.T) {
		svc.EXPECT().PaymentFormatCounts(gomock.Any()).Return(nil, nil)

		rr := httptest.NewRecorder()
		NewPaymentFormatStatsHandler(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/dataset/stats/payment-formats", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("laundering", func(t *testing.T) {
		svc.EXPECT().LaunderingCounts(gomock.Any()).Return([]models.LaunderingCount{
			{IsLaundering: 0, Label: "Not Laundering", Count: 2},
			{IsLaundering: 1, Label: "Laundering", Count: 1},
		}, nil)

		rr := httptest.NewRecorder()
		NewLaunderingStatsHandler(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/dataset/stats/laundering", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var counts []models.LaunderingCount
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&counts))
		require.Len(t, counts, 2)
		assert.Equal(t, "Laundering", counts[1].Label)
	})
}
