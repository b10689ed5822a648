package handlers

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/aml-detector/internal/batch"
	"github.com/sbilibin2017/aml-detector/internal/models"
	"github.com/sbilibin2017/aml-detector/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const uploadCSV = "Date,From Bank,Account,To Bank,Account,Amount Received,Receiving Currency,Amount Paid,Payment Currency,Payment Format\n" +
	"2022-09-01,10,8000EBD30,20,8000F5340,100,US Dollar,100,US Dollar,ACH\n" +
	"2022-09-01,0,8000EBD30,20,8000F5340,100,US Dollar,100,US Dollar,ACH\n"

func batchResult() *services.BatchResult {
	suspicious := models.NewVerdict(models.LabelSuspicious, 0.8)
	return &services.BatchResult{
		BatchID: "b-1",
		Batch: &batch.Batch{
			Header: []string{"Date", "From Bank"},
			Records: [][]string{
				{"2022-09-01", "10"},
				{"2022-09-01", "0"},
			},
		},
		Outcomes: []batch.Outcome{
			{Verdict: &suspicious},
			{Err: &models.ValidationError{Field: "from_bank", Reason: "must be non-zero"}},
		},
		Summary: models.BatchSummary{Total: 2, Suspicious: 1, Invalid: 1},
	}
}

func multipartBody(t *testing.T, field, content string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, "transactions.csv")
	require.NoError(t, err)
	_, err = io.WriteString(fw, content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestClassifyBatchHandler(t *testing.T) {
	tests := []struct {
		name               string
		newRequest         func(t *testing.T) *http.Request
		setupMocks         func(m *MockBatchClassifier)
		maxUploadBytes     int64
		expectedStatusCode int
	}{
		{
			name: "multipart upload",
			newRequest: func(t *testing.T) *http.Request {
				body, ct := multipartBody(t, UploadField, uploadCSV)
				req := httptest.NewRequest(http.MethodPost, "/api/v1/classify/batch", body)
				req.Header.Set("Content-Type", ct)
				return req
			},
			setupMocks: func(m *MockBatchClassifier) {
				m.EXPECT().ClassifyBatch(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, src io.Reader) (*services.BatchResult, error) {
						data, err := io.ReadAll(src)
						require.NoError(t, err)
						assert.Equal(t, uploadCSV, string(data))
						return batchResult(), nil
					})
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name: "raw csv body",
			newRequest: func(t *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/api/v1/classify/batch", strings.NewReader(uploadCSV))
				req.Header.Set("Content-Type", "text/csv")
				return req
			},
			setupMocks: func(m *MockBatchClassifier) {
				m.EXPECT().ClassifyBatch(gomock.Any(), gomock.Any()).Return(batchResult(), nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name: "missing file field",
			newRequest: func(t *testing.T) *http.Request {
				body, ct := multipartBody(t, "other", uploadCSV)
				req := httptest.NewRequest(http.MethodPost, "/api/v1/classify/batch", body)
				req.Header.Set("Content-Type", ct)
				return req
			},
			setupMocks:         func(m *MockBatchClassifier) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "schema mismatch",
			newRequest: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/api/v1/classify/batch", strings.NewReader("From Bank\n1\n"))
			},
			setupMocks: func(m *MockBatchClassifier) {
				m.EXPECT().ClassifyBatch(gomock.Any(), gomock.Any()).
					Return(nil, &models.SchemaMismatchError{Missing: []string{"Payment Format"}})
			},
			expectedStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name: "empty upload",
			newRequest: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/api/v1/classify/batch", strings.NewReader(""))
			},
			setupMocks: func(m *MockBatchClassifier) {
				m.EXPECT().ClassifyBatch(gomock.Any(), gomock.Any()).Return(nil, batch.ErrEmptyUpload)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "upload too large",
			newRequest: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/api/v1/classify/batch", strings.NewReader(uploadCSV))
			},
			setupMocks: func(m *MockBatchClassifier) {
				m.EXPECT().ClassifyBatch(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, src io.Reader) (*services.BatchResult, error) {
						_, err := io.ReadAll(src)
						return nil, err
					})
			},
			maxUploadBytes:     16,
			expectedStatusCode: http.StatusRequestEntityTooLarge,
		},
		{
			name: "service failure",
			newRequest: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/api/v1/classify/batch", strings.NewReader(uploadCSV))
			},
			setupMocks: func(m *MockBatchClassifier) {
				m.EXPECT().ClassifyBatch(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockBatchClassifier(ctrl)
			tt.setupMocks(svc)

			rr := httptest.NewRecorder()
			NewClassifyBatchHandler(svc, tt.maxUploadBytes).ServeHTTP(rr, tt.newRequest(t))

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			if tt.expectedStatusCode != http.StatusOK {
				var resp models.ErrorResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.NotEmpty(t, resp.Error)
				return
			}

			var resp models.BatchResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "b-1", resp.BatchID)
			assert.Equal(t, 1, resp.Summary.Invalid)
			require.Len(t, resp.Rows, 2)
			require.NotNil(t, resp.Rows[0].Verdict)
			assert.Equal(t, models.TagSuspicious, resp.Rows[0].Verdict.Tag)
			assert.Nil(t, resp.Rows[1].Verdict)
			assert.Contains(t, resp.Rows[1].Error, "from_bank")
		})
	}
}

func TestExportBatchHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockBatchClassifier(ctrl)
	svc.EXPECT().ClassifyBatch(gomock.Any(), gomock.Any()).Return(batchResult(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/classify/batch/export", strings.NewReader(uploadCSV))
	req.Header.Set("Content-Type", "text/csv")
	rr := httptest.NewRecorder()

	NewExportBatchHandler(svc, 0).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "predictions.csv")

	records, err := csv.NewReader(rr.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Date", "From Bank", batch.ColumnPrediction, batch.ColumnPredictionLabel, batch.ColumnError}, records[0])
	assert.Equal(t, []string{"2022-09-01", "10", "1", models.TagSuspicious, ""}, records[1])
	assert.Equal(t, "", records[2][2])
	assert.Contains(t, records[2][4], "from_bank")
}

func TestExportBatchHandler_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockBatchClassifier(ctrl)
	svc.EXPECT().ClassifyBatch(gomock.Any(), gomock.Any()).
		Return(nil, &models.SchemaMismatchError{Missing: []string{"Payment Format"}})

	rr := httptest.NewRecorder()
	NewExportBatchHandler(svc, 0).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("x\n")))

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}
