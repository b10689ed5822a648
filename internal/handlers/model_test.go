package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/aml-detector/internal/models"
	"github.com/sbilibin2017/aml-detector/internal/normalizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelInfoHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	model := NewMockModelDescriber(ctrl)
	model.EXPECT().Name().Return("aml-gbdt")
	model.EXPECT().Version().Return("2024.1")
	model.EXPECT().Threshold().Return(0.5)
	model.EXPECT().Trees().Return(3)
	model.EXPECT().DateEncoding().Return(normalizer.DateEpochSeconds)
	model.EXPECT().FeatureNames().Return([]string{"Date", "From Bank"})

	rr := httptest.NewRecorder()
	NewModelInfoHandler(model).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/model", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var info models.ModelInfoResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&info))
	assert.Equal(t, models.ModelInfoResponse{
		Name:         "aml-gbdt",
		Version:      "2024.1",
		DateEncoding: "epoch_seconds",
		Threshold:    0.5,
		FeatureNames: []string{"Date", "From Bank"},
		Trees:        3,
	}, info)
}

func TestHealthzHandler(t *testing.T) {
	tests := []struct {
		name               string
		withDB             bool
		pingErr            error
		expectedStatusCode int
		expectedStatus     string
	}{
		{name: "no database", expectedStatusCode: http.StatusOK, expectedStatus: "ok"},
		{name: "database up", withDB: true, expectedStatusCode: http.StatusOK, expectedStatus: "ok"},
		{name: "database down", withDB: true, pingErr: errors.New("refused"), expectedStatusCode: http.StatusServiceUnavailable, expectedStatus: "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			model := NewMockModelDescriber(ctrl)
			model.EXPECT().Version().Return("2024.1")

			var db Pinger
			if tt.withDB {
				p := NewMockPinger(ctrl)
				p.EXPECT().PingContext(gomock.Any()).Return(tt.pingErr)
				db = p
			}

			rr := httptest.NewRecorder()
			NewHealthzHandler(model, db).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			var resp HealthResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedStatus, resp.Status)
			assert.Equal(t, "2024.1", resp.ModelVersion)
		})
	}
}
