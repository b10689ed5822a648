package handlers

//go:generate mockgen -source=health.go -destination=health_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/aml-detector/internal/logger"
)

// Pinger checks a backing store.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse is the body of /healthz.
// swagger:model HealthResponse
type HealthResponse struct {
	// example: ok
	Status string `json:"status"`
	// example: 2024.1
	ModelVersion string `json:"model_version"`
	// example: database unreachable
	Error string `json:"error,omitempty"`
}

// NewHealthzHandler returns a liveness handler. A nil pinger skips the
// database check.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service is healthy"
// @Failure 503 {object} handlers.HealthResponse "Database unreachable"
// @Router /healthz [get]
func NewHealthzHandler(model ModelDescriber, db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{Status: "ok", ModelVersion: model.Version()}

		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				logger.Log.Errorw("database ping failed", "error", err)
				resp.Status = "degraded"
				resp.Error = "database unreachable"
				writeJSON(w, http.StatusServiceUnavailable, resp)
				return
			}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
