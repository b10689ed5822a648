package handlers

//go:generate mockgen -source=model.go -destination=model_mock.go -package=handlers

import (
	"net/http"

	"github.com/sbilibin2017/aml-detector/internal/models"
	"github.com/sbilibin2017/aml-detector/internal/normalizer"
)

// ModelDescriber exposes the loaded classifier metadata.
type ModelDescriber interface {
	Name() string                          // artifact name
	Version() string                       // artifact version
	Threshold() float64                    // decision threshold
	Trees() int                            // ensemble size
	DateEncoding() normalizer.DateEncoding // date feature encoding
	FeatureNames() []string                // expected columns in order
}

// NewModelInfoHandler returns an HTTP handler describing the loaded classifier.
// @Summary Classifier metadata
// @Description Returns the name, version, threshold and expected feature columns of the loaded classifier.
// @Tags model
// @Produce json
// @Success 200 {object} models.ModelInfoResponse "Classifier metadata"
// @Router /model [get]
func NewModelInfoHandler(model ModelDescriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.ModelInfoResponse{
			Name:         model.Name(),
			Version:      model.Version(),
			DateEncoding: string(model.DateEncoding()),
			Threshold:    model.Threshold(),
			FeatureNames: model.FeatureNames(),
			Trees:        model.Trees(),
		})
	}
}
