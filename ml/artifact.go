// Package ml wraps the trained PCOS classifier pipeline: feature
// normalization, the fitted scaling transform and the classifier
// itself. The artifact is loaded once at process start and treated as
// read-only for the process lifetime.
package ml

import (
	"encoding/json"
	"fmt"
	"os"
)

// Artifact is the JSON export of the trained pipeline: the ordered
// feature list, the fitted scaler statistics and the classifier
// weights, plus the training metadata exposed by the model-info
// endpoint.
type Artifact struct {
	ModelName       string         `json:"model_name"`
	FeatureNames    []string       `json:"feature_names"`
	NumericFeatures []string       `json:"numeric_features"`
	Hyperparameters map[string]any `json:"hyperparameters"`
	SamplingMethod  string         `json:"sampling_method"`
	SamplingRatio   string         `json:"sampling_ratio"`
	Scaler          Scaler         `json:"scaler"`
	Model           LinearModel    `json:"model"`
}

// Scaler holds the fitted standardization stats, one entry per feature
// in FeatureNames order.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// LinearModel is the classifier head. When HasProbability is false the
// model only exposes a hard decision (sign of the score) and no
// calibrated probability is reported.
type LinearModel struct {
	Coefficients   []float64 `json:"coefficients"`
	Intercept      float64   `json:"intercept"`
	HasProbability bool      `json:"has_probability"`
}

// LoadArtifact reads and validates a pipeline export.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var art Artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}
	if err := art.validate(); err != nil {
		return nil, err
	}
	return &art, nil
}

func (a *Artifact) validate() error {
	n := len(a.FeatureNames)
	if n == 0 {
		return fmt.Errorf("model artifact has no feature names")
	}
	if len(a.Scaler.Mean) != n || len(a.Scaler.Scale) != n {
		return fmt.Errorf("scaler stats do not match feature count (%d features, %d/%d stats)",
			n, len(a.Scaler.Mean), len(a.Scaler.Scale))
	}
	if len(a.Model.Coefficients) != n {
		return fmt.Errorf("model has %d coefficients for %d features", len(a.Model.Coefficients), n)
	}
	return nil
}
