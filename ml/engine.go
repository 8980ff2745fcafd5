package ml

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrModelUnavailable means no trained artifact could be loaded.
	ErrModelUnavailable = errors.New("model artifact not available")
	// ErrInference wraps any failure inside the transform or the
	// classifier for a specific call. Never retried.
	ErrInference = errors.New("inference failed")
)

// Risk levels
const (
	RiskLow      = "low"
	RiskModerate = "moderate"
	RiskHigh     = "high"
)

// Decision threshold on the positive-class probability. The boundary
// itself classifies as positive.
const threshold = 0.5

// Recommendation text keyed by prediction, fixed by product copy.
const (
	recommendPositive = "Please consult with a healthcare provider for further evaluation and management."
	recommendNegative = "Continue routine health monitoring."
)

// Engine applies the fitted preprocessing transform and the classifier.
// Stateless per call; persisting results is the caller's concern.
type Engine struct {
	art     *Artifact
	numeric map[string]bool
}

func NewEngine(path string) (*Engine, error) {
	art, err := LoadArtifact(path)
	if err != nil {
		return nil, err
	}
	return newEngine(art), nil
}

func newEngine(art *Artifact) *Engine {
	numeric := make(map[string]bool, len(art.NumericFeatures))
	for _, name := range art.NumericFeatures {
		numeric[name] = true
	}
	return &Engine{art: art, numeric: numeric}
}

// Result is one inference outcome. Probability is nil when the
// classifier only exposes a hard decision.
type Result struct {
	Prediction     int
	Probability    *float64
	RiskLevel      string
	Recommendation string
}

// Infer runs the scaling transform and the classifier over a
// normalized vector.
func (e *Engine) Infer(vec Vector) (*Result, error) {
	if e == nil || e.art == nil {
		return nil, ErrModelUnavailable
	}
	if len(vec.Values) != len(e.art.FeatureNames) {
		return nil, fmt.Errorf("%w: vector has %d values for %d features", ErrInference, len(vec.Values), len(e.art.FeatureNames))
	}

	score := e.art.Model.Intercept
	for i, raw := range vec.Values {
		f, ok := raw.(float64)
		if !ok {
			return nil, fmt.Errorf("%w: feature %q has non-numeric value %v", ErrInference, vec.Names[i], raw)
		}
		if math.IsNaN(f) {
			f = 0
		}
		scale := e.art.Scaler.Scale[i]
		if scale == 0 {
			scale = 1
		}
		scaled := (f - e.art.Scaler.Mean[i]) / scale
		score += e.art.Model.Coefficients[i] * scaled
	}

	res := &Result{}
	if e.art.Model.HasProbability {
		p := sigmoid(score)
		res.Probability = &p
		if p >= threshold {
			res.Prediction = 1
		}
	} else if score >= 0 {
		res.Prediction = 1
	}

	res.RiskLevel = riskLevel(res.Prediction, res.Probability)
	if res.Prediction == 1 {
		res.Recommendation = recommendPositive
	} else {
		res.Recommendation = recommendNegative
	}
	return res, nil
}

// FeatureNames returns the required feature list in model order.
func (e *Engine) FeatureNames() []string {
	return e.art.FeatureNames
}

// Info describes the loaded model for the model-info endpoint.
func (e *Engine) Info() map[string]any {
	return map[string]any{
		"model_type":      e.art.ModelName,
		"hyperparameters": e.art.Hyperparameters,
		"features":        e.art.FeatureNames,
		"sampling_method": orUnknown(e.art.SamplingMethod),
		"sampling_ratio":  orUnknown(e.art.SamplingRatio),
	}
}

func riskLevel(prediction int, probability *float64) string {
	if prediction == 0 {
		return RiskLow
	}
	if probability != nil && *probability > 0.75 {
		return RiskHigh
	}
	return RiskModerate
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
