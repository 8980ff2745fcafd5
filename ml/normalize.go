package ml

import (
	"math"
	"strconv"
)

// Vector is an ordered feature vector matching the artifact's feature
// list. Values are float64 after coercion; a value the normalizer
// could not map is carried through unchanged and will surface as an
// inference failure when the transform hits it.
type Vector struct {
	Names  []string
	Values []any
}

// The recognized binary token pairs. Tokens outside these pairs pass
// through unconverted, which mirrors the trained pipeline's input
// handling. Known sharp edge: an unmapped token on a feature the
// transform expects to be numeric fails the whole inference.
var binaryTokens = map[string]float64{
	"Y": 1, "N": 0,
	"y": 1, "n": 0,
	"yes": 1, "no": 0,
	"Yes": 1, "No": 0,
}

// MissingFeatures returns the required feature names entirely absent
// from the raw input. Checked before normalization; a non-empty result
// is a validation failure the caller reports with the missing list.
func (e *Engine) MissingFeatures(raw map[string]any) []string {
	var missing []string
	for _, name := range e.art.FeatureNames {
		if _, ok := raw[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Normalize converts raw submitted features into a model-ready vector
// ordered by the artifact's feature list. Best effort by contract:
// absent features default to 0, unparseable numerics become NaN (the
// transform imputes them to 0), binary tokens map to 1/0 and anything
// else passes through untouched.
func (e *Engine) Normalize(raw map[string]any) Vector {
	vec := Vector{
		Names:  e.art.FeatureNames,
		Values: make([]any, len(e.art.FeatureNames)),
	}
	for i, name := range e.art.FeatureNames {
		v, ok := raw[name]
		if !ok || v == nil {
			vec.Values[i] = float64(0)
			continue
		}
		if e.numeric[name] {
			f, ok := toFloat(v)
			if !ok {
				f = math.NaN() // unparseable marker, imputed downstream
			}
			vec.Values[i] = f
			continue
		}
		vec.Values[i] = normalizeValue(v)
	}
	return vec
}

func normalizeValue(v any) any {
	if f, ok := toFloat(v); ok {
		return f
	}
	return v
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case string:
		// Binary tokens first, so "N" on a numeric feature lands on 0
		// instead of failing the parse.
		if mapped, ok := binaryTokens[n]; ok {
			return mapped, true
		}
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
