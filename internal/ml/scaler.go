package ml

import (
	"fmt"
)

// ScalerArtifact is the serialised form of a fitted standard scaler.
type ScalerArtifact struct {
	Features []string  `json:"features"`
	Mean     []float64 `json:"mean"`
	Scale    []float64 `json:"scale"`
}

// Scaler normalises raw feature records the same way the training pipeline did.
type Scaler struct {
	features []string
	index    map[string]int
	mean     []float64
	scale    []float64
}

// NewScaler creates a scaler from the given artifact.
func NewScaler(artifact ScalerArtifact) (*Scaler, error) {
	n := len(artifact.Features)
	if n == 0 {
		return nil, fmt.Errorf("scaler has no features")
	}
	if len(artifact.Mean) != n || len(artifact.Scale) != n {
		return nil, fmt.Errorf("inconsistent scaler dimensions: %d features vs %d mean vs %d scale",
			n, len(artifact.Mean), len(artifact.Scale))
	}
	index := make(map[string]int, n)
	for i, f := range artifact.Features {
		if _, ok := index[f]; ok {
			return nil, fmt.Errorf("duplicate feature '%s'", f)
		}
		index[f] = i
	}
	for i, s := range artifact.Scale {
		if s == 0 {
			return nil, fmt.Errorf("zero scale for feature '%s'", artifact.Features[i])
		}
	}
	return &Scaler{
		features: artifact.Features,
		index:    index,
		mean:     artifact.Mean,
		scale:    artifact.Scale,
	}, nil
}

// Features returns the feature names in training column order.
func (s *Scaler) Features() []string {
	features := make([]string, len(s.features))
	copy(features, s.features)
	return features
}

// Size returns the number of features the scaler was fitted on.
func (s *Scaler) Size() int {
	return len(s.features)
}

// Vectorize aligns the raw record to the training column order.
// missing features default to zero , unknown fields are dropped.
func (s *Scaler) Vectorize(record map[string]float64) []float64 {
	x := make([]float64, len(s.features))
	for name, value := range record {
		if i, ok := s.index[name]; ok {
			x[i] = value
		}
	}
	return x
}

// Transform scales the aligned vector feature by feature.
func (s *Scaler) Transform(x []float64) ([]float64, error) {
	if len(x) != len(s.features) {
		return nil, fmt.Errorf("inconsistent vector size: %d vs %d", len(x), len(s.features))
	}
	xx := make([]float64, len(x))
	for i, v := range x {
		xx[i] = (v - s.mean[i]) / s.scale[i]
	}
	return xx, nil
}
