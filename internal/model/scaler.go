// Package model decodes serialized scaler and classifier artifacts.
package model

import (
	"encoding/json"
	"errors"
	"fmt"

	"diabetesai/internal/domain"
)

// ErrSchemaMismatch indicates an artifact was fit on different columns than the form produces.
var ErrSchemaMismatch = errors.New("artifact schema does not match input features")

// StandardScaler standardizes features as (x - mean) / scale.
type StandardScaler struct {
	FeatureNames []string  `json:"feature_names,omitempty"`
	Mean         []float64 `json:"mean"`
	Scale        []float64 `json:"scale"`
}

// DecodeScaler parses a scaler artifact and checks its shape.
func DecodeScaler(data []byte) (*StandardScaler, error) {
	var s StandardScaler
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode scaler: %w", err)
	}
	if len(s.Mean) != domain.FeatureCount || len(s.Scale) != domain.FeatureCount {
		return nil, fmt.Errorf("scaler: expected %d mean/scale values, got %d/%d",
			domain.FeatureCount, len(s.Mean), len(s.Scale))
	}
	if err := checkFeatureNames("scaler", s.FeatureNames); err != nil {
		return nil, err
	}
	return &s, nil
}

// Transform applies the stored affine transform. A zero scale is treated as 1.
func (s *StandardScaler) Transform(x []float64) ([]float64, error) {
	if len(x) != len(s.Mean) {
		return nil, fmt.Errorf("scaler: expected %d features, got %d", len(s.Mean), len(x))
	}
	out := make([]float64, len(x))
	for i, v := range x {
		scale := s.Scale[i]
		if scale == 0 {
			scale = 1
		}
		out[i] = (v - s.Mean[i]) / scale
	}
	return out, nil
}

// checkFeatureNames accepts artifacts without names; named artifacts must match exactly.
func checkFeatureNames(artifact string, names []string) error {
	if len(names) == 0 {
		return nil
	}
	if len(names) != domain.FeatureCount {
		return fmt.Errorf("%s: %d feature names: %w", artifact, len(names), ErrSchemaMismatch)
	}
	for i, n := range names {
		if n != domain.FeatureNames[i] {
			return fmt.Errorf("%s: column %d is %q, want %q: %w", artifact, i, n, domain.FeatureNames[i], ErrSchemaMismatch)
		}
	}
	return nil
}
