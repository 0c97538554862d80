package app_test

import (
	"context"

	"diabetesai/internal/domain"
)

// ---------------------------------------------------------------------------
// Mock collaborators (function-fields pattern)
// ---------------------------------------------------------------------------

type mockLoader struct {
	calls  int
	loadFn func(ctx context.Context) (domain.Classifier, domain.Scaler, error)
}

func (m *mockLoader) Load(ctx context.Context) (domain.Classifier, domain.Scaler, error) {
	m.calls++
	if m.loadFn != nil {
		return m.loadFn(ctx)
	}
	return &mockClassifier{}, identityScaler{}, nil
}

type identityScaler struct{}

func (identityScaler) Transform(x []float64) ([]float64, error) {
	return append([]float64(nil), x...), nil
}

type mockClassifier struct {
	calls    int
	seen     []float64
	decideFn func(x []float64) (domain.Label, error)
	closed   bool
}

func (m *mockClassifier) Decide(x []float64) (domain.Label, error) {
	m.calls++
	m.seen = x
	if m.decideFn != nil {
		return m.decideFn(x)
	}
	return domain.LabelLowRisk, nil
}

func (m *mockClassifier) Close() error {
	m.closed = true
	return nil
}
