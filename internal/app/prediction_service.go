// Package app holds the application services.
package app

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"diabetesai/internal/domain"
)

// ErrClosed is returned once the service has been closed.
var ErrClosed = errors.New("prediction service closed")

// PredictionService runs patient inputs through the scaler and classifier.
// The artifacts are loaded at most once and are read-only afterwards.
type PredictionService struct {
	loader domain.ModelLoader
	delay  time.Duration

	mu         sync.Mutex
	loaded     bool
	loadErr    error
	classifier domain.Classifier
	scaler     domain.Scaler
}

// NewPredictionService creates a PredictionService backed by loader. A positive
// delay is waited out before each prediction.
func NewPredictionService(loader domain.ModelLoader, delay time.Duration) *PredictionService {
	return &PredictionService{loader: loader, delay: delay}
}

// Load loads the artifacts if that has not happened yet. A successful load and
// a missing-artifacts outcome are both final; other errors are retried on the
// next call.
func (s *PredictionService) Load(ctx context.Context) error {
	_, _, err := s.models(ctx)
	return err
}

// Available reports whether predictions can be served.
func (s *PredictionService) Available(ctx context.Context) bool {
	return s.Load(ctx) == nil
}

// Predict returns the label for in. It returns domain.ErrArtifactsMissing
// without touching any model when the artifacts are unavailable.
func (s *PredictionService) Predict(ctx context.Context, in domain.PatientInput) (domain.Label, error) {
	classifier, scaler, err := s.models(ctx)
	if err != nil {
		return 0, err
	}

	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return 0, ctx.Err()
		case <-t.C:
		}
	}

	scaled, err := scaler.Transform(in.Vector())
	if err != nil {
		return 0, err
	}
	return classifier.Decide(scaled)
}

// Close releases classifier resources held outside the Go heap. Later
// predictions fail with ErrClosed and the loader is not consulted again.
func (s *PredictionService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if c, ok := s.classifier.(io.Closer); ok {
		err = c.Close()
	}
	s.classifier, s.scaler = nil, nil
	s.loaded, s.loadErr = true, ErrClosed
	return err
}

func (s *PredictionService) models(ctx context.Context) (domain.Classifier, domain.Scaler, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.classifier, s.scaler, s.loadErr
	}

	classifier, scaler, err := s.loader.Load(ctx)
	switch {
	case err == nil:
		s.classifier, s.scaler = classifier, scaler
	case errors.Is(err, domain.ErrArtifactsMissing):
		s.loadErr = err
	default:
		return nil, nil, err
	}
	s.loaded = true
	return s.classifier, s.scaler, s.loadErr
}
