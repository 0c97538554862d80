package domain

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrArtifactNotFound is wrapped by artifact stores when a named artifact does not exist.
	ErrArtifactNotFound = errors.New("artifact not found")
	// ErrArtifactsMissing indicates the classifier or scaler artifact could not be found.
	// The prediction feature is disabled while it holds.
	ErrArtifactsMissing = errors.New("model files not found")
	// ErrInvalidLabel indicates the classifier produced something other than 0 or 1.
	ErrInvalidLabel = errors.New("classifier returned a non-binary label")
)

// Label is the binary outcome of a prediction.
type Label int

const (
	// LabelLowRisk is the negative class.
	LabelLowRisk Label = 0
	// LabelHighRisk is the positive class.
	LabelHighRisk Label = 1
)

// ParseLabel converts a raw classifier output into a Label.
func ParseLabel(v int64) (Label, error) {
	switch v {
	case 0:
		return LabelLowRisk, nil
	case 1:
		return LabelHighRisk, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidLabel, v)
	}
}

// Scaler applies the per-feature transform the classifier was trained behind.
type Scaler interface {
	Transform(x []float64) ([]float64, error)
}

// Classifier maps a scaled feature vector to a label.
type Classifier interface {
	Decide(x []float64) (Label, error)
}

// ModelLoader produces the classifier and scaler pair.
type ModelLoader interface {
	Load(ctx context.Context) (Classifier, Scaler, error)
}

// ArtifactStore is the port for reading serialized model artifacts by name.
type ArtifactStore interface {
	Artifact(ctx context.Context, name string) ([]byte, error)
}
