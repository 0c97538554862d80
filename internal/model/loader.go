package model

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"diabetesai/internal/domain"
)

// Default artifact names, resolved against the configured artifact store.
const (
	DefaultClassifierArtifact = "diabetes_model.json"
	DefaultScalerArtifact     = "scaler.json"
)

// Classifier descriptor types.
const (
	TypeLinear = "linear"
	TypeONNX   = "onnx"
)

// classifierDescriptor is the on-disk description of a classifier artifact.
type classifierDescriptor struct {
	Type         string    `json:"type"`
	FeatureNames []string  `json:"feature_names,omitempty"`
	Coef         []float64 `json:"coef,omitempty"`
	Intercept    float64   `json:"intercept,omitempty"`
	Threshold    float64   `json:"threshold,omitempty"`
	Model        string    `json:"model,omitempty"`
	Input        string    `json:"input,omitempty"`
	Output       string    `json:"output,omitempty"`
}

// Loader reads the classifier and scaler artifacts from a store.
type Loader struct {
	store          domain.ArtifactStore
	classifierName string
	scalerName     string
	onnxLibPath    string
}

// Option configures a Loader.
type Option func(*Loader)

// WithArtifactNames overrides the default artifact names.
func WithArtifactNames(classifier, scaler string) Option {
	return func(l *Loader) {
		if classifier != "" {
			l.classifierName = classifier
		}
		if scaler != "" {
			l.scalerName = scaler
		}
	}
}

// WithONNXRuntime sets the onnxruntime shared library used by ONNX classifiers.
func WithONNXRuntime(libPath string) Option {
	return func(l *Loader) { l.onnxLibPath = libPath }
}

// NewLoader creates a Loader over store.
func NewLoader(store domain.ArtifactStore, opts ...Option) *Loader {
	l := &Loader{
		store:          store,
		classifierName: DefaultClassifierArtifact,
		scalerName:     DefaultScalerArtifact,
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

var _ domain.ModelLoader = (*Loader)(nil)

// Load fetches and decodes both artifacts. If either artifact is absent the
// error wraps domain.ErrArtifactsMissing.
func (l *Loader) Load(ctx context.Context) (domain.Classifier, domain.Scaler, error) {
	classifierData, err := l.fetch(ctx, l.classifierName)
	if err != nil {
		return nil, nil, err
	}
	scalerData, err := l.fetch(ctx, l.scalerName)
	if err != nil {
		return nil, nil, err
	}

	scaler, err := DecodeScaler(scalerData)
	if err != nil {
		return nil, nil, err
	}
	classifier, err := l.decodeClassifier(ctx, classifierData)
	if err != nil {
		return nil, nil, err
	}
	return classifier, scaler, nil
}

func (l *Loader) fetch(ctx context.Context, name string) ([]byte, error) {
	data, err := l.store.Artifact(ctx, name)
	if errors.Is(err, domain.ErrArtifactNotFound) {
		return nil, fmt.Errorf("%w: %s", domain.ErrArtifactsMissing, name)
	}
	if err != nil {
		return nil, fmt.Errorf("read artifact %s: %w", name, err)
	}
	return data, nil
}

func (l *Loader) decodeClassifier(ctx context.Context, data []byte) (domain.Classifier, error) {
	var d classifierDescriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode classifier: %w", err)
	}
	if err := checkFeatureNames("classifier", d.FeatureNames); err != nil {
		return nil, err
	}

	switch d.Type {
	case TypeLinear:
		if len(d.Coef) != domain.FeatureCount {
			return nil, fmt.Errorf("linear classifier: expected %d coefficients, got %d", domain.FeatureCount, len(d.Coef))
		}
		return &LinearClassifier{Coef: d.Coef, Intercept: d.Intercept, Threshold: d.Threshold}, nil

	case TypeONNX:
		if d.Model == "" {
			return nil, errors.New("onnx classifier: missing model artifact name")
		}
		onnxData, err := l.fetch(ctx, d.Model)
		if err != nil {
			return nil, err
		}
		input, output := d.Input, d.Output
		if input == "" {
			input = "float_input"
		}
		if output == "" {
			output = "label"
		}
		return NewONNXClassifier(l.onnxLibPath, onnxData, input, output)

	default:
		return nil, fmt.Errorf("unknown classifier type %q", d.Type)
	}
}
