package model

import (
	"errors"
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"diabetesai/internal/domain"
)

var (
	ortOnce sync.Once
	ortErr  error
)

// ErrClassifierClosed is returned by Decide after Close.
var ErrClassifierClosed = errors.New("onnx classifier is closed")

// initRuntime initializes the onnxruntime environment once per process.
func initRuntime(libPath string) error {
	ortOnce.Do(func() {
		if libPath != "" {
			ort.SetSharedLibraryPath(libPath)
		}
		if err := ort.InitializeEnvironment(); err != nil {
			ortErr = fmt.Errorf("failed to initialize ONNX environment: %w", err)
		}
	})
	return ortErr
}

// ONNXClassifier runs an exported classifier through onnxruntime. The session
// reuses preallocated tensors, so Decide calls are serialized.
type ONNXClassifier struct {
	mu           sync.Mutex
	session      *ort.AdvancedSession
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[int64]
}

// NewONNXClassifier creates a session over an in-memory ONNX model with a
// [1, FeatureCount] float input and a [1] int64 label output.
func NewONNXClassifier(libPath string, onnxData []byte, inputName, outputName string) (*ONNXClassifier, error) {
	if err := initRuntime(libPath); err != nil {
		return nil, err
	}

	inputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(1, domain.FeatureCount))
	if err != nil {
		return nil, fmt.Errorf("failed to create input tensor: %w", err)
	}

	outputTensor, err := ort.NewEmptyTensor[int64](ort.NewShape(1))
	if err != nil {
		inputTensor.Destroy()
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSessionWithONNXData(onnxData,
		[]string{inputName}, []string{outputName},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor},
		nil)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, fmt.Errorf("failed to create ONNX session: %w", err)
	}

	return &ONNXClassifier{
		session:      session,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
	}, nil
}

// Decide runs inference on a single scaled row.
func (c *ONNXClassifier) Decide(x []float64) (domain.Label, error) {
	if len(x) != domain.FeatureCount {
		return 0, fmt.Errorf("onnx classifier: expected %d features, got %d", domain.FeatureCount, len(x))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return 0, ErrClassifierClosed
	}
	in := c.inputTensor.GetData()
	for i, v := range x {
		in[i] = float32(v)
	}
	if err := c.session.Run(); err != nil {
		return 0, fmt.Errorf("inference failed: %w", err)
	}
	return domain.ParseLabel(c.outputTensor.GetData()[0])
}

// Close releases the native session and tensors. It is safe to call more than once.
func (c *ONNXClassifier) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	if c.session != nil {
		errs = append(errs, c.session.Destroy())
		c.session = nil
	}
	if c.inputTensor != nil {
		errs = append(errs, c.inputTensor.Destroy())
		c.inputTensor = nil
	}
	if c.outputTensor != nil {
		errs = append(errs, c.outputTensor.Destroy())
		c.outputTensor = nil
	}
	return errors.Join(errs...)
}
