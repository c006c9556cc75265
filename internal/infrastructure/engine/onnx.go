package engine

import (
	"context"
	"fmt"
	"math"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
	"gonum.org/v1/gonum/mat"

	"mediscan/internal/domain/entity"
	"mediscan/internal/domain/port"
)

// ONNXEngine runs a model exported with two outputs: the logits and the
// activations at the hooked layer. Gradients come from the analytic GAP+linear
// head path, so no backward graph is needed.
//
// Input and output tensors are pre-allocated and shared across calls; the
// mutex covers one full Forward, which copies logits and activations out of
// the shared buffers before returning. No state survives between calls, so
// concurrent callers each get their own pass back. Run replicas for parallel
// throughput.
type ONNXEngine struct {
	mu             sync.Mutex
	session        *ort.AdvancedSession
	meta           *Metadata
	inputTensor    *ort.Tensor[float32]
	logitsTensor   *ort.Tensor[float32]
	featuresTensor *ort.Tensor[float32]
	headWeights    *mat.Dense
}

// NewONNXEngine loads the model and its metadata. The returned engine holds
// the weights for the process lifetime; call Close on shutdown.
func NewONNXEngine(modelPath, metadataPath string) (*ONNXEngine, error) {
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("initialize onnx environment: %w", err)
	}

	meta, err := LoadMetadata(metadataPath)
	if err != nil {
		return nil, err
	}

	inputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(meta.InputShape...))
	if err != nil {
		return nil, fmt.Errorf("create input tensor: %w", err)
	}

	logitsTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(meta.LogitsShape...))
	if err != nil {
		inputTensor.Destroy()
		return nil, fmt.Errorf("create logits tensor: %w", err)
	}

	featuresTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(meta.FeaturesShape...))
	if err != nil {
		inputTensor.Destroy()
		logitsTensor.Destroy()
		return nil, fmt.Errorf("create features tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(modelPath,
		[]string{"input"}, []string{"logits", "features"},
		[]ort.ArbitraryTensor{inputTensor},
		[]ort.ArbitraryTensor{logitsTensor, featuresTensor},
		nil)
	if err != nil {
		inputTensor.Destroy()
		logitsTensor.Destroy()
		featuresTensor.Destroy()
		return nil, fmt.Errorf("create onnx session: %w", err)
	}

	return &ONNXEngine{
		session:        session,
		meta:           meta,
		inputTensor:    inputTensor,
		logitsTensor:   logitsTensor,
		featuresTensor: featuresTensor,
		headWeights:    headMatrix(meta),
	}, nil
}

// Forward runs inference and returns the raw logits together with the
// hooked-layer activations of the same pass. Deterministic at evaluation time.
func (e *ONNXEngine) Forward(ctx context.Context, input *entity.Tensor) (*port.ForwardResult, error) {
	_ = ctx

	e.mu.Lock()
	defer e.mu.Unlock()

	dst := e.inputTensor.GetData()
	if len(input.Data) != len(dst) {
		return nil, fmt.Errorf("input has %d values, model expects %d", len(input.Data), len(dst))
	}
	copy(dst, input.Data)

	if err := e.session.Run(); err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}

	acts, err := e.captureActivations()
	if err != nil {
		return nil, err
	}

	raw := e.logitsTensor.GetData()
	logits := make([]float64, len(raw))
	for i, v := range raw {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("non-finite logit at index %d: %w", i, port.ErrNumericInstability)
		}
		logits[i] = f
	}

	return &port.ForwardResult{Logits: logits, Activations: acts}, nil
}

func (e *ONNXEngine) captureActivations() (*entity.FeatureMap, error) {
	channels, height, width := e.meta.featureDims()
	raw := e.featuresTensor.GetData()
	fm := &entity.FeatureMap{
		Channels: channels,
		Height:   height,
		Width:    width,
		Data:     make([]float64, len(raw)),
	}
	for i, v := range raw {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("non-finite activation at index %d: %w", i, port.ErrNumericInstability)
		}
		fm.Data[i] = f
	}
	return fm, nil
}

// Gradients computes the hooked-layer gradient of one class logit via the
// analytic head path.
func (e *ONNXEngine) Gradients(layer string, classIndex int) (*entity.FeatureMap, error) {
	if layer != e.meta.HookedLayer {
		return nil, fmt.Errorf("layer %q is not hooked (model exports %q): %w",
			layer, e.meta.HookedLayer, port.ErrUnsupportedModel)
	}
	if e.headWeights == nil {
		return nil, fmt.Errorf("model metadata carries no head weights: %w", port.ErrUnsupportedModel)
	}

	_, height, width := e.meta.featureDims()
	return headGradients(e.headWeights, classIndex, height, width)
}

// Labels returns the pathology labels in logit order.
func (e *ONNXEngine) Labels() []string {
	return e.meta.Labels
}

// HookedLayer returns the layer name the exported model captures features at.
func (e *ONNXEngine) HookedLayer() string {
	return e.meta.HookedLayer
}

// Close releases the session, tensors and the ONNX environment.
func (e *ONNXEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.inputTensor != nil {
		e.inputTensor.Destroy()
	}
	if e.logitsTensor != nil {
		e.logitsTensor.Destroy()
	}
	if e.featuresTensor != nil {
		e.featuresTensor.Destroy()
	}
	if e.session != nil {
		e.session.Destroy()
	}
	return ort.DestroyEnvironment()
}

var _ port.ClassificationEngine = (*ONNXEngine)(nil)
