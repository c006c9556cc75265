package port

import (
	"context"

	"mediscan/internal/domain/entity"
)

// ForwardResult is the product of one inference pass: the raw logits and the
// feature map captured at the hooked layer. Both come out of a single call so
// a caller's activations stay paired with its own logits when the engine is
// shared between requests.
type ForwardResult struct {
	Logits      []float64
	Activations *entity.FeatureMap
}

// ClassificationEngine is the boundary to the model runtime. Weights are
// loaded once and read-only; implementations must be safe for concurrent
// Forward calls, either by serializing access to shared buffers or by
// replicating per worker.
type ClassificationEngine interface {
	// Forward runs inference and returns the logits, one per label in
	// Labels() order, together with the activations captured at the hooked
	// layer during the same pass.
	Forward(ctx context.Context, input *entity.Tensor) (*ForwardResult, error)

	// Gradients returns the gradient of the logit at classIndex with respect
	// to the named layer, same shape as the activations.
	Gradients(layer string, classIndex int) (*entity.FeatureMap, error)

	// Labels returns the pathology labels in logit order.
	Labels() []string

	// Close releases the runtime.
	Close() error
}
