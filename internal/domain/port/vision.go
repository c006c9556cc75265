package port

import (
	"context"

	"mediscan/internal/domain/entity"
)

// ImagePreprocessor turns raw image bytes into a model-ready tensor.
type ImagePreprocessor interface {
	Preprocess(imageData []byte) (*entity.Tensor, error)
}

// Explainer produces a saliency map for one target class.
type Explainer interface {
	Explain(ctx context.Context, input *entity.Tensor, classIndex int) (*entity.SaliencyMap, error)
}

// OverlayRenderer composites a saliency map over the original image and
// returns encoded PNG bytes at the display resolution.
type OverlayRenderer interface {
	Render(imageData []byte, saliency *entity.SaliencyMap) ([]byte, error)
}
