package vision

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"mediscan/internal/domain/entity"
	"mediscan/internal/domain/port"
)

// normEpsilon guards the min-max normalization against division by zero when
// the map is constant (for example after all-zero gradients).
const normEpsilon = 1e-8

// GradCAM produces gradient-weighted class activation maps through the
// engine's forward/gradient contract. Deterministic for fixed weights.
type GradCAM struct {
	Engine port.ClassificationEngine
	Layer  string
	Size   int
}

// NewGradCAM creates an explainer hooked at the given engine layer.
func NewGradCAM(engine port.ClassificationEngine, layer string) *GradCAM {
	return &GradCAM{
		Engine: engine,
		Layer:  layer,
		Size:   entity.DisplaySize,
	}
}

// Explain runs a forward pass, pairs its activations with the class gradients
// at the hooked layer, and returns the normalized saliency map at display
// size.
func (g *GradCAM) Explain(ctx context.Context, input *entity.Tensor, classIndex int) (*entity.SaliencyMap, error) {
	res, err := g.Engine.Forward(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("forward pass: %w", err)
	}

	acts := res.Activations
	if acts == nil {
		return nil, fmt.Errorf("forward pass captured no activations: %w", port.ErrUnsupportedModel)
	}

	grads, err := g.Engine.Gradients(g.Layer, classIndex)
	if err != nil {
		return nil, fmt.Errorf("capture gradients: %w", err)
	}

	if !acts.SameShape(grads) {
		return nil, fmt.Errorf("activation shape %dx%dx%d does not match gradient shape %dx%dx%d: %w",
			acts.Channels, acts.Height, acts.Width, grads.Channels, grads.Height, grads.Width,
			port.ErrUnsupportedModel)
	}

	hw := acts.Height * acts.Width
	if acts.Channels == 0 || hw == 0 {
		return nil, fmt.Errorf("empty activation map: %w", port.ErrUnsupportedModel)
	}

	// Weight each channel by its mean gradient, accumulate, then ReLU.
	cam := make([]float64, hw)
	for c := 0; c < acts.Channels; c++ {
		weight := floats.Sum(grads.Channel(c)) / float64(hw)
		floats.AddScaled(cam, weight, acts.Channel(c))
	}
	for i, v := range cam {
		if v < 0 {
			cam[i] = 0
		}
	}

	// Min-max normalize into [0,1]. A constant map stays constant at zero.
	low := floats.Min(cam)
	span := floats.Max(cam) - low + normEpsilon
	for i := range cam {
		cam[i] = (cam[i] - low) / span
	}

	return &entity.SaliencyMap{
		Width:  g.Size,
		Height: g.Size,
		Values: resizeBilinear(cam, acts.Width, acts.Height, g.Size, g.Size),
	}, nil
}

var _ port.Explainer = (*GradCAM)(nil)
