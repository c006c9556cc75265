package vision

import "mediscan/internal/domain/port"

// Fixed blend weights for the heatmap composite.
const (
	originalWeight = 0.6
	heatmapWeight  = 0.4
)

// Renderer composites a colorized saliency map over the original image and
// encodes the result as PNG. The original is stretched to the saliency
// resolution regardless of aspect ratio; non-square sources are deliberately
// not letterboxed.
type Renderer struct{}

// NewRenderer creates an overlay renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

var _ port.OverlayRenderer = (*Renderer)(nil)
