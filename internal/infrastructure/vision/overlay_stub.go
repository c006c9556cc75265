//go:build !gocv
// +build !gocv

package vision

import (
	"errors"

	"mediscan/internal/domain/entity"
)

// Render returns an error if the build lacks the gocv tag.
func (r *Renderer) Render(imageData []byte, saliency *entity.SaliencyMap) ([]byte, error) {
	_ = imageData
	_ = saliency
	return nil, errors.New("gocv build tag is not enabled")
}
