//go:build !gocv
// +build !gocv

package vision

import (
	"errors"

	"mediscan/internal/domain/entity"
)

// Preprocess returns an error if the build lacks the gocv tag.
func (p *Preprocessor) Preprocess(imageData []byte) (*entity.Tensor, error) {
	_ = imageData
	return nil, errors.New("gocv build tag is not enabled")
}
