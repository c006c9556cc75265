package vision

import (
	"mediscan/internal/domain/entity"
	"mediscan/internal/domain/port"
)

// PixelRange is the target intensity range an 8-bit pixel is mapped into.
type PixelRange struct {
	Min float32
	Max float32
}

// DefaultPixelRange matches the ±1024 input scale of the chest X-ray engine.
var DefaultPixelRange = PixelRange{Min: -1024, Max: 1024}

// Preprocessor converts raw image bytes into a normalized single-channel
// tensor: grayscale decode, center-crop to the shorter side, area resize to
// Size×Size, linear map of [0,255] into Range.
type Preprocessor struct {
	Size  int
	Range PixelRange
}

// NewPreprocessor creates a preprocessor at the display resolution with the
// default engine input range.
func NewPreprocessor() *Preprocessor {
	return &Preprocessor{
		Size:  entity.DisplaySize,
		Range: DefaultPixelRange,
	}
}

var _ port.ImagePreprocessor = (*Preprocessor)(nil)
