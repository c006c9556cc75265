package vision

import (
	"math"

	"mediscan/internal/domain/entity"
)

// rampColor maps a saliency value in [0,1] through the fixed blue→green→red
// ramp. The value is quantized to 8-bit intensity first, matching the raster
// the overlay is drawn into. Out-of-range values are clamped.
func rampColor(v float64) (r, g, b uint8) {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}

	q := int(math.Round(v * 255))
	if q <= 127 {
		// blue to green
		return 0, uint8(2 * q), uint8(255 - 2*q)
	}
	// green to red
	return uint8(2*q - 255), uint8(510 - 2*q), 0
}

// colorizeSaliency converts a saliency map into packed RGB triplets.
func colorizeSaliency(m *entity.SaliencyMap) []byte {
	rgb := make([]byte, 0, 3*len(m.Values))
	for _, v := range m.Values {
		r, g, b := rampColor(v)
		rgb = append(rgb, r, g, b)
	}
	return rgb
}
