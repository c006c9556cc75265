//go:build gocv
// +build gocv

package vision

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"mediscan/internal/domain/entity"
	"mediscan/internal/domain/port"
)

// Render decodes the original, stretches it to the saliency resolution,
// blends in the color ramp and returns PNG bytes.
func (r *Renderer) Render(imageData []byte, saliency *entity.SaliencyMap) ([]byte, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err != nil || mat.Empty() {
		if !mat.Empty() {
			mat.Close()
		}
		return nil, fmt.Errorf("decode image: %w", port.ErrInvalidImage)
	}
	defer mat.Close()

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(mat, &resized, image.Pt(saliency.Width, saliency.Height), 0, 0, gocv.InterpolationLinear)

	heat, err := heatmapMat(saliency)
	if err != nil {
		return nil, err
	}
	defer heat.Close()

	blended := gocv.NewMat()
	defer blended.Close()
	gocv.AddWeighted(resized, originalWeight, heat, heatmapWeight, 0, &blended)

	buf, err := gocv.IMEncode(gocv.PNGFileExt, blended)
	if err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	defer buf.Close()

	out := make([]byte, buf.Len())
	copy(out, buf.GetBytes())
	return out, nil
}

// heatmapMat builds a BGR mat from the ramp-colorized saliency map.
func heatmapMat(saliency *entity.SaliencyMap) (gocv.Mat, error) {
	rgb := colorizeSaliency(saliency)
	// gocv mats are BGR ordered.
	bgr := make([]byte, len(rgb))
	for i := 0; i < len(rgb); i += 3 {
		bgr[i] = rgb[i+2]
		bgr[i+1] = rgb[i+1]
		bgr[i+2] = rgb[i]
	}
	return gocv.NewMatFromBytes(saliency.Height, saliency.Width, gocv.MatTypeCV8UC3, bgr)
}
