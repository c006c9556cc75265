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

// Preprocess decodes, crops, resizes and normalizes the image.
func (p *Preprocessor) Preprocess(imageData []byte) (*entity.Tensor, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadGrayScale)
	if err != nil || mat.Empty() {
		if !mat.Empty() {
			mat.Close()
		}
		return nil, fmt.Errorf("decode image: %w", port.ErrInvalidImage)
	}
	defer mat.Close()

	// Center-crop to a square using the shorter side. No padding.
	side := minInt(mat.Cols(), mat.Rows())
	x := (mat.Cols() - side) / 2
	y := (mat.Rows() - side) / 2
	cropped := mat.Region(image.Rect(x, y, x+side, y+side))
	defer cropped.Close()

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(cropped, &resized, image.Pt(p.Size, p.Size), 0, 0, gocv.InterpolationArea)

	tensor := entity.NewTensor(1, 1, p.Size, p.Size)
	scale := (p.Range.Max - p.Range.Min) / 255.0
	for row := 0; row < p.Size; row++ {
		for col := 0; col < p.Size; col++ {
			v := float32(resized.GetUCharAt(row, col))
			tensor.Data[row*p.Size+col] = v*scale + p.Range.Min
		}
	}

	return tensor, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
