package engine

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"mediscan/internal/domain/entity"
	"mediscan/internal/domain/port"
)

// headGradients computes hooked-layer gradients for a model whose classifier
// head is global average pooling followed by one linear layer. For that head
// the backward pass has a closed form:
//
//	d logit_k / d A[c,h,w] = W[k,c] / (H*W)
//
// which is exact for DenseNet-121 and every other GAP+linear architecture.
func headGradients(weights *mat.Dense, classIndex, height, width int) (*entity.FeatureMap, error) {
	rows, cols := weights.Dims()
	if classIndex < 0 || classIndex >= rows {
		return nil, fmt.Errorf("class index %d outside head with %d outputs: %w",
			classIndex, rows, port.ErrUnsupportedModel)
	}

	hw := float64(height * width)
	fm := &entity.FeatureMap{
		Channels: cols,
		Height:   height,
		Width:    width,
		Data:     make([]float64, cols*height*width),
	}

	for c := 0; c < cols; c++ {
		g := weights.At(classIndex, c) / hw
		if math.IsNaN(g) || math.IsInf(g, 0) {
			return nil, fmt.Errorf("non-finite gradient in channel %d: %w", c, port.ErrNumericInstability)
		}
		channel := fm.Channel(c)
		for i := range channel {
			channel[i] = g
		}
	}

	return fm, nil
}

// headMatrix flattens metadata head weights into a dense matrix. Returns nil
// when the export carries no head weights.
func headMatrix(meta *Metadata) *mat.Dense {
	if len(meta.HeadWeights) == 0 {
		return nil
	}
	rows := len(meta.HeadWeights)
	cols := len(meta.HeadWeights[0])
	flat := make([]float64, 0, rows*cols)
	for _, row := range meta.HeadWeights {
		flat = append(flat, row...)
	}
	return mat.NewDense(rows, cols, flat)
}
