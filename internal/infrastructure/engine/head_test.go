package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"mediscan/internal/domain/port"
)

func TestHeadGradientsClosedForm(t *testing.T) {
	weights := mat.NewDense(2, 3, []float64{
		0.5, -1.0, 2.0,
		4.0, 0.0, -8.0,
	})

	fm, err := headGradients(weights, 1, 2, 2)
	require.NoError(t, err)
	require.Equal(t, 3, fm.Channels)
	require.Equal(t, 2, fm.Height)
	require.Equal(t, 2, fm.Width)

	// Each channel is constant W[k,c] / (H*W).
	require.Equal(t, []float64{1, 1, 1, 1}, fm.Channel(0))
	require.Equal(t, []float64{0, 0, 0, 0}, fm.Channel(1))
	require.Equal(t, []float64{-2, -2, -2, -2}, fm.Channel(2))
}

func TestHeadGradientsClassOutOfRange(t *testing.T) {
	weights := mat.NewDense(2, 3, make([]float64, 6))

	_, err := headGradients(weights, 5, 2, 2)
	require.ErrorIs(t, err, port.ErrUnsupportedModel)

	_, err = headGradients(weights, -1, 2, 2)
	require.ErrorIs(t, err, port.ErrUnsupportedModel)
}

func TestHeadGradientsNonFiniteWeights(t *testing.T) {
	weights := mat.NewDense(1, 2, []float64{1.0, math.NaN()})

	_, err := headGradients(weights, 0, 2, 2)
	require.ErrorIs(t, err, port.ErrNumericInstability)

	weights = mat.NewDense(1, 1, []float64{math.Inf(1)})
	_, err = headGradients(weights, 0, 2, 2)
	require.ErrorIs(t, err, port.ErrNumericInstability)
}

func TestHeadMatrix(t *testing.T) {
	meta := &Metadata{HeadWeights: [][]float64{{1, 2}, {3, 4}}}
	m := headMatrix(meta)
	require.NotNil(t, m)
	rows, cols := m.Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 2, cols)
	require.Equal(t, 3.0, m.At(1, 0))

	require.Nil(t, headMatrix(&Metadata{}))
}
