package vision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResizeBilinearIdentity(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	dst := resizeBilinear(src, 2, 2, 2, 2)
	require.Equal(t, src, dst)
}

func TestResizeBilinearConstantGrid(t *testing.T) {
	src := make([]float64, 9)
	for i := range src {
		src[i] = 5
	}
	dst := resizeBilinear(src, 3, 3, 7, 7)
	require.Len(t, dst, 49)
	for i, v := range dst {
		require.InDelta(t, 5.0, v, 1e-12, "index %d", i)
	}
}

func TestResizeBilinearSinglePixelUpscale(t *testing.T) {
	dst := resizeBilinear([]float64{0.7}, 1, 1, 4, 4)
	require.Len(t, dst, 16)
	for _, v := range dst {
		require.InDelta(t, 0.7, v, 1e-12)
	}
}

func TestResizeBilinearStaysWithinSourceRange(t *testing.T) {
	src := []float64{0, 1, 0, 1}
	dst := resizeBilinear(src, 2, 2, 8, 8)
	require.Len(t, dst, 64)
	for i, v := range dst {
		require.GreaterOrEqual(t, v, 0.0, "index %d", i)
		require.LessOrEqual(t, v, 1.0, "index %d", i)
	}
}

func TestResizeBilinearDownscale(t *testing.T) {
	src := make([]float64, 16)
	for i := range src {
		src[i] = float64(i)
	}
	dst := resizeBilinear(src, 4, 4, 2, 2)
	require.Len(t, dst, 4)
	// Quadrant means of a linear ramp.
	require.InDelta(t, 2.5, dst[0], 1e-9)
	require.InDelta(t, 4.5, dst[1], 1e-9)
	require.InDelta(t, 10.5, dst[2], 1e-9)
	require.InDelta(t, 12.5, dst[3], 1e-9)
}

func TestResizeBilinearEmptySource(t *testing.T) {
	dst := resizeBilinear(nil, 0, 0, 3, 3)
	require.Len(t, dst, 9)
	for _, v := range dst {
		require.Equal(t, 0.0, v)
	}
}
