package vision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mediscan/internal/domain/entity"
)

func TestRampColorEndpoints(t *testing.T) {
	r, g, b := rampColor(0)
	require.Equal(t, [3]uint8{0, 0, 255}, [3]uint8{r, g, b})

	// 0.5 quantizes to level 128, one step past the blue→green midpoint.
	r, g, b = rampColor(0.5)
	require.Equal(t, [3]uint8{1, 254, 0}, [3]uint8{r, g, b})

	r, g, b = rampColor(1)
	require.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})
}

func TestRampColorQuantizesToEightBit(t *testing.T) {
	// Values inside the same 8-bit bucket collapse to one color.
	r0, g0, b0 := rampColor(0)
	r1, g1, b1 := rampColor(0.001)
	require.Equal(t, [3]uint8{r0, g0, b0}, [3]uint8{r1, g1, b1})

	rHi, gHi, bHi := rampColor(0.999)
	require.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{rHi, gHi, bHi})
}

func TestRampColorClampsOutOfRange(t *testing.T) {
	rLow, gLow, bLow := rampColor(-3)
	r0, g0, b0 := rampColor(0)
	require.Equal(t, [3]uint8{r0, g0, b0}, [3]uint8{rLow, gLow, bLow})

	rHigh, gHigh, bHigh := rampColor(7)
	r1, g1, b1 := rampColor(1)
	require.Equal(t, [3]uint8{r1, g1, b1}, [3]uint8{rHigh, gHigh, bHigh})
}

func TestRampColorMonotonic(t *testing.T) {
	var prevR, prevB uint8 = 0, 255
	for v := 0.0; v <= 1.0; v += 0.01 {
		r, _, b := rampColor(v)
		require.GreaterOrEqual(t, r, prevR, "red at %.2f", v)
		require.LessOrEqual(t, b, prevB, "blue at %.2f", v)
		prevR, prevB = r, b
	}
}

func TestColorizeSaliency(t *testing.T) {
	m := &entity.SaliencyMap{Width: 2, Height: 1, Values: []float64{0, 1}}
	rgb := colorizeSaliency(m)
	require.Len(t, rgb, 6)
	require.Equal(t, []byte{0, 0, 255, 255, 0, 0}, rgb)
}
