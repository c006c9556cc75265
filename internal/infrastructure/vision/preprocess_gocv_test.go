//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"mediscan/internal/domain/entity"
	"mediscan/internal/domain/port"
)

// grayPNG encodes a horizontal intensity ramp of the given size.
func grayPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Pix[y*img.Stride+x] = uint8(255 * x / width)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPreprocessShapeAndRange(t *testing.T) {
	p := NewPreprocessor()

	for _, dims := range [][2]int{{224, 224}, {300, 200}, {120, 480}} {
		tensor, err := p.Preprocess(grayPNG(t, dims[0], dims[1]))
		require.NoError(t, err, "%dx%d", dims[0], dims[1])
		require.Equal(t, 1, tensor.Batch)
		require.Equal(t, 1, tensor.Channels)
		require.Equal(t, entity.DisplaySize, tensor.Height)
		require.Equal(t, entity.DisplaySize, tensor.Width)
		require.Len(t, tensor.Data, entity.DisplaySize*entity.DisplaySize)

		for i, v := range tensor.Data {
			require.GreaterOrEqual(t, v, p.Range.Min, "index %d", i)
			require.LessOrEqual(t, v, p.Range.Max, "index %d", i)
		}
	}
}

func TestPreprocessDeterministic(t *testing.T) {
	p := NewPreprocessor()
	data := grayPNG(t, 300, 200)

	first, err := p.Preprocess(data)
	require.NoError(t, err)
	second, err := p.Preprocess(data)
	require.NoError(t, err)
	require.Equal(t, first.Data, second.Data)
}

func TestPreprocessCustomRange(t *testing.T) {
	p := NewPreprocessor()
	p.Range = PixelRange{Min: 0, Max: 1}

	tensor, err := p.Preprocess(grayPNG(t, 64, 64))
	require.NoError(t, err)
	for _, v := range tensor.Data {
		require.GreaterOrEqual(t, v, float32(0))
		require.LessOrEqual(t, v, float32(1))
	}
}

func TestPreprocessInvalidBytes(t *testing.T) {
	_, err := NewPreprocessor().Preprocess([]byte("not an image"))
	require.ErrorIs(t, err, port.ErrInvalidImage)
}
