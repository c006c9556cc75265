//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"mediscan/internal/domain/entity"
	"mediscan/internal/domain/port"
)

func rgbPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func uniformSaliency(v float64) *entity.SaliencyMap {
	m := &entity.SaliencyMap{
		Width:  entity.DisplaySize,
		Height: entity.DisplaySize,
		Values: make([]float64, entity.DisplaySize*entity.DisplaySize),
	}
	for i := range m.Values {
		m.Values[i] = v
	}
	return m
}

func TestRenderAlwaysDisplayResolution(t *testing.T) {
	r := NewRenderer()

	// Non-square sources are stretched, never letterboxed.
	for _, dims := range [][2]int{{224, 224}, {100, 50}, {60, 300}} {
		out, err := r.Render(rgbPNG(t, dims[0], dims[1]), uniformSaliency(0.5))
		require.NoError(t, err, "%dx%d", dims[0], dims[1])

		cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
		require.NoError(t, err)
		require.Equal(t, "png", format)
		require.Equal(t, entity.DisplaySize, cfg.Width)
		require.Equal(t, entity.DisplaySize, cfg.Height)
	}
}

func TestRenderInvalidBytes(t *testing.T) {
	_, err := NewRenderer().Render([]byte("garbage"), uniformSaliency(0))
	require.ErrorIs(t, err, port.ErrInvalidImage)
}
