package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTensorShape(t *testing.T) {
	tensor := NewTensor(1, 1, DisplaySize, DisplaySize)
	require.Equal(t, 1, tensor.Batch)
	require.Equal(t, 1, tensor.Channels)
	require.Equal(t, DisplaySize, tensor.Height)
	require.Equal(t, DisplaySize, tensor.Width)
	require.Len(t, tensor.Data, DisplaySize*DisplaySize)
}

func TestFeatureMapChannel(t *testing.T) {
	fm := &FeatureMap{Channels: 2, Height: 2, Width: 2, Data: []float64{1, 2, 3, 4, 5, 6, 7, 8}}
	require.Equal(t, []float64{1, 2, 3, 4}, fm.Channel(0))
	require.Equal(t, []float64{5, 6, 7, 8}, fm.Channel(1))
}

func TestFeatureMapSameShape(t *testing.T) {
	a := &FeatureMap{Channels: 2, Height: 3, Width: 4}
	b := &FeatureMap{Channels: 2, Height: 3, Width: 4}
	c := &FeatureMap{Channels: 2, Height: 4, Width: 3}
	require.True(t, a.SameShape(b))
	require.False(t, a.SameShape(c))
}

func TestSaliencyMapAt(t *testing.T) {
	m := &SaliencyMap{Width: 2, Height: 2, Values: []float64{0, 0.25, 0.5, 1}}
	require.Equal(t, 0.25, m.At(1, 0))
	require.Equal(t, 0.5, m.At(0, 1))
}
