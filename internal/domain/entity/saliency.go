package entity

// DisplaySize is the fixed side of the model input and of every rendered
// saliency map and overlay, in pixels.
const DisplaySize = 224

// Tensor is a model input in NCHW layout.
type Tensor struct {
	Batch    int
	Channels int
	Height   int
	Width    int
	Data     []float32
}

// NewTensor allocates a zeroed tensor of the given shape.
func NewTensor(batch, channels, height, width int) *Tensor {
	return &Tensor{
		Batch:    batch,
		Channels: channels,
		Height:   height,
		Width:    width,
		Data:     make([]float32, batch*channels*height*width),
	}
}

// FeatureMap is a per-channel activation or gradient grid captured at one
// internal layer of the engine. Data is channel-major (C×H×W).
type FeatureMap struct {
	Channels int
	Height   int
	Width    int
	Data     []float64
}

// Channel returns the H×W slice of one channel.
func (m *FeatureMap) Channel(c int) []float64 {
	hw := m.Height * m.Width
	return m.Data[c*hw : (c+1)*hw]
}

// SameShape reports whether both maps have identical dimensions.
func (m *FeatureMap) SameShape(other *FeatureMap) bool {
	return m.Channels == other.Channels && m.Height == other.Height && m.Width == other.Width
}

// SaliencyMap is a normalized spatial attention map. Values are row-major
// and always within [0,1].
type SaliencyMap struct {
	Width  int
	Height int
	Values []float64
}

// At returns the value at (x, y).
func (m *SaliencyMap) At(x, y int) float64 {
	return m.Values[y*m.Width+x]
}
