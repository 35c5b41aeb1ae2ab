package rgbacanvas

import (
	"bytes"
	"image"
)

// Mask is one 8-bit sample plane of a Canvas.
// Samples are stored row-major, one byte per pixel, at index y*width+x.
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a new zeroed mask with the given dimensions.
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// newMaskFrom wraps an existing buffer. len(data) must be width*height.
func newMaskFrom(width, height int, data []uint8) *Mask {
	return &Mask{width: width, height: height, data: data}
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the sample at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the sample at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Clone returns an independent copy of the mask.
func (m *Mask) Clone() *Mask {
	clone := NewMask(m.width, m.height)
	copy(clone.data, m.data)
	return clone
}

// CopyFrom overwrites m with the samples of src.
// Both masks must have the same dimensions; otherwise CopyFrom does nothing
// and returns false.
func (m *Mask) CopyFrom(src *Mask) bool {
	if src.width != m.width || src.height != m.height {
		return false
	}
	copy(m.data, src.data)
	return true
}

// Equal reports whether both masks have the same dimensions and samples.
func (m *Mask) Equal(o *Mask) bool {
	return m.width == o.width && m.height == o.height && bytes.Equal(m.data, o.data)
}

// Data returns the underlying sample slice.
func (m *Mask) Data() []uint8 {
	return m.data
}
