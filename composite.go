package rgbacanvas

import "image"

// Composite returns a freshly allocated composite of the current planes.
//
// For every pixel, R, G and B take the stored sample when the channel is
// visible and 0 otherwise. A takes the stored sample when alpha is visible
// and 255 otherwise. The result is straight (non-premultiplied) RGBA8.
// Returns nil for a closed canvas.
func (c *Canvas) Composite() *image.NRGBA {
	if c.closed {
		return nil
	}
	dst := image.NewNRGBA(c.Bounds())
	compositeInto(dst.Pix, c.planes, c.visible)
	return dst
}

// Frame returns the canvas-owned display framebuffer. It always reflects
// the current planes and visible set. The image is overwritten in place by
// later mutations and must not be modified by the caller; use Composite for
// an independent copy. Returns nil for a closed canvas.
func (c *Canvas) Frame() *image.NRGBA {
	return c.frame
}

// recomposite refreshes the framebuffer and bumps the generation.
func (c *Canvas) recomposite() {
	compositeInto(c.frame.Pix, c.planes, c.visible)
	c.generation++
}

// compositeInto writes the composite of planes under visible into dst,
// which holds len(planes[0].data) RGBA8 pixels.
func compositeInto(dst []uint8, planes snapshot, visible ChannelSet) {
	var src [numChannels][]uint8
	for ch := Channel(0); ch < numChannels; ch++ {
		if visible.Has(ch) {
			src[ch] = planes[ch].Data()
		}
	}

	n := len(planes[ChannelR].Data())
	dst = dst[:n*4]
	for ch := Channel(0); ch < numChannels; ch++ {
		s := src[ch]
		if s == nil {
			fill := uint8(0)
			if ch == ChannelA {
				fill = 255
			}
			for p := 0; p < n; p++ {
				dst[p*4+int(ch)] = fill
			}
			continue
		}
		for p, v := range s {
			dst[p*4+int(ch)] = v
		}
	}
}
