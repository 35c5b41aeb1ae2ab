package rgbacanvas

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Ink is the sample value written into active channels by strokes.
const Ink uint8 = 255

// Canvas is an editable raster surface made of four independent 8-bit
// channel planes (R, G, B, A) with free-hand drawing and bounded
// snapshot undo/redo.
//
// The canvas keeps a composited display framebuffer (see Frame) that is
// refreshed after every mutation.
//
// Canvas is NOT safe for concurrent use. Pointer events for one stroke must
// be delivered in order by a single caller.
type Canvas struct {
	cfg    Config
	scaler draw.Scaler

	planes  snapshot
	active  ChannelSet
	visible ChannelSet
	hist    *history

	stroke StrokeState
	last   image.Point

	frame      *image.NRGBA
	generation uint64
	closed     bool
}

// New creates a canvas configured by opts on top of DefaultConfig.
// Returns an error wrapping ErrInvalidDimensions or ErrInvalidUndoDepth when
// the resulting configuration is invalid; nothing is allocated in that case.
//
// Example:
//
//	c, err := rgbacanvas.New(rgbacanvas.WithSize(64, 64), rgbacanvas.WithName("sprite"))
//	if err != nil {
//	    return err
//	}
//	c.BeginStroke(image.Pt(3, 3))
//	c.ExtendStroke(image.Pt(3, 3), image.Pt(40, 20))
//	c.EndStroke()
func New(opts ...Option) (*Canvas, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.config.Validate(); err != nil {
		return nil, err
	}

	c := &Canvas{
		cfg:    o.config,
		scaler: o.scaler,
	}
	c.reset()
	return c, nil
}

// NewWithConfig creates a canvas from cfg.
func NewWithConfig(cfg Config, opts ...Option) (*Canvas, error) {
	return New(append([]Option{WithConfig(cfg)}, opts...)...)
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded dimensions).
func MustNew(opts ...Option) *Canvas {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// reset allocates zeroed planes for the configured size and restores the
// default channel sets and an empty history.
func (c *Canvas) reset() {
	w, h := c.cfg.Width, c.cfg.Height
	for i := range c.planes {
		c.planes[i] = NewMask(w, h)
	}
	c.active = Channels(ChannelR)
	c.visible = Channels(ChannelR, ChannelG, ChannelB)
	c.hist = newHistory(c.cfg.UndoDepth)
	c.stroke = StrokeIdle
	c.last = image.Point{}
	c.frame = image.NewNRGBA(image.Rect(0, 0, w, h))
	c.recomposite()
}

// Resize reallocates every plane at the new dimensions. All samples are
// cleared, the history is dropped and the channel sets return to their
// defaults. Resizing to the current dimensions is a no-op.
//
// Returns an error wrapping ErrInvalidDimensions if width or height is not
// positive, leaving the canvas untouched.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d (both must be > 0)", ErrInvalidDimensions, width, height)
	}
	if width == c.cfg.Width && height == c.cfg.Height {
		return nil
	}

	Logger().Debug("rgbacanvas: resize",
		"from", image.Pt(c.cfg.Width, c.cfg.Height), "to", image.Pt(width, height))
	c.cfg.Width = width
	c.cfg.Height = height
	c.reset()
	return nil
}

// Close releases the planes, the framebuffer and the history.
// After Close, mutating methods do nothing or return ErrClosed.
// Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.hist.clear()
	c.hist.pool.Reset()
	c.planes = snapshot{}
	c.frame = nil
	c.stroke = StrokeIdle
	return nil
}

// Closed reports whether Close has been called.
func (c *Canvas) Closed() bool { return c.closed }

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.cfg.Width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.cfg.Height }

// Bounds returns the canvas rectangle with origin (0, 0).
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.cfg.Width, c.cfg.Height)
}

// Name returns the configured base name.
func (c *Canvas) Name() string { return c.cfg.Name }

// Config returns the current configuration, including any resize.
func (c *Canvas) Config() Config { return c.cfg }

// ActiveChannels returns the channels written by strokes.
func (c *Canvas) ActiveChannels() ChannelSet { return c.active }

// SetActiveChannels replaces the set of channels written by strokes.
// Stored samples are not touched.
func (c *Canvas) SetActiveChannels(s ChannelSet) {
	c.active = s & AllChannels
}

// VisibleChannels returns the channels included in the composite.
func (c *Canvas) VisibleChannels() ChannelSet { return c.visible }

// SetVisibleChannels replaces the set of channels included in the composite
// and recomposites. Stored samples are not touched.
func (c *Canvas) SetVisibleChannels(s ChannelSet) {
	c.visible = s & AllChannels
	if c.closed {
		return
	}
	c.recomposite()
}

// At returns the raw samples of all four planes at (x, y), ignoring the
// visible set. Out-of-bounds coordinates and closed canvases yield zero.
func (c *Canvas) At(x, y int) color.NRGBA {
	if c.closed {
		return color.NRGBA{}
	}
	return color.NRGBA{
		R: c.planes[ChannelR].At(x, y),
		G: c.planes[ChannelG].At(x, y),
		B: c.planes[ChannelB].At(x, y),
		A: c.planes[ChannelA].At(x, y),
	}
}

// Plane returns an independent copy of one channel plane. Changes to the
// copy do not reach the canvas. It returns nil for an invalid channel or a
// closed canvas.
func (c *Canvas) Plane(ch Channel) *Mask {
	if c.closed || !ch.IsValid() {
		return nil
	}
	return c.planes[ch].Clone()
}

// ChannelData returns a copy of the samples of one plane, row-major.
// It returns nil for an invalid channel or a closed canvas.
func (c *Canvas) ChannelData(ch Channel) []byte {
	m := c.Plane(ch)
	if m == nil {
		return nil
	}
	return m.Data()
}

// Generation increases every time the framebuffer is recomposited.
// Presenters compare it with the value they last uploaded.
func (c *Canvas) Generation() uint64 { return c.generation }
