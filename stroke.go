package rgbacanvas

import "image"

// StrokeState is the pointer interaction state of a Canvas.
type StrokeState uint8

const (
	// StrokeIdle means no stroke is in progress; ExtendStroke is ignored.
	StrokeIdle StrokeState = iota
	// StrokeDrawing means a stroke has begun and not yet ended.
	StrokeDrawing
)

func (s StrokeState) String() string {
	switch s {
	case StrokeIdle:
		return "Idle"
	case StrokeDrawing:
		return "Drawing"
	default:
		return "Unknown"
	}
}

// StrokeState returns the current interaction state.
func (c *Canvas) StrokeState() StrokeState { return c.stroke }

// BeginStroke starts a stroke at p (pointer down). The current planes are
// pushed onto the undo stack first, then p is written into every active
// channel and the framebuffer is recomposited.
//
// A stroke already in progress is ended first, so every BeginStroke opens
// its own undo entry.
func (c *Canvas) BeginStroke(p image.Point) {
	if c.closed {
		return
	}
	c.PushUndo()
	c.stroke = StrokeDrawing
	c.last = p
	c.plot(p.X, p.Y)
	c.recomposite()
}

// ExtendStroke draws the line from one point to another (pointer move) into
// every active channel and recomposites once. Points outside the canvas are
// skipped. Does nothing unless a stroke is in progress.
func (c *Canvas) ExtendStroke(from, to image.Point) {
	if c.closed || c.stroke != StrokeDrawing {
		return
	}
	Line(c.Bounds(), from, to, c.plot)
	c.last = to
	c.recomposite()
}

// StrokeTo extends the current stroke from its last point to p.
func (c *Canvas) StrokeTo(p image.Point) {
	c.ExtendStroke(c.last, p)
}

// LastPoint returns the most recent stroke point.
func (c *Canvas) LastPoint() image.Point { return c.last }

// EndStroke closes the current stroke (pointer up). The planes are not
// touched; the next BeginStroke records a new undo entry.
func (c *Canvas) EndStroke() {
	c.stroke = StrokeIdle
}

// CancelStroke closes the current stroke because the pointer left the
// tracking surface or the platform cancelled it. Pixels already drawn stay;
// use Undo to discard them.
func (c *Canvas) CancelStroke() {
	c.stroke = StrokeIdle
}

// plot writes Ink into every active channel at (x, y).
// Out-of-bounds points are ignored.
func (c *Canvas) plot(x, y int) {
	for ch := Channel(0); ch < numChannels; ch++ {
		if c.active.Has(ch) {
			c.planes[ch].Set(x, y, Ink)
		}
	}
}
