// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"math"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/rgbacanvas"
)

// SetDisplaySize sets the size, in device pixels, at which the canvas is
// shown. Pointer coordinates are scaled by canvas size / display size.
// Non-positive values mean the canvas is shown at 1:1.
func (s *Surface) SetDisplaySize(width, height float64) {
	s.displayW = width
	s.displayH = height
}

// maxCoord bounds canvas coordinates derived from pointer positions.
const maxCoord = 1 << 30

// CanvasPoint maps device coordinates to canvas pixel coordinates.
// The result may lie outside the canvas; strokes clip it. Coordinates are
// clamped to ±maxCoord and NaN maps to 0.
func (s *Surface) CanvasPoint(x, y float64) image.Point {
	if s.displayW > 0 {
		x = x * float64(s.canvas.Width()) / s.displayW
	}
	if s.displayH > 0 {
		y = y * float64(s.canvas.Height()) / s.displayH
	}
	return image.Pt(coord(x), coord(y))
}

func coord(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Floor(math.Max(-maxCoord, math.Min(v, maxCoord))))
}

func finite(ev gpucontext.PointerEvent) bool {
	return !math.IsNaN(ev.X) && !math.IsInf(ev.X, 0) &&
		!math.IsNaN(ev.Y) && !math.IsInf(ev.Y, 0)
}

// HandlePointer feeds one pointer event to the canvas and reports whether
// the canvas content changed.
//
//   - PointerDown with the primary button starts a stroke
//   - PointerMove while drawing extends it from the previous point
//   - PointerUp ends it
//   - PointerLeave and PointerCancel cancel it
//
// Events from non-primary pointers are ignored, as are down and move events
// with non-finite coordinates.
func (s *Surface) HandlePointer(ev gpucontext.PointerEvent) bool {
	if s.closed || s.canvas.Closed() || !ev.IsPrimary {
		return false
	}
	c := s.canvas
	before := c.Generation()

	switch ev.Type {
	case gpucontext.PointerDown:
		if !drawButton(ev) || !finite(ev) {
			return false
		}
		c.BeginStroke(s.CanvasPoint(ev.X, ev.Y))
	case gpucontext.PointerMove:
		if c.StrokeState() != rgbacanvas.StrokeDrawing || !finite(ev) {
			return false
		}
		c.StrokeTo(s.CanvasPoint(ev.X, ev.Y))
	case gpucontext.PointerUp:
		if drawButton(ev) {
			c.EndStroke()
		}
	case gpucontext.PointerLeave, gpucontext.PointerCancel:
		c.CancelStroke()
	}

	return c.Generation() != before
}

// drawButton reports whether ev was caused by the drawing button: the left
// mouse button, or any touch or pen contact.
func drawButton(ev gpucontext.PointerEvent) bool {
	if ev.PointerType != gpucontext.PointerTypeMouse {
		return true
	}
	return ev.Button == gpucontext.ButtonLeft
}
