// Package rgbacanvas provides an editable raster surface with four
// independent 8-bit channel planes (R, G, B, A).
//
// # Overview
//
// A Canvas owns one plane per channel, a set of active channels that
// strokes write into, and a set of visible channels that make up the
// composite. Drawing is free-hand: BeginStroke on pointer down,
// ExtendStroke on pointer move and EndStroke on pointer up. Every stroke and
// every import records a full snapshot of the four planes on a bounded undo
// stack.
//
// # Quick Start
//
//	c, err := rgbacanvas.New(rgbacanvas.WithSize(128, 128))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c.SetActiveChannels(rgbacanvas.Channels(rgbacanvas.ChannelR, rgbacanvas.ChannelB))
//	c.BeginStroke(image.Pt(10, 10))
//	c.StrokeTo(image.Pt(100, 60))
//	c.EndStroke()
//	_ = c.SavePNG("") // writes image.png
//
// # Compositing
//
// The composite is straight-alpha RGBA8. A visible R, G or B channel
// contributes its stored sample and a hidden one contributes 0. Alpha
// contributes its stored sample when visible and 255 otherwise, so a canvas
// with alpha hidden is always opaque.
//
// # Coordinate System
//
// Origin (0,0) is the top-left pixel, X increases right and Y increases
// down. Points outside the canvas are clipped silently while drawing.
// Mapping device coordinates to canvas pixels is the caller's job; see
// package integration/surface for the gogpu adapter that does it.
//
// # Concurrency
//
// A Canvas must be used by one goroutine at a time. Separate canvases share
// nothing except the package logger.
package rgbacanvas

// Version is the current version of the library.
const Version = "0.1.0"
