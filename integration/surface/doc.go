// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface presents an rgbacanvas.Canvas in a gogpu window and feeds
// it pointer input.
//
// The data flow is:
//
//	PointerEvent -> Canvas strokes -> Frame (CPU) -> GPU Texture -> Window
//
// # Architecture
//
// Surface wraps a Canvas and manages the texture upload pipeline:
//
//   - HandlePointer maps device coordinates to canvas pixels and drives
//     BeginStroke, StrokeTo, EndStroke and CancelStroke
//   - Flush uploads the composited framebuffer when the canvas generation moved
//   - RenderTo draws the texture through a gpucontext.TextureDrawer
//
// # Usage
//
//	c, _ := rgbacanvas.New(rgbacanvas.WithSize(256, 256))
//	s, _ := surface.New(c)
//	defer s.Close()
//	s.SetDisplaySize(512, 512) // canvas shown at 2x
//
//	app.OnPointer(func(ev gpucontext.PointerEvent) {
//	    s.HandlePointer(ev)
//	})
//	app.OnDraw(func(dc *gogpu.Context) {
//	    _ = s.RenderTo(dc.AsTextureDrawer())
//	})
//
// # Thread Safety
//
// Surface is NOT safe for concurrent use. Deliver pointer events and draw
// calls from the same goroutine.
//
// # Integration Without Circular Imports
//
// Only gpucontext interfaces are used, so this package does not import
// gogpu itself.
package surface
