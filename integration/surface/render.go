// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/rgbacanvas"
)

// Rendering errors.
var (
	// ErrInvalidDrawContext is returned when the flushed texture cannot be
	// drawn by the draw context.
	ErrInvalidDrawContext = errors.New("surface: texture is not a gpucontext.Texture")

	// ErrInvalidRenderer is returned when the draw context has no
	// gpucontext.TextureCreator.
	ErrInvalidRenderer = errors.New("surface: draw context has no TextureCreator")
)

// RenderOptions controls where the canvas is drawn.
type RenderOptions struct {
	// X, Y is the position to draw the texture (default: 0, 0).
	X, Y float32
}

// DefaultRenderOptions returns options drawing at the origin.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{}
}

// RenderTo flushes the canvas and draws it at (0, 0).
//
// Example:
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    s.RenderTo(dc.AsTextureDrawer())
//	})
func (s *Surface) RenderTo(dc gpucontext.TextureDrawer) error {
	return s.RenderToEx(dc, DefaultRenderOptions())
}

// RenderToEx flushes the canvas and draws it with opts.
func (s *Surface) RenderToEx(dc gpucontext.TextureDrawer, opts RenderOptions) error {
	if s.closed {
		return ErrSurfaceClosed
	}

	tex, err := s.Flush()
	if err != nil {
		return err
	}

	if pending, isPending := tex.(*pendingTexture); isPending {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrInvalidRenderer
		}

		realTex, err := creator.NewTextureFromRGBA(pending.size.X, pending.size.Y, pending.data)
		if err != nil {
			return fmt.Errorf("surface: NewTextureFromRGBA failed: %w", err)
		}

		// The framebuffer is straight alpha.
		if pt, ok := realTex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(false)
		}

		s.texture = realTex
		tex = realTex

		// Texture creation waits for the GPU, so the old texture is idle now.
		s.destroyOld()
		rgbacanvas.Logger().Debug("surface: texture created",
			"width", pending.size.X, "height", pending.size.Y)
	}

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return ErrInvalidDrawContext
	}
	return dc.DrawTexture(gpuTex, opts.X, opts.Y)
}
