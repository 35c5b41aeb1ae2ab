// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/rgbacanvas"
)

// Common errors returned by Surface operations.
var (
	// ErrSurfaceClosed is returned when operations are attempted on a closed surface.
	ErrSurfaceClosed = errors.New("surface: surface is closed")

	// ErrNilCanvas is returned when New is given a nil canvas.
	ErrNilCanvas = errors.New("surface: nil canvas")
)

// textureDestroyer is the interface for destroying textures.
// This matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// Surface presents a Canvas through gpucontext and translates pointer events
// into strokes.
//
// Surface is NOT safe for concurrent use.
type Surface struct {
	canvas *rgbacanvas.Canvas

	texture    any         // *pendingTexture until the first RenderTo, then gpucontext.Texture
	oldTexture any         // previous texture awaiting deferred destruction
	texSize    image.Point // size of texture
	uploaded   uint64      // canvas generation held by texture

	displayW float64
	displayH float64

	closed bool
}

// New creates a Surface for c. The surface does not take ownership of the
// canvas; closing the surface leaves the canvas open.
func New(c *rgbacanvas.Canvas) (*Surface, error) {
	if c == nil {
		return nil, ErrNilCanvas
	}
	return &Surface{canvas: c}, nil
}

// Canvas returns the presented canvas, or nil once the surface is closed.
func (s *Surface) Canvas() *rgbacanvas.Canvas {
	if s.closed {
		return nil
	}
	return s.canvas
}

// IsDirty reports whether the canvas changed since the last upload.
func (s *Surface) IsDirty() bool {
	return s.texture == nil || s.uploaded != s.canvas.Generation()
}

// Flush uploads the canvas framebuffer to the GPU texture if it is dirty and
// returns the texture.
//
// The texture is created lazily: the first Flush returns a pending
// placeholder that RenderTo turns into a real texture.
func (s *Surface) Flush() (any, error) {
	if s.closed {
		return nil, ErrSurfaceClosed
	}
	frame := s.canvas.Frame()
	if frame == nil {
		return nil, rgbacanvas.ErrClosed
	}

	// A resized canvas needs a new texture. The old one may still be used by
	// in-flight command buffers, so it is destroyed after the next upload.
	size := frame.Rect.Size()
	if s.texture != nil && size != s.texSize {
		s.destroyOld()
		s.oldTexture = s.texture
		s.texture = nil
	}

	if !s.IsDirty() {
		return s.texture, nil
	}

	switch tex := s.texture.(type) {
	case nil:
		s.texture = newPendingTexture(frame.Pix, size)
		s.texSize = size
	case *pendingTexture:
		tex.set(frame.Pix)
	case gpucontext.TextureUpdater:
		if err := tex.UpdateData(frame.Pix); err != nil {
			return nil, fmt.Errorf("surface: texture update failed: %w", err)
		}
	}

	s.uploaded = s.canvas.Generation()
	return s.texture, nil
}

// Texture returns the current texture without flushing.
func (s *Surface) Texture() any {
	return s.texture
}

// Close destroys the textures. Close is idempotent.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.destroyOld()
	if d, ok := s.texture.(textureDestroyer); ok {
		d.Destroy()
	}
	s.texture = nil
	return nil
}

func (s *Surface) destroyOld() {
	if d, ok := s.oldTexture.(textureDestroyer); ok {
		d.Destroy()
	}
	s.oldTexture = nil
}

// pendingTexture holds a copy of the framebuffer until a TextureCreator is
// available during RenderTo.
type pendingTexture struct {
	size image.Point
	data []byte
}

func newPendingTexture(pix []byte, size image.Point) *pendingTexture {
	p := &pendingTexture{size: size}
	p.set(pix)
	return p
}

// set copies pix; the canvas framebuffer is overwritten in place later.
func (p *pendingTexture) set(pix []byte) {
	if cap(p.data) < len(pix) {
		p.data = make([]byte, len(pix))
	}
	p.data = p.data[:len(pix)]
	copy(p.data, pix)
}
