package rgbacanvas

import (
	"fmt"

	"golang.org/x/image/draw"
)

// Defaults used by DefaultConfig.
const (
	DefaultWidth     = 256
	DefaultHeight    = 256
	DefaultUndoDepth = 10
	DefaultName      = "image"
)

// Config holds the recognised canvas settings.
type Config struct {
	Width     int    // canvas width in pixels, > 0
	Height    int    // canvas height in pixels, > 0
	UndoDepth int    // undo stack capacity, > 0
	Name      string // base name for saved images
}

// DefaultConfig returns a 256x256 canvas with ten undo levels named "image".
func DefaultConfig() Config {
	return Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		UndoDepth: DefaultUndoDepth,
		Name:      DefaultName,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d (both must be > 0)", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.UndoDepth <= 0 {
		return fmt.Errorf("%w: %d (must be > 0)", ErrInvalidUndoDepth, c.UndoDepth)
	}
	return nil
}

// Option configures a Canvas during creation.
//
// Example:
//
//	c, err := rgbacanvas.New(
//	    rgbacanvas.WithSize(64, 64),
//	    rgbacanvas.WithUndoDepth(32),
//	)
type Option func(*options)

// options holds the configuration assembled from Option values.
type options struct {
	config Config
	scaler draw.Scaler
}

// defaultOptions returns DefaultConfig with nearest-neighbour scaling.
func defaultOptions() options {
	return options{
		config: DefaultConfig(),
		scaler: draw.NearestNeighbor,
	}
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithSize sets the canvas dimensions.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.config.Width = width
		o.config.Height = height
	}
}

// WithUndoDepth sets how many snapshots the undo stack retains.
func WithUndoDepth(depth int) Option {
	return func(o *options) {
		o.config.UndoDepth = depth
	}
}

// WithName sets the base name used by FileName.
func WithName(name string) Option {
	return func(o *options) {
		o.config.Name = name
	}
}

// WithScaler sets the resampler used by ImportImageScaled.
// The default is draw.NearestNeighbor, which keeps hard channel edges.
// A nil scaler is ignored.
//
// Example:
//
//	c, err := rgbacanvas.New(rgbacanvas.WithScaler(draw.CatmullRom))
func WithScaler(s draw.Scaler) Option {
	return func(o *options) {
		if s != nil {
			o.scaler = s
		}
	}
}
