package rgbacanvas

import (
	"errors"
	"fmt"
	"image"
)

// Errors returned by Canvas operations.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("rgbacanvas: invalid dimensions")

	// ErrInvalidUndoDepth is returned when the undo depth is not positive.
	ErrInvalidUndoDepth = errors.New("rgbacanvas: invalid undo depth")

	// ErrSizeMismatch is returned when imported data does not match the
	// canvas dimensions.
	ErrSizeMismatch = errors.New("rgbacanvas: size mismatch")

	// ErrEmptyData is returned when an import is given no bytes or no image.
	ErrEmptyData = errors.New("rgbacanvas: empty image data")

	// ErrClosed is returned by operations on a closed canvas.
	ErrClosed = errors.New("rgbacanvas: canvas is closed")

	// ErrMalformedLayerText is returned when layer text cannot be parsed.
	ErrMalformedLayerText = errors.New("rgbacanvas: malformed layer text")

	// ErrUnknownChannel is returned by ParseChannels for letters other than r, g, b, a.
	ErrUnknownChannel = errors.New("rgbacanvas: unknown channel")
)

// SizeMismatchError reports an imported image whose dimensions differ from
// the canvas. It matches ErrSizeMismatch with errors.Is.
type SizeMismatchError struct {
	Want image.Point // canvas width and height
	Got  image.Point // decoded image width and height
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("rgbacanvas: size mismatch: image is %dx%d, canvas is %dx%d",
		e.Got.X, e.Got.Y, e.Want.X, e.Want.Y)
}

// Unwrap returns ErrSizeMismatch.
func (e *SizeMismatchError) Unwrap() error {
	return ErrSizeMismatch
}
