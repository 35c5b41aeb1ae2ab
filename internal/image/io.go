// Package image provides decoding, encoding and conversion helpers for
// rgbacanvas. Every helper produces or consumes straight-alpha RGBA8
// (*image.NRGBA) with a zero origin and a tight stride.
package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// I/O errors.
var (
	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")

	// ErrInvalidDimensions is returned when a scale target is not positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")
)

// Decode decodes an image from r, auto-detecting the format, and converts
// it to straight-alpha RGBA8. It also returns the detected format name.
func Decode(r io.Reader) (*image.NRGBA, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("image: decode: %w", err)
	}
	return ToNRGBA(img), format, nil
}

// DecodeBytes is Decode over a byte slice.
func DecodeBytes(data []byte) (*image.NRGBA, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Load reads and decodes the image file at path.
func Load(path string) (*image.NRGBA, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// EncodePNG encodes img as PNG to w.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes img as a PNG file at path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := EncodePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// ToNRGBA returns img as a zero-origin, tightly packed *image.NRGBA.
// An *image.NRGBA already in that layout is returned as is; anything else
// is converted into a new buffer. Straight-alpha sources keep their samples
// (16-bit samples are truncated to their high byte); other models go
// through color.NRGBAModel pixel by pixel.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) && n.Stride == 4*b.Dx() {
		return n
	}
	w, h := b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))

	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < h; y++ {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:(y+1)*dst.Stride], src.Pix[i:i+4*w])
		}
	case *image.NRGBA64:
		for y := 0; y < h; y++ {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			row := dst.Pix[y*dst.Stride : (y+1)*dst.Stride]
			for j := range row {
				row[j] = src.Pix[i+2*j] // big-endian high byte
			}
		}
	default:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				dst.SetNRGBA(x, y, c)
			}
		}
	}
	return dst
}

// Scale resamples img to width x height using s.
func Scale(img image.Image, width, height int, s draw.Scaler) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return ToNRGBA(img), nil
	}
	if s == nil {
		s = draw.NearestNeighbor
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	s.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst, nil
}
