package rgbacanvas

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"strconv"
	"strings"

	intImage "github.com/gogpu/rgbacanvas/internal/image"
)

// ImportImage decodes data (PNG, JPEG, GIF, BMP, TIFF or WebP) and writes
// each pixel's R, G, B and A samples into the matching planes, regardless of
// the active set. The previous state is pushed onto the undo stack first and
// any stroke in progress ends.
//
// The decoded image must have exactly the canvas dimensions; otherwise a
// *SizeMismatchError is returned and the canvas is untouched.
func (c *Canvas) ImportImage(data []byte) error {
	if c.closed {
		return ErrClosed
	}
	if len(data) == 0 {
		return ErrEmptyData
	}
	return c.DecodeFrom(bytes.NewReader(data))
}

// DecodeFrom is ImportImage reading the encoded image from r.
func (c *Canvas) DecodeFrom(r io.Reader) error {
	if c.closed {
		return ErrClosed
	}
	img, format, err := intImage.Decode(r)
	if err != nil {
		return fmt.Errorf("rgbacanvas: import: %w", err)
	}
	Logger().Debug("rgbacanvas: import", "format", format, "size", img.Rect.Size())
	return c.importNRGBA(img)
}

// LoadImage is ImportImage reading the encoded image from the file at path.
func (c *Canvas) LoadImage(path string) error {
	if c.closed {
		return ErrClosed
	}
	img, format, err := intImage.Load(path)
	if err != nil {
		return fmt.Errorf("rgbacanvas: load %s: %w", path, err)
	}
	Logger().Debug("rgbacanvas: load", "path", path, "format", format, "size", img.Rect.Size())
	return c.importNRGBA(img)
}

// ImportImageScaled decodes data and resamples it to the canvas size with
// the configured scaler (see WithScaler) before importing it. Unlike
// ImportImage it accepts any image size.
func (c *Canvas) ImportImageScaled(data []byte) error {
	if c.closed {
		return ErrClosed
	}
	if len(data) == 0 {
		return ErrEmptyData
	}
	img, format, err := intImage.DecodeBytes(data)
	if err != nil {
		return fmt.Errorf("rgbacanvas: import: %w", err)
	}
	scaled, err := intImage.Scale(img, c.cfg.Width, c.cfg.Height, c.scaler)
	if err != nil {
		return fmt.Errorf("rgbacanvas: import: %w", err)
	}
	Logger().Debug("rgbacanvas: import scaled", "format", format,
		"from", img.Rect.Size(), "to", scaled.Rect.Size())
	return c.importNRGBA(scaled)
}

// ImportRGBA writes the samples of img into the planes like ImportImage,
// without any decoding. img is converted to straight alpha if needed.
// A nil img returns an error wrapping ErrEmptyData.
func (c *Canvas) ImportRGBA(img image.Image) error {
	if c.closed {
		return ErrClosed
	}
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrEmptyData)
	}
	return c.importNRGBA(intImage.ToNRGBA(img))
}

func (c *Canvas) importNRGBA(img *image.NRGBA) error {
	if got := img.Rect.Size(); got != c.Bounds().Size() {
		return &SizeMismatchError{Want: c.Bounds().Size(), Got: got}
	}

	c.PushUndo()
	r := c.planes[ChannelR].data
	g := c.planes[ChannelG].data
	b := c.planes[ChannelB].data
	a := c.planes[ChannelA].data
	pix := img.Pix
	for p := range r {
		i := p * 4
		r[p] = pix[i+0]
		g[p] = pix[i+1]
		b[p] = pix[i+2]
		a[p] = pix[i+3]
	}
	c.stroke = StrokeIdle
	c.recomposite()
	return nil
}

// LayerDataText renders the four planes as text: each plane is its samples
// in decimal separated by commas, and the planes are joined by '|' in
// R, G, B, A order. Returns "" for a closed canvas.
func (c *Canvas) LayerDataText() string {
	if c.closed {
		return ""
	}
	n := c.cfg.Width * c.cfg.Height
	buf := make([]byte, 0, numChannels*n*4)
	for ch, m := range c.planes {
		if ch > 0 {
			buf = append(buf, '|')
		}
		for i, v := range m.data {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = strconv.AppendUint(buf, uint64(v), 10)
		}
	}
	return string(buf)
}

// ImportLayerDataText replaces the planes with text produced by
// LayerDataText. The previous state is pushed onto the undo stack.
//
// Returns an error wrapping ErrMalformedLayerText for unparsable input and
// one wrapping ErrSizeMismatch when a plane does not hold width*height
// samples; the canvas is untouched in both cases.
func (c *Canvas) ImportLayerDataText(text string) error {
	if c.closed {
		return ErrClosed
	}
	parts := strings.Split(strings.TrimSpace(text), "|")
	if len(parts) != numChannels {
		return fmt.Errorf("%w: %d planes, want %d", ErrMalformedLayerText, len(parts), numChannels)
	}

	n := c.cfg.Width * c.cfg.Height
	var parsed [numChannels][]byte
	for ch, part := range parts {
		fields := strings.Split(part, ",")
		if len(fields) != n {
			return fmt.Errorf("%w: plane %s has %d samples, want %d",
				ErrSizeMismatch, Channel(ch), len(fields), n)
		}
		plane := make([]byte, n)
		for i, f := range fields {
			v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 8)
			if err != nil {
				return fmt.Errorf("%w: plane %s sample %d: %v", ErrMalformedLayerText, Channel(ch), i, err)
			}
			plane[i] = uint8(v)
		}
		parsed[ch] = plane
	}

	c.PushUndo()
	for ch, plane := range parsed {
		c.planes[ch].CopyFrom(newMaskFrom(c.cfg.Width, c.cfg.Height, plane))
	}
	c.stroke = StrokeIdle
	c.recomposite()
	return nil
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
