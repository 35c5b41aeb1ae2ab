package rgbacanvas

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	intImage "github.com/gogpu/rgbacanvas/internal/image"
)

// ExportComposite returns the current composite encoded as PNG.
func (c *Canvas) ExportComposite() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodePNG writes the current composite to w as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.closed {
		return ErrClosed
	}
	return intImage.EncodePNG(w, c.frame)
}

// SavePNG writes the current composite as a PNG file. An empty path saves
// FileName() in the working directory; a path naming an existing directory
// saves FileName() inside it.
func (c *Canvas) SavePNG(path string) error {
	if c.closed {
		return ErrClosed
	}
	path = c.resolvePath(path)
	Logger().Debug("rgbacanvas: save", "path", path, "size", c.Bounds().Size())
	return intImage.SavePNG(path, c.frame)
}

func (c *Canvas) resolvePath(path string) string {
	if path == "" {
		return c.FileName()
	}
	if isDir(path) {
		return filepath.Join(path, c.FileName())
	}
	return path
}

// FileName returns the default download name derived from the configured
// name: accents are folded, characters outside letters, digits, '-', '_'
// and '.' become '-', and ".png" is appended unless already present.
// An empty result falls back to DefaultName.
func (c *Canvas) FileName() string {
	return fileName(c.cfg.Name)
}

var foldMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func fileName(name string) string {
	folded, _, err := transform.String(foldMarks, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	dash := false
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_', r == '.':
			b.WriteRune(r)
			dash = false
		default:
			if !dash {
				b.WriteByte('-')
				dash = true
			}
		}
	}

	base := strings.Trim(b.String(), "-.")
	if base == "" {
		base = DefaultName
	}
	if strings.EqualFold(filepath.Ext(base), ".png") {
		return base
	}
	return base + ".png"
}
