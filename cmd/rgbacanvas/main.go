// Command rgbacanvas draws strokes into an RGBA channel canvas and saves
// the composite as PNG.
//
// Usage:
//
//	rgbacanvas -width 64 -height 64 -active rb -stroke "2,2 60,40; 10,50 50,50" -out out.png
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/rgbacanvas"
)

func main() {
	var (
		width     = flag.Int("width", rgbacanvas.DefaultWidth, "canvas width")
		height    = flag.Int("height", rgbacanvas.DefaultHeight, "canvas height")
		undoDepth = flag.Int("undo", rgbacanvas.DefaultUndoDepth, "undo depth")
		name      = flag.String("name", rgbacanvas.DefaultName, "image name used for the default output file")
		input     = flag.String("in", "", "image to import before drawing")
		scale     = flag.Bool("scale", false, "stretch the imported image to the canvas size")
		active    = flag.String("active", "r", "channels written by strokes, e.g. \"rg\"")
		visible   = flag.String("visible", "rgb", "channels included in the output, e.g. \"rgba\"")
		strokes   = flag.String("stroke", "", "strokes separated by ';', points \"x,y\" separated by spaces")
		undoSteps = flag.Int("undo-steps", 0, "undo this many times after drawing")
		redoSteps = flag.Int("redo-steps", 0, "redo this many times after undoing")
		output    = flag.String("out", "", "output PNG file or directory (default: <name>.png)")
		dump      = flag.Bool("dump", false, "print the layer data text to stdout")
		verbose   = flag.Bool("v", false, "debug logging to stderr")
	)
	flag.Parse()

	if *verbose {
		rgbacanvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	c, err := rgbacanvas.New(
		rgbacanvas.WithSize(*width, *height),
		rgbacanvas.WithUndoDepth(*undoDepth),
		rgbacanvas.WithName(*name),
	)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}

	if *input != "" {
		if err := importFile(c, *input, *scale); err != nil {
			log.Fatalf("Failed to import %s: %v", *input, err)
		}
	}

	if err := applyChannels(c, *active, *visible); err != nil {
		log.Fatalf("Invalid channels: %v", err)
	}

	paths, err := parseStrokes(*strokes)
	if err != nil {
		log.Fatalf("Invalid -stroke: %v", err)
	}
	for _, path := range paths {
		drawStroke(c, path)
	}

	repeat(*undoSteps, c.Undo)
	repeat(*redoSteps, c.Redo)

	if err := c.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	if *dump {
		fmt.Println(c.LayerDataText())
	}

	log.Printf("Canvas saved (%dx%d, active %s, visible %s, %d undo entries)\n",
		c.Width(), c.Height(), c.ActiveChannels(), c.VisibleChannels(), c.UndoLen())
}

func importFile(c *rgbacanvas.Canvas, path string, scale bool) error {
	if !scale {
		return c.LoadImage(path)
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	return c.ImportImageScaled(data)
}

func applyChannels(c *rgbacanvas.Canvas, active, visible string) error {
	a, err := rgbacanvas.ParseChannels(active)
	if err != nil {
		return err
	}
	v, err := rgbacanvas.ParseChannels(visible)
	if err != nil {
		return err
	}
	c.SetActiveChannels(a)
	c.SetVisibleChannels(v)
	return nil
}

// drawStroke replays one pointer interaction: down at the first point, a
// move to each following point, then up.
func drawStroke(c *rgbacanvas.Canvas, path []image.Point) {
	if len(path) == 0 {
		return
	}
	c.BeginStroke(path[0])
	for _, p := range path[1:] {
		c.StrokeTo(p)
	}
	c.EndStroke()
}

// repeat calls fn up to n times, stopping at the first false.
func repeat(n int, fn func() bool) {
	for i := 0; i < n; i++ {
		if !fn() {
			return
		}
	}
}

// parseStrokes parses "x,y x,y; x,y ..." into point lists.
func parseStrokes(s string) ([][]image.Point, error) {
	var out [][]image.Point
	for _, stroke := range strings.Split(s, ";") {
		fields := strings.Fields(stroke)
		if len(fields) == 0 {
			continue
		}
		path := make([]image.Point, 0, len(fields))
		for _, f := range fields {
			p, err := parsePoint(f)
			if err != nil {
				return nil, err
			}
			path = append(path, p)
		}
		out = append(out, path)
	}
	return out, nil
}

func parsePoint(s string) (image.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return image.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return image.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return image.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return image.Pt(x, y), nil
}
