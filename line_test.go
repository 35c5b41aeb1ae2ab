package rgbacanvas

import (
	"image"
	"math"
	"testing"
)

// wide contains every point the unclipped tests walk through.
var wide = image.Rect(-100, -100, 100, 100)

func collectLine(p0, p1 image.Point) []image.Point {
	return clippedLine(wide, p0, p1)
}

func clippedLine(r image.Rectangle, p0, p1 image.Point) []image.Point {
	var pts []image.Point
	Line(r, p0, p1, func(x, y int) {
		pts = append(pts, image.Pt(x, y))
	})
	return pts
}

func TestLineDiagonal(t *testing.T) {
	got := collectLine(image.Pt(0, 0), image.Pt(3, 3))
	want := []image.Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLineSinglePoint(t *testing.T) {
	got := collectLine(image.Pt(5, 5), image.Pt(5, 5))
	if len(got) != 1 || got[0] != image.Pt(5, 5) {
		t.Errorf("got %v, want [(5,5)]", got)
	}
}

func TestLineContinuity(t *testing.T) {
	ends := []struct{ p0, p1 image.Point }{
		{image.Pt(0, 0), image.Pt(10, 3)},
		{image.Pt(10, 3), image.Pt(0, 0)},
		{image.Pt(2, 9), image.Pt(7, -4)},
		{image.Pt(-3, -3), image.Pt(-20, 5)},
		{image.Pt(0, 0), image.Pt(0, 12)},
		{image.Pt(0, 0), image.Pt(-12, 0)},
		{image.Pt(1, 1), image.Pt(40, 17)},
	}
	for _, e := range ends {
		pts := collectLine(e.p0, e.p1)
		if pts[0] != e.p0 {
			t.Errorf("%v->%v: first point %v, want %v", e.p0, e.p1, pts[0], e.p0)
		}
		if pts[len(pts)-1] != e.p1 {
			t.Errorf("%v->%v: last point %v, want %v", e.p0, e.p1, pts[len(pts)-1], e.p1)
		}

		dx, dy := abs(e.p1.X-e.p0.X), abs(e.p1.Y-e.p0.Y)
		if want := max(dx, dy) + 1; len(pts) != want {
			t.Errorf("%v->%v: %d points, want %d", e.p0, e.p1, len(pts), want)
		}

		for i := 1; i < len(pts); i++ {
			d := pts[i].Sub(pts[i-1])
			if abs(d.X) > 1 || abs(d.Y) > 1 || d == (image.Point{}) {
				t.Fatalf("%v->%v: step %v->%v is not 8-connected", e.p0, e.p1, pts[i-1], pts[i])
			}
		}
	}
}

func TestLineClipMatchesUnclipped(t *testing.T) {
	r := image.Rect(2, 3, 12, 9)
	ends := []struct{ p0, p1 image.Point }{
		{image.Pt(-10, -4), image.Pt(30, 20)},
		{image.Pt(30, 20), image.Pt(-10, -4)},
		{image.Pt(7, -30), image.Pt(5, 40)},
		{image.Pt(-25, 6), image.Pt(40, 6)},
		{image.Pt(4, 4), image.Pt(-40, 30)},
		{image.Pt(11, 8), image.Pt(11, 8)},
		{image.Pt(0, 12), image.Pt(14, 0)},
	}
	for _, e := range ends {
		var want []image.Point
		for _, p := range collectLine(e.p0, e.p1) {
			if p.In(r) {
				want = append(want, p)
			}
		}
		got := clippedLine(r, e.p0, e.p1)
		if len(got) != len(want) {
			t.Errorf("%v->%v: clipped %v, want %v", e.p0, e.p1, got, want)
			continue
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%v->%v: point %d = %v, want %v", e.p0, e.p1, i, got[i], want[i])
			}
		}
	}
}

func TestLineFarEndpoints(t *testing.T) {
	r := image.Rect(0, 0, 8, 8)
	const far = 1 << 40

	tests := []struct {
		name   string
		p0, p1 image.Point
		want   []image.Point // nil means only check containment and connectivity
		empty  bool
	}{
		{"left edge to min int", image.Pt(0, 0), image.Pt(math.MinInt, 0), []image.Point{{0, 0}}, false},
		{"right edge to max int", image.Pt(7, 5), image.Pt(math.MaxInt, 5), []image.Point{{7, 5}}, false},
		{"row across", image.Pt(-far, 3), image.Pt(far, 3),
			[]image.Point{{0, 3}, {1, 3}, {2, 3}, {3, 3}, {4, 3}, {5, 3}, {6, 3}, {7, 3}}, false},
		{"column across", image.Pt(6, math.MaxInt), image.Pt(6, math.MinInt),
			[]image.Point{{6, 7}, {6, 6}, {6, 5}, {6, 4}, {6, 3}, {6, 2}, {6, 1}, {6, 0}}, false},
		{"both past left", image.Pt(math.MinInt, 2), image.Pt(-1, 5), nil, true},
		{"both past bottom", image.Pt(3, far), image.Pt(4, math.MaxInt), nil, true},
		{"extreme corners", image.Pt(math.MinInt, math.MinInt), image.Pt(math.MaxInt, math.MaxInt), nil, false},
		{"steep far", image.Pt(3, -far), image.Pt(5, far), nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clippedLine(r, tt.p0, tt.p1)
			if tt.empty {
				if len(got) != 0 {
					t.Fatalf("got %v, want no points", got)
				}
				return
			}
			if len(got) == 0 {
				t.Fatal("no points plotted")
			}
			for i, p := range got {
				if !p.In(r) {
					t.Fatalf("point %v outside %v", p, r)
				}
				if i > 0 {
					d := p.Sub(got[i-1])
					if abs(d.X) > 1 || abs(d.Y) > 1 || d == (image.Point{}) {
						t.Fatalf("step %v->%v is not 8-connected", got[i-1], p)
					}
				}
			}
			if tt.want == nil {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("point %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLineEmptyRect(t *testing.T) {
	if got := clippedLine(image.Rectangle{}, image.Pt(0, 0), image.Pt(3, 3)); len(got) != 0 {
		t.Errorf("empty rect plotted %v", got)
	}
}
