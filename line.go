package rgbacanvas

import "image"

// Line calls plot for every point inside r of the 8-connected line from p0
// to p1, both endpoints included, using integer Bresenham stepping.
// Consecutive points differ by at most one unit on each axis.
//
// Points outside r are skipped and the walk stops as soon as it cannot
// re-enter r, so segments reaching far outside r cost no more than the part
// near r. Endpoints farther than 2*(width+height) from r are clamped to that
// margin first; within the margin the points plotted are exactly those of
// the unclipped line.
func Line(r image.Rectangle, p0, p1 image.Point, plot func(x, y int)) {
	if r.Empty() || outside(r, p0, p1) {
		return
	}
	m := 2 * (r.Dx() + r.Dy())
	p0 = clampPoint(p0, r, m)
	p1 = clampPoint(p1, r, m)

	dx := abs(p1.X - p0.X)
	dy := abs(p1.Y - p0.Y)
	sx, sy := 1, 1
	if p0.X > p1.X {
		sx = -1
	}
	if p0.Y > p1.Y {
		sy = -1
	}

	err := dx - dy
	x, y := p0.X, p0.Y
	for {
		if x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y {
			plot(x, y)
		}
		if x == p1.X && y == p1.Y {
			return
		}
		if leaving(x, sx, r.Min.X, r.Max.X) || leaving(y, sy, r.Min.Y, r.Max.Y) {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// outside reports whether both endpoints lie past the same edge of r.
func outside(r image.Rectangle, p0, p1 image.Point) bool {
	return (p0.X < r.Min.X && p1.X < r.Min.X) ||
		(p0.X >= r.Max.X && p1.X >= r.Max.X) ||
		(p0.Y < r.Min.Y && p1.Y < r.Min.Y) ||
		(p0.Y >= r.Max.Y && p1.Y >= r.Max.Y)
}

// leaving reports whether v is past [lo, hi) and stepping further away.
func leaving(v, step, lo, hi int) bool {
	return (v < lo && step < 0) || (v >= hi && step > 0)
}

func clampPoint(p image.Point, r image.Rectangle, m int) image.Point {
	return image.Pt(clamp(p.X, r.Min.X-m, r.Max.X+m), clamp(p.Y, r.Min.Y-m, r.Max.Y+m))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
