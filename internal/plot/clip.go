package plot

import (
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Rect is an axis-aligned rectangle, Min inclusive, Max inclusive.
type Rect struct {
	Min, Max Point
}

// RectWH returns the rectangle at (x, y) with the given size.
func RectWH(x, y, w, h float64) Rect {
	return Rect{Min: Point{x, y}, Max: Point{x + w, y + h}}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ContainsAll reports whether every point lies inside r.
func (r Rect) ContainsAll(pts ...Point) bool {
	for _, p := range pts {
		if !r.Contains(p) {
			return false
		}
	}
	return true
}

// ClipPolyline splits the polyline into the runs that fall inside r.
// Non-finite points break the line.
func (r Rect) ClipPolyline(pts []Point) [][]Point {
	var lines [][]vg.Point
	var cur []vg.Point
	flush := func() {
		if len(cur) > 1 {
			lines = append(lines, cur)
		}
		cur = nil
	}
	for _, p := range pts {
		if !p.finite() {
			flush()
			continue
		}
		cur = append(cur, p.vg())
	}
	flush()
	if len(lines) == 0 {
		return nil
	}

	c := draw.Canvas{Rectangle: vg.Rectangle{Min: r.Min.vg(), Max: r.Max.vg()}}
	var runs [][]Point
	for _, l := range c.ClipLinesXY(lines...) {
		if len(l) < 2 {
			continue
		}
		run := make([]Point, len(l))
		for i, p := range l {
			run[i] = Point{X: float64(p.X), Y: float64(p.Y)}
		}
		runs = append(runs, run)
	}
	return runs
}

func (p Point) vg() vg.Point {
	return vg.Point{X: vg.Length(p.X), Y: vg.Length(p.Y)}
}

func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
