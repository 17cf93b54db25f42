package plot

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

type Op int

const (
	MoveTo Op = iota
	LineTo
	CubicTo
)

// Cmd is one path instruction. C1 and C2 are only set for CubicTo.
type Cmd struct {
	Op     Op
	C1, C2 Point
	P      Point
}

// Path is a single open subpath built from commands.
type Path []Cmd

// Anchors returns the points the path passes through, in order.
func (p Path) Anchors() []Point {
	out := make([]Point, 0, len(p))
	for _, c := range p {
		out = append(out, c.P)
	}
	return out
}

// Cardinal builds a cardinal spline through pts in order. Tension 0 gives the
// classic Catmull-Rom-like shape, tension 1 straight segments. The first and
// last segments use the endpoint itself as the outer control point.
func Cardinal(pts []Point, tension float64) Path {
	n := len(pts)
	if n == 0 {
		return nil
	}
	path := Path{{Op: MoveTo, P: pts[0]}}
	switch n {
	case 1:
		return path
	case 2:
		return append(path, Cmd{Op: LineTo, P: pts[1]})
	}
	k := (1 - tension) / 6
	for i := 0; i < n-1; i++ {
		a, b := pts[i], pts[i+1]
		c1, c2 := a, b
		if i > 0 {
			prev := pts[i-1]
			c1 = Point{a.X + k*(b.X-prev.X), a.Y + k*(b.Y-prev.Y)}
		}
		if i < n-2 {
			next := pts[i+2]
			c2 = Point{b.X - k*(next.X-a.X), b.Y - k*(next.Y-a.Y)}
		}
		path = append(path, Cmd{Op: CubicTo, C1: c1, C2: c2, P: b})
	}
	return path
}

// Flatten approximates the path with a polyline, splitting each cubic into
// steps straight pieces.
func (p Path) Flatten(steps int) []Point {
	if steps < 1 {
		steps = 1
	}
	var out []Point
	var cur Point
	for _, c := range p {
		switch c.Op {
		case MoveTo, LineTo:
			out = append(out, c.P)
		case CubicTo:
			for s := 1; s <= steps; s++ {
				out = append(out, cubicAt(cur, c.C1, c.C2, c.P, float64(s)/float64(steps)))
			}
		}
		cur = c.P
	}
	return out
}

func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}
