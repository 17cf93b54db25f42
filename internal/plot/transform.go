package plot

// Zoom factor bounds of the pan/zoom region.
const (
	MinZoom = 0.0
	MaxZoom = 20.0
)

// Transform is a uniform scale K followed by a translation (X, Y), in pixels.
type Transform struct {
	K float64
	X float64
	Y float64
}

// Identity is the transform of an untouched zoom region.
var Identity = Transform{K: 1}

func (t Transform) IsIdentity() bool { return t == Identity }

func (t Transform) ApplyX(x float64) float64  { return x*t.K + t.X }
func (t Transform) ApplyY(y float64) float64  { return y*t.K + t.Y }
func (t Transform) InvertX(x float64) float64 { return (x - t.X) / t.K }
func (t Transform) InvertY(y float64) float64 { return (y - t.Y) / t.K }

// RescaleX returns a copy of s whose domain is what the transformed view shows.
func (t Transform) RescaleX(s Linear) Linear {
	r0, r1 := s.Range()
	return NewLinear(s.Invert(t.InvertX(r0)), s.Invert(t.InvertX(r1)), r0, r1)
}

// RescaleY is RescaleX for the vertical axis.
func (t Transform) RescaleY(s Linear) Linear {
	r0, r1 := s.Range()
	return NewLinear(s.Invert(t.InvertY(r0)), s.Invert(t.InvertY(r1)), r0, r1)
}

// ScaleBy multiplies the zoom factor by f, keeping the point (px, py) fixed
// on screen. The result is clamped to [MinZoom, MaxZoom].
func (t Transform) ScaleBy(f, px, py float64) Transform {
	k := clamp(t.K*f, MinZoom, MaxZoom)
	if k == 0 {
		return t
	}
	// data-space point under the pointer before zooming
	x0, y0 := t.InvertX(px), t.InvertY(py)
	return Transform{K: k, X: px - x0*k, Y: py - y0*k}
}

// TranslateBy pans the view by (dx, dy) screen pixels.
func (t Transform) TranslateBy(dx, dy float64) Transform {
	return Transform{K: t.K, X: t.X + dx, Y: t.Y + dy}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
