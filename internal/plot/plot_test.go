package plot

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestLinearMapAndInvert(t *testing.T) {
	x := NewLinear(0, 10, 0, 610)
	if got := x.Map(5); !near(got, 305) {
		t.Fatalf("x.Map(5)=%v, want 305", got)
	}
	y := NewLinear(0, 10, 660, 0)
	if got := y.Map(0); !near(got, 660) {
		t.Fatalf("y.Map(0)=%v, want 660", got)
	}
	if got := y.Map(10); !near(got, 0) {
		t.Fatalf("y.Map(10)=%v, want 0", got)
	}
	if got := y.Invert(330); !near(got, 5) {
		t.Fatalf("y.Invert(330)=%v, want 5", got)
	}
}

func TestLinearZeroWidthDomain(t *testing.T) {
	s := NewLinear(3, 3, 0, 100)
	if got := s.Map(3); !near(got, 50) {
		t.Fatalf("Map on zero-width domain=%v, want 50", got)
	}
	if got := s.Map(42); !near(got, 50) {
		t.Fatalf("Map(42) on zero-width domain=%v, want 50", got)
	}
}

func TestLinearNaNDomain(t *testing.T) {
	s := NewLinear(math.NaN(), math.NaN(), 0, 100)
	if got := s.Map(1); !math.IsNaN(got) {
		t.Fatalf("Map with NaN domain=%v, want NaN", got)
	}
}

func TestTicks(t *testing.T) {
	cases := []struct {
		name        string
		start, stop float64
		want        []float64
	}{
		{"unit steps", 0, 10, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{"fractional", 0, 1, []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1}},
		{"fives", 0, 50, []float64{0, 5, 10, 15, 20, 25, 30, 35, 40, 45, 50}},
		{"reversed", 10, 0, []float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0}},
		{"single", 4, 4, []float64{4}},
	}
	for _, tc := range cases {
		got := Ticks(tc.start, tc.stop, DefaultTickCount)
		if len(got) != len(tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
		for i := range got {
			if !near(got[i], tc.want[i]) {
				t.Fatalf("%s: tick[%d]=%v, want %v", tc.name, i, got[i], tc.want[i])
			}
		}
	}
}

func TestTicksNaN(t *testing.T) {
	if got := Ticks(math.NaN(), 1, 10); got != nil {
		t.Fatalf("ticks over NaN domain=%v, want nil", got)
	}
}

func TestTickFormat(t *testing.T) {
	cases := []struct {
		start, stop float64
		v           float64
		want        string
	}{
		{0, 10, 5, "5"},
		{0, 1, 0.5, "0.5"},
		{0, 10000, 5000, "5,000"},
		{-1, 1, -0.4, "-0.4"},
		{0, 0.01, 0.005, "0.005"},
	}
	for _, tc := range cases {
		f := TickFormat(tc.start, tc.stop, DefaultTickCount)
		if got := f(tc.v); got != tc.want {
			t.Fatalf("format(%v) over [%v,%v]=%q, want %q", tc.v, tc.start, tc.stop, got, tc.want)
		}
	}
}

func TestExtent(t *testing.T) {
	lo, hi, ok := Extent([]float64{3, math.NaN(), -2, 8})
	if !ok || lo != -2 || hi != 8 {
		t.Fatalf("Extent=(%v,%v,%v), want (-2,8,true)", lo, hi, ok)
	}
	if _, _, ok := Extent(nil); ok {
		t.Fatalf("Extent(nil) ok=true")
	}
	if _, _, ok := Extent([]float64{math.NaN()}); ok {
		t.Fatalf("Extent(NaN) ok=true")
	}
}

func TestTransformRescale(t *testing.T) {
	x := NewLinear(0, 10, 0, 610)
	if d0, d1 := Identity.RescaleX(x).Domain(); !near(d0, 0) || !near(d1, 10) {
		t.Fatalf("identity rescale domain=[%v,%v]", d0, d1)
	}
	z := Identity.ScaleBy(2, 0, 0)
	if d0, d1 := z.RescaleX(x).Domain(); !near(d0, 0) || !near(d1, 5) {
		t.Fatalf("2x rescale domain=[%v,%v], want [0,5]", d0, d1)
	}
	y := NewLinear(0, 10, 660, 0)
	if d0, d1 := z.RescaleY(y).Domain(); !near(d0, 5) || !near(d1, 10) {
		t.Fatalf("2x rescale y domain=[%v,%v], want [5,10]", d0, d1)
	}
}

func TestTransformScaleByKeepsPointFixed(t *testing.T) {
	tr := Identity.TranslateBy(13, -7).ScaleBy(1.5, 100, 200)
	before := Identity.TranslateBy(13, -7)
	// the data point under (100,200) must stay under it
	if got := tr.ApplyX(before.InvertX(100)); !near(got, 100) {
		t.Fatalf("x anchor moved to %v", got)
	}
	if got := tr.ApplyY(before.InvertY(200)); !near(got, 200) {
		t.Fatalf("y anchor moved to %v", got)
	}
}

func TestTransformClamp(t *testing.T) {
	tr := Identity.ScaleBy(1000, 0, 0)
	if tr.K != MaxZoom {
		t.Fatalf("K=%v, want %v", tr.K, MaxZoom)
	}
	if got := Identity.ScaleBy(0, 10, 10); got != Identity {
		t.Fatalf("zero factor changed transform: %+v", got)
	}
}

func TestCardinal(t *testing.T) {
	pts := []Point{{0, 0}, {5, 10}, {10, 4}, {15, 6}}
	p := Cardinal(pts, 0)
	if len(p.Anchors()) != len(pts) {
		t.Fatalf("anchors=%d, want %d", len(p.Anchors()), len(pts))
	}
	if p[0].Op != MoveTo {
		t.Fatalf("first op=%v, want MoveTo", p[0].Op)
	}
	for i := 1; i < len(p); i++ {
		if p[i].Op != CubicTo {
			t.Fatalf("op[%d]=%v, want CubicTo", i, p[i].Op)
		}
		if p[i].P != pts[i] {
			t.Fatalf("anchor[%d]=%v, want %v", i, p[i].P, pts[i])
		}
	}
	if p[1].C1 != pts[0] {
		t.Fatalf("first control=%v, want endpoint %v", p[1].C1, pts[0])
	}
	if last := p[len(p)-1]; last.C2 != pts[3] {
		t.Fatalf("last control=%v, want endpoint %v", last.C2, pts[3])
	}
	// interior: c1 = p1 + (p2-p0)/6
	want := Point{5 + 10.0/6, 10 + 4.0/6}
	if c := p[2].C1; !near(c.X, want.X) || !near(c.Y, want.Y) {
		t.Fatalf("interior control=%v, want %v", c, want)
	}
}

func TestCardinalShortInputs(t *testing.T) {
	if p := Cardinal(nil, 0); p != nil {
		t.Fatalf("empty input gave %v", p)
	}
	p := Cardinal([]Point{{0, 0}, {1, 1}}, 0)
	if len(p) != 2 || p[1].Op != LineTo {
		t.Fatalf("two points gave %+v, want move+line", p)
	}
}

func TestFlattenEndsOnAnchors(t *testing.T) {
	p := Cardinal([]Point{{0, 0}, {5, 10}, {10, 4}}, 0)
	flat := p.Flatten(8)
	if len(flat) != 1+2*8 {
		t.Fatalf("flattened points=%d, want %d", len(flat), 1+2*8)
	}
	if flat[8] != (Point{5, 10}) || flat[16] != (Point{10, 4}) {
		t.Fatalf("flattened polyline misses anchors: %v %v", flat[8], flat[16])
	}
}

func TestClipPolylineSplitsRuns(t *testing.T) {
	r := RectWH(0, 0, 10, 10)
	runs := r.ClipPolyline([]Point{{1, 1}, {5, 5}, {5, 20}, {8, 20}, {8, 5}})
	if len(runs) != 2 {
		t.Fatalf("runs=%d, want 2: %v", len(runs), runs)
	}
	last := runs[0][len(runs[0])-1]
	if runs[0][0] != (Point{1, 1}) || !near(last.X, 5) || !near(last.Y, 10) {
		t.Fatalf("first run=%v", runs[0])
	}
	first := runs[1][0]
	if !near(first.X, 8) || !near(first.Y, 10) || runs[1][len(runs[1])-1] != (Point{8, 5}) {
		t.Fatalf("second run=%v", runs[1])
	}
}

func TestClipPolylineOutsideAndNaN(t *testing.T) {
	r := RectWH(0, 0, 10, 10)
	if runs := r.ClipPolyline([]Point{{-5, -5}, {-1, -1}}); len(runs) != 0 {
		t.Fatalf("outside line kept: %v", runs)
	}
	runs := r.ClipPolyline([]Point{{1, 1}, {2, 2}, {math.NaN(), 3}, {4, 4}, {5, 5}})
	if len(runs) != 2 {
		t.Fatalf("NaN should split the line, runs=%v", runs)
	}
	if r.ClipPolyline([]Point{{1, 1}}) != nil {
		t.Fatal("single point has no segments")
	}
}

func TestContainsAll(t *testing.T) {
	r := RectWH(0, 0, 10, 10)
	if !r.ContainsAll(Point{0, 0}, Point{10, 10}, Point{5, 2}) {
		t.Fatal("edge points are inside")
	}
	if r.ContainsAll(Point{5, 5}, Point{11, 5}) {
		t.Fatal("point past the edge reported inside")
	}
}
