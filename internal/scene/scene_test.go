package scene

import (
	"math"
	"testing"

	"zoomchart/internal/plot"
)

func TestLayerKeepsOrder(t *testing.T) {
	var s Scene
	st := Style{Stroke: "333333"}
	s.Add(
		Text(LayerLabel, "0", plot.Point{X: 1}, st),
		Line(LayerGrid, plot.Point{}, plot.Point{X: 10}, st),
		Text(LayerLabel, "5", plot.Point{X: 2}, st),
	)
	got := s.Texts(LayerLabel)
	if len(got) != 2 || got[0] != "0" || got[1] != "5" {
		t.Fatalf("texts=%v", got)
	}
	if n := len(s.Layer(LayerGrid)); n != 1 {
		t.Fatalf("grid shapes=%d", n)
	}
	if n := len(s.Layer(LayerCrosshair)); n != 0 {
		t.Fatalf("crosshair shapes=%d", n)
	}
}

func TestSegmentsClip(t *testing.T) {
	r := plot.RectWH(0, 0, 10, 10)
	sh := Line(LayerSeries, plot.Point{X: -5, Y: 5}, plot.Point{X: 15, Y: 5}, Style{})
	sh.Clip = &r
	runs := sh.Segments(4)
	if len(runs) != 1 || len(runs[0]) != 2 {
		t.Fatalf("runs=%v", runs)
	}
	if math.Abs(runs[0][0].X) > 1e-9 || math.Abs(runs[0][1].X-10) > 1e-9 {
		t.Fatalf("clipped to %v", runs[0])
	}

	sh.From, sh.To = plot.Point{X: 20, Y: 20}, plot.Point{X: 30, Y: 30}
	if runs := sh.Segments(4); len(runs) != 0 {
		t.Fatalf("outside segment kept: %v", runs)
	}
}

func TestSegmentsText(t *testing.T) {
	if runs := Text(LayerLabel, "x", plot.Point{}, Style{}).Segments(4); runs != nil {
		t.Fatalf("text has segments: %v", runs)
	}
}

func TestLayerString(t *testing.T) {
	if LayerCrosshair.String() != "crosshair" || Layer(42).String() != "unknown" {
		t.Fatal("unexpected layer names")
	}
}
