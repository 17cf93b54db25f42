package render

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"

	"gonum.org/v1/plot/vg"

	"zoomchart/internal/chart"
	"zoomchart/internal/dataset"
	"zoomchart/internal/plot"
	"zoomchart/internal/scene"
)

func widget(t *testing.T) *chart.Widget {
	t.Helper()
	d, ok := dataset.Default().Lookup(1)
	if !ok {
		t.Fatalf("bundled dataset 1 missing")
	}
	return chart.New(chart.Config{Data: d.Records, XField: "x", YField: "y", Width: 700, Height: 700})
}

func TestWriteSVG(t *testing.T) {
	w := widget(t)
	var buf bytes.Buffer
	if err := Write(&buf, w.Scene(), FormatSVG); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("output is not an svg document: %.80q", out)
	}
	labels := len(w.Scene().Texts(scene.LayerLabel))
	if got := strings.Count(out, "<text"); got != labels {
		t.Fatalf("text elements=%d, want %d", got, labels)
	}
}

func TestWriteSVGCrosshairAddsTwoPaths(t *testing.T) {
	w := widget(t)
	var plain bytes.Buffer
	if err := Write(&plain, w.Scene(), FormatSVG); err != nil {
		t.Fatalf("Write: %v", err)
	}
	w.ToggleCrosshair()
	w.PointerMove(100, 100)
	var withGuides bytes.Buffer
	if err := Write(&withGuides, w.Scene(), FormatSVG); err != nil {
		t.Fatalf("Write: %v", err)
	}
	a := strings.Count(plain.String(), "<path")
	b := strings.Count(withGuides.String(), "<path")
	if b != a+2 {
		t.Fatalf("paths with guides=%d, without=%d, want +2", b, a)
	}
}

var curveData = regexp.MustCompile(`d="[^"]*C`)

func TestWriteSVGKeepsCurves(t *testing.T) {
	d, _ := dataset.Default().Lookup(3)
	w := chart.New(chart.Config{Data: d.Records, XField: "x", YField: "y", Width: 700, Height: 700})
	var buf bytes.Buffer
	if err := Write(&buf, w.Scene(), FormatSVG); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !curveData.MatchString(buf.String()) {
		t.Fatalf("series was not written as cubic curves")
	}

	// zoomed in, part of the line crosses the plot edge and gets clipped
	w.ToggleZoom()
	iw, ih := w.InnerSize()
	w.ZoomBy(4, iw/2, ih/2)
	buf.Reset()
	if err := Write(&buf, w.Scene(), FormatSVG); err != nil {
		t.Fatalf("Write zoomed: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "NaN") || !strings.Contains(out, "</svg>") {
		t.Fatalf("zoomed svg is malformed")
	}
}

func TestVectorPathClipsOutsideSegments(t *testing.T) {
	clip := plot.RectWH(0, 0, 10, 10)
	sh := scene.Shape{
		Kind: scene.KindPath,
		Path: plot.Cardinal([]plot.Point{{X: 1, Y: 5}, {X: 4, Y: 6}, {X: 7, Y: 4}, {X: 20, Y: 5}}, 0),
		Clip: &clip,
	}
	p := vectorPath(sh, func(q plot.Point) vg.Point { return vg.Point{X: vg.Length(q.X), Y: vg.Length(q.Y)} })
	var curves int
	for _, c := range p {
		if c.Type == vg.CurveComp {
			curves++
		}
		if c.Type == vg.MoveComp || c.Type == vg.LineComp || c.Type == vg.CurveComp {
			if c.Pos.X < -1e-9 || c.Pos.X > 10+1e-9 {
				t.Fatalf("point %v escapes the clip", c.Pos)
			}
		}
	}
	if curves == 0 {
		t.Fatalf("segments inside the clip should stay curves")
	}
}

func TestWritePNG(t *testing.T) {
	w := widget(t)
	var buf bytes.Buffer
	if err := Write(&buf, w.Scene(), FormatPNG); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Fatalf("output is not a png")
	}
}

func TestWriteEmptySceneSurvivesNaN(t *testing.T) {
	w := chart.New(chart.Config{
		Data:   []dataset.Record{{"x": 1, "y": 2}},
		XField: "missing", YField: "y", Width: 400, Height: 300,
	})
	var buf bytes.Buffer
	if err := Write(&buf, w.Scene(), FormatSVG); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if strings.Contains(buf.String(), "NaN") {
		t.Fatalf("NaN coordinates leaked into the svg")
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat(" SVG "); err != nil || f != FormatSVG {
		t.Fatalf("ParseFormat(SVG)=(%q,%v)", f, err)
	}
	if f, err := ParseFormat("png"); err != nil || f != FormatPNG {
		t.Fatalf("ParseFormat(png)=(%q,%v)", f, err)
	}
	if _, err := ParseFormat("gif"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("ParseFormat(gif)=%v, want ErrUnknownFormat", err)
	}
	if err := Write(&bytes.Buffer{}, scene.Scene{Width: 10, Height: 10}, Format("bmp")); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Write(bmp)=%v, want ErrUnknownFormat", err)
	}
}
