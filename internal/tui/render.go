package tui

import (
	"math"
	"strings"
	"unicode/utf8"

	"zoomchart/internal/plot"
	"zoomchart/internal/scene"
)

// curveSteps is how many segments each cubic of the series is flattened into.
const curveSteps = 8

// renderChart rasterises the widget's scene onto a w x h braille canvas.
func (m Model) renderChart(w, h int) string {
	sc := m.widget.Scene()
	if w <= 0 || h <= 0 || sc.Width <= 0 || sc.Height <= 0 {
		return ""
	}
	br := newBrailleBuf(w, h)
	// surface pixels to micro dots
	sx := float64(w*2) / sc.Width
	sy := float64(h*4) / sc.Height
	micro := func(p plot.Point) (int, int) {
		return int(math.Floor(p.X * sx)), int(math.Floor(p.Y * sy))
	}

	for _, sh := range sc.Shapes {
		if sh.Kind == scene.KindText {
			continue
		}
		for _, run := range sh.Segments(curveSteps) {
			for i := 1; i < len(run); i++ {
				a, b := run[i-1], run[i]
				if !finite(a) || !finite(b) {
					continue
				}
				x0, y0 := micro(a)
				x1, y1 := micro(b)
				br.drawLineMicro(x0, y0, x1, y1, sh.Layer)
			}
		}
	}

	// labels go last so they stay readable over grid dots
	for _, sh := range sc.Shapes {
		if sh.Kind != scene.KindText || !finite(sh.At) {
			continue
		}
		cx := int(math.Floor(sh.At.X * float64(w) / sc.Width))
		cy := int(math.Floor(sh.At.Y * float64(h) / sc.Height))
		n := utf8.RuneCountInString(sh.Text)
		switch sh.Style.Anchor {
		case scene.AnchorMiddle:
			cx -= n / 2
		case scene.AnchorEnd:
			cx -= n
		}
		br.putText(cx, cy, sh.Text)
	}
	return strings.Join(br.toLines(), "\n")
}
