package tui

import (
	"math"

	"zoomchart/internal/plot"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func finite(p plot.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// fitCanvas picks the largest canvas, in cells, that fits w x h and keeps the
// surface aspect ratio. A braille cell is 2x4 dots and roughly 1:2 on screen,
// so dots come out close to square.
func fitCanvas(w, h int, surfaceW, surfaceH float64) (int, int) {
	if w < 10 || h < 4 || surfaceW <= 0 || surfaceH <= 0 {
		return max(w, 10), max(h, 4)
	}
	ratio := surfaceW / surfaceH
	ch := h
	cw := int(math.Round(2 * float64(ch) * ratio))
	if cw > w {
		cw = w
		ch = int(math.Round(float64(cw) / (2 * ratio)))
	}
	return max(cw, 10), max(ch, 4)
}
