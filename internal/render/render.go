// Package render writes chart scenes as SVG through gonum's vector canvas and
// as PNG through go-chart's raster renderer.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"zoomchart/internal/plot"
	"zoomchart/internal/scene"
)

// Format selects the output encoding.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ErrUnknownFormat is returned for formats other than svg and png.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat accepts "svg" or "png", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatSVG, FormatPNG:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// curveSteps is how many straight pieces approximate a spline segment that
// has to be clipped, or every segment on the raster renderer.
const curveSteps = 16

// Write draws sc in the given format to w.
func Write(w io.Writer, sc scene.Scene, f Format) error {
	switch f {
	case FormatSVG:
		return writeVector(w, sc)
	case FormatPNG:
		return writeRaster(w, sc)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

func writeRaster(w io.Writer, sc scene.Scene) error {
	r, err := chart.PNG(int(math.Round(sc.Width)), int(math.Round(sc.Height)))
	if err != nil {
		return fmt.Errorf("create png renderer: %w", err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		// raster text needs glyphs
		return fmt.Errorf("load font: %w", err)
	}
	r.SetFont(font)
	for _, sh := range sc.Shapes {
		switch sh.Kind {
		case scene.KindLine, scene.KindPath:
			stroke(r, sh)
		case scene.KindText:
			text(r, sh)
		}
	}
	if err := r.Save(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

func stroke(r chart.Renderer, sh scene.Shape) {
	runs := sh.Segments(curveSteps)
	if len(runs) == 0 {
		return
	}
	r.ResetStyle()
	r.SetStrokeColor(color(sh.Style.Stroke))
	r.SetStrokeWidth(sh.Style.StrokeWidth)
	drawn := false
	for _, run := range runs {
		if !finite(run) {
			continue
		}
		for i, p := range run {
			x, y := px(p)
			if i == 0 {
				r.MoveTo(x, y)
			} else {
				r.LineTo(x, y)
			}
		}
		drawn = true
	}
	if drawn {
		r.Stroke()
	}
}

func text(r chart.Renderer, sh scene.Shape) {
	if math.IsNaN(sh.At.X) || math.IsNaN(sh.At.Y) {
		return
	}
	r.ResetStyle()
	r.SetFontColor(color("333333"))
	r.SetFontSize(sh.Style.FontSize)
	// approximate advance so layout does not depend on font metrics
	w := float64(utf8.RuneCountInString(sh.Text)) * sh.Style.FontSize * 0.6
	x := sh.At.X
	switch sh.Style.Anchor {
	case scene.AnchorMiddle:
		x -= w / 2
	case scene.AnchorEnd:
		x -= w
	}
	r.Text(sh.Text, int(math.Round(x)), int(math.Round(sh.At.Y)))
}

func color(hex string) drawing.Color {
	if hex == "" {
		return drawing.ColorBlack
	}
	return drawing.ColorFromHex(hex)
}

func px(p plot.Point) (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

func finite(pts []plot.Point) bool {
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}
