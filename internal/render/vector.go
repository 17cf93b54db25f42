package render

import (
	"fmt"
	"io"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"

	"zoomchart/internal/plot"
	"zoomchart/internal/scene"
)

// writeVector draws sc on a gonum SVG canvas. One surface pixel is one point.
func writeVector(w io.Writer, sc scene.Scene) error {
	c := vgsvg.New(vg.Points(sc.Width), vg.Points(sc.Height))
	dc := draw.New(c)
	// gonum's origin is bottom left
	at := func(p plot.Point) vg.Point {
		return vg.Point{X: vg.Points(p.X), Y: vg.Points(sc.Height - p.Y)}
	}
	for _, sh := range sc.Shapes {
		var p vg.Path
		switch sh.Kind {
		case scene.KindLine:
			p = polylines(sh.Segments(curveSteps), at)
		case scene.KindPath:
			p = vectorPath(sh, at)
		case scene.KindText:
			fillText(&dc, sh, at)
			continue
		}
		if len(p) == 0 {
			continue
		}
		width := sh.Style.StrokeWidth
		if width <= 0 {
			width = 1
		}
		dc.SetLineStyle(draw.LineStyle{Color: color(sh.Style.Stroke), Width: vg.Points(width)})
		dc.Stroke(p)
	}
	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

func polylines(runs [][]plot.Point, at func(plot.Point) vg.Point) vg.Path {
	var p vg.Path
	for _, run := range runs {
		if !finite(run) {
			continue
		}
		p.Move(at(run[0]))
		for _, q := range run[1:] {
			p.Line(at(q))
		}
	}
	return p
}

// vectorPath keeps spline segments as cubic curves when their control hull
// lies inside the clip rectangle. Segments that cross the edge are flattened
// and clipped.
func vectorPath(sh scene.Shape, at func(plot.Point) vg.Point) vg.Path {
	var p vg.Path
	var cur plot.Point
	pen := false // p's current point is cur
	for _, c := range sh.Path {
		if c.Op == plot.MoveTo {
			cur, pen = c.P, false
			continue
		}
		hull := []plot.Point{cur, c.P}
		if c.Op == plot.CubicTo {
			hull = append(hull, c.C1, c.C2)
		}
		switch {
		case finite(hull) && (sh.Clip == nil || sh.Clip.ContainsAll(hull...)):
			if !pen {
				p.Move(at(cur))
			}
			if c.Op == plot.CubicTo {
				p.CubeTo(at(c.C1), at(c.C2), at(c.P))
			} else {
				p.Line(at(c.P))
			}
			pen = true
		case sh.Clip != nil:
			seg := plot.Path{{Op: plot.MoveTo, P: cur}, c}
			runs := sh.Clip.ClipPolyline(seg.Flatten(curveSteps))
			p = append(p, polylines(runs, at)...)
			pen = false
			if n := len(runs); n > 0 {
				last := runs[n-1]
				pen = last[len(last)-1] == c.P
			}
		default:
			pen = false
		}
		cur = c.P
	}
	return p
}

func fillText(dc *draw.Canvas, sh scene.Shape, at func(plot.Point) vg.Point) {
	if !finite([]plot.Point{sh.At}) {
		return
	}
	fnt := gplot.DefaultFont
	fnt.Size = vg.Points(sh.Style.FontSize)
	sty := draw.TextStyle{
		Color:   color("333333"),
		Font:    fnt,
		XAlign:  draw.XLeft,
		YAlign:  draw.YBottom,
		Handler: gplot.DefaultTextHandler,
	}
	switch sh.Style.Anchor {
	case scene.AnchorMiddle:
		sty.XAlign = draw.XCenter
	case scene.AnchorEnd:
		sty.XAlign = draw.XRight
	}
	dc.FillText(sty, at(sh.At), sh.Text)
}
