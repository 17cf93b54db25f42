package chart

import (
	"math"

	"zoomchart/internal/plot"
	"zoomchart/internal/scene"
)

// tick geometry of the axes, in pixels
const (
	tickSize    = 6
	tickPadding = 3
	fontSize    = 10
)

var (
	gridStyle      = scene.Style{Stroke: "e5e7eb", StrokeWidth: 1}
	axisStyle      = scene.Style{Stroke: "333333", StrokeWidth: 1}
	seriesStyle    = scene.Style{Stroke: "61a3a9", StrokeWidth: 2}
	crosshairStyle = scene.Style{Stroke: "ff0000", StrokeWidth: 1}
)

// redraw discards the current scene and rebuilds it from data and state.
func (w *Widget) redraw() {
	if !w.mounted {
		return
	}
	iw, ih := w.InnerSize()
	w.baseX, w.baseY = baseScales(w.cfg, iw, ih)
	xs, ys := w.XScale(), w.YScale()

	ox, oy := w.margin.Left, w.margin.Top
	sc := scene.Scene{
		Width:  w.cfg.Width,
		Height: w.cfg.Height,
		Inner:  plot.RectWH(ox, oy, iw, ih),
	}
	// the grid stays where the data extent put it; only axes and line follow zoom
	sc.Add(gridLines(w.baseX, w.baseY, ox, oy, iw, ih)...)
	sc.Add(bottomAxis(xs, ox, oy+ih)...)
	sc.Add(leftAxis(ys, ox, oy)...)
	if sh, ok := seriesPath(w.cfg, xs, ys, sc.Inner); ok {
		sc.Add(sh)
	}
	if w.state.CrosshairVisible {
		p := w.state.Pointer
		sc.Add(
			scene.Line(scene.LayerCrosshair, plot.Point{X: ox + p.X, Y: oy}, plot.Point{X: ox + p.X, Y: oy + ih}, crosshairStyle),
			scene.Line(scene.LayerCrosshair, plot.Point{X: ox, Y: oy + p.Y}, plot.Point{X: ox + iw, Y: oy + p.Y}, crosshairStyle),
		)
	}
	w.scene = sc
}

// baseScales maps the data extent onto the plotting area, falling back to
// [0,10] when there is no data.
func baseScales(cfg Config, iw, ih float64) (plot.Linear, plot.Linear) {
	x0, x1 := plot.FallbackMin, plot.FallbackMax
	y0, y1 := plot.FallbackMin, plot.FallbackMax
	if len(cfg.Data) > 0 {
		x0, x1 = fieldExtent(cfg, cfg.XField)
		y0, y1 = fieldExtent(cfg, cfg.YField)
	}
	return plot.NewLinear(x0, x1, 0, iw), plot.NewLinear(y0, y1, ih, 0)
}

// fieldExtent yields NaN bounds when no record carries a number for field.
func fieldExtent(cfg Config, field string) (float64, float64) {
	vals := make([]float64, len(cfg.Data))
	for i, r := range cfg.Data {
		vals[i] = r.Field(field)
	}
	lo, hi, ok := plot.Extent(vals)
	if !ok {
		return math.NaN(), math.NaN()
	}
	return lo, hi
}

func gridLines(xs, ys plot.Linear, ox, oy, iw, ih float64) []scene.Shape {
	var out []scene.Shape
	for _, v := range xs.Ticks(plot.DefaultTickCount) {
		px := ox + xs.Map(v)
		out = append(out, scene.Line(scene.LayerGrid, plot.Point{X: px, Y: oy}, plot.Point{X: px, Y: oy + ih}, gridStyle))
	}
	for _, v := range ys.Ticks(plot.DefaultTickCount) {
		py := oy + ys.Map(v)
		out = append(out, scene.Line(scene.LayerGrid, plot.Point{X: ox, Y: py}, plot.Point{X: ox + iw, Y: py}, gridStyle))
	}
	return out
}

// bottomAxis draws the domain line with outer ticks, then one tick and label
// per tick value, hanging below y.
func bottomAxis(xs plot.Linear, ox, y float64) []scene.Shape {
	r0, r1 := xs.Range()
	a, b := ox+r0, ox+r1
	out := []scene.Shape{
		scene.Line(scene.LayerAxis, plot.Point{X: a, Y: y + tickSize}, plot.Point{X: a, Y: y}, axisStyle),
		scene.Line(scene.LayerAxis, plot.Point{X: a, Y: y}, plot.Point{X: b, Y: y}, axisStyle),
		scene.Line(scene.LayerAxis, plot.Point{X: b, Y: y}, plot.Point{X: b, Y: y + tickSize}, axisStyle),
	}
	format := xs.TickFormat(plot.DefaultTickCount)
	label := scene.Style{FontSize: fontSize, Anchor: scene.AnchorMiddle}
	for _, v := range xs.Ticks(plot.DefaultTickCount) {
		px := ox + xs.Map(v)
		out = append(out,
			scene.Line(scene.LayerAxis, plot.Point{X: px, Y: y}, plot.Point{X: px, Y: y + tickSize}, axisStyle),
			scene.Text(scene.LayerLabel, format(v), plot.Point{X: px, Y: y + tickSize + tickPadding + 0.71*fontSize}, label),
		)
	}
	return out
}

// leftAxis is bottomAxis turned on its side, labels right-aligned left of x.
func leftAxis(ys plot.Linear, x, oy float64) []scene.Shape {
	r0, r1 := ys.Range()
	a, b := oy+r0, oy+r1
	out := []scene.Shape{
		scene.Line(scene.LayerAxis, plot.Point{X: x - tickSize, Y: a}, plot.Point{X: x, Y: a}, axisStyle),
		scene.Line(scene.LayerAxis, plot.Point{X: x, Y: a}, plot.Point{X: x, Y: b}, axisStyle),
		scene.Line(scene.LayerAxis, plot.Point{X: x, Y: b}, plot.Point{X: x - tickSize, Y: b}, axisStyle),
	}
	format := ys.TickFormat(plot.DefaultTickCount)
	label := scene.Style{FontSize: fontSize, Anchor: scene.AnchorEnd}
	for _, v := range ys.Ticks(plot.DefaultTickCount) {
		py := oy + ys.Map(v)
		out = append(out,
			scene.Line(scene.LayerAxis, plot.Point{X: x - tickSize, Y: py}, plot.Point{X: x, Y: py}, axisStyle),
			scene.Text(scene.LayerLabel, format(v), plot.Point{X: x - tickSize - tickPadding, Y: py + 0.32*fontSize}, label),
		)
	}
	return out
}

// seriesPath builds the clipped spline through the records in array order.
func seriesPath(cfg Config, xs, ys plot.Linear, inner plot.Rect) (scene.Shape, bool) {
	if len(cfg.Data) == 0 {
		return scene.Shape{}, false
	}
	pts := make([]plot.Point, len(cfg.Data))
	for i, r := range cfg.Data {
		pts[i] = plot.Point{
			X: inner.Min.X + xs.Map(r.Field(cfg.XField)),
			Y: inner.Min.Y + ys.Map(r.Field(cfg.YField)),
		}
	}
	clip := inner
	return scene.Shape{
		Layer: scene.LayerSeries,
		Kind:  scene.KindPath,
		Path:  plot.Cardinal(pts, 0),
		Style: seriesStyle,
		Clip:  &clip,
	}, true
}
