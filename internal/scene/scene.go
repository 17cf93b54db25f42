// Package scene describes a chart as a flat list of shapes that renderers draw
// without knowing anything about data or interaction state.
package scene

import "zoomchart/internal/plot"

// Layer tells renderers what a shape is for. Shapes are stored in drawing order.
type Layer int

const (
	LayerGrid Layer = iota
	LayerAxis
	LayerLabel
	LayerSeries
	LayerCrosshair
)

func (l Layer) String() string {
	switch l {
	case LayerGrid:
		return "grid"
	case LayerAxis:
		return "axis"
	case LayerLabel:
		return "label"
	case LayerSeries:
		return "series"
	case LayerCrosshair:
		return "crosshair"
	}
	return "unknown"
}

type Kind int

const (
	KindLine Kind = iota
	KindPath
	KindText
)

// Anchor is the horizontal alignment of a text shape around its position.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Style holds presentation attributes. Colours are hex strings without '#'.
type Style struct {
	Stroke      string
	StrokeWidth float64
	FontSize    float64
	Anchor      Anchor
}

// Shape is one drawable element in absolute surface coordinates.
type Shape struct {
	Layer Layer
	Kind  Kind
	Style Style

	// KindLine
	From, To plot.Point
	// KindPath
	Path plot.Path
	// KindText, positioned at At with the baseline centred vertically
	Text string
	At   plot.Point

	// Clip restricts the shape when set.
	Clip *plot.Rect
}

// Scene is a complete description of the drawing surface.
type Scene struct {
	Width, Height float64
	// Inner is the plotting area in surface coordinates.
	Inner  plot.Rect
	Shapes []Shape
}

// Add appends shapes in drawing order.
func (s *Scene) Add(shapes ...Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// Layer returns the shapes of one layer, preserving order.
func (s Scene) Layer(l Layer) []Shape {
	var out []Shape
	for _, sh := range s.Shapes {
		if sh.Layer == l {
			out = append(out, sh)
		}
	}
	return out
}

// Texts returns the text of every shape on layer l.
func (s Scene) Texts(l Layer) []string {
	var out []string
	for _, sh := range s.Layer(l) {
		if sh.Kind == KindText {
			out = append(out, sh.Text)
		}
	}
	return out
}

// Line is a convenience constructor for a straight line shape.
func Line(l Layer, from, to plot.Point, st Style) Shape {
	return Shape{Layer: l, Kind: KindLine, From: from, To: to, Style: st}
}

// Text is a convenience constructor for a text shape.
func Text(l Layer, body string, at plot.Point, st Style) Shape {
	return Shape{Layer: l, Kind: KindText, Text: body, At: at, Style: st}
}

// Segments returns a polyline approximation of a line or path shape, already
// clipped to its clip rectangle when one is set.
func (sh Shape) Segments(steps int) [][]plot.Point {
	var pts []plot.Point
	switch sh.Kind {
	case KindLine:
		pts = []plot.Point{sh.From, sh.To}
	case KindPath:
		pts = sh.Path.Flatten(steps)
	default:
		return nil
	}
	if sh.Clip != nil {
		return sh.Clip.ClipPolyline(pts)
	}
	if len(pts) < 2 {
		return nil
	}
	return [][]plot.Point{pts}
}
