// Package chart implements the zoomable line-chart widget. The widget owns its
// data, interaction state and zoom transform and turns them into a scene on
// every relevant event; it never draws anything itself.
package chart

import (
	"zoomchart/internal/dataset"
	"zoomchart/internal/obs"
	"zoomchart/internal/plot"
	"zoomchart/internal/scene"
)

// ViewState is the per-mount interaction state.
type ViewState struct {
	ZoomEnabled      bool
	CrosshairEnabled bool
	CrosshairVisible bool

	// last pointer position inside the plotting area, recorded only while
	// the crosshair is enabled
	Pointer      plot.Point
	PointerKnown bool
}

// Widget renders one dataset as a line plot with optional zoom and crosshair.
type Widget struct {
	cfg     Config
	margin  Margin
	state   ViewState
	mounted bool

	baseX, baseY plot.Linear
	// tracked follows every gesture; shown is what the axes currently display
	tracked plot.Transform
	shown   plot.Transform

	scene scene.Scene
}

// New returns a mounted widget for cfg.
func New(cfg Config) *Widget {
	w := &Widget{cfg: cfg, margin: DefaultMargin}
	w.Mount()
	return w
}

// Mount resets the view state to defaults and draws the current data.
func (w *Widget) Mount() {
	w.state = ViewState{}
	w.mounted = true
	w.resetInteraction()
	w.redraw()
}

// Unmount tears the drawing down. Events are ignored until the next Mount.
func (w *Widget) Unmount() {
	w.mounted = false
	w.state = ViewState{}
	w.scene = scene.Scene{}
}

func (w *Widget) Mounted() bool      { return w.mounted }
func (w *Widget) Config() Config     { return w.cfg }
func (w *Widget) State() ViewState   { return w.state }
func (w *Widget) Scene() scene.Scene { return w.scene }

// Transform returns the zoom transform tracked from gestures, applied or not.
func (w *Widget) Transform() plot.Transform { return w.tracked }

// SetData replaces the series and redraws everything from scratch. The zoom
// region is rebuilt, so the transform returns to identity and the guides hide.
func (w *Widget) SetData(data []dataset.Record) {
	w.cfg.Data = data
	if !w.mounted {
		return
	}
	w.resetInteraction()
	w.redraw()
	obs.Logger.Debug("chart data replaced", "records", len(data))
}

func (w *Widget) resetInteraction() {
	w.tracked = plot.Identity
	w.shown = plot.Identity
	w.state.CrosshairVisible = false
}

// InnerSize returns the plotting area size in pixels.
func (w *Widget) InnerSize() (float64, float64) {
	return w.cfg.Width - w.margin.Left - w.margin.Right, w.cfg.Height - w.margin.Top - w.margin.Bottom
}

// Margin returns the offsets of the plotting area inside the surface.
func (w *Widget) Margin() Margin { return w.margin }

// Contains reports whether (x, y), in plotting-area coordinates, is inside it.
func (w *Widget) Contains(x, y float64) bool {
	iw, ih := w.InnerSize()
	return x >= 0 && y >= 0 && x <= iw && y <= ih
}

// XScale returns the x scale the axes currently display.
func (w *Widget) XScale() plot.Linear { return w.shown.RescaleX(w.baseX) }

// YScale returns the y scale the axes currently display.
func (w *Widget) YScale() plot.Linear { return w.shown.RescaleY(w.baseY) }

// DataAt converts a plotting-area position to data values.
func (w *Widget) DataAt(x, y float64) (float64, float64) {
	return w.XScale().Invert(x), w.YScale().Invert(y)
}

// ToggleZoom flips zoom on or off and returns the new value. Nothing is
// redrawn; the next gesture decides what the axes show.
func (w *Widget) ToggleZoom() bool {
	w.state.ZoomEnabled = !w.state.ZoomEnabled
	obs.Logger.Debug("zoom toggled", "enabled", w.state.ZoomEnabled)
	return w.state.ZoomEnabled
}

// ToggleCrosshair flips the crosshair and returns the new value. Turning it
// off hides the guides immediately.
func (w *Widget) ToggleCrosshair() bool {
	w.state.CrosshairEnabled = !w.state.CrosshairEnabled
	if !w.state.CrosshairEnabled && w.state.CrosshairVisible {
		w.state.CrosshairVisible = false
		w.redraw()
	}
	obs.Logger.Debug("crosshair toggled", "enabled", w.state.CrosshairEnabled)
	return w.state.CrosshairEnabled
}

func (w *Widget) ZoomLabel() string      { return toggleLabel(w.state.ZoomEnabled, "Zoom") }
func (w *Widget) CrosshairLabel() string { return toggleLabel(w.state.CrosshairEnabled, "Crosshair") }

func toggleLabel(on bool, what string) string {
	if on {
		return "Disable " + what
	}
	return "Enable " + what
}

// ZoomBy is a zoom gesture: scale by f around (x, y) in plotting-area
// coordinates. The gesture is always tracked; it only rescales the axes and
// the line while zoom is enabled.
func (w *Widget) ZoomBy(f, x, y float64) {
	if !w.mounted {
		return
	}
	w.gesture(w.tracked.ScaleBy(f, x, y))
}

// PanBy is a drag gesture moving the view by (dx, dy) pixels.
func (w *Widget) PanBy(dx, dy float64) {
	if !w.mounted {
		return
	}
	w.gesture(w.tracked.TranslateBy(dx, dy))
}

func (w *Widget) gesture(t plot.Transform) {
	w.tracked = t
	if !w.state.ZoomEnabled {
		return
	}
	w.shown = t
	w.redraw()
}

// PointerMove moves the crosshair to (x, y) when it is enabled.
func (w *Widget) PointerMove(x, y float64) {
	if !w.mounted || !w.state.CrosshairEnabled {
		return
	}
	w.state.Pointer = plot.Point{X: x, Y: y}
	w.state.PointerKnown = true
	w.state.CrosshairVisible = true
	w.redraw()
}

// PointerLeave keeps the guides frozen at the last known position.
func (w *Widget) PointerLeave() {
	if !w.mounted {
		return
	}
	if !w.state.CrosshairEnabled {
		if w.state.CrosshairVisible {
			w.state.CrosshairVisible = false
			w.redraw()
		}
		return
	}
	if w.state.PointerKnown && !w.state.CrosshairVisible {
		w.state.CrosshairVisible = true
		w.redraw()
	}
}
