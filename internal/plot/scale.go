// Package plot holds the charting primitives the widget is built from:
// linear scales, tick generation, the zoom transform and path construction.
package plot

import "math"

// Linear maps a continuous domain onto a continuous pixel range.
type Linear struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinear returns a scale mapping [d0,d1] onto [r0,r1].
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{d0: d0, d1: d1, r0: r0, r1: r1}
}

func (s Linear) Domain() (float64, float64) { return s.d0, s.d1 }
func (s Linear) Range() (float64, float64)  { return s.r0, s.r1 }

// Map converts a domain value to a pixel position. A zero-width domain maps
// everything to the middle of the range.
func (s Linear) Map(v float64) float64 {
	span := s.d1 - s.d0
	var t float64
	switch {
	case math.IsNaN(span):
		return math.NaN()
	case span == 0:
		t = 0.5
	default:
		t = (v - s.d0) / span
	}
	return s.r0 + t*(s.r1-s.r0)
}

// Invert converts a pixel position back to a domain value.
func (s Linear) Invert(px float64) float64 {
	span := s.r1 - s.r0
	var t float64
	switch {
	case math.IsNaN(span):
		return math.NaN()
	case span == 0:
		t = 0.5
	default:
		t = (px - s.r0) / span
	}
	return s.d0 + t*(s.d1-s.d0)
}

// Ticks returns roughly count evenly spaced, human friendly values inside the domain.
func (s Linear) Ticks(count int) []float64 {
	return Ticks(s.d0, s.d1, count)
}

// TickFormat returns a formatter whose precision fits the tick step.
func (s Linear) TickFormat(count int) func(float64) string {
	return TickFormat(s.d0, s.d1, count)
}
