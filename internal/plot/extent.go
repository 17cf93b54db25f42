package plot

import "math"

// Fallback domain used when there is nothing to measure.
const (
	FallbackMin = 0.0
	FallbackMax = 10.0
)

// Extent returns the min and max of the values, skipping NaN. ok is false
// when no value was comparable.
func Extent(values []float64) (lo, hi float64, ok bool) {
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, ok
}
