package plot

import (
	"math"
	"strconv"
	"strings"
)

// DefaultTickCount is the tick density used by axes and grids.
const DefaultTickCount = 10

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickSpec picks a 1/2/5 x 10^n step for the interval and returns the integer
// tick indices bounding it. A negative inc means the step is 1/-inc.
func tickSpec(start, stop float64, count float64) (i1, i2, inc float64) {
	step := (stop - start) / math.Max(0, count)
	power := math.Floor(math.Log10(step))
	e := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case e >= e10:
		factor = 10
	case e >= e5:
		factor = 5
	case e >= e2:
		factor = 2
	}
	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = math.Round(start * inc)
		i2 = math.Round(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = math.Round(start / inc)
		i2 = math.Round(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}
	if i2 < i1 && 0.5 <= count && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return i1, i2, inc
}

// Ticks returns nicely rounded values between start and stop, in the order of
// the arguments.
func Ticks(start, stop float64, count int) []float64 {
	if count <= 0 || math.IsNaN(start) || math.IsNaN(stop) || math.IsInf(start, 0) || math.IsInf(stop, 0) {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	i1, i2, inc := tickSpec(start, stop, float64(count))
	if !(i2 >= i1) {
		return nil
	}
	n := int(i2-i1) + 1
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		if inc < 0 {
			out[i] = (i1 + float64(i)) / -inc
		} else {
			out[i] = (i1 + float64(i)) * inc
		}
	}
	if reverse {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// TickStep returns the distance between adjacent ticks for the interval.
func TickStep(start, stop float64, count int) float64 {
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	if start == stop || count <= 0 {
		return 0
	}
	_, _, inc := tickSpec(start, stop, float64(count))
	step := inc
	if inc < 0 {
		step = 1 / -inc
	}
	if reverse {
		return -step
	}
	return step
}

// TickFormat returns a fixed-point formatter with just enough decimals to
// tell adjacent ticks apart, grouping thousands with commas.
func TickFormat(start, stop float64, count int) func(float64) string {
	step := math.Abs(TickStep(start, stop, count))
	prec := 0
	if step > 0 && !math.IsInf(step, 0) && !math.IsNaN(step) {
		prec = max(0, -int(math.Floor(math.Log10(step))))
	}
	return func(v float64) string {
		return formatFixed(v, prec)
	}
}

func formatFixed(v float64, prec int) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	s := strconv.FormatFloat(v, 'f', prec, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	var b strings.Builder
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	out := b.String() + frac
	// avoid "-0" for values that round to zero
	if neg && strings.Trim(out, "0.,") != "" {
		out = "-" + out
	}
	return out
}
