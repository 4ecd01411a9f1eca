package numeric

import "math"

// indexEpsilon guards the discrete index floor against index fractions
// that land just below the exact index after a normalize round trip.
const indexEpsilon = 1e-9

// ToNormalized converts a domain value to a normalized position in [0,1].
// A degenerate range always maps to 0.
func ToNormalized(value float64, b Bounds, m Mode) float64 {
	switch m.Interp {
	case Discrete:
		return discreteToNormalized(value, m.Values)
	case Cubic:
		if b.Degenerate() {
			return 0
		}
		mult := math.Cbrt(b.Range())
		return clamp01(math.Cbrt(value-b.Min) / mult)
	default:
		if b.Degenerate() {
			return 0
		}
		return clamp01((value - b.Min) / b.Range())
	}
}

// FromNormalized converts a normalized position back to a domain value of
// the given kind.
func FromNormalized(x float64, k Kind, b Bounds, m Mode) float64 {
	x = clamp01(x)
	switch m.Interp {
	case Discrete:
		return discreteFromNormalized(x, m.Values)
	case Cubic:
		mult := math.Cbrt(b.Range())
		raw := math.Pow(x*mult, 3) + b.Min
		if m.Rounding != nil {
			raw = m.Rounding(raw)
		}
		return k.Cast(b.Clamp(raw))
	default:
		raw := b.Min + x*b.Range()
		if m.Interp == Stepped {
			step := m.step()
			raw = math.Round(raw/step) * step
		}
		return k.Cast(b.Clamp(raw))
	}
}

// discreteToNormalized maps a value to its index fraction within the
// sequence. Values absent from the sequence clamp to the nearest entry
// instead of failing; sliders must keep working on slightly-off input.
func discreteToNormalized(value float64, values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	best := 0
	bestDist := math.Abs(value - values[0])
	for i, v := range values[1:] {
		if d := math.Abs(value - v); d < bestDist {
			best = i + 1
			bestDist = d
		}
	}
	return float64(best) / float64(len(values)-1)
}

func discreteFromNormalized(x float64, values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	idx := int(math.Floor(x*float64(n-1) + indexEpsilon))
	if idx < 0 {
		idx = 0
	}
	if idx > n-1 {
		idx = n - 1
	}
	return values[idx]
}

// ScreenToNormalized converts a screen x-coordinate into a normalized
// position given the track padding and total widget width. A layout too
// narrow to hold the track maps everything to 0.
func ScreenToNormalized(x, padding, width float64) float64 {
	if width <= 2*padding {
		return 0
	}
	return clamp01((x - padding) / (width - 2*padding))
}

// NormalizedToScreen converts a normalized position into a screen
// x-coordinate.
func NormalizedToScreen(x, padding, width float64) float64 {
	return padding + x*(width-2*padding)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
