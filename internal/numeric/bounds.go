package numeric

// Bounds holds the absolute minimum and maximum of a slider's range.
type Bounds struct {
	Min float64
	Max float64
}

// Range returns Max - Min.
func (b Bounds) Range() float64 {
	return b.Max - b.Min
}

// Valid reports whether Min is strictly below Max.
func (b Bounds) Valid() bool {
	return b.Min < b.Max
}

// Degenerate reports whether the range collapses to a single point.
// Conversions on a degenerate range short-circuit instead of dividing
// by zero.
func (b Bounds) Degenerate() bool {
	return b.Range() == 0
}

// Clamp limits v to [Min, Max].
func (b Bounds) Clamp(v float64) float64 {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}
