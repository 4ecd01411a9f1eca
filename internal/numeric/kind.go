// Package numeric provides the pure value-mapping layer for range sliders:
// conversions between typed domain values, normalized [0,1] positions and
// screen coordinates. All functions are stateless; geometry and range
// parameters are passed per call rather than stored.
package numeric

import "math"

// Kind tags the representation of a slider's domain values. It determines
// the narrowing rule applied when a raw float64 is converted back to a
// domain value. A slider instance uses a single kind for all its values.
type Kind int

const (
	Long Kind = iota
	Double
	Integer
	Float
	Short
	Byte
	Decimal
)

func (k Kind) String() string {
	switch k {
	case Long:
		return "long"
	case Double:
		return "double"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Short:
		return "short"
	case Byte:
		return "byte"
	case Decimal:
		return "decimal"
	default:
		return "unknown"
	}
}

// Integral reports whether the kind only represents whole numbers.
func (k Kind) Integral() bool {
	switch k {
	case Long, Integer, Short, Byte:
		return true
	default:
		return false
	}
}

// Cast converts a raw conversion result into a domain value of this kind.
// The value is first rounded to two decimal places to shave off floating
// point artifacts, then narrowed: integral kinds truncate, fractional
// kinds keep the rounded value.
func (k Kind) Cast(raw float64) float64 {
	v := math.Round(raw*100) / 100
	if k.Integral() {
		return math.Trunc(v)
	}
	return v
}
