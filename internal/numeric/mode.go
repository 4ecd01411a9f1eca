package numeric

import "math"

// Interpolation selects how normalized positions map to domain values.
type Interpolation int

const (
	// Linear maps positions uniformly across the range.
	Linear Interpolation = iota
	// Stepped is linear with quantization to an explicit step size.
	Stepped
	// Discrete restricts values to an ordered sequence; the position is
	// an index fraction into the sequence.
	Discrete
	// Cubic applies a cube mapping that gives fine resolution near the
	// low end of the range and coarse resolution near the high end.
	Cubic
)

func (i Interpolation) String() string {
	switch i {
	case Linear:
		return "linear"
	case Stepped:
		return "stepped"
	case Discrete:
		return "discrete"
	case Cubic:
		return "cubic"
	default:
		return "unknown"
	}
}

// RoundingPolicy rounds a raw cubic-mode value to a displayable unit.
// It is a policy parameter so the digit heuristic can be tuned and
// tested independently of the mapping itself.
type RoundingPolicy func(v float64) float64

// SignificantDigits returns a policy that rounds to the given number of
// significant digits, producing human-friendly round numbers at large
// magnitudes while keeping fine granularity near zero.
func SignificantDigits(digits int) RoundingPolicy {
	if digits < 1 {
		digits = 1
	}
	return func(v float64) float64 {
		if v == 0 {
			return 0
		}
		exp := math.Floor(math.Log10(math.Abs(v))) - float64(digits-1)
		unit := math.Pow(10, exp)
		return math.Round(v/unit) * unit
	}
}

// Mode bundles an interpolation variant with its parameters. The variants
// are mutually exclusive: Step only applies under Stepped, Values only
// under Discrete and Rounding only under Cubic.
type Mode struct {
	Interp   Interpolation
	Step     float64
	Values   []float64
	Rounding RoundingPolicy
}

// LinearMode returns the default uniform mapping.
func LinearMode() Mode {
	return Mode{Interp: Linear}
}

// SteppedMode returns a linear mapping quantized to step.
func SteppedMode(step float64) Mode {
	return Mode{Interp: Stepped, Step: step}
}

// DiscreteMode returns a mapping over an ordered value sequence.
func DiscreteMode(values []float64) Mode {
	return Mode{Interp: Discrete, Values: values}
}

// CubicMode returns the non-linear cube mapping. A nil policy falls back
// to rounding to two significant digits.
func CubicMode(policy RoundingPolicy) Mode {
	if policy == nil {
		policy = SignificantDigits(2)
	}
	return Mode{Interp: Cubic, Rounding: policy}
}

// step returns the effective quantization step, defaulting to 1 so a
// zero value never divides by zero.
func (m Mode) step() float64 {
	if m.Step > 0 {
		return m.Step
	}
	return 1
}
