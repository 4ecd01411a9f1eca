// Package rangemodel owns the normalized selection of a range slider and
// enforces its invariants on every mutation: both thumbs stay within
// [0,1], the minimum thumb never crosses the maximum thumb, and the span
// between them respects the configured gap constraints.
package rangemodel

import (
	"errors"
	"fmt"

	"github.com/llehouerou/rangeband/internal/numeric"
)

var (
	// ErrInvalidBounds is returned when the absolute minimum is not
	// strictly below the absolute maximum.
	ErrInvalidBounds = errors.New("rangemodel: min must be strictly below max")
	// ErrInvalidArgument is returned for malformed mode parameters such
	// as an empty discrete sequence or a non-positive step.
	ErrInvalidArgument = errors.New("rangemodel: invalid argument")
)

// Model holds the current selection as two normalized positions. The
// normalized pair is the single source of truth; domain values are always
// derived through the numeric conversions, never stored.
type Model struct {
	kind   numeric.Kind
	bounds numeric.Bounds
	mode   numeric.Mode

	normalizedMin float64
	normalizedMax float64

	minGap float64 // domain units, 0 means no constraint
	maxGap float64 // domain units, 0 means no constraint

	minGapNormalized float64
	maxGapNormalized float64 // 1 means no constraint

	// onChange, when set, runs after every selection mutation. The
	// widget layer uses it to request a redraw.
	onChange func()
}

// New creates a model over the given bounds with the full range selected.
func New(kind numeric.Kind, min, max float64) (*Model, error) {
	m := &Model{
		kind:             kind,
		mode:             numeric.LinearMode(),
		normalizedMin:    0,
		normalizedMax:    1,
		maxGapNormalized: 1,
	}
	if err := m.SetBounds(min, max); err != nil {
		return nil, err
	}
	return m, nil
}

// OnChange registers a hook invoked after each selection mutation.
func (m *Model) OnChange(fn func()) {
	m.onChange = fn
}

// Kind returns the domain value kind.
func (m *Model) Kind() numeric.Kind { return m.kind }

// Bounds returns the absolute bounds.
func (m *Model) Bounds() numeric.Bounds { return m.bounds }

// Mode returns the active interpolation mode.
func (m *Model) Mode() numeric.Mode { return m.mode }

// SetBounds replaces the absolute bounds. The selection is kept as its
// normalized positions; derived state (gaps, mode parameters tied to the
// old bounds) is recomputed.
func (m *Model) SetBounds(min, max float64) error {
	if min >= max {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidBounds, min, max)
	}
	m.bounds = numeric.Bounds{Min: min, Max: max}
	m.recomputeGaps()
	return nil
}

// SetStep switches to stepped mode with the given quantization step and
// recomputes the minimum normalized gap as one step.
func (m *Model) SetStep(step float64) error {
	if step <= 0 {
		return fmt.Errorf("%w: step %v", ErrInvalidArgument, step)
	}
	m.mode = numeric.SteppedMode(step)
	m.recomputeGaps()
	return nil
}

// SetDiscreteValues switches to discrete mode over the given ordered
// sequence. The bounds are redefined as {first, last} and the minimum
// normalized gap becomes one index step.
func (m *Model) SetDiscreteValues(values []float64) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: empty discrete sequence", ErrInvalidArgument)
	}
	m.mode = numeric.DiscreteMode(values)
	m.bounds = numeric.Bounds{Min: values[0], Max: values[len(values)-1]}
	m.recomputeGaps()
	return nil
}

// SetCubic switches to the non-linear cube mapping. A nil policy uses the
// default of two significant digits.
func (m *Model) SetCubic(policy numeric.RoundingPolicy) {
	m.mode = numeric.CubicMode(policy)
	m.recomputeGaps()
}

// SetGap configures the minimum and maximum permitted span between the
// thumbs, in domain units. A zero maxGap means unconstrained.
func (m *Model) SetGap(minGap, maxGap float64) error {
	if minGap < 0 || maxGap < 0 || (maxGap > 0 && minGap > maxGap) {
		return fmt.Errorf("%w: gap [%v, %v]", ErrInvalidArgument, minGap, maxGap)
	}
	m.minGap = minGap
	m.maxGap = maxGap
	m.recomputeGaps()
	return nil
}

func (m *Model) recomputeGaps() {
	r := m.bounds.Range()
	m.minGapNormalized = 0
	m.maxGapNormalized = 1

	switch m.mode.Interp {
	case numeric.Discrete:
		if n := len(m.mode.Values); n > 1 {
			m.minGapNormalized = 1 / float64(n-1)
		}
	case numeric.Stepped:
		if r > 0 {
			m.minGapNormalized = m.mode.Step / r
		}
	}
	if r > 0 {
		if g := m.minGap / r; g > m.minGapNormalized {
			m.minGapNormalized = g
		}
		if m.maxGap > 0 {
			m.maxGapNormalized = m.maxGap / r
		}
	}
}

// NormalizedMin returns the current normalized minimum position.
func (m *Model) NormalizedMin() float64 { return m.normalizedMin }

// NormalizedMax returns the current normalized maximum position.
func (m *Model) NormalizedMax() float64 { return m.normalizedMax }

// MinGapNormalized returns the effective minimum gap in normalized units.
func (m *Model) MinGapNormalized() float64 { return m.minGapNormalized }

// SelectedMin returns the currently selected minimum as a domain value.
func (m *Model) SelectedMin() float64 {
	return numeric.FromNormalized(m.normalizedMin, m.kind, m.bounds, m.mode)
}

// SelectedMax returns the currently selected maximum as a domain value.
func (m *Model) SelectedMax() float64 {
	return numeric.FromNormalized(m.normalizedMax, m.kind, m.bounds, m.mode)
}

// SetSelectedMin moves the minimum thumb to the given domain value,
// clamped to the envelope allowed by the maximum thumb and the gaps.
func (m *Model) SetSelectedMin(value float64) {
	if m.bounds.Degenerate() {
		m.SetNormalizedMin(0)
		return
	}
	m.SetNormalizedMin(numeric.ToNormalized(value, m.bounds, m.mode))
}

// SetSelectedMax moves the maximum thumb to the given domain value,
// clamped to the envelope allowed by the minimum thumb and the gaps.
func (m *Model) SetSelectedMax(value float64) {
	if m.bounds.Degenerate() {
		m.SetNormalizedMax(1)
		return
	}
	m.SetNormalizedMax(numeric.ToNormalized(value, m.bounds, m.mode))
}

// SetNormalizedMin sets the minimum position. The value is clamped into
// the envelope carved out by the maximum thumb: it may not come closer
// than the minimum gap, nor fall further away than the maximum gap. The
// maximum thumb is never moved.
func (m *Model) SetNormalizedMin(v float64) {
	ceiling := m.normalizedMax - m.minGapNormalized
	if ceiling > 1 {
		ceiling = 1
	}
	floor := m.normalizedMax - m.maxGapNormalized
	if floor < 0 {
		floor = 0
	}
	m.normalizedMin = clampRange(v, floor, ceiling)
	m.changed()
}

// SetNormalizedMax sets the maximum position, symmetric to
// SetNormalizedMin: the minimum thumb is never moved.
func (m *Model) SetNormalizedMax(v float64) {
	floor := m.normalizedMin + m.minGapNormalized
	if floor < 0 {
		floor = 0
	}
	ceiling := m.normalizedMin + m.maxGapNormalized
	if ceiling > 1 {
		ceiling = 1
	}
	m.normalizedMax = clampRange(v, floor, ceiling)
	m.changed()
}

// TranslateSpan shifts both thumbs by the same normalized delta, keeping
// the span width intact. The shift is limited so neither thumb leaves
// [0,1]; a partial shift applies when the span hits an edge.
func (m *Model) TranslateSpan(delta float64) {
	if delta < -m.normalizedMin {
		delta = -m.normalizedMin
	}
	if delta > 1-m.normalizedMax {
		delta = 1 - m.normalizedMax
	}
	if delta == 0 {
		return
	}
	m.normalizedMin += delta
	m.normalizedMax += delta
	m.changed()
}

// Reset restores the full-range selection.
func (m *Model) Reset() {
	m.normalizedMin = 0
	m.normalizedMax = 1
	m.changed()
}

// Restore sets both normalized positions verbatim, as loaded from
// persisted state. Out-of-order or out-of-range pairs are sanitized
// through the regular setters.
func (m *Model) Restore(normalizedMin, normalizedMax float64) {
	m.normalizedMin = 0
	m.normalizedMax = 1
	m.SetNormalizedMax(normalizedMax)
	m.SetNormalizedMin(normalizedMin)
}

func (m *Model) changed() {
	if m.onChange != nil {
		m.onChange()
	}
}

func clampRange(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
