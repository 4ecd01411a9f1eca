// Package gesture interprets pointer events into thumb selection, drag
// tracking and range updates. It is a small state machine over a single
// touch session: Idle until a thumb is hit, armed until the touch slop
// is crossed, then dragging until release or cancel.
package gesture

import (
	"math"

	"github.com/llehouerou/rangeband/internal/notify"
	"github.com/llehouerou/rangeband/internal/numeric"
	"github.com/llehouerou/rangeband/internal/rangemodel"
)

// EventType classifies a pointer event.
type EventType int

const (
	Down EventType = iota
	Move
	Up
	Cancel
	SecondaryDown
	SecondaryUp
)

// Pointer is one touch point with its current x-coordinate.
type Pointer struct {
	ID int
	X  float64
}

// Event is a raw pointer event as delivered by the host. Pointers lists
// every pointer currently down, including the one a SecondaryUp refers
// to. PointerID identifies the pointer the event is about.
type Event struct {
	Type      EventType
	PointerID int
	Pointers  []Pointer
}

// Geometry carries the layout inputs needed for hit testing and
// coordinate conversion. It is recomputed by the rendering layer and
// passed in per call so touch logic never depends on render state.
type Geometry struct {
	Width          float64
	Padding        float64
	ThumbHalfWidth float64
}

// Options configures the optional gesture strategies. DragSpan and
// SnapToClosest are independent: span dragging is consulted only when no
// thumb was hit directly, snapping only when span dragging also missed.
type Options struct {
	// TouchSlop is the minimum displacement in pixels before a press
	// becomes a drag. Below it, release is treated as a tap-seek.
	TouchSlop float64
	// SingleThumb disables the minimum thumb entirely.
	SingleThumb bool
	// DragSpan enables grabbing the region between the thumbs to
	// translate the whole span.
	DragSpan bool
	// SnapToClosest picks the nearest thumb when the touch misses both
	// hit zones, within SnapTolerance.
	SnapToClosest bool
	// SnapTolerance is the maximum normalized distance for snapping.
	SnapTolerance float64
}

const invalidPointerID = -1

// Controller runs the touch state machine against a range model.
type Controller struct {
	model    *rangemodel.Model
	notifier *notify.Notifier
	opts     Options
	enabled  bool

	// Current touch session. Zeroed when idle.
	activePointerID int
	downX           float64
	dragging        bool
	pressed         notify.Thumb
	spanAnchor      float64
}

// New creates a controller bound to the given model and notifier.
func New(model *rangemodel.Model, notifier *notify.Notifier, opts Options) *Controller {
	return &Controller{
		model:           model,
		notifier:        notifier,
		opts:            opts,
		enabled:         true,
		activePointerID: invalidPointerID,
	}
}

// SetEnabled toggles event handling. A disabled controller claims
// nothing and is a pure passthrough.
func (c *Controller) SetEnabled(enabled bool) {
	c.enabled = enabled
}

// Enabled reports whether the controller handles events.
func (c *Controller) Enabled() bool { return c.enabled }

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool { return c.dragging }

// Pressed returns the thumb currently grabbed, or notify.None.
func (c *Controller) Pressed() notify.Thumb { return c.pressed }

// Handle processes one pointer event against the current geometry and
// reports whether the event was claimed. Unclaimed events should fall
// through to the host.
func (c *Controller) Handle(ev Event, geo Geometry) bool {
	if !c.enabled {
		return false
	}

	switch ev.Type {
	case Down:
		return c.handleDown(ev, geo)
	case Move:
		return c.handleMove(ev, geo)
	case Up:
		return c.handleUp(ev, geo)
	case Cancel:
		return c.handleCancel()
	case SecondaryDown:
		return c.handleSecondaryDown(ev)
	case SecondaryUp:
		return c.handleSecondaryUp(ev)
	default:
		return false
	}
}

func (c *Controller) handleDown(ev Event, geo Geometry) bool {
	if len(ev.Pointers) == 0 {
		return false
	}
	last := ev.Pointers[len(ev.Pointers)-1]
	c.activePointerID = last.ID
	x := c.pointerX(ev)
	c.downX = x

	c.pressed = c.evalPressedThumb(x, geo)
	if c.pressed == notify.None {
		c.reset()
		return false
	}
	if c.pressed == notify.Between {
		c.spanAnchor = numeric.ScreenToNormalized(x, geo.Padding, geo.Width)
	}
	return true
}

func (c *Controller) handleMove(ev Event, geo Geometry) bool {
	if c.pressed == notify.None {
		return false
	}

	if c.dragging {
		c.track(c.pointerX(ev), geo)
	} else {
		x := c.pointerX(ev)
		if math.Abs(x-c.downX) > c.opts.TouchSlop {
			c.startDrag()
			c.track(x, geo)
		}
	}

	c.notifier.Moved(c.model.SelectedMin(), c.model.SelectedMax())
	return true
}

func (c *Controller) handleUp(ev Event, geo Geometry) bool {
	if c.pressed == notify.None {
		return false
	}

	if c.dragging {
		c.track(c.pointerX(ev), geo)
		c.stopDrag()
	} else {
		// The slop threshold was never crossed: interpret the release
		// as a tap-seek to the touched position.
		c.startDrag()
		c.track(c.pointerX(ev), geo)
		c.stopDrag()
	}

	c.notifier.Committed(c.model.SelectedMin(), c.model.SelectedMax())
	c.reset()
	return true
}

func (c *Controller) handleCancel() bool {
	if c.pressed == notify.None {
		return false
	}
	// No committed notification: the last tracked value stands, but the
	// gesture ends without an intentional release.
	if c.dragging {
		c.stopDrag()
	}
	c.reset()
	return true
}

func (c *Controller) handleSecondaryDown(ev Event) bool {
	if len(ev.Pointers) == 0 {
		return false
	}
	last := ev.Pointers[len(ev.Pointers)-1]
	c.downX = last.X
	c.activePointerID = last.ID
	return c.pressed != notify.None
}

func (c *Controller) handleSecondaryUp(ev Event) bool {
	if ev.PointerID != c.activePointerID {
		return c.pressed != notify.None
	}
	// The active pointer lifted; adopt a remaining pointer so the drag
	// continues seamlessly. Never touches the range model.
	for _, p := range ev.Pointers {
		if p.ID != ev.PointerID {
			c.activePointerID = p.ID
			c.downX = p.X
			return c.pressed != notify.None
		}
	}
	c.activePointerID = invalidPointerID
	return c.pressed != notify.None
}

func (c *Controller) startDrag() {
	c.dragging = true
	c.notifier.DragStarted(c.pressed)
}

func (c *Controller) stopDrag() {
	c.dragging = false
	c.notifier.DragStopped(c.pressed)
}

func (c *Controller) reset() {
	c.pressed = notify.None
	c.dragging = false
	c.activePointerID = invalidPointerID
	c.spanAnchor = 0
}

// track applies the current touch position to the grabbed thumb.
func (c *Controller) track(x float64, geo Geometry) {
	switch c.pressed {
	case notify.Min:
		if !c.opts.SingleThumb {
			c.model.SetNormalizedMin(numeric.ScreenToNormalized(x, geo.Padding, geo.Width))
		}
	case notify.Max:
		c.model.SetNormalizedMax(numeric.ScreenToNormalized(x, geo.Padding, geo.Width))
	case notify.Between:
		cur := numeric.ScreenToNormalized(x, geo.Padding, geo.Width)
		c.model.TranslateSpan(cur - c.spanAnchor)
		c.spanAnchor = cur
	}
}

// pointerX resolves the active pointer's x-coordinate. A pointer id that
// is no longer present falls back to the last known pointer, then to the
// down position; touch bookkeeping glitches must never crash.
func (c *Controller) pointerX(ev Event) float64 {
	for _, p := range ev.Pointers {
		if p.ID == c.activePointerID {
			return p.X
		}
	}
	if len(ev.Pointers) > 0 {
		return ev.Pointers[len(ev.Pointers)-1].X
	}
	return c.downX
}

// evalPressedThumb decides which thumb (if any) a touch at x grabs.
func (c *Controller) evalPressedThumb(x float64, geo Geometry) notify.Thumb {
	minPos := numeric.NormalizedToScreen(c.model.NormalizedMin(), geo.Padding, geo.Width)
	maxPos := numeric.NormalizedToScreen(c.model.NormalizedMax(), geo.Padding, geo.Width)

	minHit := !c.opts.SingleThumb && math.Abs(x-minPos) <= geo.ThumbHalfWidth
	maxHit := math.Abs(x-maxPos) <= geo.ThumbHalfWidth

	switch {
	case minHit && maxHit:
		// Overlapping hit zones: pick the thumb with more room to drag,
		// otherwise coincident thumbs could never be separated again.
		if x/geo.Width > 0.5 {
			return notify.Min
		}
		return notify.Max
	case minHit:
		return notify.Min
	case maxHit:
		return notify.Max
	}

	if c.opts.DragSpan && !c.opts.SingleThumb && x > minPos && x < maxPos {
		return notify.Between
	}

	if c.opts.SnapToClosest {
		return c.snapThumb(x, geo)
	}
	return notify.None
}

// snapThumb picks the thumb whose normalized position is closest to the
// touch, within the snap tolerance.
func (c *Controller) snapThumb(x float64, geo Geometry) notify.Thumb {
	xn := numeric.ScreenToNormalized(x, geo.Padding, geo.Width)
	dMin := math.Abs(xn - c.model.NormalizedMin())
	dMax := math.Abs(xn - c.model.NormalizedMax())

	if c.opts.SingleThumb || dMax <= dMin {
		if dMax <= c.opts.SnapTolerance {
			return notify.Max
		}
		return notify.None
	}
	if dMin <= c.opts.SnapTolerance {
		return notify.Min
	}
	return notify.None
}
