// Package notify dispatches slider transitions to external listeners.
// It is a thin translation layer: it never mutates the range model, and
// all callbacks run synchronously on the event dispatch goroutine.
package notify

// Thumb identifies which handle a drag event refers to.
type Thumb int

const (
	// None means no thumb is active.
	None Thumb = iota
	// Min is the lower handle.
	Min
	// Max is the upper handle.
	Max
	// Between is the virtual handle used when dragging the whole span.
	Between
)

func (t Thumb) String() string {
	switch t {
	case Min:
		return "min"
	case Max:
		return "max"
	case Between:
		return "between"
	default:
		return "none"
	}
}

// Listener receives slider transitions. Implementations must not block;
// they run inline with event dispatch.
type Listener interface {
	// DragStarted fires when a touch gesture begins tracking a thumb.
	DragStarted(thumb Thumb)
	// ValuesChanged fires with the current selected domain values.
	// dragging is true for intermediate updates during a drag and false
	// for the committed notification on release.
	ValuesChanged(selectedMin, selectedMax float64, dragging bool)
	// DragStopped fires when the gesture ends or is canceled.
	DragStopped(thumb Thumb)
}

// Notifier fans transitions out to a listener. A zero Notifier is valid
// and drops everything.
type Notifier struct {
	listener Listener

	// WhileDragging controls whether ValuesChanged fires on every move
	// during a drag. Off by default: only the committed notification on
	// release is delivered.
	WhileDragging bool
}

// SetListener registers the listener, replacing any previous one.
func (n *Notifier) SetListener(l Listener) {
	n.listener = l
}

// DragStarted reports the start of a tracking gesture.
func (n *Notifier) DragStarted(thumb Thumb) {
	if n.listener != nil {
		n.listener.DragStarted(thumb)
	}
}

// Moved reports an intermediate value change during a drag. It is
// dropped unless WhileDragging is enabled.
func (n *Notifier) Moved(selectedMin, selectedMax float64) {
	if n.WhileDragging && n.listener != nil {
		n.listener.ValuesChanged(selectedMin, selectedMax, true)
	}
}

// Committed reports the final values after a gesture completes.
func (n *Notifier) Committed(selectedMin, selectedMax float64) {
	if n.listener != nil {
		n.listener.ValuesChanged(selectedMin, selectedMax, false)
	}
}

// DragStopped reports the end of a tracking gesture.
func (n *Notifier) DragStopped(thumb Thumb) {
	if n.listener != nil {
		n.listener.DragStopped(thumb)
	}
}
