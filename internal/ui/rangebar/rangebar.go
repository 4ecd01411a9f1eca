// Package rangebar provides a dual-thumb range slider component for
// bubbletea UIs. The component translates terminal mouse events into
// pointer gestures, delegates value handling to the range model and
// renders a block-style track with value labels above the thumbs.
package rangebar

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/rangeband/internal/gesture"
	"github.com/llehouerou/rangeband/internal/keymap"
	"github.com/llehouerou/rangeband/internal/notify"
	"github.com/llehouerou/rangeband/internal/numeric"
	"github.com/llehouerou/rangeband/internal/rangemodel"
	"github.com/llehouerou/rangeband/internal/ui"
	"github.com/llehouerou/rangeband/internal/ui/styles"
)

// thumbHalfWidth is the mouse hit-zone radius around a thumb, in cells.
// One cell of forgiveness on each side makes thumbs grabbable despite
// coarse terminal pointer resolution.
const thumbHalfWidth = 1.5

// RangeChangedMsg reports new selected values. Dragging is true for
// intermediate updates while the user is still dragging and false for
// the committed values on release.
type RangeChangedMsg struct {
	ID       string
	Min      float64
	Max      float64
	Dragging bool
}

// DragStartedMsg reports the start of a drag gesture.
type DragStartedMsg struct {
	ID    string
	Thumb notify.Thumb
}

// DragStoppedMsg reports the end of a drag gesture.
type DragStoppedMsg struct {
	ID    string
	Thumb notify.Thumb
}

// eventBuffer implements notify.Listener by queueing messages until the
// next Update flushes them as commands. It is shared by pointer across
// model copies, matching bubbletea's value-semantics update loop.
type eventBuffer struct {
	id   string
	msgs []tea.Msg
}

func (b *eventBuffer) DragStarted(t notify.Thumb) {
	b.msgs = append(b.msgs, DragStartedMsg{ID: b.id, Thumb: t})
}

func (b *eventBuffer) DragStopped(t notify.Thumb) {
	b.msgs = append(b.msgs, DragStoppedMsg{ID: b.id, Thumb: t})
}

func (b *eventBuffer) ValuesChanged(lo, hi float64, dragging bool) {
	b.msgs = append(b.msgs, RangeChangedMsg{ID: b.id, Min: lo, Max: hi, Dragging: dragging})
}

// Model is the slider component. Create it with New.
type Model struct {
	ui.Base

	id    string
	title string

	rng      *rangemodel.Model
	ctrl     *gesture.Controller
	notifier *notify.Notifier
	events   *eventBuffer

	theme  styles.Theme
	format func(float64) string
	keys   *keymap.Resolver

	// keyThumb is the thumb moved by arrow keys when focused.
	keyThumb notify.Thumb

	singleThumb bool
}

// New creates a slider over the given range model. The id identifies the
// slider in emitted messages and persisted state.
func New(id, title string, rng *rangemodel.Model, opts gesture.Options) Model {
	events := &eventBuffer{id: id}
	notifier := &notify.Notifier{}
	notifier.SetListener(events)
	return Model{
		id:          id,
		title:       title,
		rng:         rng,
		ctrl:        gesture.New(rng, notifier, opts),
		notifier:    notifier,
		events:      events,
		theme:       styles.Default(),
		keys:        keymap.NewResolver(keymap.ByContext("slider")),
		keyThumb:    notify.Max,
		singleThumb: opts.SingleThumb,
	}
}

// ID returns the slider identity used in messages and persistence.
func (m Model) ID() string { return m.id }

// Title returns the display title.
func (m Model) Title() string { return m.title }

// Range exposes the underlying range model for configuration entry
// points (bounds, step, gap, discrete sequence).
func (m Model) Range() *rangemodel.Model { return m.rng }

// Selected returns the current domain values.
func (m Model) Selected() (lo, hi float64) {
	return m.rng.SelectedMin(), m.rng.SelectedMax()
}

// Normalized returns the raw normalized positions, for persistence.
func (m Model) Normalized() (lo, hi float64) {
	return m.rng.NormalizedMin(), m.rng.NormalizedMax()
}

// Restore sets the normalized positions from persisted state.
func (m *Model) Restore(lo, hi float64) {
	m.rng.Restore(lo, hi)
}

// SetNotifyWhileDragging controls whether RangeChangedMsg is emitted on
// every move during a drag. Off by default.
func (m *Model) SetNotifyWhileDragging(enabled bool) {
	m.notifier.WhileDragging = enabled
}

// NotifyWhileDragging reports whether intermediate updates are emitted.
func (m Model) NotifyWhileDragging() bool {
	return m.notifier.WhileDragging
}

// SetEnabled toggles interaction. A disabled slider renders dimmed and
// passes every event through.
func (m *Model) SetEnabled(enabled bool) {
	m.ctrl.SetEnabled(enabled)
}

// Enabled reports whether the slider handles events.
func (m Model) Enabled() bool { return m.ctrl.Enabled() }

// Dragging reports whether a drag gesture is in progress.
func (m Model) Dragging() bool { return m.ctrl.Dragging() }

// SetTheme replaces the color theme.
func (m *Model) SetTheme(t styles.Theme) { m.theme = t }

// SetFormatter replaces the label formatter. The default formats
// integral kinds with thousands separators and fractional kinds with
// their plain decimal representation.
func (m *Model) SetFormatter(f func(float64) string) { m.format = f }

// CancelGesture aborts a drag in progress, for hosts that lose the
// pointer (focus change, popup). The last tracked value stands.
func (m *Model) CancelGesture() {
	m.ctrl.Handle(gesture.Event{Type: gesture.Cancel}, m.geometry())
}

// Update handles mouse and key messages. Mouse coordinates must be
// relative to the component's top-left cell; the parent is responsible
// for routing and translating events.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		if m.IsFocused() {
			m.handleKey(msg)
		}
	}
	return m, m.flush()
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	var evType gesture.EventType
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		evType = gesture.Down
	case tea.MouseActionMotion:
		evType = gesture.Move
	case tea.MouseActionRelease:
		evType = gesture.Up
	default:
		return
	}

	// A cell click means its center: cell i covers [i, i+1).
	x := float64(msg.X) + 0.5
	ev := gesture.Event{
		Type:     evType,
		Pointers: []gesture.Pointer{{ID: 0, X: x}},
	}
	m.ctrl.Handle(ev, m.geometry())
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	if !m.ctrl.Enabled() {
		return
	}
	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionMoveLeft:
		m.nudge(-1)
	case keymap.ActionMoveRight:
		m.nudge(1)
	case keymap.ActionSwitchThumb:
		if !m.singleThumb {
			if m.keyThumb == notify.Max {
				m.keyThumb = notify.Min
			} else {
				m.keyThumb = notify.Max
			}
		}
	case keymap.ActionReset:
		m.rng.Reset()
		m.notifier.Committed(m.rng.SelectedMin(), m.rng.SelectedMax())
	}
}

// nudge moves the keyboard-controlled thumb by one quantization step.
func (m *Model) nudge(direction int) {
	step := m.nudgeStep() * float64(direction)
	if m.keyThumb == notify.Min && !m.singleThumb {
		m.rng.SetNormalizedMin(m.rng.NormalizedMin() + step)
	} else {
		m.rng.SetNormalizedMax(m.rng.NormalizedMax() + step)
	}
	m.notifier.Committed(m.rng.SelectedMin(), m.rng.SelectedMax())
}

func (m *Model) nudgeStep() float64 {
	mode := m.rng.Mode()
	switch mode.Interp {
	case numeric.Discrete:
		if n := len(mode.Values); n > 1 {
			return 1 / float64(n-1)
		}
		return 1
	case numeric.Stepped:
		if r := m.rng.Bounds().Range(); r > 0 {
			return mode.Step / r
		}
		return 0.01
	default:
		return 0.01
	}
}

func (m Model) geometry() gesture.Geometry {
	return gesture.Geometry{
		Width:          float64(m.Width()),
		Padding:        ui.TrackPadding,
		ThumbHalfWidth: thumbHalfWidth,
	}
}

func (m *Model) flush() tea.Cmd {
	if len(m.events.msgs) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(m.events.msgs))
	for i, msg := range m.events.msgs {
		cmds[i] = func() tea.Msg { return msg }
	}
	m.events.msgs = nil
	return tea.Batch(cmds...)
}

func (m Model) formatValue(v float64) string {
	if m.format != nil {
		return m.format(v)
	}
	if m.rng.Kind().Integral() {
		return humanize.Comma(int64(v))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
