package rangebar

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/rangeband/internal/gesture"
	"github.com/llehouerou/rangeband/internal/keymap"
	"github.com/llehouerou/rangeband/internal/notify"
	"github.com/llehouerou/rangeband/internal/numeric"
	"github.com/llehouerou/rangeband/internal/rangemodel"
)

// newTestBar builds a 0..100 integer slider sized so that one track
// cell corresponds to exactly one hundredth of the range.
func newTestBar(t *testing.T, opts gesture.Options) Model {
	t.Helper()
	rng, err := rangemodel.New(numeric.Integer, 0, 100)
	require.NoError(t, err)
	m := New("vol", "Volume", rng, opts)
	m.SetSize(102, 2)
	return m
}

// collect runs a command and flattens batches into the emitted messages.
func collect(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	var out []tea.Msg
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			out = append(out, collect(t, sub)...)
		}
	default:
		out = append(out, msg)
	}
	return out
}

func press(x int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Action: tea.MouseActionMotion}
}

func release(x int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Action: tea.MouseActionRelease}
}

func TestMouseDragEmitsMessages(t *testing.T) {
	m := newTestBar(t, gesture.Options{TouchSlop: 1})

	m, cmd := m.Update(press(100))
	assert.Empty(t, collect(t, cmd), "press alone should not emit")

	m, cmd = m.Update(motion(80))
	msgs := collect(t, cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, DragStartedMsg{ID: "vol", Thumb: notify.Max}, msgs[0])
	assert.True(t, m.Dragging())

	m, cmd = m.Update(motion(50))
	assert.Empty(t, collect(t, cmd), "intermediate moves are silent by default")

	m, cmd = m.Update(release(50))
	msgs = collect(t, cmd)
	require.Len(t, msgs, 2)
	assert.Equal(t, DragStoppedMsg{ID: "vol", Thumb: notify.Max}, msgs[0])
	assert.Equal(t, RangeChangedMsg{ID: "vol", Min: 0, Max: 49}, msgs[1])
	assert.False(t, m.Dragging())

	lo, hi := m.Selected()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 49.0, hi)
}

func TestNotifyWhileDraggingEmitsMoves(t *testing.T) {
	m := newTestBar(t, gesture.Options{TouchSlop: 1})
	m.SetNotifyWhileDragging(true)

	m, _ = m.Update(press(100))
	m, cmd := m.Update(motion(80))
	msgs := collect(t, cmd)
	require.Len(t, msgs, 2)
	assert.Equal(t, DragStartedMsg{ID: "vol", Thumb: notify.Max}, msgs[0])
	changed, ok := msgs[1].(RangeChangedMsg)
	require.True(t, ok)
	assert.True(t, changed.Dragging)
	assert.Equal(t, 79.0, changed.Max)
}

func TestTapOnThumbSeeks(t *testing.T) {
	m := newTestBar(t, gesture.Options{TouchSlop: 8})

	m, _ = m.Update(press(99))
	m, cmd := m.Update(release(99))
	msgs := collect(t, cmd)
	// A tap runs a full drag cycle at the release point, so the start and
	// stop events bracket the committed change.
	require.Len(t, msgs, 3)
	assert.Equal(t, DragStartedMsg{ID: "vol", Thumb: notify.Max}, msgs[0])
	assert.Equal(t, DragStoppedMsg{ID: "vol", Thumb: notify.Max}, msgs[1])
	assert.Equal(t, RangeChangedMsg{ID: "vol", Min: 0, Max: 98}, msgs[2])
}

func TestClickOffTrackIgnored(t *testing.T) {
	m := newTestBar(t, gesture.Options{TouchSlop: 1})

	m, cmd := m.Update(press(50))
	assert.Empty(t, collect(t, cmd))
	m, cmd = m.Update(release(50))
	assert.Empty(t, collect(t, cmd))

	lo, hi := m.Selected()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 100.0, hi)
}

func TestRightButtonIgnored(t *testing.T) {
	m := newTestBar(t, gesture.Options{TouchSlop: 1})

	m, cmd := m.Update(tea.MouseMsg{
		X: 100, Action: tea.MouseActionPress, Button: tea.MouseButtonRight,
	})
	assert.Empty(t, collect(t, cmd))
	assert.Equal(t, notify.None, m.ctrl.Pressed())
}

func TestDisabledIgnoresMouse(t *testing.T) {
	m := newTestBar(t, gesture.Options{TouchSlop: 1})
	m.SetEnabled(false)

	m, cmd := m.Update(press(100))
	assert.Empty(t, collect(t, cmd))
	m, cmd = m.Update(release(50))
	assert.Empty(t, collect(t, cmd))

	_, hi := m.Selected()
	assert.Equal(t, 100.0, hi)
}

func TestCancelGestureKeepsTrackedValue(t *testing.T) {
	m := newTestBar(t, gesture.Options{TouchSlop: 1})
	m.SetNotifyWhileDragging(true)

	m, _ = m.Update(press(100))
	m, _ = m.Update(motion(60))
	m.CancelGesture()

	msgs := collect(t, m.flush())
	require.NotEmpty(t, msgs)
	assert.Equal(t, DragStoppedMsg{ID: "vol", Thumb: notify.Max}, msgs[len(msgs)-1])
	assert.False(t, m.Dragging())

	_, hi := m.Selected()
	assert.Equal(t, 59.0, hi)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg(tea.Key{Type: tea.KeyLeft})
	case "right":
		return tea.KeyMsg(tea.Key{Type: tea.KeyRight})
	default:
		return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
	}
}

func TestKeyboardNudgeMax(t *testing.T) {
	m := newTestBar(t, gesture.Options{TouchSlop: 1})
	m.SetFocused(true)

	m, cmd := m.Update(keyMsg("left"))
	msgs := collect(t, cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, RangeChangedMsg{ID: "vol", Min: 0, Max: 99}, msgs[0])
}

func TestKeyboardFollowsBindingTable(t *testing.T) {
	keys := keymap.NewResolver(keymap.ByContext("slider"))
	for _, key := range keys.KeysFor(keymap.ActionMoveLeft) {
		m := newTestBar(t, gesture.Options{TouchSlop: 1})
		m.SetFocused(true)

		m, cmd := m.Update(keyMsg(key))
		msgs := collect(t, cmd)
		require.Len(t, msgs, 1, "key %q", key)
		assert.Equal(t, RangeChangedMsg{ID: "vol", Min: 0, Max: 99}, msgs[0], "key %q", key)
	}
}

func TestKeyboardThumbToggle(t *testing.T) {
	m := newTestBar(t, gesture.Options{TouchSlop: 1})
	m.SetFocused(true)

	m, _ = m.Update(keyMsg("m"))
	m, cmd := m.Update(keyMsg("right"))
	msgs := collect(t, cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, RangeChangedMsg{ID: "vol", Min: 1, Max: 100}, msgs[0])
}

func TestKeyboardIgnoredWhenUnfocused(t *testing.T) {
	m := newTestBar(t, gesture.Options{TouchSlop: 1})

	m, cmd := m.Update(keyMsg("left"))
	assert.Empty(t, collect(t, cmd))
	_, hi := m.Selected()
	assert.Equal(t, 100.0, hi)
}

func TestResetKey(t *testing.T) {
	m := newTestBar(t, gesture.Options{TouchSlop: 1})
	m.SetFocused(true)
	m.Restore(0.2, 0.8)

	m, cmd := m.Update(keyMsg("r"))
	msgs := collect(t, cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, RangeChangedMsg{ID: "vol", Min: 0, Max: 100}, msgs[0])
}

func TestNudgeStepFollowsQuantization(t *testing.T) {
	rng, err := rangemodel.New(numeric.Long, 0, 100000)
	require.NoError(t, err)
	require.NoError(t, rng.SetStep(500))
	m := New("price", "Price", rng, gesture.Options{TouchSlop: 1})
	m.SetSize(102, 2)
	m.SetFocused(true)

	m, cmd := m.Update(keyMsg("left"))
	msgs := collect(t, cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, RangeChangedMsg{ID: "price", Min: 0, Max: 99500}, msgs[0])
}

func TestRestoreRoundTrip(t *testing.T) {
	m := newTestBar(t, gesture.Options{TouchSlop: 1})
	m.Restore(0.25, 0.75)

	lo, hi := m.Normalized()
	assert.InDelta(t, 0.25, lo, 1e-12)
	assert.InDelta(t, 0.75, hi, 1e-12)

	slo, shi := m.Selected()
	assert.Equal(t, 25.0, slo)
	assert.Equal(t, 75.0, shi)
}
