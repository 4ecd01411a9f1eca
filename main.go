package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/rangeband/internal/config"
	"github.com/llehouerou/rangeband/internal/gesture"
	"github.com/llehouerou/rangeband/internal/keymap"
	"github.com/llehouerou/rangeband/internal/rangemodel"
	"github.com/llehouerou/rangeband/internal/state"
	"github.com/llehouerou/rangeband/internal/ui"
	"github.com/llehouerou/rangeband/internal/ui/rangebar"
	"github.com/llehouerou/rangeband/internal/ui/styles"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// panelHeight is the rows one slider panel occupies: title plus the
// slider lines, framed by the panel border.
const panelHeight = 1 + ui.SliderHeight + ui.BorderHeight

type model struct {
	sliders  []rangebar.Model
	focus    int
	stateMgr *state.Manager
	resolver *keymap.Resolver

	// mouseOwner is the slider owning the current press/drag session,
	// -1 when no button is down.
	mouseOwner int

	width    int
	height   int
	status   string
	showHelp bool
}

func initialModel() (model, error) {
	cfg, err := config.Load()
	if err != nil {
		return model{}, err
	}

	stateMgr, err := state.Open()
	if err != nil {
		return model{}, err
	}

	sliders := make([]rangebar.Model, 0, len(cfg.Sliders))
	for _, sc := range cfg.Sliders {
		bar, err := buildSlider(cfg, sc)
		if err != nil {
			stateMgr.Close()
			return model{}, fmt.Errorf("slider %q: %w", sc.ID, err)
		}

		// Restore the previous selection if one was saved.
		if saved, err := stateMgr.GetRange(sc.ID); err == nil && saved != nil {
			bar.Restore(saved.Min, saved.Max)
		}

		sliders = append(sliders, bar)
	}

	if len(sliders) > 0 {
		sliders[0].SetFocused(true)
	}

	return model{
		sliders:    sliders,
		stateMgr:   stateMgr,
		resolver:   keymap.NewResolver(keymap.All),
		mouseOwner: -1,
	}, nil
}

func buildSlider(cfg *config.Config, sc config.SliderConfig) (rangebar.Model, error) {
	kind, err := sc.NumericKind()
	if err != nil {
		return rangebar.Model{}, err
	}

	min, max := sc.Min, sc.Max
	if len(sc.Values) > 0 {
		min, max = sc.Values[0], sc.Values[len(sc.Values)-1]
	}

	rng, err := rangemodel.New(kind, min, max)
	if err != nil {
		return rangebar.Model{}, err
	}

	switch {
	case len(sc.Values) > 0:
		if err := rng.SetDiscreteValues(sc.Values); err != nil {
			return rangebar.Model{}, err
		}
	case sc.Cubic():
		rng.SetCubic(nil)
	case sc.Step > 0:
		if err := rng.SetStep(sc.Step); err != nil {
			return rangebar.Model{}, err
		}
	}

	if sc.MinGap > 0 || sc.MaxGap > 0 {
		if err := rng.SetGap(sc.MinGap, sc.MaxGap); err != nil {
			return rangebar.Model{}, err
		}
	}

	opts := gesture.Options{
		TouchSlop:     cfg.TouchSlop,
		SingleThumb:   sc.SingleThumb,
		DragSpan:      sc.DragSpan,
		SnapToClosest: sc.SnapToClosest,
		SnapTolerance: sc.SnapTolerance,
	}

	bar := rangebar.New(sc.ID, sc.Title, rng, opts)
	bar.SetNotifyWhileDragging(cfg.NotifyWhileDragging)
	bar.SetTheme(themeFromConfig(cfg.Theme))
	return bar, nil
}

func themeFromConfig(tc config.ThemeConfig) styles.Theme {
	theme := styles.Default()
	if tc.Active != "" {
		theme.Active = lipgloss.Color(tc.Active)
	}
	if tc.ActiveEnd != "" {
		theme.ActiveEnd = lipgloss.Color(tc.ActiveEnd)
	}
	if tc.Track != "" {
		theme.Track = lipgloss.Color(tc.Track)
	}
	if tc.Thumb != "" {
		theme.Thumb = lipgloss.Color(tc.Thumb)
	}
	if tc.ThumbPressed != "" {
		theme.ThumbPressed = lipgloss.Color(tc.ThumbPressed)
	}
	if tc.Label != "" {
		theme.Label = lipgloss.Color(tc.Label)
	}
	return theme
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for i := range m.sliders {
			m.sliders[i].SetSize(msg.Width-2, ui.SliderHeight)
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case rangebar.RangeChangedMsg:
		m.status = fmt.Sprintf("%s: [%s]", msg.ID, formatRange(m.sliderByID(msg.ID)))
		if !msg.Dragging {
			if bar := m.sliderByID(msg.ID); bar != nil {
				lo, hi := bar.Normalized()
				m.stateMgr.SaveRange(msg.ID, state.RangeState{Min: lo, Max: hi})
			}
		}
		return m, nil

	case rangebar.DragStartedMsg:
		m.status = fmt.Sprintf("%s: dragging %s", msg.ID, msg.Thumb)
		return m, nil

	case rangebar.DragStoppedMsg:
		return m, nil
	}

	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		target := m.sliderAt(msg.Y)
		if target < 0 {
			return m, nil
		}
		m.setFocus(target)
		m.mouseOwner = target
	case tea.MouseActionMotion, tea.MouseActionRelease:
		// Motion and release stay with the slider that owns the press,
		// even when the pointer leaves its panel.
	default:
		return m, nil
	}

	owner := m.mouseOwner
	if owner < 0 || owner >= len(m.sliders) {
		return m, nil
	}

	// Translate to panel-content coordinates: one column of border.
	msg.X--
	var cmd tea.Cmd
	m.sliders[owner], cmd = m.sliders[owner].Update(msg)

	if msg.Action == tea.MouseActionRelease {
		m.mouseOwner = -1
	}
	return m, cmd
}

// sliderAt maps a screen row to the slider panel containing it.
func (m model) sliderAt(y int) int {
	if y < 0 {
		return -1
	}
	i := y / panelHeight
	if i >= len(m.sliders) {
		return -1
	}
	return i
}

func (m *model) setFocus(i int) {
	if i == m.focus || i < 0 || i >= len(m.sliders) {
		return
	}
	// Focus changes while dragging abandon the gesture.
	m.sliders[m.focus].CancelGesture()
	m.sliders[m.focus].SetFocused(false)
	m.focus = i
	m.sliders[i].SetFocused(true)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.resolver.Resolve(msg.String()) {
	case keymap.ActionQuit:
		m.stateMgr.Close()
		return m, tea.Quit
	case keymap.ActionNextFocus:
		if len(m.sliders) > 0 {
			m.setFocus((m.focus + 1) % len(m.sliders))
		}
		return m, nil
	case keymap.ActionPrevFocus:
		if len(m.sliders) > 0 {
			m.setFocus((m.focus + len(m.sliders) - 1) % len(m.sliders))
		}
		return m, nil
	case keymap.ActionHelp:
		m.showHelp = !m.showHelp
		return m, nil
	case keymap.ActionToggleLive:
		if bar := m.focused(); bar != nil {
			live := !bar.NotifyWhileDragging()
			bar.SetNotifyWhileDragging(live)
			if live {
				m.status = fmt.Sprintf("%s: live updates on", bar.ID())
			} else {
				m.status = fmt.Sprintf("%s: live updates off", bar.ID())
			}
		}
		return m, nil
	case keymap.ActionToggleEnabled:
		if bar := m.focused(); bar != nil {
			bar.SetEnabled(!bar.Enabled())
		}
		return m, nil
	}

	if m.focus < len(m.sliders) {
		var cmd tea.Cmd
		m.sliders[m.focus], cmd = m.sliders[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) focused() *rangebar.Model {
	if m.focus < 0 || m.focus >= len(m.sliders) {
		return nil
	}
	return &m.sliders[m.focus]
}

func (m *model) sliderByID(id string) *rangebar.Model {
	for i := range m.sliders {
		if m.sliders[i].ID() == id {
			return &m.sliders[i]
		}
	}
	return nil
}

func formatRange(bar *rangebar.Model) string {
	if bar == nil {
		return "?"
	}
	lo, hi := bar.Selected()
	return fmt.Sprintf("%v .. %v", lo, hi)
}

func (m model) View() string {
	var b strings.Builder

	for i := range m.sliders {
		bar := &m.sliders[i]
		content := titleStyle.Render(bar.Title()) + "\n" + bar.View()
		panel := styles.PanelStyle(bar.IsFocused()).Width(m.width - 2).Render(content)
		b.WriteString(panel)
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(helpView())
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
	} else {
		b.WriteString(helpStyle.Render("? help  ·  q quit"))
	}

	return b.String()
}

func helpView() string {
	var lines []string
	for _, context := range []string{"global", "slider"} {
		for _, kb := range keymap.ByContext(context) {
			lines = append(lines, fmt.Sprintf("  %-12s %s", strings.Join(kb.Keys, "/"), kb.Description))
		}
	}
	return helpStyle.Render(strings.Join(lines, "\n"))
}

func main() {
	m, err := initialModel()
	if err != nil {
		fmt.Printf("Error initializing: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
