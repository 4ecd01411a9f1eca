package rangebar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/rangeband/internal/notify"
	"github.com/llehouerou/rangeband/internal/numeric"
	"github.com/llehouerou/rangeband/internal/ui"
	"github.com/llehouerou/rangeband/internal/ui/styles"
)

const (
	thumbGlyph  = "█"
	activeBlock = "▓"
	trackBlock  = "░"
)

// View renders the value labels and the track. The output is exactly
// ui.SliderHeight lines.
func (m Model) View() string {
	width := m.Width()
	if width < ui.MinTrackWidth {
		return "…\n…"
	}
	return m.labelLine(width) + "\n" + m.trackLine(width)
}

// thumbCell maps a normalized position to the track cell holding the
// thumb glyph.
func thumbCell(pos float64, width int) int {
	cell := int(numeric.NormalizedToScreen(pos, ui.TrackPadding, float64(width)))
	if cell < ui.TrackPadding {
		cell = ui.TrackPadding
	}
	if cell > width-ui.TrackPadding-1 {
		cell = width - ui.TrackPadding - 1
	}
	return cell
}

func (m Model) trackLine(width int) string {
	minCell := thumbCell(m.rng.NormalizedMin(), width)
	maxCell := thumbCell(m.rng.NormalizedMax(), width)

	// Coincident thumbs still need one cell each.
	if !m.singleThumb && maxCell <= minCell {
		if maxCell < width-ui.TrackPadding-1 {
			maxCell = minCell + 1
		} else {
			minCell = maxCell - 1
		}
	}

	disabled := !m.ctrl.Enabled()
	trackStyle := lipgloss.NewStyle().Foreground(m.theme.Track)
	if disabled {
		trackStyle = lipgloss.NewStyle().Foreground(m.theme.Disabled)
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", ui.TrackPadding))

	// Inactive run left of the selection. In single-thumb mode the
	// segment from the track start to the thumb counts as selected.
	left := minCell
	if m.singleThumb {
		left = ui.TrackPadding
	}
	if left > ui.TrackPadding {
		b.WriteString(trackStyle.Render(strings.Repeat(trackBlock, left-ui.TrackPadding)))
	}

	if !m.singleThumb {
		b.WriteString(m.thumbView(notify.Min, disabled))
	}

	// Active segment between the thumbs.
	start := left + 1
	if m.singleThumb {
		start = left
	}
	if n := maxCell - start; n > 0 {
		segment := strings.Repeat(activeBlock, n)
		if disabled {
			b.WriteString(trackStyle.Render(segment))
		} else {
			b.WriteString(styles.ApplyGradient(segment, m.theme.Active, m.theme.ActiveEnd))
		}
	}

	b.WriteString(m.thumbView(notify.Max, disabled))

	// Inactive run right of the selection.
	if n := width - ui.TrackPadding - 1 - maxCell; n > 0 {
		b.WriteString(trackStyle.Render(strings.Repeat(trackBlock, n)))
	}

	b.WriteString(strings.Repeat(" ", ui.TrackPadding))
	return b.String()
}

func (m Model) thumbView(thumb notify.Thumb, disabled bool) string {
	color := m.theme.Thumb
	switch {
	case disabled:
		color = m.theme.Disabled
	case m.ctrl.Pressed() == thumb || m.ctrl.Pressed() == notify.Between:
		color = m.theme.ThumbPressed
	}
	return lipgloss.NewStyle().Foreground(color).Render(thumbGlyph)
}

// labelLine renders the selected values above their thumbs, shifting
// overlapping labels apart proportionally to the room on each side.
func (m Model) labelLine(width int) string {
	labelStyle := lipgloss.NewStyle().Foreground(m.theme.Label)
	if !m.ctrl.Enabled() {
		labelStyle = lipgloss.NewStyle().Foreground(m.theme.Disabled)
	}

	maxText := m.formatValue(m.rng.SelectedMax())
	maxW := runewidth.StringWidth(maxText)
	maxPos := thumbCell(m.rng.NormalizedMax(), width) - maxW/2
	if maxPos > width-maxW {
		maxPos = width - maxW
	}
	if maxPos < 0 {
		maxPos = 0
	}

	if m.singleThumb {
		line := strings.Repeat(" ", maxPos) + maxText
		return labelStyle.Render(ansi.Truncate(line, width, ""))
	}

	minText := m.formatValue(m.rng.SelectedMin())
	minW := runewidth.StringWidth(minText)
	minPos := thumbCell(m.rng.NormalizedMin(), width) - minW/2
	if minPos < 0 {
		minPos = 0
	}

	// Push overlapping labels apart; the thumb farther from its edge
	// has more room, so it absorbs more of the shift.
	if overlap := minPos + minW + 1 - maxPos; overlap > 0 {
		lo, hi := m.rng.NormalizedMin(), m.rng.NormalizedMax()
		room := lo + 1 - hi
		if room <= 0 {
			minPos -= overlap / 2
			maxPos += overlap - overlap/2
		} else {
			shift := int(float64(overlap) * lo / room)
			minPos -= shift
			maxPos += overlap - shift
		}
		if minPos < 0 {
			minPos = 0
		}
		if maxPos > width-maxW {
			maxPos = width - maxW
		}
		if maxPos < minPos+minW+1 {
			maxPos = minPos + minW + 1
		}
	}

	gap := maxPos - minPos - minW
	if gap < 1 {
		gap = 1
	}
	line := strings.Repeat(" ", minPos) + minText + strings.Repeat(" ", gap) + maxText
	return labelStyle.Render(ansi.Truncate(line, width, ""))
}
