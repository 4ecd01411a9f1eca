package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for slider rendering.
type Theme struct {
	// Active is the color of the selected segment and engaged thumbs.
	Active lipgloss.Color
	// ActiveEnd is the far end of the selected-segment gradient.
	ActiveEnd lipgloss.Color
	// Track is the color of the unselected track.
	Track lipgloss.Color
	// Thumb is the color of an idle thumb.
	Thumb lipgloss.Color
	// ThumbPressed is the color of a grabbed thumb.
	ThumbPressed lipgloss.Color
	// Label is the color of the value labels above the thumbs.
	Label lipgloss.Color
	// Disabled dims every part of a disabled slider.
	Disabled lipgloss.Color
}

var defaultTheme = Theme{
	// Blue accent, with a purple gradient tail on the active segment.
	Active:       lipgloss.Color("#33b5e5"),
	ActiveEnd:    lipgloss.Color("#a78bfa"),
	Track:        lipgloss.Color("#585858"),
	Thumb:        lipgloss.Color("#c0c0c0"),
	ThumbPressed: lipgloss.Color("#f1a208"),
	Label:        lipgloss.Color("#c0c0c0"),
	Disabled:     lipgloss.Color("#585858"),
}

// Default returns the default theme.
func Default() Theme {
	return defaultTheme
}
