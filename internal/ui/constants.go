// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// TrackPadding is the number of cells kept free on each side of a
	// slider track, so thumbs at the extremes stay inside the widget.
	TrackPadding = 1

	// MinTrackWidth is the minimum width for a usable slider track.
	// Narrower layouts render a placeholder instead.
	MinTrackWidth = TrackPadding*2 + 3

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// SliderHeight is the number of lines a slider occupies: the value
	// labels above the thumbs plus the track itself.
	SliderHeight = 2
)
