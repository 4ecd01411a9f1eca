// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit      Action = "quit"
	ActionNextFocus Action = "next_focus"
	ActionPrevFocus Action = "prev_focus"
	ActionHelp      Action = "help"

	// Slider actions
	ActionMoveLeft      Action = "move_left"
	ActionMoveRight     Action = "move_right"
	ActionSwitchThumb   Action = "switch_thumb"
	ActionReset         Action = "reset"
	ActionToggleLive    Action = "toggle_live"    // emit updates while dragging
	ActionToggleEnabled Action = "toggle_enabled" // disable/enable the focused slider
)
