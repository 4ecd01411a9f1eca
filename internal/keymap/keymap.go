package keymap

// Binding describes a single key binding for documentation.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global" or "slider"
}

// All contains all key bindings for help generation.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionNextFocus, []string{"tab", "j", "down"}, "Focus next slider", "global"},
	{ActionPrevFocus, []string{"shift+tab", "k", "up"}, "Focus previous slider", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	// Focused slider
	{ActionMoveLeft, []string{"h", "left"}, "Move thumb left", "slider"},
	{ActionMoveRight, []string{"l", "right"}, "Move thumb right", "slider"},
	{ActionSwitchThumb, []string{"m"}, "Switch active thumb", "slider"},
	{ActionReset, []string{"r"}, "Reset to full range", "slider"},
	{ActionToggleLive, []string{"d"}, "Toggle live updates", "slider"},
	{ActionToggleEnabled, []string{"e"}, "Enable/disable slider", "slider"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
