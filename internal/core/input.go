package core

// Action represents a semantic editor action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // Up arrow, k - move cursor up
	ActionDown             // Down arrow, j - move cursor down
	ActionLeft             // Left arrow, h - move cursor left
	ActionRight            // Right arrow, l - move cursor right
	ActionPlace            // Space - start, then end, then walls
	ActionErase            // x, Backspace - clear the cell under the cursor
	ActionRun              // Enter - start the search
	ActionClearPath        // c - drop the current result, keep the grid
	ActionReset            // r - clear the whole grid
	ActionHistory          // Tab - open run history
	ActionHelp             // ? - toggle full help
	ActionBack             // Esc, b - leave a sub-view
	ActionQuit             // q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPlace:
		return "Place"
	case ActionErase:
		return "Erase"
	case ActionRun:
		return "Run"
	case ActionClearPath:
		return "ClearPath"
	case ActionReset:
		return "Reset"
	case ActionHistory:
		return "History"
	case ActionHelp:
		return "Help"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
