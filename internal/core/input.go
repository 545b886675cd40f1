package core

// Action represents a semantic game action, abstracted from physical key presses
// and mouse buttons. Games work with these intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, k - move cursor up
	ActionDown           // Down arrow, j - move cursor down
	ActionLeft           // Left arrow, h - move cursor left
	ActionRight          // Right arrow, l - move cursor right
	ActionReveal         // Space, Enter, left click - open a cell
	ActionFlag           // F, right click - toggle a flag
	ActionChord          // C, left+right click - open around a number
	ActionNewGame        // N, F2 - discard the board and start over
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
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
	case ActionReveal:
		return "Reveal"
	case ActionFlag:
		return "Flag"
	case ActionChord:
		return "Chord"
	case ActionNewGame:
		return "NewGame"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Target is the cell a pointer-originated action applies to.
	// When HasTarget is false, games use their keyboard cursor instead.
	Target    Point
	HasTarget bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetAt marks an action as triggered on a specific cell.
func (f *InputFrame) SetAt(a Action, p Point) {
	f.Set(a)
	f.Target = p
	f.HasTarget = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Target = Point{}
	f.HasTarget = false
}
