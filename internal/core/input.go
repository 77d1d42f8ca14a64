package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows scenes to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionConfirm        // Space, Enter
	ActionPause          // P, Escape during gameplay
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Escape outside gameplay
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
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether a is one of the four directional actions.
func (a Action) IsMovement() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// InputFrame is the snapshot of actions held down during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Direction sums the held movement actions into a direction vector.
// Screen coordinates grow downwards, so Up is -Y.
func (f InputFrame) Direction() Vec2 {
	var dir Vec2
	if f.Has(ActionUp) {
		dir = dir.Add(Vec2{X: 0, Y: -1})
	}
	if f.Has(ActionDown) {
		dir = dir.Add(Vec2{X: 0, Y: 1})
	}
	if f.Has(ActionLeft) {
		dir = dir.Add(Vec2{X: -1, Y: 0})
	}
	if f.Has(ActionRight) {
		dir = dir.Add(Vec2{X: 1, Y: 0})
	}
	return dir
}

// KeyEvent is a discrete key press or release, routed to the live scene only.
type KeyEvent struct {
	Action Action
	Repeat bool // Auto-repeat of a key that is already down
}
