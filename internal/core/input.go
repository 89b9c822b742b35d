package core

// Action represents a semantic game intent, abstracted from physical key presses.
// The presentation layer binds keys, pointer presses or anything else to these.
type Action int

const (
	ActionNone        Action = iota
	ActionFlap               // Space, Up, W, Enter - flap (the first flap also starts the run)
	ActionTogglePause        // P, Escape - pause/resume a started run
	ActionReset              // R - return to the initial not-started state
	ActionQuit               // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionTogglePause:
		return "TogglePause"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the intents received between two simulation frames.
// Hosts whose input callbacks run outside the frame loop collect intents here
// and hand the frame to the simulation step, which is the only state owner.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
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
