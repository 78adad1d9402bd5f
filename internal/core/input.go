package core

import "maps"

// Action is a player intent, decoupled from the key that produced it.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // shift piece one column left
	ActionMoveRight        // shift piece one column right
	ActionRotateCW         // rotate clockwise
	ActionRotateCCW        // rotate anticlockwise
	ActionHardDrop         // drop until the piece rests, then lock
	ActionSoftDrop         // apply one gravity step now
	ActionRestart          // start over after game over
	ActionQuit
	ActionPause // toggle pause

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:      "None",
	ActionMoveLeft:  "MoveLeft",
	ActionMoveRight: "MoveRight",
	ActionRotateCW:  "RotateCW",
	ActionRotateCCW: "RotateCCW",
	ActionHardDrop:  "HardDrop",
	ActionSoftDrop:  "SoftDrop",
	ActionRestart:   "Restart",
	ActionQuit:      "Quit",
	ActionPause:     "Pause",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame collects the actions triggered between two simulation ticks.
// Pressing a key twice in one frame counts once.
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
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether a was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// First returns the first action from candidates that was triggered this
// frame, or ActionNone. Games use it to apply one action per tick in a
// fixed priority order.
func (f InputFrame) First(candidates ...Action) Action {
	for _, a := range candidates {
		if f.Has(a) {
			return a
		}
	}
	return ActionNone
}

// Clear empties the frame, keeping its map for reuse.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone returns an independent copy of the frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	maps.Copy(clone.Actions, f.Actions)
	return clone
}
