package core

// Action is a semantic input, abstracted from physical keys.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // Up arrow, W, K
	ActionDown             // Down arrow, S, J
	ActionLeft             // Left arrow, A, H
	ActionRight            // Right arrow, D, L
	ActionConfirm          // Enter, Space - place the selected piece
	ActionBack             // Escape, B - back to menu
	ActionRestart          // R - new game
	ActionQuit             // Q, Ctrl+C
	ActionPause            // P
	ActionSelect1          // 1 - select piece slot 1
	ActionSelect2          // 2 - select piece slot 2
	ActionSelect3          // 3 - select piece slot 3
	ActionNextPiece        // Tab - cycle selected piece
	ActionHelp             // ? - show or hide the rules
)

var actionNames = map[Action]string{
	ActionNone:      "None",
	ActionUp:        "Up",
	ActionDown:      "Down",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionConfirm:   "Confirm",
	ActionBack:      "Back",
	ActionRestart:   "Restart",
	ActionQuit:      "Quit",
	ActionPause:     "Pause",
	ActionSelect1:   "Select1",
	ActionSelect2:   "Select2",
	ActionSelect3:   "Select3",
	ActionNextPiece: "NextPiece",
	ActionHelp:      "Help",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// SelectAction returns the slot-selection action for slot i (0-based).
func SelectAction(i int) Action {
	switch i {
	case 0:
		return ActionSelect1
	case 1:
		return ActionSelect2
	case 2:
		return ActionSelect3
	}
	return ActionNone
}

// Pointer is the mouse state for one frame, in screen cells.
type Pointer struct {
	X, Y    int
	Moved   bool // The pointer moved to (X, Y)
	Clicked bool // The primary button was pressed at (X, Y)
}

// Active reports whether the frame carries a pointer event.
func (p Pointer) Active() bool {
	return p.Moved || p.Clicked
}

// InputFrame is the input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer holds the last mouse event of the frame, if any.
	Pointer Pointer
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

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Point records a pointer event. A click is kept even if a later
// motion event arrives in the same frame.
func (f *InputFrame) Point(x, y int, clicked bool) {
	if f.Pointer.Clicked && !clicked {
		return
	}
	f.Pointer = Pointer{X: x, Y: y, Moved: !clicked, Clicked: clicked}
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = Pointer{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}
