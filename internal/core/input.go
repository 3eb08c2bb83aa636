package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - menu navigation
	ActionDown           // S, Down arrow - menu navigation
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionJump           // Space - jump
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart after the run ends
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
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
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
//
// Actions holds one-shot triggers (pause, restart) that fired since the last
// tick. Held holds the actions whose keys are currently down (movement, jump).
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
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
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Hold marks an action's key as currently held.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// IsHeld returns true if the key bound to the action is currently held.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}

// DefaultHoldWindow is how long a key counts as held after its last event.
// Terminal auto-repeat usually fires every 30-50ms once it kicks in.
const DefaultHoldWindow = 180 * time.Millisecond

// KeyState tracks which actions are held down.
//
// Terminals report key presses and auto-repeats but never releases, so a key
// is considered held until the hold window passes without a new event.
type KeyState struct {
	window   time.Duration
	lastSeen map[Action]time.Time
}

// NewKeyState creates a tracker with the given hold window.
// A non-positive window selects DefaultHoldWindow.
func NewKeyState(window time.Duration) *KeyState {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &KeyState{
		window:   window,
		lastSeen: make(map[Action]time.Time),
	}
}

// Press records a press or auto-repeat of the action's key at now.
// Pressing a horizontal direction releases the opposite one.
func (k *KeyState) Press(a Action, now time.Time) {
	switch a {
	case ActionLeft:
		delete(k.lastSeen, ActionRight)
	case ActionRight:
		delete(k.lastSeen, ActionLeft)
	}
	k.lastSeen[a] = now
}

// Release forgets the action immediately.
func (k *KeyState) Release(a Action) {
	delete(k.lastSeen, a)
}

// IsHeld reports whether the action's key is held at now.
func (k *KeyState) IsHeld(a Action, now time.Time) bool {
	t, ok := k.lastSeen[a]
	if !ok {
		return false
	}
	return now.Sub(t) < k.window
}

// Fill marks every held action on the frame and drops expired ones.
func (k *KeyState) Fill(frame *InputFrame, now time.Time) {
	for a, t := range k.lastSeen {
		if now.Sub(t) >= k.window {
			delete(k.lastSeen, a)
			continue
		}
		frame.Hold(a)
	}
}

// Reset releases every key.
func (k *KeyState) Reset() {
	for a := range k.lastSeen {
		delete(k.lastSeen, a)
	}
}
