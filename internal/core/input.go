package core

import "strings"

// Action represents a semantic platform action, abstracted from physical key presses.
// Actions are edge-triggered: they fire once per key press.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - menu navigation
	ActionDown           // S, Down arrow - menu navigation
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart the flight
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

// Buttons is a bitmask of held controller buttons for one tick.
// This is what the simulation consumes; unlike actions, buttons are level-triggered.
type Buttons uint8

const (
	ButtonLeft Buttons = 1 << iota
	ButtonRight
	ButtonThrust
	ButtonDown
	ButtonFire
)

var buttonNames = []struct {
	b    Buttons
	name string
}{
	{ButtonLeft, "Left"},
	{ButtonRight, "Right"},
	{ButtonThrust, "Thrust"},
	{ButtonDown, "Down"},
	{ButtonFire, "Fire"},
}

// Has reports whether all buttons in mask are held.
func (b Buttons) Has(mask Buttons) bool {
	return mask != 0 && b&mask == mask
}

// With returns the mask with the given buttons added.
func (b Buttons) With(mask Buttons) Buttons {
	return b | mask
}

// String lists the held buttons joined by '+', or "None".
func (b Buttons) String() string {
	if b == 0 {
		return "None"
	}
	var parts []string
	for _, bn := range buttonNames {
		if b&bn.b != 0 {
			parts = append(parts, bn.name)
		}
	}
	return strings.Join(parts, "+")
}

// InputFrame represents the input state for a single player during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Buttons holds the sampled button state for this frame.
	Buttons Buttons
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
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Hold marks buttons as held for this frame.
func (f *InputFrame) Hold(b Buttons) {
	f.Buttons = f.Buttons.With(b)
}

// Clear resets all actions and buttons for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Buttons = 0
}

// DefaultHoldTicks covers the initial key auto-repeat delay of most terminals
// (roughly 500ms at 60 ticks per second).
const DefaultHoldTicks = 30

// HoldSampler turns key press events into held-button state.
// Terminals report presses (and auto-repeats), never releases, so a button
// counts as held for HoldTicks ticks after its most recent press.
type HoldSampler struct {
	HoldTicks int
	last      [8]int
	seen      Buttons
}

// NewHoldSampler creates a sampler with the given hold window.
// Non-positive values fall back to DefaultHoldTicks.
func NewHoldSampler(holdTicks int) *HoldSampler {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &HoldSampler{HoldTicks: holdTicks}
}

// Press records a press of the given buttons at tick.
func (s *HoldSampler) Press(b Buttons, tick int) {
	for i := range s.last {
		bit := Buttons(1 << i)
		if b&bit != 0 {
			s.last[i] = tick
			s.seen |= bit
		}
	}
}

// Release forgets any pending hold of the given buttons.
func (s *HoldSampler) Release(b Buttons) {
	s.seen &^= b
}

// Sample returns the buttons considered held at tick.
func (s *HoldSampler) Sample(tick int) Buttons {
	var held Buttons
	for i := range s.last {
		bit := Buttons(1 << i)
		if s.seen&bit == 0 {
			continue
		}
		if tick-s.last[i] < s.HoldTicks {
			held |= bit
		} else {
			s.seen &^= bit
		}
	}
	return held
}

// Reset clears all recorded presses.
func (s *HoldSampler) Reset() {
	s.seen = 0
	s.last = [8]int{}
}
