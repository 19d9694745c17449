package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starfighter/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions and buttons.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a platform action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToButtons translates a flight key to the buttons it presses.
// Terminals only report presses and auto-repeats, so the game decides
// how long a press stays held.
func (km *KeyMapper) MapKeyToButtons(msg tea.KeyMsg) core.Buttons {
	switch msg.String() {
	case "left", "a", "h":
		return core.ButtonLeft
	case "right", "d", "l":
		return core.ButtonRight
	case "up", "w", "k":
		return core.ButtonThrust
	case "down", "s", "j":
		return core.ButtonDown
	case " ", "z", "x":
		return core.ButtonFire
	}
	return 0
}

// MapKeyToFrame updates an input frame based on a key message.
// Flight keys press buttons; everything else maps to an action.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	if b := km.MapKeyToButtons(msg); b != 0 {
		frame.Hold(b)
		return false
	}

	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
