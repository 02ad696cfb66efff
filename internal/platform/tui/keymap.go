package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// SimAction represents a semantic action on the simulation screen,
// abstracted from physical key presses.
type SimAction int

const (
	SimActionNone SimAction = iota
	SimActionToggleRun
	SimActionStepOnce
	SimActionClear
	SimActionRandomize
	SimActionCyclePattern
	SimActionStampPattern
	SimActionBack
	SimActionQuit
)

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// KeyMapper translates Bubble Tea key messages to semantic actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapSimKey translates a key message to a simulation screen action.
func (km *KeyMapper) MapSimKey(msg tea.KeyMsg) SimAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return SimActionQuit
	case " ":
		return SimActionToggleRun
	case "n":
		return SimActionStepOnce
	case "c":
		return SimActionClear
	case "x":
		return SimActionRandomize
	case "tab":
		return SimActionCyclePattern
	case "enter":
		return SimActionStampPattern
	case "b", "esc":
		return SimActionBack
	}
	return SimActionNone
}

// MapMenuKey translates a key message to a menu action.
func (km *KeyMapper) MapMenuKey(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	}
	return MenuActionNone
}
