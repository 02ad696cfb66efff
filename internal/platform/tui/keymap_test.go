package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runesKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapSimKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want SimAction
	}{
		{"space toggles run", runesKey(" "), SimActionToggleRun},
		{"n steps", runesKey("n"), SimActionStepOnce},
		{"c clears", runesKey("c"), SimActionClear},
		{"x randomizes", runesKey("x"), SimActionRandomize},
		{"tab cycles pattern", tea.KeyMsg{Type: tea.KeyTab}, SimActionCyclePattern},
		{"enter stamps pattern", tea.KeyMsg{Type: tea.KeyEnter}, SimActionStampPattern},
		{"b goes back", runesKey("b"), SimActionBack},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, SimActionBack},
		{"q quits", runesKey("q"), SimActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, SimActionQuit},
		{"unbound key", runesKey("z"), SimActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapSimKey(tt.msg); got != tt.want {
				t.Errorf("MapSimKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapMenuKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want MenuAction
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{"k up", runesKey("k"), MenuActionUp},
		{"w up", runesKey("w"), MenuActionUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{"j down", runesKey("j"), MenuActionDown},
		{"enter selects", tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{"space selects", runesKey(" "), MenuActionSelect},
		{"q quits", runesKey("q"), MenuActionQuit},
		{"b does nothing at the menu", runesKey("b"), MenuActionNone},
		{"esc does nothing at the menu", tea.KeyMsg{Type: tea.KeyEsc}, MenuActionNone},
		{"unbound key", runesKey("z"), MenuActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapMenuKey(tt.msg); got != tt.want {
				t.Errorf("MapMenuKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}
