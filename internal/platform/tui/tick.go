// Package tui provides the Bubble Tea integration for termlife.
// It handles the terminal UI loop, input mapping and screen flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after
// the given update interval in milliseconds.
func tickCmd(intervalMS int) tea.Cmd {
	if intervalMS < 1 {
		intervalMS = 1
	}
	return tea.Tick(time.Duration(intervalMS)*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
