package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/termlife/termlife/internal/core"
)

// MenuChoice identifies a start screen entry.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoiceSimulate
	MenuChoiceSettings
	MenuChoiceHistory
	MenuChoiceQuit
)

// menuEntry pairs a choice with its display label.
type menuEntry struct {
	choice MenuChoice
	label  string
}

// MenuModel is the Bubble Tea model for the start screen.
type MenuModel struct {
	entries  []menuEntry
	cursor   int
	config   core.RuntimeConfig
	keys     *KeyMapper
	quitting bool
	selected MenuChoice
}

// NewMenuModel creates a new start screen model.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		entries: []menuEntry{
			{MenuChoiceSimulate, "Simulate"},
			{MenuChoiceSettings, "Settings"},
			{MenuChoiceHistory, "History"},
			{MenuChoiceQuit, "Quit"},
		},
		config: cfg,
		keys:   NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapMenuKey(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		choice := m.entries[m.cursor].choice
		if choice == MenuChoiceQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.selected = choice
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("G A M E   O F   L I F E", m.config.ScreenW))
	b.WriteString("\n\n")
	b.WriteString(centerText("Conway's cellular automaton in your terminal", m.config.ScreenW))
	b.WriteString("\n\n")

	for i, entry := range m.entries {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+entry.label, m.config.ScreenW))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Select  |  Q: Quit", m.config.ScreenW))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or MenuChoiceNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// IsQuitting returns true if the user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
