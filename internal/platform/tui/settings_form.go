package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/termlife/termlife/internal/core"
	"github.com/termlife/termlife/internal/settings"
)

// settingsField is one editable row of the settings form.
type settingsField struct {
	label string
	value string // Edited as text, parsed on save
}

// SettingsKeyMap defines the key bindings for the settings screen.
type SettingsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Save key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SettingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Save, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k SettingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Save, k.Back, k.Quit},
	}
}

// DefaultSettingsKeyMap returns default key bindings.
func DefaultSettingsKeyMap() SettingsKeyMap {
	return SettingsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "previous field"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("down/j", "next field"),
		),
		Save: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back without saving"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

var (
	settingsTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	settingsCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	settingsErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// SettingsModel is the Bubble Tea model for the settings screen.
// Values are edited as text and validated on save; invalid input keeps
// the user on the form with an error message, like the original dialog.
type SettingsModel struct {
	fields   []settingsField
	cursor   int
	path     string // Settings file location
	keys     SettingsKeyMap
	help     help.Model
	config   core.RuntimeConfig
	errMsg   string
	saved    *settings.Settings // Set when user saved successfully
	goingBak bool
	quitting bool
}

// NewSettingsModel creates the settings form pre-filled from current values.
func NewSettingsModel(cfg core.RuntimeConfig, path string) SettingsModel {
	s := cfg.Sim
	return SettingsModel{
		fields: []settingsField{
			{label: "Grid width", value: strconv.Itoa(s.GridWidth)},
			{label: "Grid height", value: strconv.Itoa(s.GridHeight)},
			{label: "Cell width (columns)", value: strconv.Itoa(s.CellWidth)},
			{label: "Update interval (ms)", value: strconv.Itoa(s.UpdateInterval)},
		},
		path:   path,
		keys:   DefaultSettingsKeyMap(),
		help:   help.New(),
		config: cfg,
	}
}

// Init initializes the settings model.
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the settings form.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

// handleKey processes navigation, editing and save/back keys.
func (m SettingsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.goingBak = true
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Save):
		return m.save()
	}

	// Digit and backspace editing of the focused field.
	switch msg.String() {
	case "backspace":
		f := &m.fields[m.cursor]
		if len(f.value) > 0 {
			f.value = f.value[:len(f.value)-1]
		}
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		f := &m.fields[m.cursor]
		if len(f.value) < 5 {
			f.value += msg.String()
		}
	}

	return m, nil
}

// save parses and validates the form, persists on success.
func (m SettingsModel) save() (tea.Model, tea.Cmd) {
	parsed := make([]int, len(m.fields))
	for i, f := range m.fields {
		v, err := strconv.Atoi(f.value)
		if err != nil {
			m.errMsg = fmt.Sprintf("%s: must be a positive whole number", f.label)
			return m, nil
		}
		parsed[i] = v
	}

	s := settings.Settings{
		GridWidth:      parsed[0],
		GridHeight:     parsed[1],
		CellWidth:      parsed[2],
		UpdateInterval: parsed[3],
	}
	if err := s.Validate(); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	if err := settings.Save(m.path, s); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.saved = &s
	return m, nil
}

// View renders the settings form.
func (m SettingsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(settingsTitleStyle.Render("Settings"), m.config.ScreenW))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		cursor := "  "
		if i == m.cursor {
			cursor = settingsCursorStyle.Render("> ")
		}
		line := fmt.Sprintf("%s%-22s %s", cursor, f.label, f.value)
		b.WriteString("    ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString("    ")
		b.WriteString(settingsErrorStyle.Render(m.errMsg))
		b.WriteString("\n\n")
	}

	b.WriteString("    ")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// Saved returns the saved settings, or nil if not saved yet.
func (m SettingsModel) Saved() *settings.Settings {
	return m.saved
}

// GoingBack returns true if the user left the form without saving.
func (m SettingsModel) GoingBack() bool {
	return m.goingBak
}

// IsQuitting returns true if the user requested to quit.
func (m SettingsModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m SettingsModel) Config() core.RuntimeConfig {
	return m.config
}
