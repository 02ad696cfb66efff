package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/termlife/termlife/internal/core"
	"github.com/termlife/termlife/internal/storage"
)

// sessionScreen identifies which sub-model currently has the session.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenSim
	screenSettings
	screenHistory
)

// SessionModel manages the full application flow: menu -> simulation,
// settings or history -> back to menu. It is the top-level model for
// both the local program and SSH sessions.
type SessionModel struct {
	store        *storage.Store
	config       core.RuntimeConfig
	settingsPath string

	screen   sessionScreen
	menu     MenuModel
	sim      *SimModel
	settings *SettingsModel
	history  *HistoryModel

	quitting bool
}

// NewSessionModel creates a session starting at the menu.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, settingsPath string) SessionModel {
	return SessionModel{
		store:        store,
		config:       cfg,
		settingsPath: settingsPath,
		menu:         NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen and handles transitions.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenSim:
		return m.updateSim(msg)
	case screenSettings:
		return m.updateSettings(msg)
	case screenHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates while on the start screen.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.menu.Selected() {
	case MenuChoiceSimulate:
		m.config = m.menu.Config()
		sim, err := NewSimModel(m.store, m.config)
		if err != nil {
			// Settings were validated before reaching the menu, so a
			// bad grid here means a programming error; bail out.
			m.quitting = true
			return m, tea.Quit
		}
		m.sim = &sim
		m.screen = screenSim
		return m, m.sim.Init()

	case MenuChoiceSettings:
		m.config = m.menu.Config()
		form := NewSettingsModel(m.config, m.settingsPath)
		m.settings = &form
		m.screen = screenSettings
		return m, m.settings.Init()

	case MenuChoiceHistory:
		m.config = m.menu.Config()
		hist := NewHistoryModel(m.store, m.config)
		m.history = &hist
		m.screen = screenHistory
		return m, m.history.Init()
	}

	return m, cmd
}

// updateSim handles updates while simulating.
func (m SessionModel) updateSim(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.sim.Update(msg)
	if simModel, ok := newModel.(SimModel); ok {
		m.sim = &simModel
	}

	if m.sim.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.sim.BackToMenu() {
		m.config = m.sim.Config()
		m.sim = nil
		return m.toMenu()
	}

	return m, cmd
}

// updateSettings handles updates while on the settings form.
func (m SessionModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.settings.Update(msg)
	if form, ok := newModel.(SettingsModel); ok {
		m.settings = &form
	}

	if m.settings.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if saved := m.settings.Saved(); saved != nil {
		m.config = m.settings.Config()
		m.config.Sim = *saved
		m.settings = nil
		return m.toMenu()
	}

	if m.settings.GoingBack() {
		m.config = m.settings.Config()
		m.settings = nil
		return m.toMenu()
	}

	return m, cmd
}

// updateHistory handles updates while on the history screen.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if hist, ok := newModel.(HistoryModel); ok {
		m.history = &hist
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.history.GoingBack() {
		m.config = m.history.Config()
		m.history = nil
		return m.toMenu()
	}

	return m, cmd
}

// toMenu resets the menu with the current config and switches to it.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.config)
	m.screen = screenMenu
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenSim:
		return m.sim.View()
	case screenSettings:
		return m.settings.View()
	case screenHistory:
		return m.history.View()
	default:
		return m.menu.View()
	}
}
