package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/termlife/termlife/internal/core"
	"github.com/termlife/termlife/internal/storage"
)

// RunSession runs the full menu-driven session in the local terminal.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, settingsPath string) error {
	model := NewSessionModel(store, cfg, settingsPath)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Click toggles cells
	)

	_, err := p.Run()
	return err
}

// RunSim runs the simulation screen directly, without the menu. Going
// back exits the program.
func RunSim(store *storage.Store, cfg core.RuntimeConfig) error {
	sim, err := NewSimModel(store, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		simOnlyModel{sim: sim},
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}

// simOnlyModel wraps SimModel so that "back to menu" quits when there
// is no menu to go back to.
type simOnlyModel struct {
	sim SimModel
}

func (m simOnlyModel) Init() tea.Cmd {
	return m.sim.Init()
}

func (m simOnlyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.sim.Update(msg)
	if sim, ok := newModel.(SimModel); ok {
		m.sim = sim
	}
	if m.sim.BackToMenu() {
		return m, tea.Quit
	}
	return m, cmd
}

func (m simOnlyModel) View() string {
	if m.sim.BackToMenu() {
		return ""
	}
	return m.sim.View()
}
