package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/termlife/termlife/internal/core"
	"github.com/termlife/termlife/internal/storage"
)

// historyLimit caps how many sessions the screen loads.
const historyLimit = 50

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	historyTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	historyDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// HistoryModel is the Bubble Tea model for the session history screen.
type HistoryModel struct {
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	config   core.RuntimeConfig
	stats    *storage.SessionStats
	loadErr  error
	empty    bool
	goingBak bool
	quitting bool
}

// NewHistoryModel creates the history screen, loading recent sessions
// from the store. A nil store yields an empty screen rather than an error
// so the UI stays usable without a database.
func NewHistoryModel(store *storage.Store, cfg core.RuntimeConfig) HistoryModel {
	m := HistoryModel{
		help:   help.New(),
		keys:   DefaultHistoryKeyMap(),
		config: cfg,
	}

	if store == nil {
		m.empty = true
		return m
	}

	entries, err := store.RecentSessions(historyLimit)
	if err != nil {
		m.loadErr = err
		return m
	}
	if len(entries) == 0 {
		m.empty = true
		return m
	}

	if stats, err := store.Stats(); err == nil {
		m.stats = &stats
	}

	columns := []table.Column{
		{Title: "When", Width: 16},
		{Title: "Generations", Width: 12},
		{Title: "Peak pop", Width: 9},
		{Title: "Grid", Width: 9},
		{Title: "Duration", Width: 9},
	}

	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			strconv.FormatUint(e.Generations, 10),
			strconv.Itoa(e.PeakPopulation),
			fmt.Sprintf("%dx%d", e.GridWidth, e.GridHeight),
			formatDuration(int64(e.DurationSecs)),
		})
	}

	// The table's viewport is its height minus the two header lines, so
	// the height must include them for every row to be visible.
	height := len(rows) + 2
	if limit := cfg.ScreenH - 8; limit > 3 && height > limit {
		height = limit
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("245")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("10")).
		Bold(true)
	t.SetStyles(styles)

	m.table = t
	return m
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBak = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(historyTitleStyle.Render("Session History"), m.config.ScreenW))
	b.WriteString("\n\n")

	switch {
	case m.loadErr != nil:
		b.WriteString(centerText("Could not load history: "+m.loadErr.Error(), m.config.ScreenW))
		b.WriteString("\n")
	case m.empty:
		b.WriteString(centerText("No sessions recorded yet.", m.config.ScreenW))
		b.WriteString("\n")
		b.WriteString(centerText("Run a simulation and it will show up here.", m.config.ScreenW))
		b.WriteString("\n")
	default:
		b.WriteString(m.table.View())
		b.WriteString("\n")
		if m.stats != nil {
			line := fmt.Sprintf("%d sessions, longest run %d generations, %s simulated",
				m.stats.Sessions, m.stats.MaxGenerations, formatDuration(m.stats.TotalSecs))
			b.WriteString(historyDimStyle.Render("  " + line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n  ")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// GoingBack returns true if the user asked to return to the menu.
func (m HistoryModel) GoingBack() bool {
	return m.goingBak
}

// IsQuitting returns true if the user requested to quit.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m HistoryModel) Config() core.RuntimeConfig {
	return m.config
}

// formatDuration renders a second count as 1h2m3s style text.
func formatDuration(secs int64) string {
	d := time.Duration(secs) * time.Second
	return d.String()
}
