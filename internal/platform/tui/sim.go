package tui

import (
	"fmt"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/termlife/termlife/internal/core"
	"github.com/termlife/termlife/internal/life"
	"github.com/termlife/termlife/internal/pattern"
	"github.com/termlife/termlife/internal/storage"
)

// Rows reserved above and below the grid box.
const (
	simHUDRows    = 2 // Status line + separator
	simFooterRows = 1 // Key help line
)

// soupDensity is the live-cell probability used for random seeding.
const soupDensity = 0.3

// SimModel is the Bubble Tea model for the simulation screen. It owns
// the engine and is its single caller: ticks, key presses and mouse
// clicks are all serialized through Update.
type SimModel struct {
	engine *life.Engine
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	keys   *KeyMapper
	rng    *rand.Rand

	running    bool
	patterns   []pattern.Pattern
	patternIdx int
	status     string

	startedAt    time.Time
	peakPop      int
	sessionSaved bool

	quitting   bool
	backToMenu bool
}

// NewSimModel creates the simulation screen. The engine is constructed
// from the grid dimensions in cfg.Sim, which the settings layer has
// already validated; a failure here means the caller bypassed it.
func NewSimModel(store *storage.Store, cfg core.RuntimeConfig) (SimModel, error) {
	engine, err := life.New(cfg.Sim.GridWidth, cfg.Sim.GridHeight)
	if err != nil {
		return SimModel{}, err
	}

	return SimModel{
		engine:    engine,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keys:      NewKeyMapper(),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		patterns:  pattern.List(),
		startedAt: time.Now(),
	}, nil
}

// Init starts the tick loop.
func (m SimModel) Init() tea.Cmd {
	return tickCmd(m.config.Sim.UpdateInterval)
}

// Update handles messages and updates the model state.
func (m SimModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m SimModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapSimKey(msg) {
	case SimActionQuit:
		m.maybeSaveSession()
		m.quitting = true
		return m, tea.Quit

	case SimActionBack:
		m.maybeSaveSession()
		m.backToMenu = true
		return m, nil

	case SimActionToggleRun:
		m.running = !m.running
		m.status = ""

	case SimActionStepOnce:
		if !m.running {
			m.advance()
		}

	case SimActionClear:
		// Clearing also stops the run, like the original clear button.
		m.running = false
		m.engine.Clear()
		m.peakPop = 0
		m.sessionSaved = false
		m.status = "cleared"

	case SimActionRandomize:
		m.engine.Randomize(m.rng, soupDensity)
		m.peakPop = m.engine.Population()
		m.sessionSaved = false
		m.status = "random soup"

	case SimActionCyclePattern:
		if len(m.patterns) > 0 {
			m.patternIdx = (m.patternIdx + 1) % len(m.patterns)
			m.status = ""
		}

	case SimActionStampPattern:
		m.stampSelectedPattern()
	}

	return m, nil
}

// handleMouse toggles the clicked cell, mirroring the original canvas
// click handler: pointer position divided by the cell width. Clicks
// outside the grid are harmless no-ops.
func (m SimModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if x, y, ok := m.cellAt(msg.X, msg.Y); ok {
		// Out-of-range coordinates are silently ignored by the engine.
		m.engine.Toggle(x, y)
		if pop := m.engine.Population(); pop > m.peakPop {
			m.peakPop = pop
		}
	}
	return m, nil
}

// handleTick advances the simulation while running and reschedules the
// next tick at the configured update interval.
func (m SimModel) handleTick() (tea.Model, tea.Cmd) {
	if m.running && !m.tooSmall() {
		m.advance()
	}
	return m, tickCmd(m.config.Sim.UpdateInterval)
}

// advance runs one generation and tracks session statistics.
func (m *SimModel) advance() {
	m.engine.Step()
	if pop := m.engine.Population(); pop > m.peakPop {
		m.peakPop = pop
	}
	m.sessionSaved = false
}

// stampSelectedPattern writes the selected pattern centered on the grid.
func (m *SimModel) stampSelectedPattern() {
	if len(m.patterns) == 0 {
		return
	}
	p := m.patterns[m.patternIdx]
	x := core.Clamp((m.engine.Width()-p.Width())/2, 0, m.engine.Width()-1)
	y := core.Clamp((m.engine.Height()-p.Height())/2, 0, m.engine.Height()-1)
	pattern.Stamp(m.engine, p, x, y)
	if pop := m.engine.Population(); pop > m.peakPop {
		m.peakPop = pop
	}
	m.sessionSaved = false
	m.status = "stamped " + p.Name
}

// maybeSaveSession records the run in the history store. Best effort:
// storage failures never interrupt the UI, and empty runs are skipped.
func (m *SimModel) maybeSaveSession() {
	if m.store == nil || m.sessionSaved || m.engine.Generation() == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, the session ends regardless
	m.store.SaveSession(storage.SessionEntry{
		Generations:    m.engine.Generation(),
		PeakPopulation: m.peakPop,
		GridWidth:      m.engine.Width(),
		GridHeight:     m.engine.Height(),
		DurationSecs:   int(time.Since(m.startedAt).Seconds()),
	})
	m.sessionSaved = true
}

// Grid box layout. The box is centered horizontally below the HUD.

func (m SimModel) boxWidth() int {
	return m.engine.Width()*m.config.Sim.CellWidth + 2
}

func (m SimModel) boxHeight() int {
	return m.engine.Height() + 2
}

func (m SimModel) boxOrigin() (int, int) {
	x := (m.config.ScreenW - m.boxWidth()) / 2
	if x < 0 {
		x = 0
	}
	return x, simHUDRows
}

// tooSmall reports whether the terminal cannot fit the grid box.
func (m SimModel) tooSmall() bool {
	return m.config.ScreenW < m.boxWidth() ||
		m.config.ScreenH < simHUDRows+m.boxHeight()+simFooterRows
}

// cellAt maps a terminal position to grid coordinates. ok is false for
// positions left of or above the grid interior; positions past the right
// or bottom edge map to out-of-range coordinates the engine ignores.
func (m SimModel) cellAt(mx, my int) (x, y int, ok bool) {
	ox, oy := m.boxOrigin()
	innerX, innerY := ox+1, oy+1
	if mx < innerX || my < innerY {
		return 0, 0, false
	}
	return (mx - innerX) / m.config.Sim.CellWidth, my - innerY, true
}

// View renders the simulation screen.
func (m SimModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.renderHUD()

	if m.tooSmall() {
		m.screen.DrawTextCentered(m.config.ScreenH/2, "Window too small")
		m.screen.DrawTextCentered(m.config.ScreenH/2+1, "Resize to continue")
		return RenderScreen(m.screen)
	}

	m.renderGrid()
	m.renderFooter()

	return RenderScreen(m.screen)
}

// renderHUD draws the top status bar.
func (m SimModel) renderHUD() {
	state := "PAUSED"
	stateColor := core.ColorYellow
	if m.running {
		state = "RUNNING"
		stateColor = core.ColorBrightGreen
	}

	hud := fmt.Sprintf(" Game of Life | Gen: %d  Pop: %d  ", m.engine.Generation(), m.engine.Population())
	m.screen.DrawTextColor(0, 0, hud, core.ColorCyan)
	m.screen.DrawTextColor(len(hud), 0, state, stateColor)

	if len(m.patterns) > 0 {
		tail := fmt.Sprintf("  Pattern: %s", m.patterns[m.patternIdx].Name)
		if m.status != "" {
			tail += "  (" + m.status + ")"
		}
		m.screen.DrawText(len(hud)+len(state), 0, tail)
	}

	m.screen.DrawHLine(0, 1, m.screen.Width(), '─', core.ColorGray)
}

// renderGrid draws the bordered grid with live cells.
func (m SimModel) renderGrid() {
	ox, oy := m.boxOrigin()
	cellW := m.config.Sim.CellWidth

	m.screen.DrawBox(core.NewRect(ox, oy, m.boxWidth(), m.boxHeight()), core.ColorGray)

	for y := 0; y < m.engine.Height(); y++ {
		for x := 0; x < m.engine.Width(); x++ {
			if !m.engine.Alive(x, y) {
				continue
			}
			for i := 0; i < cellW; i++ {
				m.screen.SetCell(ox+1+x*cellW+i, oy+1+y, '█', core.ColorBrightGreen)
			}
		}
	}
}

// renderFooter draws the key help line.
func (m SimModel) renderFooter() {
	help := "Space: Run/Stop  |  N: Step  |  C: Clear  |  X: Soup  |  Tab/Enter: Pattern  |  Click: Toggle  |  B: Back  |  Q: Quit"
	m.screen.DrawTextColor(1, m.config.ScreenH-1, help, core.ColorGray)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m SimModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m SimModel) BackToMenu() bool {
	return m.backToMenu
}

// Config returns the current runtime config (may have been updated by resize).
func (m SimModel) Config() core.RuntimeConfig {
	return m.config
}
