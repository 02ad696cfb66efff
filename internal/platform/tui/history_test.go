package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/termlife/termlife/internal/storage"
)

func TestHistoryWithoutStore(t *testing.T) {
	m := NewHistoryModel(nil, testConfig())
	if !m.empty {
		t.Error("nil store should produce an empty history screen")
	}
	if !strings.Contains(m.View(), "No sessions recorded yet") {
		t.Error("empty history should say so")
	}
}

func TestHistoryShowsSessions(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	sessions := []storage.SessionEntry{
		{Generations: 120, PeakPopulation: 44, GridWidth: 30, GridHeight: 30, DurationSecs: 15},
		{Generations: 85, PeakPopulation: 12, GridWidth: 40, GridHeight: 20, DurationSecs: 90},
	}
	for _, e := range sessions {
		if _, err := store.SaveSession(e); err != nil {
			t.Fatalf("SaveSession: %v", err)
		}
	}

	m := NewHistoryModel(store, testConfig())
	if m.empty {
		t.Fatal("history with sessions should not be empty")
	}

	// Every session must render as a table row, not just the header.
	view := m.View()
	for _, want := range []string{"120", "30x30", "15s", "85", "40x20", "1m30s"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestHistoryBack(t *testing.T) {
	m := NewHistoryModel(nil, testConfig())
	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = newModel.(HistoryModel)
	if !m.GoingBack() {
		t.Error("esc should go back")
	}
}
