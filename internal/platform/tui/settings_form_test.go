package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/termlife/termlife/internal/settings"
)

func newTestForm(t *testing.T) (SettingsModel, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	return NewSettingsModel(testConfig(), path), path
}

func formKey(t *testing.T, m SettingsModel, msg tea.KeyMsg) SettingsModel {
	t.Helper()
	newModel, _ := m.Update(msg)
	form, ok := newModel.(SettingsModel)
	if !ok {
		t.Fatalf("Update returned %T, want SettingsModel", newModel)
	}
	return form
}

func TestFormPrefillsCurrentValues(t *testing.T) {
	m, _ := newTestForm(t)
	want := []string{"10", "10", "2", "100"}
	for i, w := range want {
		if got := m.fields[i].value; got != w {
			t.Errorf("field %d = %q, want %q", i, got, w)
		}
	}
}

func TestFormDigitEditing(t *testing.T) {
	m, _ := newTestForm(t)

	m = formKey(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = formKey(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = formKey(t, m, runesKey("4"))
	m = formKey(t, m, runesKey("2"))

	if got := m.fields[0].value; got != "42" {
		t.Errorf("edited value = %q, want %q", got, "42")
	}
}

func TestFormIgnoresNonDigits(t *testing.T) {
	m, _ := newTestForm(t)
	m = formKey(t, m, runesKey("a"))
	if got := m.fields[0].value; got != "10" {
		t.Errorf("value after letter key = %q, want %q", got, "10")
	}
}

func TestFormCursorMovement(t *testing.T) {
	m, _ := newTestForm(t)

	m = formKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = formKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}

	m = formKey(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}

	// Cursor stays in range at the edges.
	for i := 0; i < 10; i++ {
		m = formKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(m.fields)-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(m.fields)-1)
	}
}

func TestFormSavePersists(t *testing.T) {
	m, path := newTestForm(t)

	m = formKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Saved() == nil {
		t.Fatalf("save failed: %s", m.errMsg)
	}

	got := settings.Load(path)
	if got.GridWidth != 10 || got.UpdateInterval != 100 {
		t.Errorf("persisted settings = %+v", got)
	}
}

func TestFormRejectsEmptyField(t *testing.T) {
	m, path := newTestForm(t)

	m = formKey(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = formKey(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = formKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Saved() != nil {
		t.Fatal("save should fail with an empty field")
	}
	if m.errMsg == "" {
		t.Error("expected an error message")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("failed save should not create the settings file")
	}
}

func TestFormRejectsZeroValue(t *testing.T) {
	m, _ := newTestForm(t)

	m = formKey(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = formKey(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = formKey(t, m, runesKey("0"))
	m = formKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Saved() != nil {
		t.Fatal("save should fail with a zero grid width")
	}
	if m.errMsg == "" {
		t.Error("expected an error message")
	}
}

func TestFormBackWithoutSaving(t *testing.T) {
	m, path := newTestForm(t)

	m = formKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.GoingBack() {
		t.Error("esc should go back")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("back should not write the settings file")
	}
}
