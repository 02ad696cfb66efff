package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if s != Default() {
		t.Errorf("Load() on missing file = %+v, want defaults %+v", s, Default())
	}
}

func TestLoadCorruptFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("{{{not yaml"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	s := Load(path)
	if s != Default() {
		t.Errorf("Load() on corrupt file = %+v, want defaults", s)
	}
}

func TestLoadInvalidValuesReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	body := "grid_width: -5\ngrid_height: 30\ncell_width: 2\nupdate_interval: 100\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	s := Load(path)
	if s != Default() {
		t.Errorf("Load() with invalid values = %+v, want defaults", s)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "settings.yaml")
	want := Settings{
		GridWidth:      48,
		GridHeight:     24,
		CellWidth:      1,
		UpdateInterval: 250,
	}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got := Load(path)
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	bad := Settings{GridWidth: 0, GridHeight: 30, CellWidth: 2, UpdateInterval: 100}
	if err := Save(path, bad); err == nil {
		t.Fatal("Save() should reject invalid settings")
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("rejected save should not create the file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       Settings
		wantErr bool
	}{
		{"defaults", Default(), false},
		{"minimal", Settings{1, 1, 1, 1}, false},
		{"zero width", Settings{0, 30, 2, 100}, true},
		{"zero height", Settings{30, 0, 2, 100}, true},
		{"zero cell width", Settings{30, 30, 0, 100}, true},
		{"zero interval", Settings{30, 30, 2, 0}, true},
		{"negative everything", Settings{-1, -1, -1, -1}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.s.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
