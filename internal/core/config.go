package core

import "github.com/termlife/termlife/internal/settings"

// RuntimeConfig carries per-session runtime data handed to the platform
// models: terminal size plus the effective simulation settings. It is an
// explicit context object; nothing in the platform reads global state.
type RuntimeConfig struct {
	ScreenW int // Terminal width in characters
	ScreenH int // Terminal height in characters
	Sim     settings.Settings
}

// DefaultConfig returns a RuntimeConfig with a standard terminal size
// and default simulation settings.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Sim:     settings.Default(),
	}
}
