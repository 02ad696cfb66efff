// termlife is a terminal Game of Life simulator.
//
// Usage:
//
//	termlife                 - Start the interactive menu
//	termlife sim             - Jump straight into the simulation
//	termlife patterns        - List built-in patterns
//	termlife history         - Show recorded simulation sessions
//	termlife serve           - Start SSH server for remote sessions
//
// Global flags:
//
//	--settings <path>  - Settings file (default: ~/.termlife/settings.yaml)
//	--db <path>        - Session database (default: ~/.termlife/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/termlife/termlife/internal/core"
	"github.com/termlife/termlife/internal/platform/tui"
	"github.com/termlife/termlife/internal/settings"
	"github.com/termlife/termlife/internal/storage"
)

var (
	// Global flags
	flagSettings string
	flagDBPath   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termlife",
	Short: "Conway's Game of Life in your terminal",
	Long: `termlife runs Conway's Game of Life as a terminal application.

Running without a subcommand opens the interactive menu with the
simulation, settings and session history.

Controls in the simulation:
  Space        - Run/stop
  N            - Advance one generation
  C            - Clear the grid
  X            - Random soup
  Tab / Enter  - Choose and stamp a pattern
  Mouse click  - Toggle a cell

Examples:
  termlife
  termlife sim --width 50 --height 40
  termlife patterns
  termlife serve --ssh :2222`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "", "Path to settings file (default: ~/.termlife/settings.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.termlife/sessions.db", "Path to session database")

	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	defer closeStore(store)

	cfg := loadRuntimeConfig()

	if err := tui.RunSession(store, cfg, settingsPath()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// settingsPath resolves the --settings flag, falling back to the default.
func settingsPath() string {
	if flagSettings != "" {
		return flagSettings
	}
	return settings.DefaultPath()
}

// loadRuntimeConfig builds the runtime config from the terminal size and
// the persisted settings.
func loadRuntimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Sim:     settings.Load(settingsPath()),
	}
}

// openStore opens the session database, degrading to nil on failure so
// the simulation still runs without history.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session database: %v\n", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}
