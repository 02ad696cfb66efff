package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/termlife/termlife/internal/platform/tui"
)

var (
	flagWidth    int
	flagHeight   int
	flagInterval int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation directly, skipping the menu",
	Long: `Start the simulation screen immediately.

Grid dimensions and update interval come from the settings file unless
overridden on the command line. Overrides are not persisted.

Examples:
  termlife sim
  termlife sim --width 50 --height 40
  termlife sim --interval 50`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagWidth, "width", 0, "Grid width in cells (0 = use settings)")
	simCmd.Flags().IntVar(&flagHeight, "height", 0, "Grid height in cells (0 = use settings)")
	simCmd.Flags().IntVar(&flagInterval, "interval", 0, "Update interval in milliseconds (0 = use settings)")
}

func runSim(_ *cobra.Command, _ []string) {
	store := openStore()
	defer closeStore(store)

	cfg := loadRuntimeConfig()
	if flagWidth > 0 {
		cfg.Sim.GridWidth = flagWidth
	}
	if flagHeight > 0 {
		cfg.Sim.GridHeight = flagHeight
	}
	if flagInterval > 0 {
		cfg.Sim.UpdateInterval = flagInterval
	}

	if err := cfg.Sim.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid simulation settings: %v\n", err)
		os.Exit(1)
	}

	if err := tui.RunSim(store, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
