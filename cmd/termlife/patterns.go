package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/termlife/termlife/internal/pattern"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List built-in patterns",
	Long:  `Shows the patterns available for stamping in the simulation.`,
	Run:   runPatterns,
}

func runPatterns(_ *cobra.Command, _ []string) {
	patterns := pattern.List()

	if len(patterns) == 0 {
		fmt.Println("No patterns available.")
		return
	}

	fmt.Println("Built-in patterns:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, p := range patterns {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "ID", "Name", "Size")
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "--", "----", "----")

	for _, p := range patterns {
		fmt.Printf("  %-*s  %-20s  %dx%d\n", maxIDLen, p.ID, p.Name, p.Width(), p.Height())
	}

	fmt.Println()
	fmt.Println("Use Tab in the simulation to cycle patterns, Enter to stamp.")
}
