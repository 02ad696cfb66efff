package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/termlife/termlife/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded simulation sessions",
	Long: `Display recent simulation sessions with their statistics.

Examples:
  termlife history
  termlife history --limit 5
  termlife history --clear`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Maximum number of sessions to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded sessions")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearSessions(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing sessions: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Session history cleared.")
		return
	}

	entries, err := store.RecentSessions(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'termlife sim' and the session will show up here.")
		return
	}

	fmt.Println("Recent sessions:")
	fmt.Println()
	fmt.Printf("  %-16s  %-12s  %-9s  %-9s  %s\n", "When", "Generations", "Peak pop", "Grid", "Duration")
	fmt.Printf("  %-16s  %-12s  %-9s  %-9s  %s\n", "----", "-----------", "--------", "----", "--------")

	for _, e := range entries {
		fmt.Printf("  %-16s  %-12d  %-9d  %-9s  %s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			e.Generations,
			e.PeakPopulation,
			fmt.Sprintf("%dx%d", e.GridWidth, e.GridHeight),
			(time.Duration(e.DurationSecs) * time.Second).String(),
		)
	}

	stats, err := store.Stats()
	if err == nil && stats.Sessions > 0 {
		fmt.Println()
		fmt.Printf("%d sessions total, longest run %d generations, %s simulated\n",
			stats.Sessions,
			stats.MaxGenerations,
			(time.Duration(stats.TotalSecs) * time.Second).String(),
		)
	}
}
