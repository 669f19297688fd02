package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bombgrid/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [input]",
	Short: "Show journaled runs",
	Long: `Display the most recent runs recorded in the journal, optionally
only those for one input file name, followed by totals.

The journal is read even when recording is disabled in the config.

Examples:
  bombgrid history
  bombgrid history maze.txt --limit 5
  bombgrid history --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all journaled runs")
}

func runHistory(_ *cobra.Command, args []string) error {
	// Open journal storage
	store, err := openStore()
	if err != nil {
		return fmt.Errorf("error opening journal: %w", err)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("Journal cleared.")
		return nil
	}

	var runs []storage.Run
	if len(args) == 1 {
		runs, err = store.RunsForInput(args[0], flagHistoryLimit)
	} else {
		runs, err = store.RecentRuns(flagHistoryLimit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Println("Recent runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run with --journal, or set journal.enabled in the config, to record runs.")
		return nil
	}

	// Print header
	fmt.Printf("  %-16s  %-20s  %-9s  %-7s  %-5s  %-9s  %s\n", "Date", "Input", "Position", "Outcome", "Bombs", "Destroyed", "Message")
	fmt.Printf("  %-16s  %-20s  %-9s  %-7s  %-5s  %-9s  %s\n", "----", "-----", "--------", "-------", "-----", "---------", "-------")

	// Print runs
	for _, run := range runs {
		dateStr := run.CreatedAt.Format("2006-01-02 15:04")
		pos := fmt.Sprintf("(%d,%d)", run.X, run.Y)
		fmt.Printf("  %-16s  %-20s  %-9s  %-7s  %-5d  %-9d  %s\n",
			dateStr, run.Input, pos, run.Outcome,
			run.Summary.BombsDetonated, run.Summary.EnemiesDestroyed, run.Message)
	}

	// Show totals
	fmt.Println()
	stats, err := store.Stats()
	if err == nil {
		fmt.Printf("Total: %d runs, %d failed, %d bombs detonated, %d enemies destroyed\n",
			stats.Runs, stats.Failed, stats.BombsDetonated, stats.EnemiesDestroyed)
	}
	return nil
}
