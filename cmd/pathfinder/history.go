package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent search runs",
	Long: `Display the most recent search runs and aggregate statistics.

Only run summaries are stored: grid size, wall count, whether a path
was found, its length, expanded cells and search time.

Examples:
  pathfinder history
  pathfinder history --limit 50
  pathfinder history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded runs")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			return
		}
		fmt.Println("Run history cleared.")
		return
	}

	runs, err := store.RecentRuns(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println("Recent runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pathfinder run' and press enter to search!")
		return
	}

	fmt.Printf("  %-5s  %-12s  %-4s  %-5s  %-6s  %-5s  %-8s  %-10s  %s\n",
		"ID", "Layout", "Size", "Walls", "Result", "Steps", "Expanded", "Time", "Date")
	fmt.Printf("  %-5s  %-12s  %-4s  %-5s  %-6s  %-5s  %-8s  %-10s  %s\n",
		"--", "------", "----", "-----", "------", "-----", "--------", "----", "----")

	for _, r := range runs {
		layout := r.Layout
		if layout == "" {
			layout = "custom"
		}
		result, steps := "none", "-"
		if r.Found {
			result, steps = "found", fmt.Sprintf("%d", r.PathLen)
		}
		fmt.Printf("  %-5d  %-12s  %-4d  %-5d  %-6s  %-5s  %-8d  %-10s  %s\n",
			r.ID, layout, r.GridSize, r.Obstacles, result, steps, r.Expanded,
			r.Duration, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Total: %d runs, %d found", stats.Runs, stats.Found)
	if stats.Found > 0 {
		fmt.Printf(", avg path %.1f steps, avg expanded %.1f", stats.AvgPathLen, stats.AvgExpanded)
	}
	fmt.Println()
}
