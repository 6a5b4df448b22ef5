// pathfinder is an interactive terminal visualizer for A* search on a grid.
//
// Usage:
//
//	pathfinder run              - Edit a grid and watch the search
//	pathfinder solve            - Solve a grid headlessly and print the path
//	pathfinder layouts          - List available layouts
//	pathfinder history          - Show recent search runs
//	pathfinder serve            - Start SSH server for remote sessions
//
// Global flags:
//
//	--config <path>  - Use a custom config YAML
//	--db <path>      - Set database path (default: ~/.pathfinder/history.db)
//	--verbose        - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathfinder/internal/config"
	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagVerbose bool

	logger = newLogger(false)
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pathfinder",
	Short: "Pathfinder - Watch A* search a grid in your terminal",
	Long: `Pathfinder is a terminal grid editor that visualizes A* search.

Place a start and an end, draw walls, and watch the search expand
cells and trace the shortest 4-directional path.

Available commands:
  run      - Interactive grid editor
  solve    - Solve a grid without the UI
  layouts  - Show built-in and custom layouts
  history  - View recent search runs
  serve    - Start SSH server for remote sessions

Examples:
  pathfinder run
  pathfinder run --layout maze
  pathfinder solve --start 0,0 --end 4,4 --wall 2,0 --wall 2,1 --size 5
  pathfinder serve --ssh :2222`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger = newLogger(flagVerbose)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pathfinder/history.db", "Path to run history database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the CLI logger. Verbose raises it to debug level.
func newLogger(verbose bool) *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pathfinder",
	})
	if verbose {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

// mustLoadConfig loads the configuration or exits.
func mustLoadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("config loaded",
		"size", cfg.Grid.Size,
		"tick_rate", cfg.Animation.TickRate,
		"step_ms", cfg.Animation.StepMillis,
		"show_explored", cfg.Animation.ShowExplored,
	)
	return cfg
}

// openStoreOptional opens the run history, returning nil when unavailable.
func openStoreOptional() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "path", flagDBPath, "error", err)
		return nil
	}
	logger.Debug("run history opened", "path", flagDBPath)
	return store
}
