package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pathfinder/internal/core"
	"github.com/vovakirdan/tui-pathfinder/internal/layouts"
	"github.com/vovakirdan/tui-pathfinder/internal/platform/tui"
)

var flagRunLayout string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive grid editor",
	Long: `Open the grid editor and visualize A* search.

Controls:
  Arrows/hjkl  - Move the cursor
  Space        - Place start, then end, then walls
  Mouse        - Click to place, drag to draw walls
  X            - Erase the cell under the cursor
  Enter        - Search (press again to skip the animation)
  C            - Clear the path
  R            - Reset the grid
  Tab          - Run history
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Examples:
  pathfinder run
  pathfinder run --layout maze
  pathfinder run --layout ./my-layout.yaml`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagRunLayout, "layout", "", "Layout ID or YAML file to start from")
}

func runRun(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	var layout *layouts.Layout
	if flagRunLayout != "" {
		l, err := layouts.Resolve(flagRunLayout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'pathfinder layouts' to see available layouts.")
			os.Exit(1)
		}
		layout = &l
		logger.Debug("layout loaded", "id", l.ID, "size", l.Size)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Animation.TickRate,
	}

	// Continue without storage - the editor still works
	store := openStoreOptional()

	runErr := tui.Run(tui.SessionOptions{
		Config:  cfg,
		Runtime: rt,
		Layout:  layout,
		Store:   store,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running editor: %v\n", runErr)
		os.Exit(1)
	}
}
