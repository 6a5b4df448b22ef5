package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathfinder/internal/layouts"
)

var flagLayoutsDir string

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List available layouts",
	Long: `Shows the built-in layouts and, with --dir, the layout files found
in a directory. Invalid files in the directory are skipped.

Layout files are YAML:

  id: corridor
  name: Corridor
  size: 5
  rows:
    - "S.#.."
    - "..#.E"

Examples:
  pathfinder layouts
  pathfinder layouts --dir ./my-layouts`,
	Args: cobra.NoArgs,
	Run:  runLayouts,
}

func init() {
	layoutsCmd.Flags().StringVar(&flagLayoutsDir, "dir", "", "Directory of layout YAML files to list as well")
}

func runLayouts(_ *cobra.Command, _ []string) {
	builtins := layouts.List()

	fmt.Println("Built-in layouts:")
	fmt.Println()
	printLayouts(builtins)

	if flagLayoutsDir != "" {
		found, err := layouts.NewLoader(flagLayoutsDir).LoadAll()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		infos := make([]layouts.Info, len(found))
		for i, l := range found {
			infos[i] = layouts.Info{ID: l.FilePath, Name: l.Name, Size: l.Size}
		}

		fmt.Println()
		fmt.Printf("Layouts in %s:\n", flagLayoutsDir)
		fmt.Println()
		printLayouts(infos)
	}

	fmt.Println()
	fmt.Println("Run 'pathfinder run --layout <id|file>' to open a layout.")
}

func printLayouts(infos []layouts.Info) {
	if len(infos) == 0 {
		fmt.Println("  (none)")
		return
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range infos {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "ID", "Size", "Name")
	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "--", "----", "----")

	for _, l := range infos {
		fmt.Printf("  %-*s  %-5d  %s\n", maxIDLen, l.ID, l.Size, l.Name)
	}
}
