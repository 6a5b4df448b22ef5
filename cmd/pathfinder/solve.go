package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathfinder/internal/config"
	"github.com/vovakirdan/tui-pathfinder/internal/core"
	"github.com/vovakirdan/tui-pathfinder/internal/layouts"
	"github.com/vovakirdan/tui-pathfinder/internal/pathfind"
	"github.com/vovakirdan/tui-pathfinder/internal/platform/tui"
	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

var (
	flagSolveLayout   string
	flagSolveSize     int
	flagSolveStart    string
	flagSolveEnd      string
	flagSolveWalls    []string
	flagSolveCheck    bool
	flagSolveExplored bool
	flagSolveRecord   bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a grid and print the path",
	Long: `Run A* on a grid without the interactive UI.

The grid comes from --layout, or from an empty --size grid. --start,
--end and --wall are applied on top, so they can also tweak a layout.
Cells are given as row,col with 0,0 at the top left.

Output uses S and E for the endpoints, # for walls and the configured
path glyph for the route.

Examples:
  pathfinder solve --layout maze
  pathfinder solve --layout sealed-row
  pathfinder solve --size 5 --start 0,0 --end 0,4
  pathfinder solve --size 5 --start 0,0 --end 4,4 --wall 2,0 --wall 2,1 --check`,
	Args: cobra.NoArgs,
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagSolveLayout, "layout", "", "Layout ID or YAML file")
	solveCmd.Flags().IntVar(&flagSolveSize, "size", 0, "Grid size when no layout is given (default from config)")
	solveCmd.Flags().StringVar(&flagSolveStart, "start", "", "Start cell as row,col")
	solveCmd.Flags().StringVar(&flagSolveEnd, "end", "", "End cell as row,col")
	solveCmd.Flags().StringArrayVar(&flagSolveWalls, "wall", nil, "Wall cell as row,col (repeatable)")
	solveCmd.Flags().BoolVar(&flagSolveCheck, "check", false, "Verify the path is a valid obstacle-free walk")
	solveCmd.Flags().BoolVar(&flagSolveExplored, "explored", false, "Mark expanded cells in the output")
	solveCmd.Flags().BoolVar(&flagSolveRecord, "record", false, "Save the run to the history database")
}

func runSolve(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	grid, layoutID, err := buildSolveGrid(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	began := time.Now()
	path, res, err := pathfind.FindPathOnGrid(grid)
	elapsed := time.Since(began)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("search finished", "found", res.Found, "expanded", res.Expanded, "elapsed", elapsed)

	var explored core.CellSet
	if flagSolveExplored {
		explored = core.NewCellSet(res.Visited...)
	}
	fmt.Println(renderGrid(grid, path, explored, cfg.Glyphs))
	fmt.Println()

	if len(path) == 0 {
		fmt.Println(tui.NoPathMessage)
	} else {
		fmt.Printf("Path: %d steps, %d cells expanded\n", pathfind.Steps(path), res.Expanded)
		fmt.Println(formatPath(path))
	}

	if flagSolveRecord {
		recordSolve(grid, layoutID, path, res, elapsed)
	}

	if flagSolveCheck && len(path) > 0 {
		if err := checkPath(grid, path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Path check: ok")
	}
}

// buildSolveGrid assembles the grid from the layout and cell flags.
func buildSolveGrid(cfg config.Config) (*core.Grid, string, error) {
	var (
		grid     *core.Grid
		layoutID string
	)

	if flagSolveLayout != "" {
		l, err := layouts.Resolve(flagSolveLayout)
		if err != nil {
			return nil, "", err
		}
		grid, layoutID = l.ToGrid(), l.ID
	} else {
		size := flagSolveSize
		if size == 0 {
			size = cfg.Grid.Size
		}
		if size < config.MinGridSize || size > config.MaxGridSize {
			return nil, "", fmt.Errorf("grid size %d outside [%d, %d]", size, config.MinGridSize, config.MaxGridSize)
		}
		grid = core.NewGrid(size)
	}

	if flagSolveStart != "" {
		c, err := parseCell(flagSolveStart)
		if err != nil {
			return nil, "", fmt.Errorf("--start: %w", err)
		}
		if !grid.SetStart(c) {
			return nil, "", fmt.Errorf("--start: cannot place start at %s", c)
		}
	}
	if flagSolveEnd != "" {
		c, err := parseCell(flagSolveEnd)
		if err != nil {
			return nil, "", fmt.Errorf("--end: %w", err)
		}
		if !grid.SetEnd(c) {
			return nil, "", fmt.Errorf("--end: cannot place end at %s", c)
		}
	}
	for _, w := range flagSolveWalls {
		c, err := parseCell(w)
		if err != nil {
			return nil, "", fmt.Errorf("--wall: %w", err)
		}
		if !grid.AddObstacle(c) {
			return nil, "", fmt.Errorf("--wall: cannot place wall at %s", c)
		}
	}

	return grid, layoutID, nil
}

// parseCell parses "row,col".
func parseCell(s string) (core.Cell, error) {
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return core.Cell{}, fmt.Errorf("invalid cell %q, want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return core.Cell{}, fmt.Errorf("invalid row in %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return core.Cell{}, fmt.Errorf("invalid column in %q: %w", s, err)
	}
	return core.C(row, col), nil
}

// renderGrid draws the grid as text, one row per line.
func renderGrid(g *core.Grid, path []core.Cell, explored core.CellSet, glyphs config.GlyphConfig) string {
	onPath := core.NewCellSet(path...)
	pathGlyph := config.Rune(glyphs.Path)
	exploredGlyph := config.Rune(glyphs.Explored)

	var sb strings.Builder
	for row := range g.Size() {
		if row > 0 {
			sb.WriteRune('\n')
		}
		for col := range g.Size() {
			c := core.C(row, col)
			switch g.Kind(c) {
			case core.KindStart:
				sb.WriteRune(layouts.GlyphStart)
			case core.KindEnd:
				sb.WriteRune(layouts.GlyphEnd)
			case core.KindObstacle:
				sb.WriteRune(layouts.GlyphWall)
			default:
				switch {
				case onPath.Has(c):
					sb.WriteRune(pathGlyph)
				case explored.Has(c):
					sb.WriteRune(exploredGlyph)
				default:
					sb.WriteRune(layouts.GlyphFree)
				}
			}
		}
	}
	return sb.String()
}

// formatPath lists the path cells separated by arrows.
func formatPath(path []core.Cell) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = c.String()
	}
	return strings.Join(parts, " -> ")
}

// checkPath verifies the path joins the grid endpoints without crossing walls.
func checkPath(g *core.Grid, path []core.Cell) error {
	start, _ := g.Start()
	end, _ := g.End()
	if path[0] != start || path[len(path)-1] != end {
		return fmt.Errorf("path runs %s..%s, want %s..%s", path[0], path[len(path)-1], start, end)
	}
	if !pathfind.ValidPath(path, g.Obstacles(), g.Size()) {
		return errors.New("path is not a simple obstacle-free walk")
	}
	return nil
}

// recordSolve saves the run summary, best effort.
func recordSolve(g *core.Grid, layoutID string, path []core.Cell, res pathfind.Result, elapsed time.Duration) {
	store := openStoreOptional()
	if store == nil {
		return
	}
	defer store.Close()

	id, err := store.SaveRun(storage.RunRecord{
		Layout:    layoutID,
		GridSize:  g.Size(),
		Obstacles: g.ObstacleCount(),
		Found:     res.Found,
		PathLen:   pathfind.Steps(path),
		Expanded:  res.Expanded,
		Duration:  elapsed,
	})
	if err != nil {
		logger.Warn("could not record run", "error", err)
		return
	}
	logger.Debug("run recorded", "id", id)
}
