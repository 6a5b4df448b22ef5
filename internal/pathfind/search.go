package pathfind

import "github.com/vovakirdan/tui-pathfinder/internal/core"

// Parents maps each reached cell to its predecessor on the best known path.
type Parents map[core.Cell]core.Cell

// Result contains the outcome of a search.
type Result struct {
	Parents  Parents
	Found    bool
	Expanded int         // Cells popped and processed, the goal included
	Visited  []core.Cell // Finalized cells in expansion order
}

// Search runs A* from start to end around obstacles and returns the
// predecessor map. Found is false when the frontier empties without
// reaching end. Ties between equal f-scores are broken by row, then
// column; any shortest path is a valid answer.
func Search(start, end core.Cell, obstacles core.CellSet, opts ...Option) (Result, error) {
	s, err := NewStepper(start, end, obstacles, opts...)
	if err != nil {
		return Result{}, err
	}
	return s.Run(), nil
}
