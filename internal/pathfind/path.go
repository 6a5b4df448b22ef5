package pathfind

import "github.com/vovakirdan/tui-pathfinder/internal/core"

// FindPath returns a shortest obstacle-avoiding path from start to end,
// both included. An empty path with a nil error means no route exists.
func FindPath(start, end core.Cell, obstacles core.CellSet, opts ...Option) ([]core.Cell, error) {
	res, err := Search(start, end, obstacles, opts...)
	if err != nil {
		return nil, err
	}
	if !res.Found {
		return nil, nil
	}
	return Reconstruct(res.Parents, start, end), nil
}

// FindPathOnGrid searches the grid's current endpoints and obstacles.
func FindPathOnGrid(g *core.Grid, opts ...Option) ([]core.Cell, Result, error) {
	s, err := NewGridStepper(g, opts...)
	if err != nil {
		return nil, Result{}, err
	}
	res := s.Run()
	return s.Path(), res, nil
}

// Steps returns the number of moves along a path.
func Steps(path []core.Cell) int {
	if len(path) == 0 {
		return 0
	}
	return len(path) - 1
}

// ValidPath reports whether path is a simple 4-connected walk inside a
// size x size grid that avoids every obstacle.
func ValidPath(path []core.Cell, obstacles core.CellSet, size int) bool {
	seen := make(core.CellSet, len(path))
	for i, c := range path {
		if !core.InBounds(c, size) || obstacles.Has(c) || seen.Has(c) {
			return false
		}
		seen.Add(c)
		if i > 0 && Manhattan(path[i-1], c) != 1 {
			return false
		}
	}
	return true
}
