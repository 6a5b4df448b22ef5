package pathfind

import "github.com/vovakirdan/tui-pathfinder/internal/core"

// Heuristic estimates the remaining cost from a to b. It must never
// overestimate the true cost for the search to return shortest paths.
type Heuristic func(a, b core.Cell) int

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|, which is admissible and
// consistent for unit-cost 4-directional movement.
func Manhattan(a, b core.Cell) int {
	return core.Abs(a.Row-b.Row) + core.Abs(a.Col-b.Col)
}
