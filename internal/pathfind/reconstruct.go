package pathfind

import "github.com/vovakirdan/tui-pathfinder/internal/core"

// Reconstruct walks parents back from end to start and returns the path in
// start..end order. It returns an empty path when the chain does not reach
// start, which is what a failed search leaves behind.
func Reconstruct(parents Parents, start, end core.Cell) []core.Cell {
	if start == end {
		return []core.Cell{start}
	}

	path := []core.Cell{end}
	current := end
	for current != start {
		prev, ok := parents[current]
		if !ok {
			return nil
		}
		path = append(path, prev)
		// A chain longer than the map means a cycle.
		if len(path) > len(parents)+1 {
			return nil
		}
		current = prev
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
