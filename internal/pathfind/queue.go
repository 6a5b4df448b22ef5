package pathfind

import "github.com/vovakirdan/tui-pathfinder/internal/core"

// queueEntry is one frontier entry. A cell may appear several times with
// different priorities; stale entries are skipped when popped.
type queueEntry struct {
	cell core.Cell
	f    int
}

// openQueue is a min-heap ordered by f, then row, then column.
type openQueue []queueEntry

func (q openQueue) Len() int { return len(q) }

func (q openQueue) Less(i, j int) bool {
	a, b := q[i], q[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.cell.Row != b.cell.Row {
		return a.cell.Row < b.cell.Row
	}
	return a.cell.Col < b.cell.Col
}

func (q openQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *openQueue) Push(x any) {
	*q = append(*q, x.(queueEntry))
}

func (q *openQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
