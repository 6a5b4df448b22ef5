package pathfind

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-pathfinder/internal/core"
)

// bfsDistance is the oracle: plain breadth-first search on the same grid.
// Returns -1 when end is unreachable.
func bfsDistance(start, end core.Cell, obstacles core.CellSet, size int) int {
	dist := map[core.Cell]int{start: 0}
	queue := []core.Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == end {
			return dist[cur]
		}
		for _, nb := range core.Neighbors(cur, size) {
			if obstacles.Has(nb) {
				continue
			}
			if _, seen := dist[nb]; seen {
				continue
			}
			dist[nb] = dist[cur] + 1
			queue = append(queue, nb)
		}
	}
	return -1
}

func wall(cells ...core.Cell) core.CellSet {
	return core.NewCellSet(cells...)
}

func TestFindPathStraightRow(t *testing.T) {
	path, err := FindPath(core.C(0, 0), core.C(0, 4), nil, WithSize(5))
	if err != nil {
		t.Fatalf("FindPath() failed: %v", err)
	}

	want := []core.Cell{core.C(0, 0), core.C(0, 1), core.C(0, 2), core.C(0, 3), core.C(0, 4)}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v, expected %v", path, want)
	}
}

func TestFindPathThroughColumnGap(t *testing.T) {
	obstacles := wall(core.C(0, 2), core.C(1, 2), core.C(2, 2), core.C(3, 2))

	path, err := FindPath(core.C(0, 0), core.C(4, 4), obstacles, WithSize(5))
	if err != nil {
		t.Fatalf("FindPath() failed: %v", err)
	}
	if len(path) == 0 {
		t.Fatal("expected a path through the gap")
	}

	throughGap := false
	for _, c := range path {
		if c == core.C(4, 2) {
			throughGap = true
		}
	}
	if !throughGap {
		t.Errorf("path %v should pass through (4,2)", path)
	}
	if Steps(path) != 8 {
		t.Errorf("Steps() = %d, expected 8", Steps(path))
	}
	if !ValidPath(path, obstacles, 5) {
		t.Errorf("path %v is not a valid route", path)
	}
}

func TestFindPathSealedRow(t *testing.T) {
	obstacles := make(core.CellSet)
	for col := 0; col < 5; col++ {
		obstacles.Add(core.C(2, col))
	}

	path, err := FindPath(core.C(0, 0), core.C(4, 0), obstacles, WithSize(5))
	if err != nil {
		t.Fatalf("no path is not an error, got %v", err)
	}
	if len(path) != 0 {
		t.Errorf("expected empty path, got %v", path)
	}
}

func TestFindPathFullGridWall(t *testing.T) {
	obstacles := make(core.CellSet)
	for row := 0; row < core.GridSize; row++ {
		obstacles.Add(core.C(row, 10))
	}

	res, err := Search(core.C(0, 0), core.C(19, 19), obstacles)
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	if res.Found {
		t.Fatal("search across a complete wall should fail")
	}
	// Everything left of the wall gets explored before giving up.
	if len(res.Visited) != core.GridSize*10 {
		t.Errorf("Visited %d cells, expected %d", len(res.Visited), core.GridSize*10)
	}
	if path := Reconstruct(res.Parents, core.C(0, 0), core.C(19, 19)); len(path) != 0 {
		t.Errorf("Reconstruct on failed search = %v, expected empty", path)
	}
}

func TestOpenGridPathLengthIsManhattan(t *testing.T) {
	const size = 5
	for r1 := 0; r1 < size; r1++ {
		for c1 := 0; c1 < size; c1++ {
			for r2 := 0; r2 < size; r2++ {
				for c2 := 0; c2 < size; c2++ {
					start, end := core.C(r1, c1), core.C(r2, c2)
					if start == end {
						continue
					}
					path, err := FindPath(start, end, nil, WithSize(size))
					if err != nil {
						t.Fatalf("FindPath(%v, %v) failed: %v", start, end, err)
					}
					if Steps(path) != Manhattan(start, end) {
						t.Fatalf("FindPath(%v, %v) took %d steps, expected %d",
							start, end, Steps(path), Manhattan(start, end))
					}
				}
			}
		}
	}
}

func TestMatchesBFSOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	sizes := []int{3, 5, 7, 8}

	for trial := 0; trial < 400; trial++ {
		size := sizes[trial%len(sizes)]
		obstacles := make(core.CellSet)
		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				if rng.Float64() < 0.3 {
					obstacles.Add(core.C(row, col))
				}
			}
		}

		start := core.C(rng.Intn(size), rng.Intn(size))
		end := core.C(rng.Intn(size), rng.Intn(size))
		if start == end {
			continue
		}
		obstacles.Remove(start)
		obstacles.Remove(end)
		before := obstacles.Clone()

		path, err := FindPath(start, end, obstacles, WithSize(size))
		if err != nil {
			t.Fatalf("trial %d: FindPath() failed: %v", trial, err)
		}
		if !reflect.DeepEqual(obstacles, before) {
			t.Fatalf("trial %d: search mutated the obstacle set", trial)
		}

		want := bfsDistance(start, end, obstacles, size)
		if want < 0 {
			if len(path) != 0 {
				t.Fatalf("trial %d: oracle says unreachable, got %v", trial, path)
			}
			continue
		}

		if len(path) == 0 {
			t.Fatalf("trial %d: oracle distance %d, got no path", trial, want)
		}
		if path[0] != start || path[len(path)-1] != end {
			t.Fatalf("trial %d: path %v does not run %v..%v", trial, path, start, end)
		}
		if !ValidPath(path, obstacles, size) {
			t.Fatalf("trial %d: invalid path %v", trial, path)
		}
		if Steps(path) != want {
			t.Fatalf("trial %d: %d steps, oracle %d", trial, Steps(path), want)
		}
	}
}

func TestSearchIsRepeatable(t *testing.T) {
	obstacles := wall(core.C(5, 5), core.C(5, 6), core.C(6, 5), core.C(10, 2), core.C(3, 17))
	start, end := core.C(1, 1), core.C(18, 15)

	first, err := FindPath(start, end, obstacles)
	if err != nil {
		t.Fatalf("FindPath() failed: %v", err)
	}
	second, err := FindPath(start, end, obstacles)
	if err != nil {
		t.Fatalf("FindPath() failed: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("repeat runs differ in length: %d vs %d", len(first), len(second))
	}
	// Tie-breaking is by coordinates, so the routes match exactly too.
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeat runs differ: %v vs %v", first, second)
	}
}

func TestSearchRejectsInvalidQueries(t *testing.T) {
	blocked := wall(core.C(1, 1))

	tests := []struct {
		name       string
		start, end core.Cell
		obstacles  core.CellSet
		want       error
	}{
		{"same cell", core.C(2, 2), core.C(2, 2), nil, ErrSameEndpoints},
		{"start out of bounds", core.C(-1, 0), core.C(2, 2), nil, ErrOutOfBounds},
		{"end out of bounds", core.C(0, 0), core.C(0, 20), nil, ErrOutOfBounds},
		{"start blocked", core.C(1, 1), core.C(2, 2), blocked, ErrBlockedEndpoint},
		{"end blocked", core.C(2, 2), core.C(1, 1), blocked, ErrBlockedEndpoint},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Search(tc.start, tc.end, tc.obstacles)
			if !errors.Is(err, tc.want) {
				t.Errorf("Search() error = %v, expected %v", err, tc.want)
			}
			if !errors.Is(err, ErrInvalidQuery) {
				t.Errorf("error %v should wrap ErrInvalidQuery", err)
			}
		})
	}
}

func TestSearchCustomHeuristic(t *testing.T) {
	zero := func(a, b core.Cell) int { return 0 }
	obstacles := wall(core.C(0, 1), core.C(1, 1), core.C(2, 1))

	withZero, err := FindPath(core.C(0, 0), core.C(0, 2), obstacles, WithSize(4), WithHeuristic(zero))
	if err != nil {
		t.Fatalf("FindPath() failed: %v", err)
	}
	withManhattan, err := FindPath(core.C(0, 0), core.C(0, 2), obstacles, WithSize(4))
	if err != nil {
		t.Fatalf("FindPath() failed: %v", err)
	}

	if Steps(withZero) != 8 || Steps(withManhattan) != 8 {
		t.Errorf("expected 8 steps for both heuristics, got %d and %d", Steps(withZero), Steps(withManhattan))
	}
}

func TestManhattan(t *testing.T) {
	tests := []struct {
		a, b core.Cell
		want int
	}{
		{core.C(0, 0), core.C(0, 0), 0},
		{core.C(0, 0), core.C(3, 4), 7},
		{core.C(5, 2), core.C(1, 9), 11},
	}
	for _, tc := range tests {
		if got := Manhattan(tc.a, tc.b); got != tc.want {
			t.Errorf("Manhattan(%v, %v) = %d, expected %d", tc.a, tc.b, got, tc.want)
		}
		if Manhattan(tc.a, tc.b) != Manhattan(tc.b, tc.a) {
			t.Errorf("Manhattan(%v, %v) is not symmetric", tc.a, tc.b)
		}
	}
}
