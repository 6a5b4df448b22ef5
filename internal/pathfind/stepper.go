package pathfind

import (
	"container/heap"
	"math"

	"github.com/vovakirdan/tui-pathfinder/internal/core"
)

// infinity is the cost of a cell with no known path.
const infinity = math.MaxInt

// Snapshot describes one expansion of the search.
type Snapshot struct {
	Current   core.Cell // Cell popped this step; the last one popped once Done
	Done      bool
	Found     bool
	StepIndex int
	Frontier  int // Entries left in the queue, stale ones included
}

// Stepper runs the A* search one expansion at a time.
// Search is a Stepper driven to completion.
type Stepper struct {
	start     core.Cell
	end       core.Cell
	size      int
	obstacles core.CellSet
	heuristic Heuristic

	open    openQueue
	visited core.CellSet
	gScore  map[core.Cell]int
	fScore  map[core.Cell]int
	parents Parents
	order   []core.Cell

	steps int
	last  core.Cell // Last cell popped and finalized, start before any step
	done  bool
	found bool
}

// NewStepper validates the query and seeds the frontier with start.
// The obstacle set is copied, so the caller may keep editing its own.
func NewStepper(start, end core.Cell, obstacles core.CellSet, opts ...Option) (*Stepper, error) {
	o := buildOptions(opts)
	if err := Validate(start, end, obstacles, o.Size); err != nil {
		return nil, err
	}

	s := &Stepper{
		start:     start,
		end:       end,
		last:      start,
		size:      o.Size,
		obstacles: obstacles.Clone(),
		heuristic: o.Heuristic,
		open:      make(openQueue, 0, o.Size),
		visited:   make(core.CellSet),
		gScore:    map[core.Cell]int{start: 0},
		fScore:    map[core.Cell]int{start: o.Heuristic(start, end)},
		parents:   make(Parents),
	}
	heap.Init(&s.open)
	heap.Push(&s.open, queueEntry{cell: start, f: s.fScore[start]})
	return s, nil
}

// NewGridStepper builds a Stepper from the grid's endpoints and obstacles.
func NewGridStepper(g *core.Grid, opts ...Option) (*Stepper, error) {
	start, hasStart := g.Start()
	end, hasEnd := g.End()
	if !hasStart || !hasEnd {
		return nil, ErrMissingEndpoint
	}
	opts = append([]Option{WithSize(g.Size())}, opts...)
	return NewStepper(start, end, g.Obstacles(), opts...)
}

// Step pops the best frontier cell and relaxes its neighbours.
// Stale queue entries are discarded without counting as a step.
// Once the search is done further calls return the final snapshot.
func (s *Stepper) Step() Snapshot {
	if s.done {
		return s.snapshot(s.last)
	}

	for s.open.Len() > 0 {
		current := heap.Pop(&s.open).(queueEntry).cell
		if s.visited.Has(current) {
			continue
		}
		s.steps++
		s.last = current

		if current == s.end {
			s.done, s.found = true, true
			return s.snapshot(current)
		}

		s.visited.Add(current)
		s.order = append(s.order, current)
		s.relax(current)
		return s.snapshot(current)
	}

	// Frontier exhausted: the goal was never reached.
	s.done = true
	return s.snapshot(s.last)
}

func (s *Stepper) relax(current core.Cell) {
	cost := s.gScore[current] + 1
	for _, nb := range core.Neighbors(current, s.size) {
		if s.visited.Has(nb) || s.obstacles.Has(nb) {
			continue
		}
		if cost >= score(s.gScore, nb) {
			continue
		}
		s.gScore[nb] = cost
		s.parents[nb] = current
		s.fScore[nb] = cost + s.heuristic(nb, s.end)
		heap.Push(&s.open, queueEntry{cell: nb, f: s.fScore[nb]})
	}
}

func (s *Stepper) snapshot(current core.Cell) Snapshot {
	return Snapshot{
		Current:   current,
		Done:      s.done,
		Found:     s.found,
		StepIndex: s.steps,
		Frontier:  s.open.Len(),
	}
}

// score reads a cost map, treating absent cells as unreachable.
func score(m map[core.Cell]int, c core.Cell) int {
	if v, ok := m[c]; ok {
		return v
	}
	return infinity
}

// Run steps until the search terminates.
func (s *Stepper) Run() Result {
	for !s.done {
		s.Step()
	}
	return s.Result()
}

// Done reports whether the search has terminated.
func (s *Stepper) Done() bool { return s.done }

// Found reports whether the goal was reached.
func (s *Stepper) Found() bool { return s.found }

// Start returns the start cell of the query.
func (s *Stepper) Start() core.Cell { return s.start }

// End returns the end cell of the query.
func (s *Stepper) End() core.Cell { return s.end }

// Parents returns a copy of the predecessor map built so far.
func (s *Stepper) Parents() Parents {
	c := make(Parents, len(s.parents))
	for k, v := range s.parents {
		c[k] = v
	}
	return c
}

// Visited returns the finalized cells in expansion order.
func (s *Stepper) Visited() []core.Cell {
	out := make([]core.Cell, len(s.order))
	copy(out, s.order)
	return out
}

// Result summarizes the search state.
func (s *Stepper) Result() Result {
	return Result{
		Parents:  s.Parents(),
		Found:    s.found,
		Expanded: s.steps,
		Visited:  s.Visited(),
	}
}

// Path reconstructs the path once the goal is reached; empty otherwise.
func (s *Stepper) Path() []core.Cell {
	if !s.found {
		return nil
	}
	return Reconstruct(s.parents, s.start, s.end)
}
