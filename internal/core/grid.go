package core

import (
	"fmt"
	"sort"
)

// GridSize is the default edge length of the square grid.
const GridSize = 20

// Cell is a single addressable grid position.
// Row increases downward, Col increases to the right.
type Cell struct {
	Row int
	Col int
}

// C is a convenience constructor for Cell.
func C(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// InBounds reports whether c lies inside a size x size grid.
func InBounds(c Cell, size int) bool {
	return c.Row >= 0 && c.Row < size && c.Col >= 0 && c.Col < size
}

// Neighbors returns the axis-aligned in-bounds neighbours of c,
// ordered up, down, left, right. Obstacles are not filtered here.
func Neighbors(c Cell, size int) []Cell {
	out := make([]Cell, 0, 4)
	if c.Row > 0 {
		out = append(out, Cell{c.Row - 1, c.Col})
	}
	if c.Row < size-1 {
		out = append(out, Cell{c.Row + 1, c.Col})
	}
	if c.Col > 0 {
		out = append(out, Cell{c.Row, c.Col - 1})
	}
	if c.Col < size-1 {
		out = append(out, Cell{c.Row, c.Col + 1})
	}
	return out
}

// CellSet is an unordered set of cells.
type CellSet map[Cell]struct{}

// NewCellSet builds a set from the given cells.
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Has reports membership. A nil set contains nothing.
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Add inserts c.
func (s CellSet) Add(c Cell) {
	s[c] = struct{}{}
}

// Remove deletes c.
func (s CellSet) Remove(c Cell) {
	delete(s, c)
}

// Len returns the number of cells in the set.
func (s CellSet) Len() int {
	return len(s)
}

// Clone returns an independent copy.
func (s CellSet) Clone() CellSet {
	c := make(CellSet, len(s))
	for k := range s {
		c[k] = struct{}{}
	}
	return c
}

// Sorted returns the cells in row-major order.
func (s CellSet) Sorted() []Cell {
	out := make([]Cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// CellKind classifies a grid position.
type CellKind int

const (
	KindFree CellKind = iota
	KindObstacle
	KindStart
	KindEnd
)

// String returns a human-readable name for the kind.
func (k CellKind) String() string {
	switch k {
	case KindFree:
		return "Free"
	case KindObstacle:
		return "Obstacle"
	case KindStart:
		return "Start"
	case KindEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// Grid is the editable grid model: a fixed size, optional start and end
// cells, and a set of obstacles. Start and end are never obstacles.
type Grid struct {
	size      int
	start     Cell
	end       Cell
	hasStart  bool
	hasEnd    bool
	obstacles CellSet
}

// NewGrid creates an empty size x size grid.
// Non-positive sizes fall back to GridSize.
func NewGrid(size int) *Grid {
	if size <= 0 {
		size = GridSize
	}
	return &Grid{
		size:      size,
		obstacles: make(CellSet),
	}
}

// Size returns the grid edge length.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether c is on this grid.
func (g *Grid) InBounds(c Cell) bool {
	return InBounds(c, g.size)
}

// Neighbors returns the in-bounds neighbours of c on this grid.
func (g *Grid) Neighbors(c Cell) []Cell {
	return Neighbors(c, g.size)
}

// Kind classifies c.
func (g *Grid) Kind(c Cell) CellKind {
	switch {
	case g.hasStart && c == g.start:
		return KindStart
	case g.hasEnd && c == g.end:
		return KindEnd
	case g.obstacles.Has(c):
		return KindObstacle
	default:
		return KindFree
	}
}

// Start returns the start cell and whether it is set.
func (g *Grid) Start() (Cell, bool) {
	return g.start, g.hasStart
}

// End returns the end cell and whether it is set.
func (g *Grid) End() (Cell, bool) {
	return g.end, g.hasEnd
}

// SetStart places the start cell, clearing any obstacle there.
// Returns false if c is out of bounds or already the end.
func (g *Grid) SetStart(c Cell) bool {
	if !g.InBounds(c) || (g.hasEnd && g.end == c) {
		return false
	}
	g.obstacles.Remove(c)
	g.start, g.hasStart = c, true
	return true
}

// SetEnd places the end cell, clearing any obstacle there.
// Returns false if c is out of bounds or already the start.
func (g *Grid) SetEnd(c Cell) bool {
	if !g.InBounds(c) || (g.hasStart && g.start == c) {
		return false
	}
	g.obstacles.Remove(c)
	g.end, g.hasEnd = c, true
	return true
}

// ClearStart unsets the start cell.
func (g *Grid) ClearStart() {
	g.start, g.hasStart = Cell{}, false
}

// ClearEnd unsets the end cell.
func (g *Grid) ClearEnd() {
	g.end, g.hasEnd = Cell{}, false
}

// AddObstacle marks c impassable. Start, end and out-of-bounds cells
// are refused.
func (g *Grid) AddObstacle(c Cell) bool {
	if !g.InBounds(c) || g.Kind(c) == KindStart || g.Kind(c) == KindEnd {
		return false
	}
	g.obstacles.Add(c)
	return true
}

// RemoveObstacle clears an obstacle at c, if any.
func (g *Grid) RemoveObstacle(c Cell) {
	g.obstacles.Remove(c)
}

// ToggleObstacle flips the obstacle state of c.
func (g *Grid) ToggleObstacle(c Cell) bool {
	if g.obstacles.Has(c) {
		g.obstacles.Remove(c)
		return true
	}
	return g.AddObstacle(c)
}

// ClearObstacles removes every obstacle.
func (g *Grid) ClearObstacles() {
	g.obstacles = make(CellSet)
}

// Reset clears start, end and obstacles.
func (g *Grid) Reset() {
	g.ClearStart()
	g.ClearEnd()
	g.ClearObstacles()
}

// Obstacles returns a copy of the obstacle set.
func (g *Grid) Obstacles() CellSet {
	return g.obstacles.Clone()
}

// ObstacleCount returns the number of obstacles.
func (g *Grid) ObstacleCount() int {
	return g.obstacles.Len()
}

// Ready reports whether a search may start: both endpoints set and distinct.
func (g *Grid) Ready() bool {
	return g.hasStart && g.hasEnd && g.start != g.end
}

// Place applies the click rules: the first placement sets the start, the
// second sets the end (if it differs from the start), and every later
// placement adds an obstacle. Returns the resulting kind of c, or
// KindFree when nothing changed.
func (g *Grid) Place(c Cell) CellKind {
	if !g.InBounds(c) {
		return KindFree
	}
	switch {
	case !g.hasStart:
		if g.SetStart(c) {
			return KindStart
		}
	case !g.hasEnd:
		if c != g.start && g.SetEnd(c) {
			return KindEnd
		}
	default:
		if g.AddObstacle(c) {
			return KindObstacle
		}
	}
	return KindFree
}

// Erase clears whatever occupies c.
func (g *Grid) Erase(c Cell) {
	switch g.Kind(c) {
	case KindStart:
		g.ClearStart()
	case KindEnd:
		g.ClearEnd()
	case KindObstacle:
		g.RemoveObstacle(c)
	}
}
