// Package layouts provides named, read-only grid scenarios: obstacle
// layouts with optional start and end cells, loaded from YAML.
package layouts

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pathfinder/internal/config"
	"github.com/vovakirdan/tui-pathfinder/internal/core"
)

// Layout glyphs.
const (
	GlyphFree  = '.'
	GlyphWall  = '#'
	GlyphStart = 'S'
	GlyphEnd   = 'E'
)

// YAMLLayout represents the YAML structure for a layout file.
type YAMLLayout struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name"`
	Size int      `yaml:"size,omitempty"`
	Rows []string `yaml:"rows"`
}

// Layout is a parsed scenario ready to become a Grid.
type Layout struct {
	ID        string
	Name      string
	Size      int
	Start     *core.Cell
	End       *core.Cell
	Obstacles core.CellSet
	FilePath  string
}

// Parse parses a YAML layout. A missing size means core.GridSize.
// Rows may be shorter than the grid and are padded with free cells.
func Parse(data []byte) (Layout, error) {
	var yl YAMLLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("layouts: yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Layout{}, fmt.Errorf("layouts: missing id")
	}

	size := yl.Size
	if size == 0 {
		size = core.GridSize
	}
	if size < config.MinGridSize || size > config.MaxGridSize {
		return Layout{}, fmt.Errorf("layouts: %s: size %d outside [%d, %d]",
			yl.ID, size, config.MinGridSize, config.MaxGridSize)
	}
	if len(yl.Rows) > size {
		return Layout{}, fmt.Errorf("layouts: %s: %d rows exceed size %d", yl.ID, len(yl.Rows), size)
	}

	l := Layout{
		ID:        yl.ID,
		Name:      yl.Name,
		Size:      size,
		Obstacles: make(core.CellSet),
	}
	if l.Name == "" {
		l.Name = yl.ID
	}

	for row, line := range yl.Rows {
		runes := []rune(line)
		if len(runes) > size {
			return Layout{}, fmt.Errorf("layouts: %s: row %d has %d cells, size is %d", yl.ID, row, len(runes), size)
		}
		for col, r := range runes {
			c := core.C(row, col)
			switch r {
			case GlyphFree:
			case GlyphWall:
				l.Obstacles.Add(c)
			case GlyphStart:
				if l.Start != nil {
					return Layout{}, fmt.Errorf("layouts: %s: second start at %v", yl.ID, c)
				}
				l.Start = &c
			case GlyphEnd:
				if l.End != nil {
					return Layout{}, fmt.Errorf("layouts: %s: second end at %v", yl.ID, c)
				}
				l.End = &c
			default:
				return Layout{}, fmt.Errorf("layouts: %s: unknown glyph %q at %v", yl.ID, r, c)
			}
		}
	}

	return l, nil
}

// ToGrid creates an editable Grid from the layout.
func (l Layout) ToGrid() *core.Grid {
	g := core.NewGrid(l.Size)
	for c := range l.Obstacles {
		g.AddObstacle(c)
	}
	if l.Start != nil {
		g.SetStart(*l.Start)
	}
	if l.End != nil {
		g.SetEnd(*l.End)
	}
	return g
}
