package tui

import (
	"github.com/vovakirdan/tui-pathfinder/internal/config"
	"github.com/vovakirdan/tui-pathfinder/internal/core"
)

// Board layout constants
const (
	cellWidth = 2 // Terminal columns per grid cell, keeps cells roughly square
	boardTop  = 1 // Row of the board's top border, below the title
)

// boardRect returns the bordered board area for a size x size grid,
// centered horizontally on a screen of the given width.
func boardRect(screenW, size int) core.Rect {
	w := size*cellWidth + 2
	h := size + 2
	x := max(0, (screenW-w)/2)
	return core.NewRect(x, boardTop, w, h)
}

// cellPos returns the screen position of the first column of c.
func cellPos(box core.Rect, c core.Cell) (int, int) {
	return box.X + 1 + c.Col*cellWidth, box.Y + 1 + c.Row
}

// cellAt maps a screen position back to a grid cell.
func cellAt(box core.Rect, size, x, y int) (core.Cell, bool) {
	inner := core.NewRect(box.X+1, box.Y+1, size*cellWidth, size)
	if !inner.Contains(x, y) {
		return core.Cell{}, false
	}
	return core.C(y-inner.Y, (x-inner.X)/cellWidth), true
}

// palette holds the resolved glyph for each cell kind.
type palette struct {
	start    rune
	end      rune
	wall     rune
	path     rune
	explored rune
	empty    rune
	cursor   rune
}

func newPalette(g config.GlyphConfig) palette {
	return palette{
		start:    config.Rune(g.Start),
		end:      config.Rune(g.End),
		wall:     config.Rune(g.Wall),
		path:     config.Rune(g.Path),
		explored: config.Rune(g.Explored),
		empty:    config.Rune(g.Empty),
		cursor:   config.Rune(g.Cursor),
	}
}

// drawBoard renders the grid, the explored cells and the revealed part of
// the path into box. Endpoints are drawn over the path, and the path over
// explored cells.
func drawBoard(s *core.Screen, box core.Rect, g *core.Grid, p palette, explored, path core.CellSet) {
	s.DrawBox(box, core.ColorGray)

	size := g.Size()
	for row := range size {
		for col := range size {
			c := core.C(row, col)
			x, y := cellPos(box, c)

			glyph, color := p.empty, core.ColorDefault
			fill := ' '
			switch g.Kind(c) {
			case core.KindStart:
				glyph, color = p.start, core.ColorGreen
			case core.KindEnd:
				glyph, color = p.end, core.ColorRed
			case core.KindObstacle:
				glyph, color = p.wall, core.ColorWhite
				fill = p.wall
			default:
				switch {
				case path.Has(c):
					glyph, color = p.path, core.ColorYellow
				case explored.Has(c):
					glyph, color = p.explored, core.ColorBlue
				}
			}

			s.SetColored(x, y, glyph, color)
			s.SetColored(x+1, y, fill, color)
		}
	}
}

// drawCursor marks the cursor cell in its second column.
func drawCursor(s *core.Screen, box core.Rect, c core.Cell, p palette) {
	x, y := cellPos(box, c)
	s.SetColored(x+1, y, p.cursor, core.ColorBrightWhite)
}

// drawPopup draws a bordered message centered on box.
func drawPopup(s *core.Screen, box core.Rect, text string) {
	w := len([]rune(text)) + 4
	h := 3
	cx, cy := box.Center()
	r := core.NewRect(cx-w/2, cy-h/2, w, h)

	s.DrawRect(r, ' ', core.ColorDefault)
	s.DrawBox(r, core.ColorRed)
	s.DrawText(r.X+2, r.Y+1, text, core.ColorRed)
}
