package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pathfinder/internal/config"
	"github.com/vovakirdan/tui-pathfinder/internal/core"
	"github.com/vovakirdan/tui-pathfinder/internal/pathfind"
	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

// NoPathMessage is shown when a search finds no route.
const NoPathMessage = "No solution found!"

// phase tracks where the editor is in the edit, search, reveal cycle.
type phase int

const (
	phaseEditing   phase = iota
	phaseSearching       // Stepping the search, revealing explored cells
	phaseTracing         // Revealing the path one cell per step
	phaseDone            // Path fully shown
	phaseNoPath          // Popup shown
)

// RunRecorder stores run summaries.
type RunRecorder interface {
	SaveRun(r storage.RunRecord) (int64, error)
}

// Model is the Bubble Tea model for the grid editor.
type Model struct {
	grid     *core.Grid
	layoutID string
	cfg      config.Config
	runtime  core.RuntimeConfig
	screen   *core.Screen
	recorder RunRecorder
	glyphs   palette
	keys     KeyMap
	help     help.Model

	cursor   core.Cell
	dragging bool // Left button held after both endpoints exist

	phase    phase
	run      int // Incremented per search, tags animation ticks
	stepper  *pathfind.Stepper
	explored []core.Cell
	path     []core.Cell
	revealed int // Path cells shown so far
	expanded int
	elapsed  time.Duration // Time spent inside the search itself
	status   string

	wantsHistory bool
	quitting     bool
}

// NewModel creates an editor for grid. A nil grid starts empty at the
// configured size. layoutID labels recorded runs and may be empty.
func NewModel(grid *core.Grid, layoutID string, recorder RunRecorder, cfg config.Config, rt core.RuntimeConfig) Model {
	if grid == nil {
		grid = core.NewGrid(cfg.Grid.Size)
	}
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		def := core.DefaultConfig()
		rt.ScreenW, rt.ScreenH = def.ScreenW, def.ScreenH
	}
	if rt.TickRate <= 0 {
		rt.TickRate = cfg.Animation.TickRate
	}

	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		grid:     grid,
		layoutID: layoutID,
		cfg:      cfg,
		runtime:  rt,
		screen:   core.NewScreen(rt.ScreenW, rt.ScreenH),
		recorder: recorder,
		glyphs:   newPalette(cfg.Glyphs),
		keys:     DefaultKeyMap(),
		help:     h,
	}
}

// Init initializes the editor. Nothing ticks until a search starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Run != m.run {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.phase {
	case phaseSearching, phaseTracing:
		// The grid is frozen while a result is animating.
		if action == core.ActionRun || action == core.ActionBack {
			m.skipAnimation()
		}
		return m, nil

	case phaseNoPath:
		// Any key dismisses the popup.
		m.clearResult()
		if action == core.ActionNone || action == core.ActionClearPath || action == core.ActionBack {
			return m, nil
		}

	case phaseDone:
		if action == core.ActionNone {
			return m, nil
		}
		m.clearResult()
		if action == core.ActionClearPath || action == core.ActionBack {
			return m, nil
		}
	}

	return m.apply(action)
}

// apply performs an editing action.
func (m Model) apply(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionUp:
		m.moveCursor(-1, 0)
	case core.ActionDown:
		m.moveCursor(1, 0)
	case core.ActionLeft:
		m.moveCursor(0, -1)
	case core.ActionRight:
		m.moveCursor(0, 1)
	case core.ActionPlace:
		m.place(m.cursor)
	case core.ActionErase:
		m.grid.Erase(m.cursor)
		m.status = ""
	case core.ActionRun:
		cmd := m.startSearch()
		return m, cmd
	case core.ActionClearPath:
		m.status = ""
	case core.ActionReset:
		m.grid.Reset()
		m.layoutID = ""
		m.status = "Grid cleared"
	case core.ActionHistory:
		m.wantsHistory = true
	}
	return m, nil
}

// handleMouse places on click and draws walls while dragging.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.animating() {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		c, ok := m.cellAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		if m.phase != phaseEditing {
			m.clearResult()
		}
		// Dragging only paints walls once both endpoints exist.
		m.dragging = m.grid.Ready()
		m.cursor = c
		m.place(c)

	case tea.MouseActionMotion:
		if !m.dragging {
			return m, nil
		}
		if c, ok := m.cellAt(msg.X, msg.Y); ok {
			m.cursor = c
			m.grid.AddObstacle(c)
		}

	case tea.MouseActionRelease:
		m.dragging = false
	}

	return m, nil
}

// handleTick advances the search or the path reveal by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseSearching:
		m.step()
		if m.stepper.Done() {
			return m, m.finishSearch()
		}
		return m, tickCmd(m.run, m.searchInterval())

	case phaseTracing:
		m.revealed++
		if m.revealed >= len(m.path) {
			m.phase = phaseDone
			return m, nil
		}
		return m, tickCmd(m.run, m.stepInterval())
	}

	return m, nil
}

func (m *Model) moveCursor(dRow, dCol int) {
	last := m.grid.Size() - 1
	m.cursor = core.C(
		core.Clamp(m.cursor.Row+dRow, 0, last),
		core.Clamp(m.cursor.Col+dCol, 0, last),
	)
}

// place applies the click rules at c and reports what happened.
func (m *Model) place(c core.Cell) {
	switch m.grid.Place(c) {
	case core.KindStart:
		m.status = fmt.Sprintf("Start set at %s", c)
	case core.KindEnd:
		m.status = fmt.Sprintf("End set at %s", c)
	default:
		m.status = ""
	}
}

// startSearch validates the grid and begins stepping the search.
func (m *Model) startSearch() tea.Cmd {
	stepper, err := pathfind.NewGridStepper(m.grid)
	if err != nil {
		m.status = searchError(err)
		return nil
	}

	m.run++
	m.stepper = stepper
	m.explored = nil
	m.path = nil
	m.revealed = 0
	m.expanded = 0
	m.elapsed = 0
	m.status = ""

	if !m.cfg.Animation.ShowExplored {
		m.runToEnd()
		return m.finishSearch()
	}

	m.phase = phaseSearching
	return tickCmd(m.run, m.searchInterval())
}

// step expands one cell, timing only the search itself.
func (m *Model) step() {
	began := time.Now()
	snap := m.stepper.Step()
	m.elapsed += time.Since(began)

	m.expanded = snap.StepIndex
	if !snap.Done {
		m.explored = append(m.explored, snap.Current)
	}
}

func (m *Model) runToEnd() {
	for !m.stepper.Done() {
		m.step()
	}
}

// finishSearch records the run and starts revealing the path.
func (m *Model) finishSearch() tea.Cmd {
	res := m.stepper.Result()
	m.expanded = res.Expanded
	m.path = m.stepper.Path()
	m.record(res)

	if len(m.path) == 0 {
		m.phase = phaseNoPath
		return nil
	}

	m.phase = phaseTracing
	m.revealed = 0
	return tickCmd(m.run, m.stepInterval())
}

// skipAnimation jumps straight to the final result.
func (m *Model) skipAnimation() {
	if m.phase == phaseSearching {
		m.runToEnd()
		m.finishSearch()
	}
	if m.phase == phaseTracing {
		m.revealed = len(m.path)
		m.phase = phaseDone
	}
}

// record saves the run summary.
func (m *Model) record(res pathfind.Result) {
	if m.recorder == nil {
		return
	}
	//nolint:errcheck // Best-effort save, the editor continues regardless
	m.recorder.SaveRun(storage.RunRecord{
		Layout:    m.layoutID,
		GridSize:  m.grid.Size(),
		Obstacles: m.grid.ObstacleCount(),
		Found:     res.Found,
		PathLen:   pathfind.Steps(m.path),
		Expanded:  res.Expanded,
		Duration:  m.elapsed,
	})
}

// clearResult drops the current search result and returns to editing.
func (m *Model) clearResult() {
	m.phase = phaseEditing
	m.stepper = nil
	m.explored = nil
	m.path = nil
	m.revealed = 0
	m.expanded = 0
	m.elapsed = 0
	m.status = ""
}

func (m Model) animating() bool {
	return m.phase == phaseSearching || m.phase == phaseTracing
}

func (m Model) searchInterval() time.Duration {
	return time.Second / time.Duration(max(1, m.runtime.TickRate))
}

func (m Model) stepInterval() time.Duration {
	return time.Duration(max(1, m.cfg.Animation.StepMillis)) * time.Millisecond
}

func (m Model) cellAt(x, y int) (core.Cell, bool) {
	return cellAt(boardRect(m.runtime.ScreenW, m.grid.Size()), m.grid.Size(), x, y)
}

func searchError(err error) string {
	if errors.Is(err, pathfind.ErrMissingEndpoint) {
		return "Place a start and an end first"
	}
	return err.Error()
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	box := boardRect(m.runtime.ScreenW, m.grid.Size())
	m.screen.Resize(max(m.runtime.ScreenW, box.W), box.Bottom()+1)
	m.screen.Clear()

	m.screen.DrawTextCentered(0, m.title(), core.ColorBrightWhite)

	var explored core.CellSet
	if m.cfg.Animation.ShowExplored {
		explored = core.NewCellSet(m.explored...)
	}
	path := core.NewCellSet(m.path[:min(m.revealed, len(m.path))]...)
	drawBoard(m.screen, box, m.grid, m.glyphs, explored, path)

	if m.phase == phaseEditing {
		drawCursor(m.screen, box, m.cursor, m.glyphs)
	}

	m.screen.DrawTextCentered(box.Bottom(), m.statusLine(), core.ColorGray)

	if m.phase == phaseNoPath {
		drawPopup(m.screen, box, NoPathMessage)
	}

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

func (m Model) title() string {
	if m.layoutID == "" {
		return "PATHFINDER"
	}
	return fmt.Sprintf("PATHFINDER - %s", m.layoutID)
}

func (m Model) statusLine() string {
	switch m.phase {
	case phaseSearching:
		return fmt.Sprintf("Searching... %d cells expanded", m.expanded)
	case phaseTracing, phaseDone:
		return fmt.Sprintf("Path: %d steps, %d cells expanded, %s",
			pathfind.Steps(m.path), m.expanded, m.elapsed.Round(time.Microsecond))
	case phaseNoPath:
		return fmt.Sprintf("%s %d cells expanded", NoPathMessage, m.expanded)
	}

	if m.status != "" {
		return m.status
	}
	if _, ok := m.grid.Start(); !ok {
		return "Place the start"
	}
	if _, ok := m.grid.End(); !ok {
		return "Place the end"
	}
	return "Draw walls, then press enter to search"
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if the user asked for the run history.
func (m Model) WantsHistory() bool {
	return m.wantsHistory
}

// Grid returns the grid being edited.
func (m Model) Grid() *core.Grid {
	return m.grid
}

// Path returns the path of the last completed search.
func (m Model) Path() []core.Cell {
	return m.path
}
