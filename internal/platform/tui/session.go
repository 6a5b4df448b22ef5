package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pathfinder/internal/config"
	"github.com/vovakirdan/tui-pathfinder/internal/core"
	"github.com/vovakirdan/tui-pathfinder/internal/layouts"
	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

// RunStore records and reads run summaries.
type RunStore interface {
	RunRecorder
	HistoryStore
}

// SessionOptions configures one editor session.
type SessionOptions struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Layout  *layouts.Layout // Optional starting layout
	Store   *storage.Store  // Optional run history
}

// SessionModel manages the editor and history flow: editor -> history -> editor.
// This is the top-level model for both local and SSH sessions.
type SessionModel struct {
	store    RunStore
	runtime  core.RuntimeConfig
	editor   Model
	history  *HistoryModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	var store RunStore
	if opts.Store != nil {
		store = opts.Store
	}

	var (
		grid     *core.Grid
		layoutID string
	)
	if opts.Layout != nil {
		grid = opts.Layout.ToGrid()
		layoutID = opts.Layout.ID
	}

	var recorder RunRecorder
	if store != nil {
		recorder = store
	}

	return SessionModel{
		store:   store,
		runtime: opts.Runtime,
		editor:  NewModel(grid, layoutID, recorder, opts.Config, opts.Runtime),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.editor.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The editor tracks the window size even while history is open.
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.runtime.ScreenW = wsm.Width
		m.runtime.ScreenH = wsm.Height
		if m.history != nil {
			next, _ := m.editor.Update(wsm)
			if editor, ok := next.(Model); ok {
				m.editor = editor
			}
		}
	}

	if m.history != nil {
		return m.updateHistory(msg)
	}
	return m.updateEditor(msg)
}

// updateEditor handles updates when the editor is shown.
func (m SessionModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.editor.Update(msg)
	if editor, ok := next.(Model); ok {
		m.editor = editor
	}

	if m.editor.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.editor.WantsHistory() {
		m.editor.wantsHistory = false
		var hs HistoryStore
		if m.store != nil {
			hs = m.store
		}
		history := NewHistoryModel(hs, m.runtime.ScreenW, m.runtime.ScreenH)
		m.history = &history
		return m, history.Init()
	}

	return m, cmd
}

// updateHistory handles updates when the history is shown.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.history.Update(msg)
	if history, ok := next.(HistoryModel); ok {
		m.history = &history
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.history.IsGoingBack() {
		m.history = nil
		return m, nil
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.history != nil {
		return m.history.View()
	}
	return m.editor.View()
}

// Editor returns the editor model.
func (m SessionModel) Editor() Model {
	return m.editor
}

// InHistory returns true while the history view is shown.
func (m SessionModel) InHistory() bool {
	return m.history != nil
}

// Run starts a local Bubble Tea program for an editor session.
func Run(opts SessionOptions) error {
	model := NewSessionModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks place, drags draw walls
	)

	_, err := p.Run()
	return err
}
