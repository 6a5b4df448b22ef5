package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pathfinder/internal/layouts"
)

func updateSession(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		sm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Expected SessionModel, got %T", next)
		}
		m = sm
	}
	return m
}

func TestSessionHistoryRoundTrip(t *testing.T) {
	m := NewSessionModel(SessionOptions{Config: testConfig(true), Runtime: testRuntime()})

	m = updateSession(t, m, keySpace, tea.KeyMsg{Type: tea.KeyTab})
	if !m.InHistory() {
		t.Fatal("Expected tab to open history")
	}
	if m.Editor().WantsHistory() {
		t.Error("Expected history request consumed")
	}

	m = updateSession(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.Editor().runtime.ScreenW != 120 {
		t.Errorf("Expected editor resized while history is open, got width %d", m.Editor().runtime.ScreenW)
	}

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.InHistory() {
		t.Fatal("Expected esc to return to the editor")
	}
	if _, ok := m.Editor().Grid().Start(); !ok {
		t.Error("Expected the grid to survive a history visit")
	}
}

func TestSessionLoadsLayout(t *testing.T) {
	l, err := layouts.Get("column-gap")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	m := NewSessionModel(SessionOptions{Config: testConfig(false), Runtime: testRuntime(), Layout: &l})
	editor := m.Editor()
	if editor.layoutID != "column-gap" {
		t.Errorf("Expected layout id column-gap, got %q", editor.layoutID)
	}
	if editor.Grid().Size() != l.Size || !editor.Grid().Ready() {
		t.Errorf("Expected a ready %dx%d grid", l.Size, l.Size)
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(SessionOptions{Config: testConfig(true), Runtime: testRuntime()})

	next, cmd := m.Update(keyRunes("q"))
	m = next.(SessionModel)
	if cmd == nil || m.View() != "" {
		t.Error("Expected q to end the session")
	}
}
