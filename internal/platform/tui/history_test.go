package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

func TestHistoryShowsRuns(t *testing.T) {
	store := &fakeStore{}
	store.SaveRun(storage.RunRecord{Layout: "open", GridSize: 20, Found: true, PathLen: 38, Expanded: 39, Duration: time.Millisecond})
	store.SaveRun(storage.RunRecord{GridSize: 5, Obstacles: 5, Expanded: 10})

	m := NewHistoryModel(store, 100, 30)

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	// Newest first; hand-drawn grids show as custom.
	if rows[0][1] != "custom" || rows[0][4] != "none" || rows[0][5] != "-" {
		t.Errorf("Unexpected first row: %v", rows[0])
	}
	if rows[1][1] != "open" || rows[1][4] != "found" || rows[1][5] != "38" {
		t.Errorf("Unexpected second row: %v", rows[1])
	}

	view := m.View()
	if !strings.Contains(view, "RUN HISTORY") {
		t.Error("Expected title in view")
	}
	if !strings.Contains(view, "2 runs, 1 found") {
		t.Errorf("Expected stats line in view:\n%s", view)
	}
}

func TestHistoryWithoutStore(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24)

	if len(m.table.Rows()) != 0 {
		t.Errorf("Expected no rows, got %d", len(m.table.Rows()))
	}
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("Expected unavailable message")
	}
}

func TestHistoryBackAndQuit(t *testing.T) {
	m := NewHistoryModel(&fakeStore{}, 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	back := next.(HistoryModel)
	if !back.IsGoingBack() || back.IsQuitting() || cmd != nil {
		t.Error("Expected esc to go back without quitting")
	}

	next, cmd = m.Update(keyRunes("q"))
	quit := next.(HistoryModel)
	if !quit.IsQuitting() || cmd == nil {
		t.Error("Expected q to quit")
	}
}
