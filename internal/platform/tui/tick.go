// Package tui provides the Bubble Tea front end for the pathfinder: the grid
// editor, the animated result view, run history and SSH serving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the result animation by one frame.
// Run identifies the search that scheduled it; ticks from an older search
// are dropped.
type TickMsg struct {
	Run  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(run int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Run: run, Time: t}
	})
}
