// Package tui hosts Frogger in Bubble Tea, locally or over SSH.
// It handles the terminal UI loop, input mapping, audio and score keeping.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Source identifies the model whose tick loop sent it.
type TickMsg struct {
	Time   time.Time
	Source uint64
}

// tickSources numbers game models; a model drops ticks from other sources.
var tickSources atomic.Uint64

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, source uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 33
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Source: source}
	})
}
