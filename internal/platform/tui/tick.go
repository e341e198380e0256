// Package tui provides the Bubble Tea frontends: local play, the variant
// menu, the episode history and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickInterval is used when a game does not report its own cadence.
const defaultTickInterval = 150 * time.Millisecond

// tickGen numbers tick loops so a model ignores ticks of a loop it left.
var tickGen atomic.Uint64

// TickMsg is sent to trigger a game simulation tick.
type TickMsg struct {
	At  time.Time
	Gen uint64
}

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration, gen uint64) tea.Cmd {
	if interval <= 0 {
		interval = defaultTickInterval
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}
