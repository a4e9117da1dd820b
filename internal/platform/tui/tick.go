// Package tui runs the breakout model inside a Bubble Tea program.
// It owns frame timing, key mapping and terminal rendering; the simulation
// itself lives in the breakout package.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameStep caps dt after a stall such as a suspended terminal.
const maxFrameStep = 50 * time.Millisecond

// TickMsg is sent to trigger a simulation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at fps.
func tickCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(max(fps, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock turns tick timestamps into simulation deltas.
type frameClock struct {
	last time.Time
}

// advance returns the seconds elapsed since the previous tick, clamped to
// maxFrameStep. The first tick yields 0.
func (c *frameClock) advance(now time.Time) float64 {
	if c.last.IsZero() || now.Before(c.last) {
		c.last = now
		return 0
	}
	d := min(now.Sub(c.last), maxFrameStep)
	c.last = now
	return d.Seconds()
}

// reset forgets the previous tick, e.g. after a pause.
func (c *frameClock) reset() {
	c.last = time.Time{}
}
