// Package tui provides the Bubble Tea integration for the catcher.
// It handles the terminal UI loop, input mapping, and session orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock measures real time between ticks. The first tick and any gap
// longer than maxFrame report the nominal interval instead.
type frameClock struct {
	last time.Time
}

const maxFrame = 250 * time.Millisecond

func (c *frameClock) next(now time.Time, nominal time.Duration) time.Duration {
	prev := c.last
	c.last = now
	if prev.IsZero() {
		return nominal
	}
	d := now.Sub(prev)
	if d <= 0 || d > maxFrame {
		return nominal
	}
	return d
}

func (c *frameClock) reset() { c.last = time.Time{} }
