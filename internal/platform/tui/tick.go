// Package tui provides the Bubble Tea frontend of the runner: login,
// difficulty menu, the game itself and the high score table, served both
// on the local terminal and over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one game simulation step. Gen identifies the tick chain
// that produced it; ticks from an older chain are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick for chain gen
// after 1/tickRate seconds.
func tickCmd(tickRate, gen int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// genCounter hands out tick chain ids for one app session. Ids only grow,
// so a tick still in flight from a finished game never matches a later one.
type genCounter struct {
	last int
}

func (c *genCounter) next() int {
	c.last++
	return c.last
}
