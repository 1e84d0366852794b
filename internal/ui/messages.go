package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"flowstate/internal/services"
)

// tickInterval is the cadence of both the countdown and the activity estimator
const tickInterval = time.Second

// timerTickMsg advances the countdown. gen must match the model's current
// timer generation; ticks from a paused or reset countdown are dropped.
type timerTickMsg struct {
	gen int
}

// monitorTickMsg scores one second of input for the monitoring window with the same gen
type monitorTickMsg struct {
	gen int
}

type statsLoadedMsg struct {
	err    error
	report services.StatsReport
}

func timerTick(gen int) tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return timerTickMsg{gen: gen}
	})
}

func monitorTick(gen int) tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return monitorTickMsg{gen: gen}
	})
}
