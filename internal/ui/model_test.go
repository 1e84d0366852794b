package ui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowstate/internal/adapters/storage"
	"flowstate/internal/domain"
	"flowstate/internal/services"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type testEnv struct {
	model   *Model
	log     *services.SessionLog
	clock   *fixedClock
	timer   *services.TimerService
	monitor *services.MonitorService
}

func newTestEnv(t *testing.T, settings domain.TimerSettings) *testEnv {
	t.Helper()
	ctx := context.Background()

	store := storage.NewMemoryStore()
	clk := &fixedClock{now: time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)}
	log := services.NewSessionLog(store)
	settingsService := services.NewSettingsService(store)
	_, err := settingsService.SaveTimerSettings(ctx, settings)
	require.NoError(t, err)

	timer := services.NewTimerService(log, settingsService, nil, nil, clk, nil)
	require.NoError(t, timer.Load(ctx))
	monitor := services.NewMonitorService(log, settingsService, nil, clk, nil)
	require.NoError(t, monitor.Load(ctx))

	model := NewModel(
		5*time.Second,
		false,
		false,
		nil,
		timer,
		monitor,
		services.NewBreakService(log, clk, nil),
		services.NewStatsService(log, settingsService, clk),
		settingsService,
	)
	return &testEnv{model: model, log: log, clock: clk, timer: timer, monitor: monitor}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func oneMinuteCycle() domain.TimerSettings {
	return domain.TimerSettings{
		FocusDuration:          1,
		ShortBreakDuration:     1,
		LongBreakDuration:      2,
		SessionsUntilLongBreak: 4,
	}
}

func TestModel_ToggleStartsAndPausesTimer(t *testing.T) {
	env := newTestEnv(t, oneMinuteCycle())
	m := env.model

	_, cmd := m.Update(space)
	require.NotNil(t, cmd)
	assert.True(t, env.timer.State().Running)
	startGen := m.timerGen

	_, cmd = m.Update(space)
	assert.Nil(t, cmd)
	assert.False(t, env.timer.State().Running)

	// A tick scheduled before the pause is dropped
	_, cmd = m.Update(timerTickMsg{gen: startGen})
	assert.Nil(t, cmd)
	assert.Equal(t, 60, env.timer.State().RemainingSeconds)
}

func TestModel_TimerTickCountsDownAndCompletes(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, oneMinuteCycle())
	m := env.model

	m.Update(space)
	for i := 0; i < 59; i++ {
		_, cmd := m.Update(timerTickMsg{gen: m.timerGen})
		require.NotNil(t, cmd, "tick %d should schedule the next one", i)
	}
	assert.Equal(t, 1, env.timer.State().RemainingSeconds)

	m.Update(timerTickMsg{gen: m.timerGen})

	state := env.timer.State()
	assert.Equal(t, domain.ModeShortBreak, state.Mode)
	assert.False(t, state.Running)
	assert.Contains(t, m.notice, "Focus session complete")

	sessions, err := env.log.FocusSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 1, sessions[0].Duration)
	assert.True(t, sessions[0].Completed)
}

func TestModel_ResetAndSwitchMode(t *testing.T) {
	env := newTestEnv(t, oneMinuteCycle())
	m := env.model

	m.Update(space)
	m.Update(timerTickMsg{gen: m.timerGen})
	gen := m.timerGen

	m.Update(runes("r"))
	assert.Equal(t, 60, env.timer.State().RemainingSeconds)
	assert.False(t, env.timer.State().Running)
	assert.Greater(t, m.timerGen, gen)

	m.Update(runes("m"))
	assert.Equal(t, domain.ModeShortBreak, env.timer.State().Mode)
	m.Update(runes("m"))
	assert.Equal(t, domain.ModeLongBreak, env.timer.State().Mode)
	assert.Equal(t, 120, env.timer.State().RemainingSeconds)
	m.Update(runes("m"))
	assert.Equal(t, domain.ModeFocus, env.timer.State().Mode)
}

func TestModel_DirectModeKeys(t *testing.T) {
	tests := []struct {
		key       string
		mode      domain.TimerMode
		remaining int
	}{
		{key: "3", mode: domain.ModeLongBreak, remaining: 120},
		{key: "2", mode: domain.ModeShortBreak, remaining: 60},
		{key: "1", mode: domain.ModeFocus, remaining: 60},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			env := newTestEnv(t, oneMinuteCycle())
			m := env.model

			m.Update(space)
			m.Update(timerTickMsg{gen: m.timerGen})
			gen := m.timerGen

			m.Update(runes(tt.key))

			state := env.timer.State()
			assert.Equal(t, tt.mode, state.Mode)
			assert.Equal(t, tt.remaining, state.RemainingSeconds)
			assert.False(t, state.Running)
			assert.Zero(t, state.CompletedSessions)
			assert.Greater(t, m.timerGen, gen)

			sessions, err := env.log.FocusSessions(context.Background())
			require.NoError(t, err)
			assert.Empty(t, sessions)
		})
	}
}

func TestModel_ActivityMonitoring(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, oneMinuteCycle())
	m := env.model

	_, cmd := m.Update(runes("a"))
	require.NotNil(t, cmd)
	require.True(t, env.monitor.Active())

	m.Update(tea.BlurMsg{})
	state := env.monitor.State()
	assert.Equal(t, 1, state.Distractions)
	assert.Equal(t, 95, state.FocusScore)

	m.Update(tea.MouseMsg{Action: tea.MouseActionMotion})
	assert.Equal(t, 1, env.monitor.State().MouseCount)

	_, cmd = m.Update(monitorTickMsg{gen: m.monitorGen})
	assert.NotNil(t, cmd)

	m.Update(runes("a"))
	assert.False(t, env.monitor.Active())
	assert.Contains(t, m.notice, "final focus score")

	// Ticks from the closed window are ignored
	_, cmd = m.Update(monitorTickMsg{gen: m.monitorGen - 1})
	assert.Nil(t, cmd)

	records, err := env.log.ActivitySessions(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].TotalDistractions)
}

func TestModel_BlurOutsideMonitoringIsIgnored(t *testing.T) {
	env := newTestEnv(t, oneMinuteCycle())

	env.model.Update(tea.BlurMsg{})

	assert.Empty(t, env.model.notice)
	assert.Equal(t, 0, env.monitor.State().Distractions)
}

func TestModel_CompleteBreak(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, oneMinuteCycle())
	m := env.model

	m.Update(runes("b"))
	require.NoError(t, env.timer.SwitchMode(domain.ModeLongBreak))
	m.Update(runes("b"))

	breaks, err := env.log.Breaks(ctx)
	require.NoError(t, err)
	require.Len(t, breaks, 2)
	assert.Equal(t, services.DefaultBreakType, breaks[0].Type)
	assert.Equal(t, "Long Break", breaks[1].Type)
}

func TestModel_QuitStopsMonitoring(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, oneMinuteCycle())
	m := env.model

	m.Update(runes("a"))
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	records, err := env.log.ActivitySessions(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestModel_ApplySettings(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, oneMinuteCycle())
	m := env.model

	cmd := m.applySettings(ctx, SettingsFormResult{
		Timer: domain.TimerSettings{
			FocusDuration:          50,
			ShortBreakDuration:     10,
			LongBreakDuration:      30,
			SessionsUntilLongBreak: 2,
		},
		Profile: domain.UserProfile{Name: " Ada ", StudyGoal: 120, SoundEnabled: true},
	})
	require.NotNil(t, cmd)

	// The untouched countdown picks up the new focus duration
	assert.Equal(t, 50*60, env.timer.State().RemainingSeconds)
	assert.Equal(t, 2, env.timer.NextLongBreakIn())

	msg, ok := cmd().(statsLoadedMsg)
	require.True(t, ok)
	require.NoError(t, msg.err)
	assert.Equal(t, 120, msg.report.StudyGoal)
}

func TestModel_StatsLoaded(t *testing.T) {
	env := newTestEnv(t, oneMinuteCycle())
	m := env.model

	msg := m.loadStats()()
	m.Update(msg)

	assert.True(t, m.reportLoaded)
	assert.Equal(t, domain.DefaultStudyGoal, m.report.StudyGoal)
	assert.Len(t, m.report.Daily, statsDays)
}

func TestModel_ClearErrorIgnoresStaleMessages(t *testing.T) {
	env := newTestEnv(t, oneMinuteCycle())
	m := env.model

	m.errorManager.SetError(assert.AnError)
	stale := clearErrorMsg{id: m.errorManager.id}
	m.errorManager.SetError(domain.ErrInvalidMode)

	m.Update(stale)
	assert.True(t, m.errorManager.HasError())

	m.Update(clearErrorMsg{id: m.errorManager.id})
	assert.False(t, m.errorManager.HasError())
}

func TestModel_ViewShowsCountdownAndTabs(t *testing.T) {
	env := newTestEnv(t, domain.DefaultTimerSettings())
	m := env.model

	view := m.View()
	assert.Contains(t, view, "25:00")
	assert.Contains(t, view, "Focus")
	assert.Contains(t, view, "Activity")

	m.Update(runes("l"))
	assert.Equal(t, tabActivity, m.tab)
	assert.Contains(t, m.View(), "monitoring is off")

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, tabStats, m.tab)
	assert.Contains(t, m.View(), "Loading stats")
}

func TestParseMinutes(t *testing.T) {
	assert.Equal(t, 30, parseMinutes(" 30 ", 25))
	assert.Equal(t, 25, parseMinutes("abc", 25))
	assert.Equal(t, 25, parseMinutes("0", 25))
	assert.Equal(t, 25, parseMinutes("-5", 25))
}
