package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowstate/internal/adapters/storage"
	"flowstate/internal/domain"
	"flowstate/internal/ports"
	portsmocks "flowstate/internal/ports/mocks"
)

type timerFixture struct {
	clock    *fakeClock
	log      *SessionLog
	notifier *portsmocks.MockNotifier
	service  *TimerService
	sound    *portsmocks.MockSoundPlayer
	store    *storage.MemoryStore
}

func newTimerFixture(t *testing.T, profile domain.UserProfile) *timerFixture {
	t.Helper()
	ctx := context.Background()

	store := storage.NewMemoryStore()
	putJSON(t, store, domain.CategoryTimerSettings, domain.TimerSettings{
		FocusDuration:          1,
		ShortBreakDuration:     1,
		LongBreakDuration:      2,
		SessionsUntilLongBreak: 2,
	})
	putJSON(t, store, domain.CategoryUserProfile, profile)

	f := &timerFixture{
		clock:    newFakeClock(testNow),
		notifier: portsmocks.NewMockNotifier(t),
		sound:    portsmocks.NewMockSoundPlayer(t),
		store:    store,
	}
	f.log = NewSessionLog(store)
	f.service = NewTimerService(f.log, NewSettingsService(store), f.notifier, f.sound, f.clock, nil)
	require.NoError(t, f.service.Load(ctx))
	return f
}

// runSeconds ticks n times and returns the last completion seen
func (f *timerFixture) runSeconds(t *testing.T, n int) *domain.Completion {
	t.Helper()
	var last *domain.Completion
	for i := 0; i < n; i++ {
		f.clock.Advance(time.Second)
		c, err := f.service.Tick(context.Background())
		require.NoError(t, err)
		if c != nil {
			last = c
		}
	}
	return last
}

func TestTimerService_LoadAppliesStoredSettings(t *testing.T) {
	f := newTimerFixture(t, domain.DefaultUserProfile())

	state := f.service.State()
	assert.Equal(t, domain.ModeFocus, state.Mode)
	assert.Equal(t, 60, state.RemainingSeconds)
	assert.False(t, state.Running)
	assert.Equal(t, 2, f.service.NextLongBreakIn())
}

func TestTimerService_FocusCompletion(t *testing.T) {
	f := newTimerFixture(t, domain.DefaultUserProfile())
	f.sound.EXPECT().PlaySoundForEvent(ports.SoundFocusComplete).Return(nil).Once()
	f.notifier.EXPECT().Notify("FlowState Timer Complete!", "Time for a break!").Return(nil).Once()

	require.True(t, f.service.Start())
	assert.True(t, f.service.FocusActive())

	c := f.runSeconds(t, 60)
	require.NotNil(t, c)
	assert.Equal(t, domain.ModeFocus, c.From)
	assert.Equal(t, domain.ModeShortBreak, c.To)

	state := f.service.State()
	assert.Equal(t, domain.ModeShortBreak, state.Mode)
	assert.False(t, state.Running)
	assert.Equal(t, 1, state.CompletedSessions)
	assert.Equal(t, 60, state.RemainingSeconds)

	records, err := f.log.FocusSessions(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].Duration)
	assert.True(t, records[0].Completed)
	assert.True(t, records[0].Date.Equal(testNow.Add(60*time.Second)))
}

func TestTimerService_BreakCompletionLogsNothing(t *testing.T) {
	f := newTimerFixture(t, domain.DefaultUserProfile())
	f.sound.EXPECT().PlaySoundForEvent(ports.SoundBreakComplete).Return(nil).Once()
	f.notifier.EXPECT().Notify("FlowState Timer Complete!", "Ready to focus again?").Return(nil).Once()

	require.NoError(t, f.service.SwitchMode(domain.ModeShortBreak))
	f.service.Start()
	c := f.runSeconds(t, 60)

	require.NotNil(t, c)
	assert.Nil(t, c.Record)
	assert.Equal(t, domain.ModeFocus, f.service.State().Mode)
	assert.Equal(t, 0, f.service.State().CompletedSessions)

	records, err := f.log.FocusSessions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestTimerService_AutoStartBreaks(t *testing.T) {
	tests := []struct {
		name        string
		autoStart   bool
		wantRunning bool
	}{
		{"disabled leaves break paused", false, false},
		{"enabled starts break countdown", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := domain.DefaultUserProfile()
			profile.AutoStartBreaks = tt.autoStart
			profile.SoundEnabled = false
			profile.Notifications = false

			f := newTimerFixture(t, profile)
			f.service.Start()
			f.runSeconds(t, 60)

			state := f.service.State()
			assert.Equal(t, domain.ModeShortBreak, state.Mode)
			assert.Equal(t, tt.wantRunning, state.Running)
		})
	}
}

func TestTimerService_LongBreakAfterConfiguredSessions(t *testing.T) {
	profile := domain.DefaultUserProfile()
	profile.SoundEnabled = false
	profile.Notifications = false
	f := newTimerFixture(t, profile)

	want := []domain.TimerMode{domain.ModeShortBreak, domain.ModeFocus, domain.ModeLongBreak, domain.ModeFocus}
	for i, mode := range want {
		f.service.Start()
		total := f.service.State().TotalSeconds
		c := f.runSeconds(t, total)
		require.NotNil(t, c, "step %d", i)
		assert.Equal(t, mode, f.service.State().Mode, "step %d", i)
	}
	assert.Equal(t, 2, f.service.State().CompletedSessions)
}

func TestTimerService_NotificationFailuresAreIgnored(t *testing.T) {
	f := newTimerFixture(t, domain.DefaultUserProfile())
	f.sound.EXPECT().PlaySoundForEvent(ports.SoundFocusComplete).Return(errors.New("no audio")).Once()
	f.notifier.EXPECT().Notify("FlowState Timer Complete!", "Time for a break!").Return(domain.ErrNotificationUnavailable).Once()

	f.service.Start()
	c := f.runSeconds(t, 60)

	require.NotNil(t, c)
	require.NotNil(t, c.Record)
}

func TestTimerService_PausedTimerDoesNotTick(t *testing.T) {
	f := newTimerFixture(t, domain.DefaultUserProfile())

	assert.Nil(t, f.runSeconds(t, 120))
	assert.Equal(t, 60, f.service.State().RemainingSeconds)

	assert.True(t, f.service.Toggle())
	f.runSeconds(t, 10)
	assert.False(t, f.service.Toggle())
	assert.Equal(t, 50, f.service.State().RemainingSeconds)
	assert.InDelta(t, 10.0/60.0, f.service.Progress(), 1e-9)

	f.service.Reset()
	assert.Equal(t, 60, f.service.State().RemainingSeconds)
	assert.False(t, f.service.Pause())
}

func TestTimerService_UpdateSettingsPersists(t *testing.T) {
	ctx := context.Background()
	f := newTimerFixture(t, domain.DefaultUserProfile())

	saved, err := f.service.UpdateSettings(ctx, domain.TimerSettings{
		FocusDuration:          50,
		ShortBreakDuration:     10,
		LongBreakDuration:      30,
		SessionsUntilLongBreak: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 50, saved.FocusDuration)
	assert.Equal(t, 50, f.service.Settings().FocusDuration)

	// Not retroactive on the running countdown
	assert.Equal(t, 60, f.service.State().RemainingSeconds)
	assert.JSONEq(t,
		`{"focusDuration":50,"shortBreakDuration":10,"longBreakDuration":30,"sessionsUntilLongBreak":3}`,
		getRaw(t, f.store, domain.CategoryTimerSettings))

	f.service.Reset()
	assert.Equal(t, 3000, f.service.State().RemainingSeconds)
}

func TestTimerService_SwitchModeRejectsUnknownMode(t *testing.T) {
	f := newTimerFixture(t, domain.DefaultUserProfile())

	err := f.service.SwitchMode(domain.TimerMode("nap"))
	assert.ErrorIs(t, err, domain.ErrInvalidMode)
	assert.Equal(t, domain.ModeFocus, f.service.State().Mode)
}
