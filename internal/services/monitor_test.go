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

func newMonitorFixture() (*MonitorService, *SessionLog, *fakeClock) {
	clk := newFakeClock(testNow)
	store := storage.NewMemoryStore()
	log := NewSessionLog(store)
	return NewMonitorService(log, NewSettingsService(store), nil, clk, nil), log, clk
}

func TestMonitorService_StopWithoutStart(t *testing.T) {
	svc, _, _ := newMonitorFixture()

	_, err := svc.Stop(context.Background())
	assert.ErrorIs(t, err, domain.ErrMonitoringInactive)
}

func TestMonitorService_InputIgnoredWhileInactive(t *testing.T) {
	svc, _, _ := newMonitorFixture()

	svc.RecordKeyPress()
	svc.RecordMouseMove()
	assert.False(t, svc.VisibilityLost(context.Background()))

	_, ok := svc.Tick(context.Background())
	assert.False(t, ok)

	state := svc.State()
	assert.False(t, state.Active)
	assert.Zero(t, state.KeyCount)
	assert.Zero(t, state.Distractions)
}

func TestMonitorService_WindowLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, log, clk := newMonitorFixture()

	require.True(t, svc.Start())
	assert.False(t, svc.Start())

	// level 2*5 = 10 is productive; the score is already at the cap
	for i := 0; i < 5; i++ {
		svc.RecordKeyPress()
	}
	clk.Advance(time.Second)
	sample, ok := svc.Tick(ctx)
	require.True(t, ok)
	assert.Equal(t, 10, sample.Level)
	assert.Equal(t, 100, sample.Score)

	assert.True(t, svc.VisibilityLost(ctx))
	assert.Equal(t, 95, svc.State().FocusScore)

	clk.Advance(4 * time.Minute)
	assert.Equal(t, 4*time.Minute+time.Second, svc.Elapsed())

	record, err := svc.Stop(ctx)
	require.NoError(t, err)
	assert.Equal(t, 95, record.FinalFocusScore)
	assert.Equal(t, 1, record.TotalDistractions)
	assert.Equal(t, 4*time.Minute+time.Second, record.Duration())
	assert.False(t, svc.Active())

	stored, err := log.ActivitySessions(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, record, stored[0])
}

func TestMonitorService_InactivityPenalty(t *testing.T) {
	ctx := context.Background()
	svc, _, clk := newMonitorFixture()
	svc.Start()

	for i := 0; i < 30; i++ {
		clk.Advance(time.Second)
		svc.Tick(ctx)
	}
	assert.Equal(t, 100, svc.State().FocusScore)

	clk.Advance(time.Second)
	svc.Tick(ctx)
	assert.Equal(t, 97, svc.State().FocusScore)
}

func TestMonitorService_WindowsAreIndependent(t *testing.T) {
	ctx := context.Background()
	svc, log, _ := newMonitorFixture()

	svc.Start()
	svc.VisibilityLost(ctx)
	svc.VisibilityLost(ctx)
	_, err := svc.Stop(ctx)
	require.NoError(t, err)

	svc.Start()
	state := svc.State()
	assert.Equal(t, 100, state.FocusScore)
	assert.Zero(t, state.Distractions)
	_, err = svc.Stop(ctx)
	require.NoError(t, err)

	stored, err := log.ActivitySessions(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, 90, stored[0].FinalFocusScore)
	assert.Equal(t, 100, stored[1].FinalFocusScore)
}

func TestMonitorService_DistractionSound(t *testing.T) {
	tests := []struct {
		name         string
		soundEnabled bool
		start        bool
		expectSound  bool
	}{
		{name: "plays when sound is enabled", soundEnabled: true, start: true, expectSound: true},
		{name: "silent when sound is disabled", soundEnabled: false, start: true},
		{name: "silent outside a window", soundEnabled: true, start: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := storage.NewMemoryStore()
			settings := NewSettingsService(store)
			profile := domain.DefaultUserProfile()
			profile.SoundEnabled = tt.soundEnabled
			_, err := settings.SaveProfile(ctx, profile)
			require.NoError(t, err)

			sound := portsmocks.NewMockSoundPlayer(t)
			if tt.expectSound {
				sound.EXPECT().PlaySoundForEvent(ports.SoundDistraction).Return(errors.New("no audio")).Once()
			}

			svc := NewMonitorService(NewSessionLog(store), settings, sound, newFakeClock(testNow), nil)
			require.NoError(t, svc.Load(ctx))
			if tt.start {
				require.True(t, svc.Start())
			}

			assert.Equal(t, tt.start, svc.VisibilityLost(ctx))
		})
	}
}

func TestMonitorService_SetProfileSilencesDistractions(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	sound := portsmocks.NewMockSoundPlayer(t)

	svc := NewMonitorService(NewSessionLog(store), NewSettingsService(store), sound, newFakeClock(testNow), nil)
	require.NoError(t, svc.Load(ctx))

	profile := domain.DefaultUserProfile()
	profile.SoundEnabled = false
	svc.SetProfile(profile)

	require.True(t, svc.Start())
	assert.True(t, svc.VisibilityLost(ctx))
	assert.Equal(t, 1, svc.State().Distractions)
}
