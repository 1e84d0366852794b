package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"flowstate/internal/clock"
	"flowstate/internal/domain"
	"flowstate/internal/logging"
	"flowstate/internal/ports"
	"flowstate/internal/telemetry"
)

const notificationTitle = "FlowState Timer Complete!"

// TimerService owns the focus/break state machine and the side effects of its
// completions: logging the record, telemetry, sound and desktop notification.
type TimerService struct {
	clock    clock.Clock
	log      *SessionLog
	metrics  *telemetry.Instruments
	mu       sync.Mutex
	notifier ports.Notifier
	profile  domain.UserProfile
	settings *SettingsService
	sound    ports.SoundPlayer
	timer    *domain.Timer
}

// NewTimerService creates a TimerService with default settings; call Load to
// pick up the stored settings and profile.
func NewTimerService(
	log *SessionLog,
	settings *SettingsService,
	notifier ports.Notifier,
	sound ports.SoundPlayer,
	clk clock.Clock,
	metrics *telemetry.Instruments,
) *TimerService {
	return &TimerService{
		clock:    clk,
		log:      log,
		metrics:  metrics,
		notifier: notifier,
		profile:  domain.DefaultUserProfile(),
		settings: settings,
		sound:    sound,
		timer:    domain.NewTimer(domain.DefaultTimerSettings()),
	}
}

// Load reads timer settings and the user profile. The countdown is reset to the
// loaded focus duration only if the timer has not been started yet.
func (s *TimerService) Load(ctx context.Context) error {
	settings, err := s.settings.TimerSettings(ctx)
	if err != nil {
		return err
	}
	profile, err := s.settings.Profile(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pristine := s.timer.State().CompletedSessions == 0 && !s.timer.State().Running
	s.timer.UpdateSettings(settings)
	if pristine {
		s.timer.Reset()
	}
	s.profile = profile
	return nil
}

// SetProfile replaces the profile used for notifications and auto-start
func (s *TimerService) SetProfile(profile domain.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = profile
}

// Start begins the countdown. Returns false if it was already running.
func (s *TimerService) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	started := s.timer.Start()
	if started {
		logging.Logger.Debug("Timer started", "mode", s.timer.State().Mode)
	}
	return started
}

// Pause stops the countdown. Returns false if it was already paused.
func (s *TimerService) Pause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	paused := s.timer.Pause()
	if paused {
		logging.Logger.Debug("Timer paused", "remaining", s.timer.State().RemainingSeconds)
	}
	return paused
}

// Toggle starts a paused timer or pauses a running one and reports whether it is now running
func (s *TimerService) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer.Pause() {
		return false
	}
	s.timer.Start()
	return true
}

// Reset restores the current mode's full countdown and pauses
func (s *TimerService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer.Reset()
}

// SwitchMode forces a mode without logging a session
func (s *TimerService) SwitchMode(mode domain.TimerMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.timer.SwitchMode(mode); err != nil {
		return err
	}
	logging.Logger.Debug("Timer mode switched", "mode", mode)
	return nil
}

// UpdateSettings persists new durations and applies them to the next countdown
func (s *TimerService) UpdateSettings(ctx context.Context, settings domain.TimerSettings) (domain.TimerSettings, error) {
	saved, err := s.settings.SaveTimerSettings(ctx, settings)
	if err != nil {
		return saved, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer.UpdateSettings(saved)
	return saved, nil
}

// Tick advances the timer by one second. On a completion it logs focus records,
// notifies, and honours the profile's autoStartBreaks. The completion is returned
// even when persisting it failed.
func (s *TimerService) Tick(ctx context.Context) (*domain.Completion, error) {
	s.mu.Lock()
	completion := s.timer.Tick(s.clock.Now())
	profile := s.profile
	if completion != nil && completion.From == domain.ModeFocus && profile.AutoStartBreaks {
		s.timer.Start()
	}
	s.mu.Unlock()

	if completion == nil {
		return nil, nil
	}

	logging.Logger.Info("Timer completed", "from", completion.From, "to", completion.To)

	var err error
	if completion.Record != nil {
		if appendErr := s.log.AppendFocusSession(ctx, *completion.Record); appendErr != nil {
			err = fmt.Errorf("failed to log focus session: %w", appendErr)
		}
		s.metrics.FocusCompleted(ctx, completion.Record.Duration)
	}

	s.announce(completion, profile)
	return completion, err
}

func (s *TimerService) announce(c *domain.Completion, profile domain.UserProfile) {
	event := ports.SoundBreakComplete
	body := "Ready to focus again?"
	if c.From == domain.ModeFocus {
		event = ports.SoundFocusComplete
		body = "Time for a break!"
	}

	if profile.SoundEnabled && s.sound != nil {
		if err := s.sound.PlaySoundForEvent(event); err != nil {
			logging.Logger.Debug("Failed to play sound", "event", event, "error", err)
		}
	}

	if profile.Notifications && s.notifier != nil {
		if err := s.notifier.Notify(notificationTitle, body); err != nil {
			if errors.Is(err, domain.ErrNotificationUnavailable) {
				logging.Logger.Debug("Desktop notification unavailable", "error", err)
			} else {
				logging.Logger.Warn("Desktop notification failed", "error", err)
			}
		}
	}
}

// State returns a snapshot of the timer
func (s *TimerService) State() domain.TimerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer.State()
}

// Settings returns the durations currently in effect
func (s *TimerService) Settings() domain.TimerSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer.Settings()
}

// Progress returns the elapsed fraction of the current countdown
func (s *TimerService) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer.Progress()
}

// NextLongBreakIn returns how many focus completions remain until a long break
func (s *TimerService) NextLongBreakIn() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer.NextLongBreakIn()
}

// FocusActive reports whether a focus countdown is running
func (s *TimerService) FocusActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer.FocusActive()
}
