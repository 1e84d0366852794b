package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"flowstate/internal/clock"
	"flowstate/internal/domain"
	"flowstate/internal/logging"
	"flowstate/internal/ports"
	"flowstate/internal/telemetry"
)

// MonitorService owns the activity estimator and logs each finished window.
// A counted distraction plays a sound when the profile allows it.
type MonitorService struct {
	clock     clock.Clock
	estimator *domain.Estimator
	log       *SessionLog
	metrics   *telemetry.Instruments
	mu        sync.Mutex
	profile   domain.UserProfile
	settings  *SettingsService
	sound     ports.SoundPlayer
}

// NewMonitorService creates a MonitorService with the default profile; call Load
// to pick up the stored one.
func NewMonitorService(
	log *SessionLog,
	settings *SettingsService,
	sound ports.SoundPlayer,
	clk clock.Clock,
	metrics *telemetry.Instruments,
) *MonitorService {
	return &MonitorService{
		clock:     clk,
		estimator: domain.NewEstimator(),
		log:       log,
		metrics:   metrics,
		profile:   domain.DefaultUserProfile(),
		settings:  settings,
		sound:     sound,
	}
}

// Load reads the stored user profile
func (s *MonitorService) Load(ctx context.Context) error {
	profile, err := s.settings.Profile(ctx)
	if err != nil {
		return err
	}
	s.SetProfile(profile)
	return nil
}

// SetProfile replaces the profile that decides whether distractions are audible
func (s *MonitorService) SetProfile(profile domain.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = profile
}

// Start opens a monitoring window. Returns false if one is already open.
func (s *MonitorService) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	started := s.estimator.Start(s.clock.Now())
	if started {
		logging.Logger.Info("Activity monitoring started")
	}
	return started
}

// Stop closes the window and appends its summary to the session log
func (s *MonitorService) Stop(ctx context.Context) (domain.ActivitySessionRecord, error) {
	s.mu.Lock()
	record, ok := s.estimator.Stop(s.clock.Now())
	s.mu.Unlock()

	if !ok {
		return domain.ActivitySessionRecord{}, domain.ErrMonitoringInactive
	}

	logging.Logger.Info("Activity monitoring stopped",
		"score", record.FinalFocusScore,
		"distractions", record.TotalDistractions,
		"duration", record.Duration())
	s.metrics.MonitoringStopped(ctx, record.FinalFocusScore)

	if err := s.log.AppendActivitySession(ctx, record); err != nil {
		return record, fmt.Errorf("failed to log activity session: %w", err)
	}
	return record, nil
}

// Active reports whether a window is open
func (s *MonitorService) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.estimator.Active()
}

// RecordMouseMove counts a pointer movement
func (s *MonitorService) RecordMouseMove() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.estimator.RecordMouseMove(s.clock.Now())
}

// RecordKeyPress counts a key press
func (s *MonitorService) RecordKeyPress() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.estimator.RecordKeyPress(s.clock.Now())
}

// VisibilityLost records a distraction. Returns false outside a window.
func (s *MonitorService) VisibilityLost(ctx context.Context) bool {
	s.mu.Lock()
	counted := s.estimator.VisibilityLost()
	audible := s.profile.SoundEnabled && s.sound != nil
	s.mu.Unlock()

	if !counted {
		return false
	}

	logging.Logger.Debug("Distraction recorded")
	s.metrics.Distraction(ctx)
	if audible {
		if err := s.sound.PlaySoundForEvent(ports.SoundDistraction); err != nil {
			logging.Logger.Debug("Failed to play sound", "event", ports.SoundDistraction, "error", err)
		}
	}
	return true
}

// Tick scores the last second of input. Returns false outside a window.
func (s *MonitorService) Tick(ctx context.Context) (domain.ActivitySample, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.estimator.Tick(s.clock.Now())
}

// State returns a snapshot of the estimator
func (s *MonitorService) State() domain.ActivityState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.estimator.State()
}

// Elapsed returns how long the current window has been open
func (s *MonitorService) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.estimator.Elapsed(s.clock.Now())
}
