package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"flowstate/internal/domain"
	"flowstate/internal/logging"
	"flowstate/internal/ports"
)

// SettingsService reads and writes the timer settings and user profile categories
type SettingsService struct {
	store ports.CategoryStore
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(store ports.CategoryStore) *SettingsService {
	return &SettingsService{store: store}
}

// TimerSettings returns the stored timer settings, or the defaults
func (s *SettingsService) TimerSettings(ctx context.Context) (domain.TimerSettings, error) {
	settings, err := loadObject(ctx, s.store, domain.CategoryTimerSettings, domain.DefaultTimerSettings())
	if err != nil {
		return domain.DefaultTimerSettings(), err
	}
	return settings.Normalize(), nil
}

// SaveTimerSettings normalizes and persists settings, returning what was stored
func (s *SettingsService) SaveTimerSettings(ctx context.Context, settings domain.TimerSettings) (domain.TimerSettings, error) {
	settings = settings.Normalize()
	logging.Logger.Info("Saving timer settings",
		"focus", settings.FocusDuration,
		"shortBreak", settings.ShortBreakDuration,
		"longBreak", settings.LongBreakDuration,
		"sessionsUntilLongBreak", settings.SessionsUntilLongBreak)

	if err := s.putJSON(ctx, domain.CategoryTimerSettings, settings); err != nil {
		return settings, err
	}
	return settings, nil
}

// Profile returns the stored user profile, or the defaults
func (s *SettingsService) Profile(ctx context.Context) (domain.UserProfile, error) {
	return loadObject(ctx, s.store, domain.CategoryUserProfile, domain.DefaultUserProfile())
}

// SaveProfile persists the profile. A non-positive study goal becomes the default.
func (s *SettingsService) SaveProfile(ctx context.Context, profile domain.UserProfile) (domain.UserProfile, error) {
	if profile.StudyGoal <= 0 {
		profile.StudyGoal = domain.DefaultStudyGoal
	}
	profile.Name = strings.TrimSpace(profile.Name)
	profile.Email = strings.TrimSpace(profile.Email)
	if profile.Theme == "" {
		profile.Theme = domain.DefaultUserProfile().Theme
	}

	logging.Logger.Info("Saving user profile", "studyGoal", profile.StudyGoal, "autoStartBreaks", profile.AutoStartBreaks)
	if err := s.putJSON(ctx, domain.CategoryUserProfile, profile); err != nil {
		return profile, err
	}
	return profile, nil
}

func (s *SettingsService) putJSON(ctx context.Context, category domain.Category, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", category, err)
	}
	if err := s.store.Put(ctx, category, data); err != nil {
		logging.Logger.Error("Failed to save category", "category", category, "error", err)
		return fmt.Errorf("failed to save %s: %w", category, err)
	}
	return nil
}
