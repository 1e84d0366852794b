package services

import (
	"context"

	"flowstate/internal/analytics"
	"flowstate/internal/clock"
	"flowstate/internal/domain"
)

// StatsReport bundles every derived figure shown by the dashboard
type StatsReport struct {
	Summary      analytics.Summary    `json:"summary"`
	StudyGoal    int                  `json:"studyGoal"`
	GoalProgress float64              `json:"goalProgress"`
	Daily        []analytics.DayTotal `json:"daily"`
	Hourly       [24]int              `json:"hourly"`
	Achievements []domain.Achievement `json:"achievements"`
	Unlocked     int                  `json:"unlocked"`
}

// StatsService loads log snapshots and feeds them through analytics
type StatsService struct {
	clock    clock.Clock
	log      *SessionLog
	settings *SettingsService
}

// NewStatsService creates a new StatsService
func NewStatsService(log *SessionLog, settings *SettingsService, clk clock.Clock) *StatsService {
	return &StatsService{clock: clk, log: log, settings: settings}
}

// Report computes the dashboard over the last days calendar days
func (s *StatsService) Report(ctx context.Context, days int) (StatsReport, error) {
	snap, err := s.log.Snapshot(ctx)
	if err != nil {
		return StatsReport{}, err
	}
	profile, err := s.settings.Profile(ctx)
	if err != nil {
		return StatsReport{}, err
	}

	now := s.clock.Now()
	summary := analytics.Summarize(snap, now)
	achievements := analytics.Achievements(snap, now)

	return StatsReport{
		Summary:      summary,
		StudyGoal:    profile.StudyGoal,
		GoalProgress: analytics.GoalProgress(summary.TodayMinutes, profile.StudyGoal),
		Daily:        analytics.DailyTotals(snap.FocusSessions, now, days),
		Hourly:       analytics.HourlyDistribution(snap.FocusSessions, now.Location()),
		Achievements: achievements,
		Unlocked:     analytics.UnlockedCount(achievements),
	}, nil
}

// Achievements evaluates the achievement catalog against the log
func (s *StatsService) Achievements(ctx context.Context) ([]domain.Achievement, error) {
	snap, err := s.log.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.Achievements(snap, s.clock.Now()), nil
}

// History returns up to limit combined history entries, newest first. limit <= 0 returns all.
func (s *StatsService) History(ctx context.Context, limit int) ([]analytics.HistoryEntry, error) {
	snap, err := s.log.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	entries := analytics.History(snap)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
