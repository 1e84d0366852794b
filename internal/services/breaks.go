package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"flowstate/internal/analytics"
	"flowstate/internal/clock"
	"flowstate/internal/domain"
	"flowstate/internal/logging"
	"flowstate/internal/telemetry"
)

// DefaultBreakType labels breaks recorded without a description
const DefaultBreakType = "Break"

// BreakService records completed breaks
type BreakService struct {
	clock   clock.Clock
	log     *SessionLog
	metrics *telemetry.Instruments
}

// NewBreakService creates a new BreakService
func NewBreakService(log *SessionLog, clk clock.Clock, metrics *telemetry.Instruments) *BreakService {
	return &BreakService{clock: clk, log: log, metrics: metrics}
}

// Complete appends a break of the given type finished now
func (s *BreakService) Complete(ctx context.Context, breakType string) (domain.BreakRecord, error) {
	breakType = strings.TrimSpace(breakType)
	if breakType == "" {
		breakType = DefaultBreakType
	}

	record := domain.BreakRecord{
		Timestamp: domain.NewEpochMillis(s.clock.Now()),
		Type:      breakType,
	}
	if err := s.log.AppendBreak(ctx, record); err != nil {
		return record, fmt.Errorf("failed to record break: %w", err)
	}

	logging.Logger.Info("Break recorded", "type", breakType)
	s.metrics.BreakTaken(ctx, breakType)
	return record, nil
}

// Today counts the breaks taken on the current calendar day
func (s *BreakService) Today(ctx context.Context) (int, error) {
	breaks, err := s.log.Breaks(ctx)
	if err != nil {
		return 0, err
	}
	return analytics.BreaksOn(breaks, s.clock.Now()), nil
}

// Recent returns up to limit breaks, newest first. limit <= 0 returns all.
func (s *BreakService) Recent(ctx context.Context, limit int) ([]domain.BreakRecord, error) {
	breaks, err := s.log.Breaks(ctx)
	if err != nil {
		return nil, err
	}

	slices.Reverse(breaks)
	if limit > 0 && len(breaks) > limit {
		breaks = breaks[:limit]
	}
	return breaks, nil
}
