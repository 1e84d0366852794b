package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Instruments groups the counters recorded by the focus engine
type Instruments struct {
	sessionsCompleted metric.Int64Counter
	breaksTaken       metric.Int64Counter
	distractions      metric.Int64Counter
	focusScore        metric.Int64Histogram
}

// NewInstruments creates the engine instruments on m.
// Instrument creation errors leave a nil instrument that is skipped when recording.
func NewInstruments(m metric.Meter) *Instruments {
	completed, _ := m.Int64Counter("flowstate.focus.sessions_completed",
		metric.WithDescription("Focus sessions that ran to completion"),
	)
	breaks, _ := m.Int64Counter("flowstate.breaks.taken",
		metric.WithDescription("Breaks recorded"),
	)
	distractions, _ := m.Int64Counter("flowstate.activity.distractions",
		metric.WithDescription("Visibility losses while monitoring"),
	)
	score, _ := m.Int64Histogram("flowstate.activity.focus_score",
		metric.WithDescription("Final focus score of a monitoring window"),
		metric.WithExplicitBucketBoundaries(0, 20, 40, 60, 80, 90, 100),
	)
	return &Instruments{
		sessionsCompleted: completed,
		breaksTaken:       breaks,
		distractions:      distractions,
		focusScore:        score,
	}
}

// DefaultInstruments uses the global meter provider
func DefaultInstruments() *Instruments {
	return NewInstruments(Meter("flowstate/engine"))
}

func (i *Instruments) FocusCompleted(ctx context.Context, minutes int) {
	if i == nil || i.sessionsCompleted == nil {
		return
	}
	i.sessionsCompleted.Add(ctx, 1, metric.WithAttributes(attribute.Int("duration_minutes", minutes)))
}

func (i *Instruments) BreakTaken(ctx context.Context, kind string) {
	if i == nil || i.breaksTaken == nil {
		return
	}
	i.breaksTaken.Add(ctx, 1, metric.WithAttributes(attribute.String("type", kind)))
}

func (i *Instruments) Distraction(ctx context.Context) {
	if i == nil || i.distractions == nil {
		return
	}
	i.distractions.Add(ctx, 1)
}

func (i *Instruments) MonitoringStopped(ctx context.Context, finalScore int) {
	if i == nil || i.focusScore == nil {
		return
	}
	i.focusScore.Record(ctx, int64(finalScore))
}
