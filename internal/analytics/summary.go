package analytics

import (
	"math"
	"sort"
	"time"

	"flowstate/internal/domain"
)

// Summary is the dashboard headline for a log snapshot
type Summary struct {
	TotalFocusMinutes int  `json:"totalFocusMinutes"`
	CompletedSessions int  `json:"completedSessions"`
	TotalSessions     int  `json:"totalSessions"`
	AverageFocusScore int  `json:"averageFocusScore"`
	HasActivityData   bool `json:"hasActivityData"`
	TotalDistractions int  `json:"totalDistractions"`
	Streak            int  `json:"streak"`
	TodayMinutes      int  `json:"todayMinutes"`
	TodaySessions     int  `json:"todaySessions"`
	BreaksToday       int  `json:"breaksToday"`
}

// Summarize computes totals over the whole log plus today's figures.
// AverageFocusScore is meaningful only when HasActivityData is true.
func Summarize(snap domain.LogSnapshot, now time.Time) Summary {
	s := Summary{
		TotalSessions: len(snap.FocusSessions),
		Streak:        Streak(snap.FocusSessions, now),
		TodayMinutes:  DailyMinutes(snap.FocusSessions, now),
		TodaySessions: DailySessions(snap.FocusSessions, now),
		BreaksToday:   BreaksOn(snap.Breaks, now),
	}

	for _, r := range snap.FocusSessions {
		if r.Completed {
			s.CompletedSessions++
			s.TotalFocusMinutes += r.Duration
		}
	}

	if n := len(snap.ActivitySessions); n > 0 {
		sum := 0
		for _, a := range snap.ActivitySessions {
			sum += a.FinalFocusScore
			s.TotalDistractions += a.TotalDistractions
		}
		s.HasActivityData = true
		s.AverageFocusScore = int(math.Round(float64(sum) / float64(n)))
	}

	return s
}

// HistoryKind classifies a combined history entry
type HistoryKind string

const (
	HistoryFocus    HistoryKind = "focus"
	HistoryActivity HistoryKind = "activity"
	HistoryBreak    HistoryKind = "break"
)

// HistoryEntry is one row of the combined session history
type HistoryEntry struct {
	At         time.Time   `json:"at"`
	Kind       HistoryKind `json:"kind"`
	Label      string      `json:"label"`
	Minutes    int         `json:"minutes"`
	FocusScore *int        `json:"focusScore,omitempty"`
	Completed  bool        `json:"completed"`
}

// History merges focus, activity and break records, newest first.
// Activity durations are whole minutes, rounded down.
func History(snap domain.LogSnapshot) []HistoryEntry {
	out := make([]HistoryEntry, 0, len(snap.FocusSessions)+len(snap.ActivitySessions)+len(snap.Breaks))

	for _, r := range snap.FocusSessions {
		out = append(out, HistoryEntry{
			At:        r.Date,
			Kind:      HistoryFocus,
			Label:     "Focus Session",
			Minutes:   r.Duration,
			Completed: r.Completed,
		})
	}

	for _, a := range snap.ActivitySessions {
		score := a.FinalFocusScore
		out = append(out, HistoryEntry{
			At:         a.StartTime.Time(),
			Kind:       HistoryActivity,
			Label:      "Activity Monitor",
			Minutes:    int(a.Duration() / time.Minute),
			FocusScore: &score,
			Completed:  true,
		})
	}

	for _, b := range snap.Breaks {
		out = append(out, HistoryEntry{
			At:        b.Timestamp.Time(),
			Kind:      HistoryBreak,
			Label:     b.Type,
			Completed: true,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].At.After(out[j].At)
	})
	return out
}
