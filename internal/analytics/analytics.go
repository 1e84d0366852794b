// Package analytics derives metrics from the session log. Every function is a pure
// projection over records; nothing is cached.
package analytics

import (
	"time"

	"flowstate/internal/domain"
)

// civilDate is a calendar day in some zone
type civilDate struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time, loc *time.Location) civilDate {
	y, m, d := t.In(loc).Date()
	return civilDate{year: y, month: m, day: d}
}

// noon returns midday of the date so day arithmetic never trips over DST shifts
func (d civilDate) noon(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 12, 0, 0, 0, loc)
}

// StartOfDay returns local midnight of the day containing t
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day in b's zone
func SameDay(a, b time.Time) bool {
	return dateOf(a, b.Location()) == dateOf(b, b.Location())
}

// Streak counts consecutive calendar days, ending today, with at least one focus record.
// Completed and uncompleted records both count. Returns 0 when today has no record.
func Streak(records []domain.FocusSessionRecord, now time.Time) int {
	loc := now.Location()
	days := make(map[civilDate]struct{}, len(records))
	for _, r := range records {
		days[dateOf(r.Date, loc)] = struct{}{}
	}

	streak := 0
	cursor := dateOf(now, loc).noon(loc)
	for {
		if _, ok := days[dateOf(cursor, loc)]; !ok {
			return streak
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
}

// DailyMinutes sums the duration of completed focus records on the calendar day of day
func DailyMinutes(records []domain.FocusSessionRecord, day time.Time) int {
	minutes := 0
	for _, r := range records {
		if r.Completed && SameDay(r.Date, day) {
			minutes += r.Duration
		}
	}
	return minutes
}

// DailySessions counts completed focus records on the calendar day of day
func DailySessions(records []domain.FocusSessionRecord, day time.Time) int {
	n := 0
	for _, r := range records {
		if r.Completed && SameDay(r.Date, day) {
			n++
		}
	}
	return n
}

// GoalProgress returns minutes/goal without capping; callers cap for display.
// A non-positive goal is treated as the default study goal.
func GoalProgress(minutes, goal int) float64 {
	if goal <= 0 {
		goal = domain.DefaultStudyGoal
	}
	return float64(minutes) / float64(goal)
}

// CappedPercent converts a ratio to a whole percentage in [0, 100]
func CappedPercent(ratio float64) int {
	p := int(ratio * 100)
	return min(100, max(0, p))
}

// HourlyDistribution counts focus records by local hour of day, completed or not
func HourlyDistribution(records []domain.FocusSessionRecord, loc *time.Location) [24]int {
	var hours [24]int
	for _, r := range records {
		hours[r.Date.In(loc).Hour()]++
	}
	return hours
}

// DayTotal is one point in a daily series
type DayTotal struct {
	Date     time.Time `json:"date"`
	Minutes  int       `json:"minutes"`
	Sessions int       `json:"sessions"`
}

// DailyTotals returns completed minutes and sessions for the last days calendar days,
// oldest first, ending with the day of now.
func DailyTotals(records []domain.FocusSessionRecord, now time.Time, days int) []DayTotal {
	if days <= 0 {
		return nil
	}

	loc := now.Location()
	byDay := make(map[civilDate]*DayTotal, days)
	out := make([]DayTotal, days)
	today := dateOf(now, loc).noon(loc)
	for i := 0; i < days; i++ {
		day := today.AddDate(0, 0, i-days+1)
		out[i] = DayTotal{Date: StartOfDay(day)}
		byDay[dateOf(day, loc)] = &out[i]
	}

	for _, r := range records {
		if !r.Completed {
			continue
		}
		if total, ok := byDay[dateOf(r.Date, loc)]; ok {
			total.Minutes += r.Duration
			total.Sessions++
		}
	}

	return out
}

// BreaksOn counts break records on the calendar day of day
func BreaksOn(breaks []domain.BreakRecord, day time.Time) int {
	n := 0
	for _, b := range breaks {
		if SameDay(b.Timestamp.Time(), day) {
			n++
		}
	}
	return n
}
