package domain

import "time"

// EpochMillis is a Unix timestamp in milliseconds, the on-disk format for activity and break times
type EpochMillis int64

// NewEpochMillis converts a time to milliseconds since the epoch
func NewEpochMillis(t time.Time) EpochMillis {
	return EpochMillis(t.UnixMilli())
}

// Time returns the instant in the local zone
func (e EpochMillis) Time() time.Time {
	return time.UnixMilli(int64(e))
}

// FocusSessionRecord is appended when a focus countdown reaches zero
type FocusSessionRecord struct {
	Date      time.Time `json:"date"`
	Duration  int       `json:"duration"` // minutes
	Completed bool      `json:"completed"`
}

// ActivitySessionRecord is appended when an activity monitoring window stops
type ActivitySessionRecord struct {
	StartTime         EpochMillis `json:"startTime"`
	EndTime           EpochMillis `json:"endTime"`
	FinalFocusScore   int         `json:"finalFocusScore"`
	TotalDistractions int         `json:"totalDistractions"`
}

// Duration returns the length of the monitoring window
func (r ActivitySessionRecord) Duration() time.Duration {
	return r.EndTime.Time().Sub(r.StartTime.Time())
}

// BreakRecord is appended when the user marks a break as completed
type BreakRecord struct {
	Timestamp EpochMillis `json:"timestamp"`
	Type      string      `json:"type"`
}

// LogSnapshot is an immutable view of the record categories at one point in time
type LogSnapshot struct {
	FocusSessions    []FocusSessionRecord
	ActivitySessions []ActivitySessionRecord
	Breaks           []BreakRecord
}
