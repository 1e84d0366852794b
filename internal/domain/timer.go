package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// TimerMode is the phase of the work/break cycle
type TimerMode string

const (
	ModeFocus      TimerMode = "focus"
	ModeShortBreak TimerMode = "short_break"
	ModeLongBreak  TimerMode = "long_break"
)

// ParseTimerMode accepts the canonical mode names plus a few spellings used on the command line
func ParseTimerMode(s string) (TimerMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "focus", "work", "pomodoro":
		return ModeFocus, nil
	case "short_break", "short-break", "shortbreak", "short":
		return ModeShortBreak, nil
	case "long_break", "long-break", "longbreak", "long":
		return ModeLongBreak, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Label returns the human readable mode name
func (m TimerMode) Label() string {
	switch m {
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return "Focus"
	}
}

// IsBreak reports whether the mode is one of the break phases
func (m TimerMode) IsBreak() bool {
	return m == ModeShortBreak || m == ModeLongBreak
}

// TimerSettings are the user-configurable cycle durations, in minutes
type TimerSettings struct {
	FocusDuration          int `json:"focusDuration"`
	ShortBreakDuration     int `json:"shortBreakDuration"`
	LongBreakDuration      int `json:"longBreakDuration"`
	SessionsUntilLongBreak int `json:"sessionsUntilLongBreak"`
}

// DefaultTimerSettings returns the classic 25/5/15 cycle with a long break every 4 sessions
func DefaultTimerSettings() TimerSettings {
	return TimerSettings{
		FocusDuration:          25,
		ShortBreakDuration:     5,
		LongBreakDuration:      15,
		SessionsUntilLongBreak: 4,
	}
}

// Normalize replaces every non-positive field with its default
func (s TimerSettings) Normalize() TimerSettings {
	d := DefaultTimerSettings()
	if s.FocusDuration <= 0 {
		s.FocusDuration = d.FocusDuration
	}
	if s.ShortBreakDuration <= 0 {
		s.ShortBreakDuration = d.ShortBreakDuration
	}
	if s.LongBreakDuration <= 0 {
		s.LongBreakDuration = d.LongBreakDuration
	}
	if s.SessionsUntilLongBreak <= 0 {
		s.SessionsUntilLongBreak = d.SessionsUntilLongBreak
	}
	return s
}

// DurationFor returns the full length of a mode in minutes
func (s TimerSettings) DurationFor(mode TimerMode) int {
	switch mode {
	case ModeShortBreak:
		return s.ShortBreakDuration
	case ModeLongBreak:
		return s.LongBreakDuration
	default:
		return s.FocusDuration
	}
}

// UnmarshalJSON decodes leniently: missing, non-numeric or non-positive fields fall back
// to their defaults, and numeric strings like "30" are accepted.
func (s *TimerSettings) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timer settings: %w", err)
	}
	if raw == nil {
		return fmt.Errorf("timer settings: expected object, got null")
	}

	d := DefaultTimerSettings()
	*s = TimerSettings{
		FocusDuration:          lenientPositiveInt(raw["focusDuration"], d.FocusDuration),
		ShortBreakDuration:     lenientPositiveInt(raw["shortBreakDuration"], d.ShortBreakDuration),
		LongBreakDuration:      lenientPositiveInt(raw["longBreakDuration"], d.LongBreakDuration),
		SessionsUntilLongBreak: lenientPositiveInt(raw["sessionsUntilLongBreak"], d.SessionsUntilLongBreak),
	}
	return nil
}

// lenientPositiveInt parses a JSON number or numeric string, truncating fractions
func lenientPositiveInt(raw json.RawMessage, fallback int) int {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return fallback
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return fallback
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			return fallback
		}
		f = parsed
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt32 {
		return fallback
	}
	n := int(f)
	if n <= 0 {
		return fallback
	}
	return n
}

// TimerState is a read-only view of the state machine
type TimerState struct {
	Mode              TimerMode `json:"mode"`
	RemainingSeconds  int       `json:"remainingSeconds"`
	Running           bool      `json:"running"`
	CompletedSessions int       `json:"completedSessions"`
	TotalSeconds      int       `json:"totalSeconds"`
}

// Completion describes a countdown that reached zero during a tick
type Completion struct {
	From TimerMode
	To   TimerMode
	// Record is set only when a focus countdown completed
	Record *FocusSessionRecord
}

// Timer is the focus/break state machine. It holds no clock of its own and is
// advanced one second per Tick by whoever owns the schedule. Not safe for concurrent use.
type Timer struct {
	completed int
	mode      TimerMode
	remaining int
	running   bool
	settings  TimerSettings
}

// NewTimer creates a paused timer in focus mode with a full focus countdown
func NewTimer(settings TimerSettings) *Timer {
	t := &Timer{
		mode:     ModeFocus,
		settings: settings.Normalize(),
	}
	t.remaining = t.totalSeconds()
	return t
}

func (t *Timer) totalSeconds() int {
	return t.settings.DurationFor(t.mode) * 60
}

// Start begins the countdown. Returns false if it was already running.
func (t *Timer) Start() bool {
	if t.running {
		return false
	}
	t.running = true
	return true
}

// Pause stops the countdown. Returns false if it was already paused.
func (t *Timer) Pause() bool {
	if !t.running {
		return false
	}
	t.running = false
	return true
}

// Tick advances a running timer by one second. When the countdown reaches zero the
// completion transition runs synchronously and is returned; otherwise Tick returns nil.
func (t *Timer) Tick(now time.Time) *Completion {
	if !t.running {
		return nil
	}

	if t.remaining > 0 {
		t.remaining--
	}
	if t.remaining > 0 {
		return nil
	}

	return t.complete(now)
}

func (t *Timer) complete(now time.Time) *Completion {
	c := &Completion{From: t.mode}

	if t.mode == ModeFocus {
		c.Record = &FocusSessionRecord{
			Date:      now,
			Duration:  t.settings.FocusDuration,
			Completed: true,
		}
		t.completed++
		if t.completed%t.settings.SessionsUntilLongBreak == 0 {
			t.mode = ModeLongBreak
		} else {
			t.mode = ModeShortBreak
		}
	} else {
		t.mode = ModeFocus
	}

	c.To = t.mode
	t.remaining = t.totalSeconds()
	t.running = false
	return c
}

// Reset restores the full countdown for the current mode and pauses
func (t *Timer) Reset() {
	t.remaining = t.totalSeconds()
	t.running = false
}

// SwitchMode forces a mode without recording anything
func (t *Timer) SwitchMode(mode TimerMode) error {
	switch mode {
	case ModeFocus, ModeShortBreak, ModeLongBreak:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	t.mode = mode
	t.running = false
	t.remaining = t.totalSeconds()
	return nil
}

// UpdateSettings replaces the settings. The countdown in progress is not changed;
// new durations apply from the next reset, switch or completion.
func (t *Timer) UpdateSettings(settings TimerSettings) {
	t.settings = settings.Normalize()
}

// Settings returns the active settings
func (t *Timer) Settings() TimerSettings {
	return t.settings
}

// State returns a snapshot of the timer
func (t *Timer) State() TimerState {
	return TimerState{
		Mode:              t.mode,
		RemainingSeconds:  t.remaining,
		Running:           t.running,
		CompletedSessions: t.completed,
		TotalSeconds:      t.totalSeconds(),
	}
}

// Progress returns the elapsed fraction of the current countdown in [0, 1]
func (t *Timer) Progress() float64 {
	total := t.totalSeconds()
	if total <= 0 {
		return 0
	}
	p := float64(total-t.remaining) / float64(total)
	return math.Max(0, math.Min(1, p))
}

// NextLongBreakIn returns how many focus sessions remain until the next long break
func (t *Timer) NextLongBreakIn() int {
	n := t.settings.SessionsUntilLongBreak
	return n - t.completed%n
}

// FocusActive reports whether a focus countdown is currently running
func (t *Timer) FocusActive() bool {
	return t.running && t.mode == ModeFocus
}

// FormatClock renders seconds as MM:SS; minutes may exceed 59
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
