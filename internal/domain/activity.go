package domain

import "time"

const (
	InitialFocusScore = 100

	// Activity level bands evaluated on every tick, level = mouse + 2*keys
	productiveLevelMin = 5   // exclusive
	productiveLevelMax = 100 // exclusive
	franticLevelMin    = 200 // exclusive

	productiveReward   = 1
	franticPenalty     = 2
	inactivityPenalty  = 3
	visibilityPenalty  = 5
	inactivityLimit    = 30 * time.Second
	recentSampleWindow = 20
)

// FocusStatus is the qualitative band of a focus score
type FocusStatus string

const (
	StatusExcellent FocusStatus = "Excellent"
	StatusGood      FocusStatus = "Good"
	StatusModerate  FocusStatus = "Moderate"
	StatusLow       FocusStatus = "Low"
)

// StatusFor maps a score to its band
func StatusFor(score int) FocusStatus {
	switch {
	case score >= 80:
		return StatusExcellent
	case score >= 60:
		return StatusGood
	case score >= 40:
		return StatusModerate
	default:
		return StatusLow
	}
}

// ActivitySample is the outcome of one estimator tick
type ActivitySample struct {
	At    time.Time
	Level int
	Score int
}

// ActivityState is a read-only view of the estimator
type ActivityState struct {
	Active       bool
	MouseCount   int
	KeyCount     int
	FocusScore   int
	Distractions int
	LastActivity time.Time
	StartedAt    time.Time
	Recent       []ActivitySample
}

// Estimator turns raw input counts into a focus score during a monitoring window.
// Not safe for concurrent use.
type Estimator struct {
	active       bool
	distractions int
	keys         int
	lastActivity time.Time
	mouse        int
	recent       []ActivitySample
	score        int
	startedAt    time.Time
}

// NewEstimator creates an inactive estimator
func NewEstimator() *Estimator {
	return &Estimator{score: InitialFocusScore}
}

// Start opens a fresh monitoring window. Returns false if one is already open.
func (e *Estimator) Start(now time.Time) bool {
	if e.active {
		return false
	}
	e.reset()
	e.active = true
	e.startedAt = now
	e.lastActivity = now
	return true
}

func (e *Estimator) reset() {
	e.active = false
	e.distractions = 0
	e.keys = 0
	e.mouse = 0
	e.recent = nil
	e.score = InitialFocusScore
	e.startedAt = time.Time{}
	e.lastActivity = time.Time{}
}

// Active reports whether a window is open
func (e *Estimator) Active() bool {
	return e.active
}

// RecordMouseMove counts a pointer movement. Ignored outside a window.
func (e *Estimator) RecordMouseMove(now time.Time) {
	if !e.active {
		return
	}
	e.mouse++
	e.lastActivity = now
}

// RecordKeyPress counts a key press. Ignored outside a window.
func (e *Estimator) RecordKeyPress(now time.Time) {
	if !e.active {
		return
	}
	e.keys++
	e.lastActivity = now
}

// VisibilityLost applies the distraction penalty immediately.
// Returns false when no window is open.
func (e *Estimator) VisibilityLost() bool {
	if !e.active {
		return false
	}
	e.distractions++
	e.score = max(0, e.score-visibilityPenalty)
	return true
}

// Tick evaluates the counts accumulated since the previous tick, adjusts the score
// and clears the counts. Returns false when no window is open.
func (e *Estimator) Tick(now time.Time) (ActivitySample, bool) {
	if !e.active {
		return ActivitySample{}, false
	}

	level := e.mouse + 2*e.keys
	switch {
	case level > productiveLevelMin && level < productiveLevelMax:
		e.score = min(InitialFocusScore, e.score+productiveReward)
	case level > franticLevelMin:
		e.score = max(0, e.score-franticPenalty)
	case now.Sub(e.lastActivity) > inactivityLimit:
		e.score = max(0, e.score-inactivityPenalty)
	}

	e.mouse = 0
	e.keys = 0

	sample := ActivitySample{At: now, Level: level, Score: e.score}
	e.recent = append(e.recent, sample)
	if len(e.recent) > recentSampleWindow {
		e.recent = e.recent[len(e.recent)-recentSampleWindow:]
	}

	return sample, true
}

// Stop closes the window and returns its summary record. Returns false when no window is open.
func (e *Estimator) Stop(now time.Time) (ActivitySessionRecord, bool) {
	if !e.active {
		return ActivitySessionRecord{}, false
	}

	record := ActivitySessionRecord{
		StartTime:         NewEpochMillis(e.startedAt),
		EndTime:           NewEpochMillis(now),
		FinalFocusScore:   e.score,
		TotalDistractions: e.distractions,
	}
	e.reset()
	return record, true
}

// Elapsed returns how long the current window has been open
func (e *Estimator) Elapsed(now time.Time) time.Duration {
	if !e.active {
		return 0
	}
	return now.Sub(e.startedAt)
}

// State returns a snapshot of the estimator
func (e *Estimator) State() ActivityState {
	recent := make([]ActivitySample, len(e.recent))
	copy(recent, e.recent)
	return ActivityState{
		Active:       e.active,
		MouseCount:   e.mouse,
		KeyCount:     e.keys,
		FocusScore:   e.score,
		Distractions: e.distractions,
		LastActivity: e.lastActivity,
		StartedAt:    e.startedAt,
		Recent:       recent,
	}
}
