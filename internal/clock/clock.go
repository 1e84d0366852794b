package clock

import "time"

// Clock abstracts time so timers, streaks and day boundaries stay deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in local time; day boundaries follow the user's zone.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
