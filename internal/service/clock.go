package service

import "time"

// Clock supplies "now" so that anything depending on the current calendar
// day (streaks, overdue checks, quick planning) can be pinned in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-clock Clock used in production.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
