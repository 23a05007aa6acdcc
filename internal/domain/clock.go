package domain

import "time"

// Clock supplies the current instant. A planning pass captures it exactly once
// so day-boundary arithmetic stays internally consistent across the pass.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant; used to pin time in tests.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Instant
}
