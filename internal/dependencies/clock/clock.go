package clock

import "time"

// Clock stamps game starts and finishes. Mocked in tests.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock in UTC at millisecond precision, the
// precision the redis results index sorts by
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
