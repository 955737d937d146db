package mocks

import (
	"time"

	"github.com/mcoot/sugoroku/internal/dependencies/clock"
)

// MockClock returns a fixed time that tests move by hand
type MockClock struct {
	CurrentTime time.Time

	// Step is added after every Now call when non-zero, so successive
	// games finish at distinct times
	Step time.Duration
}

var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// Now returns the mocked current time
func (c *MockClock) Now() time.Time {
	now := c.CurrentTime
	c.CurrentTime = c.CurrentTime.Add(c.Step)
	return now
}

// Advance moves the clock forward by the given duration
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}
