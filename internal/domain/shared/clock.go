package shared

import "time"

// Clock abstracts the current time so journal timestamps can be pinned in tests
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the actual system time
type RealClock struct{}

// Now returns the current system time in UTC
func (r *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// MockClock implements Clock with a controllable time for testing
type MockClock struct {
	CurrentTime time.Time
}

func (m *MockClock) Now() time.Time {
	return m.CurrentTime
}

// Advance moves the mock clock forward by the given duration
func (m *MockClock) Advance(d time.Duration) {
	m.CurrentTime = m.CurrentTime.Add(d)
}

// NewMockClock creates a MockClock starting at the given time.
// A zero time starts at the current time.
func NewMockClock(startTime time.Time) *MockClock {
	if startTime.IsZero() {
		startTime = time.Now()
	}
	return &MockClock{CurrentTime: startTime}
}

// NewRealClock creates a RealClock instance
func NewRealClock() Clock {
	return &RealClock{}
}
