package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMockClock(t *testing.T) {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := NewMockClock(start)

	clock.Advance(90 * time.Minute)

	assert.Equal(t, start.Add(90*time.Minute), clock.Now())
}

func TestMockClock_ZeroStartsNow(t *testing.T) {
	before := time.Now()

	clock := NewMockClock(time.Time{})

	assert.False(t, clock.Now().Before(before))
	assert.WithinDuration(t, time.Now(), clock.Now(), time.Minute)
}
