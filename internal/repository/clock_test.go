package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreationClock_StrictlyIncreasing(t *testing.T) {
	frozen := time.Date(2025, 3, 1, 9, 0, 0, 123456789, time.FixedZone("CET", 3600))
	clock := &creationClock{now: func() time.Time { return frozen }}

	first := clock.Next()
	second := clock.Next()
	third := clock.Next()

	assert.Equal(t, time.UTC, first.Location())
	assert.Equal(t, frozen.UTC().Truncate(time.Microsecond), first)
	assert.Equal(t, first.Add(time.Microsecond), second)
	assert.Equal(t, second.Add(time.Microsecond), third)
}

func TestCreationClock_FollowsWallClockForward(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := &creationClock{now: func() time.Time { return now }}

	first := clock.Next()
	now = now.Add(time.Second)
	assert.Equal(t, first.Add(time.Second), clock.Next())

	// a clock step backwards never reorders rows
	now = now.Add(-time.Minute)
	assert.True(t, clock.Next().After(first.Add(time.Second)))
}

// freezeCreationClock pins the wall clock seen by GORM creates.
func freezeCreationClock(t *testing.T, at time.Time) {
	t.Helper()
	previous := createdClock
	createdClock = &creationClock{now: func() time.Time { return at }}
	t.Cleanup(func() { createdClock = previous })
}
