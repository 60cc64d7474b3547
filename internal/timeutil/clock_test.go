package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClockNowIsCurrent(t *testing.T) {
	clock := RealClock{}
	before := time.Now()
	now := clock.Now()
	after := time.Now()

	assert.False(t, now.Before(before))
	assert.False(t, now.After(after))
}

func TestMockClockNowReturnsFixedTime(t *testing.T) {
	fixed := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	clock := NewMockClock(fixed)
	assert.True(t, clock.Now().Equal(fixed))
}

func TestMockClockAdvanceMovesForward(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewMockClock(start)

	clock.Advance(50 * time.Millisecond)
	clock.Advance(50 * time.Millisecond)

	assert.True(t, clock.Now().Equal(start.Add(100*time.Millisecond)))
}

func TestMockClockIsStableAcrossReads(t *testing.T) {
	clock := NewMockClock(time.Unix(0, 0))
	first := clock.Now()
	second := clock.Now()
	assert.Equal(t, first, second, "Now must not advance on its own between two reads in the same tick")
}
