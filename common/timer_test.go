package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimerRepeats(t *testing.T) {
	tm := NewTimer(1.0)

	assert.False(t, tm.Tick(0.5))
	assert.True(t, tm.Tick(0.5))
	assert.InDelta(t, 0.0, tm.Elapsed(), 1e-9)
	assert.False(t, tm.Tick(0.25))
	assert.True(t, tm.Tick(2.0), "a long tick finishes once")
	assert.Less(t, tm.Elapsed(), 1.0)
}

func TestTimerSetDurationKeepsProgress(t *testing.T) {
	tm := NewTimer(2.0)
	tm.Tick(1.5)
	tm.SetDuration(1.0)
	assert.True(t, tm.Tick(0.1))

	tm.Reset()
	assert.Zero(t, tm.Elapsed())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 40.0, Clamp(90, -40, 40))
	assert.Equal(t, -40.0, Clamp(-90, -40, 40))
	assert.Equal(t, 12.5, Clamp(12.5, -40, 40))
}
