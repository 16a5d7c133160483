package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComboFillsAfterTenHits(t *testing.T) {
	tr := NewTracker(DefaultComboStep)
	for i := 0; i < 9; i++ {
		tr.Hit()
	}
	assert.Equal(t, uint32(1), tr.Modifier())
	assert.InDelta(t, 0.9, tr.Meter(), 1e-9)

	tr.Hit()
	assert.Equal(t, uint32(2), tr.Modifier())
	assert.Zero(t, tr.Meter())
}

func TestAwardUsesModifierAtThatInstant(t *testing.T) {
	tr := NewTracker(0.5)
	assert.Equal(t, uint64(3), tr.Award(3))

	tr.Hit()
	tr.Hit()
	assert.Equal(t, uint32(2), tr.Modifier())
	assert.Equal(t, uint64(8), tr.Award(4))
	assert.Equal(t, uint64(11), tr.Score())
	assert.Zero(t, tr.Award(0))
}

func TestResetCombo(t *testing.T) {
	tr := NewTracker(0.5)
	for i := 0; i < 7; i++ {
		tr.Hit()
	}
	tr.Award(5)
	before := tr.Score()

	tr.ResetCombo()
	assert.Equal(t, uint32(1), tr.Modifier())
	assert.Zero(t, tr.Meter())
	assert.Equal(t, before, tr.Score(), "score is never reduced")
}

func TestInvalidStepFallsBack(t *testing.T) {
	tr := NewTracker(0)
	tr.Hit()
	assert.InDelta(t, DefaultComboStep, tr.Meter(), 1e-9)

	var zero Tracker
	assert.Equal(t, uint32(1), zero.Modifier())
}
