// Package score tracks the score, the combo meter and the combo multiplier.
package score

// DefaultComboStep is the meter gain per correct keystroke.
const DefaultComboStep = 0.1

// meterEpsilon absorbs float drift so ten 0.1 steps fill the meter.
const meterEpsilon = 1e-9

// Tracker is the score/combo state read by hosts and written only by the
// matching engine.
type Tracker struct {
	score    uint64
	modifier uint32
	meter    float64
	step     float64
}

func NewTracker(step float64) *Tracker {
	t := &Tracker{}
	t.SetStep(step)
	t.Reset()
	return t
}

// SetStep changes the per-keystroke meter gain. Non-positive values select
// the default.
func (t *Tracker) SetStep(step float64) {
	if step <= 0 || step > 1 {
		step = DefaultComboStep
	}
	t.step = step
}

// Reset starts a fresh round: score 0, multiplier 1, empty meter.
func (t *Tracker) Reset() {
	t.score = 0
	t.ResetCombo()
}

func (t *Tracker) Score() uint64 {
	return t.score
}

// Modifier is the current combo multiplier, never below 1.
func (t *Tracker) Modifier() uint32 {
	if t.modifier == 0 {
		return 1
	}
	return t.modifier
}

// Meter is the combo progress in [0, 1).
func (t *Tracker) Meter() float64 {
	return t.meter
}

// Hit records a correct keystroke. When the meter fills it empties and the
// multiplier goes up by one.
func (t *Tracker) Hit() {
	if t.step <= 0 {
		t.SetStep(0)
	}
	t.meter += t.step
	if t.meter >= 1-meterEpsilon {
		t.meter = 0
		t.modifier = t.Modifier() + 1
	}
}

// ResetCombo drops the multiplier to 1 and empties the meter.
func (t *Tracker) ResetCombo() {
	t.modifier = 1
	t.meter = 0
}

// Award adds wordLen times the current multiplier and returns the points.
func (t *Tracker) Award(wordLen int) uint64 {
	if wordLen <= 0 {
		return 0
	}
	points := uint64(wordLen) * uint64(t.Modifier())
	t.score += points
	return points
}
