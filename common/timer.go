package common

// Timer is a repeating simulation-time timer measured in seconds.
type Timer struct {
	duration float64
	elapsed  float64
}

func NewTimer(seconds float64) *Timer {
	return &Timer{duration: seconds}
}

// Tick advances the timer by dt and reports whether it elapsed during this
// tick. A tick that spans several periods still reports a single finish.
func (t *Timer) Tick(dt float64) bool {
	if t == nil || t.duration <= 0 || dt <= 0 {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.duration {
		return false
	}
	for t.elapsed >= t.duration {
		t.elapsed -= t.duration
	}
	return true
}

func (t *Timer) Duration() float64 {
	if t == nil {
		return 0
	}
	return t.duration
}

// SetDuration changes the period without resetting progress.
func (t *Timer) SetDuration(seconds float64) {
	if t == nil {
		return
	}
	t.duration = seconds
}

func (t *Timer) Elapsed() float64 {
	if t == nil {
		return 0
	}
	return t.elapsed
}

func (t *Timer) Reset() {
	if t == nil {
		return
	}
	t.elapsed = 0
}
