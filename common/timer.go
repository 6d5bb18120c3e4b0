package common

// Timer is a pausable countdown measured in seconds. Repeating timers wrap
// when the period elapses; one-shot timers latch finished. JustFinished is
// true only for the tick in which the countdown crossed its period, and a
// repeating timer reports it at most once per Tick no matter how large the
// delta was.
type Timer struct {
	elapsed      float64
	period       float64
	repeating    bool
	paused       bool
	finished     bool
	justFinished bool
}

// NewTimer returns a running one-shot timer.
func NewTimer(period float64) *Timer {
	return &Timer{period: period}
}

// NewRepeatingTimer returns a running repeating timer.
func NewRepeatingTimer(period float64) *Timer {
	return &Timer{period: period, repeating: true}
}

// Tick advances the timer by dt seconds. A paused timer does not advance and
// never reports JustFinished.
func (t *Timer) Tick(dt float64) {
	t.justFinished = false
	if t.paused {
		return
	}
	if t.finished && !t.repeating {
		return
	}

	t.elapsed += dt
	if t.elapsed < t.period {
		return
	}

	t.justFinished = true
	if t.repeating {
		t.elapsed -= t.period
	} else {
		t.elapsed = t.period
		t.finished = true
	}
}

// Reset zeroes the elapsed time and clears the finished flags. It does not
// change the paused state.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.justFinished = false
}

// Pause stops the timer without resetting its elapsed time.
func (t *Timer) Pause() {
	t.paused = true
}

// Unpause resumes a paused timer.
func (t *Timer) Unpause() {
	t.paused = false
}

// Paused reports whether the timer is paused.
func (t *Timer) Paused() bool {
	return t.paused
}

// JustFinished reports whether the countdown crossed its period during the
// most recent Tick.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Finished reports whether a one-shot timer has completed.
func (t *Timer) Finished() bool {
	return t.finished
}

// Elapsed returns the accumulated time in seconds.
func (t *Timer) Elapsed() float64 {
	return t.elapsed
}
