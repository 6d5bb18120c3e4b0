package common

import "testing"

func TestTimerOneShot(t *testing.T) {
	tm := NewTimer(0.3)

	tm.Tick(0.1)
	if tm.JustFinished() || tm.Finished() {
		t.Fatal("timer should not finish at 0.1/0.3")
	}

	tm.Tick(0.25)
	if !tm.JustFinished() {
		t.Fatal("timer should report JustFinished on the crossing tick")
	}
	if !tm.Finished() {
		t.Fatal("one-shot timer should latch Finished")
	}

	tm.Tick(1.0)
	if tm.JustFinished() {
		t.Fatal("JustFinished must only be true on the crossing tick")
	}
	if !tm.Finished() {
		t.Fatal("Finished should stay latched")
	}
}

func TestTimerRepeatingWraps(t *testing.T) {
	tm := NewRepeatingTimer(0.6)

	tm.Tick(0.5)
	if tm.JustFinished() {
		t.Fatal("should not finish yet")
	}
	tm.Tick(0.2)
	if !tm.JustFinished() {
		t.Fatal("should finish after 0.7 total")
	}
	if got := tm.Elapsed(); got < 0.0999 || got > 0.1001 {
		t.Fatalf("elapsed should wrap to ~0.1, got %v", got)
	}

	tm.Tick(0.1)
	if tm.JustFinished() {
		t.Fatal("finished flag should clear on the next tick")
	}
}

func TestTimerRepeatingFiresOncePerTick(t *testing.T) {
	// A huge delta spanning many periods still reports a single completion.
	tm := NewRepeatingTimer(0.6)
	tm.Tick(10)
	if !tm.JustFinished() {
		t.Fatal("expected a completion")
	}

	fired := 1
	for i := 0; i < 100; i++ {
		tm.Tick(0)
		if tm.JustFinished() {
			fired++
		}
	}
	// Excess elapsed time drains one period per tick.
	if fired != 16 {
		t.Fatalf("expected 16 total completions over catch-up ticks, got %d", fired)
	}
}

func TestTimerPausedNeverFinishes(t *testing.T) {
	tm := NewRepeatingTimer(0.5)
	tm.Pause()
	for i := 0; i < 10; i++ {
		tm.Tick(1.0)
		if tm.JustFinished() {
			t.Fatal("paused timer must never report JustFinished")
		}
	}
	if tm.Elapsed() != 0 {
		t.Fatalf("paused timer must not advance, elapsed = %v", tm.Elapsed())
	}

	tm.Unpause()
	tm.Tick(0.5)
	if !tm.JustFinished() {
		t.Fatal("unpaused timer should finish")
	}
}

func TestTimerResetKeepsPauseState(t *testing.T) {
	tm := NewRepeatingTimer(0.5)
	tm.Pause()
	tm.Reset()
	if !tm.Paused() {
		t.Fatal("Reset must not unpause")
	}

	tm.Unpause()
	tm.Tick(0.4)
	tm.Reset()
	if tm.Elapsed() != 0 {
		t.Fatalf("Reset should zero elapsed, got %v", tm.Elapsed())
	}
	tm.Tick(0.4)
	if tm.JustFinished() {
		t.Fatal("should need a full period after Reset")
	}
}
