package engine

import (
	"testing"
	"time"

	"pgregory.net/rapid"
)

func TestTimerSetDurationDoesNotStart(t *testing.T) {
	tm := NewTimer(3 * time.Second)
	if tm.Running() {
		t.Fatal("new timer should not run")
	}
	tm.Update(time.Second)
	if tm.Remaining() != 3*time.Second {
		t.Errorf("stopped timer advanced to %v", tm.Remaining())
	}
}

func TestTimerCountsDownAndCompletesOnce(t *testing.T) {
	tm := NewTimer(time.Second)
	var ticks []time.Duration
	completions := 0
	tm.OnTick(func(r time.Duration) { ticks = append(ticks, r) })
	tm.OnComplete(func() { completions++ })

	tm.Start()
	for i := 0; i < 6; i++ {
		tm.Update(300 * time.Millisecond)
	}

	want := []time.Duration{700 * time.Millisecond, 400 * time.Millisecond, 100 * time.Millisecond, 0}
	if len(ticks) != len(want) {
		t.Fatalf("ticks = %v, want %v", ticks, want)
	}
	for i := range want {
		if ticks[i] != want[i] {
			t.Errorf("tick %d = %v, want %v", i, ticks[i], want[i])
		}
	}
	if completions != 1 {
		t.Errorf("completions = %d, want 1", completions)
	}
	if tm.Running() {
		t.Error("timer should stop itself at zero")
	}
}

func TestTimerStartIsIdempotent(t *testing.T) {
	tm := NewTimer(time.Second)
	tm.Start()
	tm.Update(400 * time.Millisecond)
	tm.Start()
	if tm.Remaining() != 600*time.Millisecond {
		t.Errorf("second Start reset remaining to %v", tm.Remaining())
	}
}

func TestTimerStopKeepsRemaining(t *testing.T) {
	tm := NewTimer(time.Second)
	tm.Start()
	tm.Update(250 * time.Millisecond)
	tm.Stop()
	tm.Stop()
	tm.Update(250 * time.Millisecond)
	if tm.Remaining() != 750*time.Millisecond {
		t.Errorf("remaining = %v after stop, want 750ms", tm.Remaining())
	}

	// Restart resets to full duration
	tm.Start()
	if tm.Remaining() != time.Second {
		t.Errorf("restart remaining = %v, want 1s", tm.Remaining())
	}
}

func TestTimerResetEmitsTick(t *testing.T) {
	tm := NewTimer(2 * time.Second)
	var last time.Duration = -1
	tm.OnTick(func(r time.Duration) { last = r })

	tm.Start()
	tm.Update(time.Second)
	tm.Reset()

	if tm.Running() {
		t.Error("Reset should stop the timer")
	}
	if last != 2*time.Second || tm.Remaining() != 2*time.Second {
		t.Errorf("reset tick = %v remaining = %v, want 2s", last, tm.Remaining())
	}
}

func TestTimerZeroAndNegativeDuration(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second} {
		tm := NewTimer(d)
		done := 0
		tm.OnComplete(func() { done++ })
		tm.Start()
		tm.Update(0)
		if done != 1 {
			t.Errorf("duration %v: completions = %d, want 1 on first step", d, done)
		}
		if tm.Remaining() != 0 {
			t.Errorf("duration %v: remaining = %v", d, tm.Remaining())
		}
	}
}

func TestTimerUnsubscribe(t *testing.T) {
	tm := NewTimer(time.Second)
	calls := 0
	unsub := tm.OnTick(func(time.Duration) { calls++ })
	tm.Start()
	tm.Update(100 * time.Millisecond)
	unsub()
	tm.Update(100 * time.Millisecond)
	if calls != 1 {
		t.Errorf("calls = %d after unsubscribe, want 1", calls)
	}
}

func TestTimerProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := time.Duration(rapid.Int64Range(0, 5000).Draw(t, "ms")) * time.Millisecond
		tm := NewTimer(d)
		completions := 0
		tm.OnComplete(func() { completions++ })
		tm.Start()

		prev := tm.Remaining()
		steps := rapid.IntRange(1, 200).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			dt := time.Duration(rapid.Int64Range(0, 100).Draw(t, "dt")) * time.Millisecond
			tm.Update(dt)
			r := tm.Remaining()
			if r < 0 || r > d {
				t.Fatalf("remaining %v outside [0,%v]", r, d)
			}
			if r > prev {
				t.Fatalf("remaining grew from %v to %v", prev, r)
			}
			prev = r
		}
		if completions > 1 {
			t.Fatalf("completed %d times", completions)
		}
		if (completions == 1) != (tm.Remaining() == 0) {
			t.Fatalf("completion %d inconsistent with remaining %v", completions, tm.Remaining())
		}
	})
}
