package engine

import (
	"testing"
	"time"
)

func TestCountdownEmitsEachSecond(t *testing.T) {
	c := NewCountdown(time.Second)
	var counts []int
	done := 0
	c.OnTick(func(n int) { counts = append(counts, n) })
	c.OnDone(func() { done++ })

	c.Start(3)
	if len(counts) != 1 || counts[0] != 3 {
		t.Fatalf("Start should emit 3 immediately, got %v", counts)
	}

	// 16ms frames for a little over three seconds
	for i := 0; i < 190; i++ {
		c.Update(16 * time.Millisecond)
	}

	want := []int{3, 2, 1}
	if len(counts) != len(want) {
		t.Fatalf("counts = %v, want %v", counts, want)
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("count %d = %d, want %d", i, counts[i], want[i])
		}
	}
	if done != 1 {
		t.Errorf("done = %d, want 1", done)
	}
	if c.Running() {
		t.Error("countdown should be idle after completion")
	}
}

func TestCountdownLargeStepCompletes(t *testing.T) {
	c := NewCountdown(time.Second)
	var counts []int
	done := 0
	c.OnTick(func(n int) { counts = append(counts, n) })
	c.OnDone(func() { done++ })

	c.Start(2)
	c.Update(5 * time.Second)
	if done != 1 || len(counts) != 2 {
		t.Errorf("done = %d counts = %v", done, counts)
	}
	c.Update(5 * time.Second)
	if done != 1 {
		t.Error("completed twice")
	}
}

func TestCountdownZeroCompletesOnNextUpdate(t *testing.T) {
	c := NewCountdown(time.Second)
	done := 0
	ticks := 0
	c.OnTick(func(int) { ticks++ })
	c.OnDone(func() { done++ })

	c.Start(0)
	if done != 0 {
		t.Fatal("completion should wait for a step")
	}
	c.Update(0)
	if done != 1 || ticks != 0 {
		t.Errorf("done = %d ticks = %d, want 1 and 0", done, ticks)
	}
}

func TestCountdownCancel(t *testing.T) {
	c := NewCountdown(time.Second)
	done := 0
	c.OnDone(func() { done++ })
	c.Start(1)
	c.Update(500 * time.Millisecond)
	if p := c.Progress(); p < 0.49 || p > 0.51 {
		t.Errorf("Progress = %v, want 0.5", p)
	}
	c.Cancel()
	c.Update(2 * time.Second)
	if done != 0 {
		t.Error("cancelled countdown completed")
	}
}
