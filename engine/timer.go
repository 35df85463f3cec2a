package engine

import "time"

// Timer counts a duration down once per scheduling step
// Emits a tick with the remaining time every running step and one completion when it reaches zero
type Timer struct {
	duration  time.Duration
	remaining time.Duration
	running   bool

	ticks    Observers[time.Duration]
	complete Observers[struct{}]
}

// NewTimer creates a stopped timer with the given duration
func NewTimer(d time.Duration) *Timer {
	t := &Timer{}
	t.SetDuration(d)
	return t
}

// SetDuration sets the target and resets remaining time, does not start
func (t *Timer) SetDuration(d time.Duration) {
	t.duration = d
	t.remaining = clampRemaining(d, d)
}

// Start begins counting from the full duration, no-op while running
func (t *Timer) Start() {
	if t.running {
		return
	}
	t.remaining = clampRemaining(t.duration, t.duration)
	t.running = true
}

// Stop halts counting without altering remaining time, no-op while stopped
func (t *Timer) Stop() {
	t.running = false
}

// Reset stops the timer, restores remaining to duration and emits an immediate tick
func (t *Timer) Reset() {
	t.running = false
	t.remaining = clampRemaining(t.duration, t.duration)
	t.ticks.Notify(t.remaining)
}

// Update advances one scheduling step by dt
func (t *Timer) Update(dt time.Duration) {
	if !t.running {
		return
	}
	if dt < 0 {
		dt = 0
	}

	t.remaining = clampRemaining(t.remaining-dt, t.duration)
	t.ticks.Notify(t.remaining)

	if t.remaining == 0 {
		t.running = false
		t.complete.Notify(struct{}{})
	}
}

// OnTick subscribes to per-step remaining time notifications
func (t *Timer) OnTick(fn func(remaining time.Duration)) (unsubscribe func()) {
	return t.ticks.Subscribe(fn)
}

// OnComplete subscribes to the completion notification
func (t *Timer) OnComplete(fn func()) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	return t.complete.Subscribe(func(struct{}) { fn() })
}

func (t *Timer) Remaining() time.Duration { return t.remaining }
func (t *Timer) Running() bool            { return t.running }
func (t *Timer) Duration() time.Duration  { return t.duration }

// clampRemaining bounds r to [0, max(d, 0)]
func clampRemaining(r, d time.Duration) time.Duration {
	if d < 0 {
		d = 0
	}
	if r < 0 {
		return 0
	}
	if r > d {
		return d
	}
	return r
}
