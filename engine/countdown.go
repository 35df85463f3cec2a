package engine

import "time"

// Countdown is a stepped task with an explicit ticks-remaining counter
// Start(n) emits n immediately, then n-1 .. 1 once per step interval, then completes
type Countdown struct {
	step      time.Duration
	remaining int
	elapsed   time.Duration
	running   bool

	ticks Observers[int]
	done  Observers[struct{}]
}

// NewCountdown creates an idle countdown advancing one count per step
func NewCountdown(step time.Duration) *Countdown {
	if step <= 0 {
		step = time.Second
	}
	return &Countdown{step: step}
}

// Start (re)arms the countdown from n and emits the first tick
// n <= 0 completes on the next Update
func (c *Countdown) Start(n int) {
	if n < 0 {
		n = 0
	}
	c.remaining = n
	c.elapsed = 0
	c.running = true
	if n > 0 {
		c.ticks.Notify(n)
	}
}

// Cancel stops the countdown without completing
func (c *Countdown) Cancel() {
	c.running = false
	c.elapsed = 0
}

// Update advances by dt, consuming whole step intervals
func (c *Countdown) Update(dt time.Duration) {
	if !c.running {
		return
	}

	if c.remaining <= 0 {
		c.finish()
		return
	}

	c.elapsed += dt
	for c.running && c.elapsed >= c.step {
		c.elapsed -= c.step
		c.remaining--
		if c.remaining > 0 {
			c.ticks.Notify(c.remaining)
			continue
		}
		c.finish()
	}
}

func (c *Countdown) finish() {
	c.running = false
	c.remaining = 0
	c.elapsed = 0
	c.done.Notify(struct{}{})
}

// OnTick subscribes to count notifications
func (c *Countdown) OnTick(fn func(remaining int)) (unsubscribe func()) {
	return c.ticks.Subscribe(fn)
}

// OnDone subscribes to the completion notification
func (c *Countdown) OnDone(fn func()) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	return c.done.Subscribe(func(struct{}) { fn() })
}

func (c *Countdown) Remaining() int { return c.remaining }
func (c *Countdown) Running() bool  { return c.running }

// Progress returns the fraction of the current step elapsed, in [0,1)
func (c *Countdown) Progress() float64 {
	if !c.running {
		return 0
	}
	return float64(c.elapsed) / float64(c.step)
}
