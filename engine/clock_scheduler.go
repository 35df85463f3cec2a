package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/mask-arena/engine/fsm"
	"github.com/lixenwraith/mask-arena/event"
	"github.com/lixenwraith/mask-arena/status"
)

// UpdateFunc runs the per-step logic after events and FSM tick transitions
type UpdateFunc[T any] func(ctx T, now time.Time, dt time.Duration)

// ClockScheduler steps match logic on a fixed tick
// All state owned by ctx is mutated on the scheduler goroutine or under RunSafe
type ClockScheduler[T any] struct {
	ctx     T
	clock   Clock
	queue   *event.EventQueue
	router  *event.Router[T]
	machine *fsm.Machine[T]
	update  UpdateFunc[T]
	logger  *slog.Logger

	tickInterval     time.Duration
	lastTickTime     time.Time
	nextTickDeadline time.Time

	tickCount atomic.Uint64
	mu        sync.Mutex

	// Signalled after each processed tick, non-blocking
	updateDone chan struct{}

	statTicks   *atomic.Int64
	statPending *atomic.Int64
}

// NewClockScheduler creates a scheduler for ctx, ticking every tickInterval
func NewClockScheduler[T any](
	ctx T,
	clock Clock,
	queue *event.EventQueue,
	tickInterval time.Duration,
	reg *status.Registry,
	logger *slog.Logger,
) *ClockScheduler[T] {
	if logger == nil {
		logger = slog.Default()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &ClockScheduler[T]{
		ctx:          ctx,
		clock:        clock,
		queue:        queue,
		router:       event.NewRouter[T](),
		logger:       logger,
		tickInterval: tickInterval,
		updateDone:   make(chan struct{}, 1),
		statTicks:    reg.Ints.Get("engine.ticks"),
		statPending:  reg.Ints.Get("engine.events"),
	}
}

// RegisterEventHandler adds an event handler to router, must be called before Run
func (cs *ClockScheduler[T]) RegisterEventHandler(handler event.Handler[T]) {
	cs.router.Register(handler)
}

// SetMachine attaches the FSM that sees every event before router handlers
func (cs *ClockScheduler[T]) SetMachine(m *fsm.Machine[T]) {
	cs.machine = m
}

// SetUpdate sets the per-step logic
func (cs *ClockScheduler[T]) SetUpdate(fn UpdateFunc[T]) {
	cs.update = fn
}

// Updates signals after each processed tick
func (cs *ClockScheduler[T]) Updates() <-chan struct{} {
	return cs.updateDone
}

// TickCount returns processed ticks since creation
func (cs *ClockScheduler[T]) TickCount() uint64 {
	return cs.tickCount.Load()
}

// RunSafe executes fn while no tick is in progress
// Render and test code use it to read state owned by the scheduler
func (cs *ClockScheduler[T]) RunSafe(fn func()) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	fn()
}

// Run drives ticks until ctx is cancelled
func (cs *ClockScheduler[T]) Run(ctx context.Context) error {
	if cs.tickInterval <= 0 {
		return fmt.Errorf("invalid tick interval %v", cs.tickInterval)
	}

	now := cs.clock.Now()
	cs.mu.Lock()
	cs.lastTickTime = now
	cs.nextTickDeadline = now.Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	cs.logger.Debug("scheduler started", "tick", cs.tickInterval)

	for {
		select {
		case <-ctx.Done():
			cs.logger.Debug("scheduler stopped", "ticks", cs.tickCount.Load())
			return nil
		case <-timer.C:
		}

		now := cs.clock.Now()
		if !now.Before(cs.nextTickDeadline) {
			cs.Tick()

			cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
			// Drop missed ticks instead of bursting after a stall
			if now.Sub(cs.nextTickDeadline) > cs.tickInterval*2 {
				cs.nextTickDeadline = now.Add(cs.tickInterval)
			}
		}

		sleep := cs.nextTickDeadline.Sub(cs.clock.Now())
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}

// Tick processes one step at the clock's current time
// Order: queued events (FSM first, then router handlers), FSM tick transitions, update
func (cs *ClockScheduler[T]) Tick() {
	cs.mu.Lock()

	now := cs.clock.Now()
	dt := cs.tickInterval
	if !cs.lastTickTime.IsZero() {
		dt = now.Sub(cs.lastTickTime)
		if dt < 0 {
			dt = 0
		}
	}
	cs.lastTickTime = now

	cs.statPending.Store(int64(cs.queue.Len()))
	cs.dispatchEvents()

	if cs.machine != nil {
		cs.machine.Update(cs.ctx, dt)
	}
	if cs.update != nil {
		cs.update(cs.ctx, now, dt)
	}

	ticks := cs.tickCount.Add(1)
	cs.statTicks.Store(int64(ticks))
	cs.mu.Unlock()

	select {
	case cs.updateDone <- struct{}{}:
	default:
	}
}

// dispatchEvents processes pending events through FSM then router
func (cs *ClockScheduler[T]) dispatchEvents() {
	for _, ev := range cs.queue.Consume() {
		fsmHandled := false
		if cs.machine != nil {
			fsmHandled = cs.machine.HandleEvent(cs.ctx, ev.Type)
		}
		routed := cs.router.Dispatch(cs.ctx, ev)
		if !fsmHandled && !routed {
			cs.logger.Debug("event ignored", "event", event.GetEventName(ev.Type))
		}
	}
}
