// Package match drives the match lifecycle: start screen, countdown, play and result
package match

import (
	_ "embed"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/mask-arena/combat"
	"github.com/lixenwraith/mask-arena/core"
	"github.com/lixenwraith/mask-arena/engine"
	"github.com/lixenwraith/mask-arena/engine/fsm"
	"github.com/lixenwraith/mask-arena/event"
	"github.com/lixenwraith/mask-arena/status"
	"github.com/lixenwraith/mask-arena/vmath"
)

//go:embed phase_graph.toml
var phaseGraph string

// PhaseGraph returns the embedded phase graph definition
func PhaseGraph() string {
	return phaseGraph
}

// Spawner is the pickup scheduler as seen by the controller
type Spawner interface {
	HandleStateChange(playing bool)
	StartSpawning(now time.Time)
	StopSpawning()
	ClearAll()
	Update(now time.Time)
}

// EntityFactory builds the entity for a seat at its spawn point
type EntityFactory func(id core.EntityID, spawn vmath.Vec2) *combat.Entity

// Config holds the match rules
type Config struct {
	CountdownSeconds int
	CountdownStep    time.Duration
	Duration         time.Duration
	MaxHealth        int
	Stats            combat.Stats
	// Spawns are the seat spawn points, index 0 is Player1
	Spawns [2]vmath.Vec2
}

// Deps groups the controller's collaborators
type Deps struct {
	Clock   engine.Clock
	Spawner Spawner
	// Factory is invoked once per seat on first entry into play; nil uses combat.NewEntity
	Factory EntityFactory
	// Entities may pre-supply seats; missing ones come from Factory
	Entities [2]*combat.Entity
	// FSMPath overrides the embedded phase graph
	FSMPath string
	Status  *status.Registry
	Logger  *slog.Logger
}

// Controller is the single writer of the match phase
// All methods must run on the scheduler goroutine
type Controller struct {
	cfg      Config
	clock    engine.Clock
	spawner  Spawner
	factory  EntityFactory
	logger   *slog.Logger
	machine  *fsm.Machine[*Controller]
	resolver *combat.Resolver

	phaseOf map[fsm.StateID]Phase

	entities  [2]*combat.Entity
	countdown *engine.Countdown
	timer     *engine.Timer

	matchID       uuid.UUID
	startedAt     time.Time
	pendingWinner core.Option[core.EntityID]
	endReason     EndReason
	result        core.Option[EndResult]

	stateChanges engine.Observers[StateChange]
	countdowns   engine.Observers[int]
	timerTicks   engine.Observers[time.Duration]
	attacks      engine.Observers[combat.Result]
	matchEnds    engine.Observers[EndResult]

	statPhase     *status.AtomicString
	statMatchID   *status.AtomicString
	statRemaining *status.AtomicFloat
	statCountdown *atomic.Int64
	statMatches   *atomic.Int64
	statDraws     *atomic.Int64
}

// NewController builds the controller, loads the phase graph and enters the start screen
func NewController(cfg Config, deps Deps) (*Controller, error) {
	if deps.Clock == nil {
		deps.Clock = engine.NewTimeProvider()
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Status == nil {
		deps.Status = status.NewRegistry()
	}
	if cfg.CountdownStep <= 0 {
		cfg.CountdownStep = time.Second
	}

	c := &Controller{
		cfg:           cfg,
		clock:         deps.Clock,
		spawner:       deps.Spawner,
		factory:       deps.Factory,
		logger:        deps.Logger,
		entities:      deps.Entities,
		machine:       fsm.NewMachine[*Controller](),
		countdown:     engine.NewCountdown(cfg.CountdownStep),
		timer:         engine.NewTimer(cfg.Duration),
		statPhase:     deps.Status.Strings.Get("match.phase"),
		statMatchID:   deps.Status.Strings.Get("match.id"),
		statRemaining: deps.Status.Floats.Get("match.remaining"),
		statCountdown: deps.Status.Ints.Get("match.countdown"),
		statMatches:   deps.Status.Ints.Get("match.played"),
		statDraws:     deps.Status.Ints.Get("match.draws"),
	}
	if c.factory == nil {
		c.factory = func(id core.EntityID, spawn vmath.Vec2) *combat.Entity {
			return combat.NewEntity(id, cfg.MaxHealth, cfg.Stats, spawn)
		}
	}
	c.resolver = combat.NewResolver(c, c, deps.Status, deps.Logger)

	// Spawner sees the phase before any display observer and before the step's spawn evaluation
	if c.spawner != nil {
		c.OnStateChange(func(ch StateChange) {
			c.spawner.HandleStateChange(ch.To == PhasePlaying)
		})
	}

	c.countdown.OnTick(func(n int) {
		c.statCountdown.Store(int64(n))
		c.countdowns.Notify(n)
	})
	c.countdown.OnDone(func() {
		c.statCountdown.Store(0)
		c.machine.HandleEvent(c, event.EventCountdownFinished)
	})
	c.timer.OnTick(func(r time.Duration) {
		c.statRemaining.Set(r.Seconds())
		c.timerTicks.Notify(r)
	})
	c.timer.OnComplete(func() {
		c.logger.Debug("match timer expired", "match_id", c.matchID)
		c.machine.HandleEvent(c, event.EventMatchTimeUp)
	})

	c.registerFSM()
	if err := fsm.LoadConfigAuto(c.machine, deps.FSMPath, phaseGraph); err != nil {
		return nil, fmt.Errorf("failed to load phase graph: %w", err)
	}
	if err := c.bindPhases(); err != nil {
		return nil, err
	}
	c.machine.OnTransition(c.onTransition)
	if err := c.machine.Init(c); err != nil {
		return nil, fmt.Errorf("failed to init phase graph: %w", err)
	}

	return c, nil
}

// Machine exposes the phase FSM so the scheduler can feed it queued events
func (c *Controller) Machine() *fsm.Machine[*Controller] {
	return c.machine
}

// bindPhases maps graph states to phases, all four must exist
func (c *Controller) bindPhases() error {
	c.phaseOf = make(map[fsm.StateID]Phase, len(phaseNames))
	for p, name := range phaseNames {
		id, ok := c.machine.GetStateID(name)
		if !ok {
			return fmt.Errorf("phase graph is missing state '%s'", name)
		}
		c.phaseOf[id] = Phase(p)
	}
	return nil
}

func (c *Controller) registerFSM() {
	c.machine.RegisterAction("EnterStartScreen", func(c *Controller, _ any) { c.enterStartScreen() })
	c.machine.RegisterAction("StartCountdown", func(c *Controller, _ any) { c.countdown.Start(c.cfg.CountdownSeconds) })
	c.machine.RegisterAction("StopCountdown", func(c *Controller, _ any) { c.countdown.Cancel() })
	c.machine.RegisterAction("StartMatch", func(c *Controller, _ any) { c.startMatch() })
	c.machine.RegisterAction("EndMatch", func(c *Controller, _ any) { c.endMatch() })

	// EmitEvent is available to custom graphs; the match has no queue so events feed back into the FSM
	c.machine.RegisterAction("EmitEvent", func(c *Controller, args any) {
		if a, ok := args.(*fsm.EmitEventArgs); ok {
			c.machine.HandleEvent(c, a.Type)
		}
	})

	c.machine.RegisterGuard("WinnerDecided", func(c *Controller) bool {
		return c.pendingWinner.IsSome()
	})
}

// Begin leaves the start screen, ignored in any other phase
func (c *Controller) Begin() {
	if !c.machine.HandleEvent(c, event.EventBeginRequest) {
		c.logger.Debug("begin ignored", "phase", c.Phase().String())
	}
}

// Return goes back to the start screen from Ended, ignored in any other phase
func (c *Controller) Return() {
	if !c.machine.HandleEvent(c, event.EventReturnRequest) {
		c.logger.Debug("return ignored", "phase", c.Phase().String())
	}
}

// NotifyDeath ends the match with the other seat as winner
// Only the first notification during play counts
func (c *Controller) NotifyDeath(loser core.EntityID) {
	if c.Phase() != PhasePlaying || c.pendingWinner.IsSome() {
		c.logger.Debug("death notification ignored", "loser", loser.String(), "phase", c.Phase().String())
		return
	}
	winner := loser.Other()
	if winner == core.EntityNone {
		return
	}
	c.pendingWinner = core.Some(winner)
	c.endReason = EndByDeath
	c.machine.HandleEvent(c, event.EventPlayerDied)
}

// PublishResult fans attack results out to observers
func (c *Controller) PublishResult(r combat.Result) {
	c.attacks.Notify(r)
}

// Attack resolves an attack by seat id against its opponent, only during play
func (c *Controller) Attack(id core.EntityID, now time.Time) (combat.Result, bool) {
	if c.Phase() != PhasePlaying {
		return combat.Result{}, false
	}
	attacker := c.Entity(id)
	if attacker == nil {
		return combat.Result{}, false
	}
	return c.resolver.Attack(attacker, now), true
}

// Step advances timers and the spawner by one scheduling step
func (c *Controller) Step(now time.Time, dt time.Duration) {
	// Match timer first so a match started by this step's countdown begins next step
	c.timer.Update(dt)
	c.countdown.Update(dt)
	if c.spawner != nil {
		c.spawner.Update(now)
	}
}

// Phase returns the current phase
func (c *Controller) Phase() Phase {
	return c.phaseOf[c.machine.CurrentState()]
}

// Entity returns the entity in a seat, nil before the first match started
func (c *Controller) Entity(id core.EntityID) *combat.Entity {
	if i := id.Index(); i >= 0 {
		return c.entities[i]
	}
	return nil
}

// ActivePlayers returns positions of living entities during play
func (c *Controller) ActivePlayers() []vmath.Vec2 {
	if c.Phase() != PhasePlaying {
		return nil
	}
	out := make([]vmath.Vec2, 0, len(c.entities))
	for _, e := range c.entities {
		if e != nil && e.Alive() {
			out = append(out, e.Position)
		}
	}
	return out
}

// Snapshot copies the state needed to draw one frame
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:     c.Phase(),
		MatchID:   c.matchID,
		Countdown: c.countdown.Remaining(),
		Remaining: c.timer.Remaining(),
		Result:    c.result,
	}
	for _, e := range c.entities {
		if e == nil {
			continue
		}
		snap.Players = append(snap.Players, PlayerView{
			ID:        e.ID,
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
			Mask:      e.Mask,
			Position:  e.Position,
		})
	}
	return snap
}

// MatchID returns the id of the current or last match, zero before the first
func (c *Controller) MatchID() uuid.UUID {
	return c.matchID
}

// Result returns the last match result while Ended
func (c *Controller) Result() core.Option[EndResult] {
	return c.result
}

// Timer exposes the match timer for inspection
func (c *Controller) Timer() *engine.Timer {
	return c.timer
}

// Countdown exposes the countdown task for inspection
func (c *Controller) Countdown() *engine.Countdown {
	return c.countdown
}

func (c *Controller) OnStateChange(fn func(StateChange)) (unsubscribe func()) {
	return c.stateChanges.Subscribe(fn)
}

func (c *Controller) OnCountdownTick(fn func(remaining int)) (unsubscribe func()) {
	return c.countdowns.Subscribe(fn)
}

func (c *Controller) OnTimerTick(fn func(remaining time.Duration)) (unsubscribe func()) {
	return c.timerTicks.Subscribe(fn)
}

func (c *Controller) OnAttackResult(fn func(combat.Result)) (unsubscribe func()) {
	return c.attacks.Subscribe(fn)
}

func (c *Controller) OnMatchEnd(fn func(EndResult)) (unsubscribe func()) {
	return c.matchEnds.Subscribe(fn)
}

// === Phase actions ===

func (c *Controller) enterStartScreen() {
	c.timer.Stop()
	c.countdown.Cancel()
	if c.spawner != nil {
		c.spawner.StopSpawning()
		c.spawner.ClearAll()
	}
	c.result = core.None[EndResult]()
	c.pendingWinner = core.None[core.EntityID]()
	c.statCountdown.Store(0)
}

func (c *Controller) startMatch() {
	c.ensureEntities()
	for _, e := range c.entities {
		e.Reset()
	}

	c.matchID = uuid.New()
	c.startedAt = c.clock.Now()
	c.pendingWinner = core.None[core.EntityID]()
	c.endReason = EndByTimeout
	c.result = core.None[EndResult]()
	c.statMatchID.Store(c.matchID.String())

	if c.spawner != nil {
		c.spawner.StartSpawning(c.startedAt)
	}

	c.timer.SetDuration(c.cfg.Duration)
	c.timer.Stop()
	c.timer.Start()
	c.statRemaining.Set(c.timer.Remaining().Seconds())
}

// ensureEntities builds missing seats once and cross-wires opponents
func (c *Controller) ensureEntities() {
	for i, id := range core.Players {
		if c.entities[i] == nil {
			c.entities[i] = c.factory(id, c.cfg.Spawns[i])
			c.logger.Debug("entity created", "seat", id.String())
		}
	}
	combat.Link(c.entities[0], c.entities[1])
}

func (c *Controller) endMatch() {
	if c.result.IsSome() {
		return
	}
	if c.spawner != nil {
		c.spawner.StopSpawning()
	}
	c.timer.Stop()

	c.result = core.Some(EndResult{
		MatchID: c.matchID,
		Winner:  c.pendingWinner,
		Reason:  c.endReason,
		Elapsed: c.clock.Now().Sub(c.startedAt),
	})
}

// onTransition publishes the state change, then the match end when entering Ended
func (c *Controller) onTransition(_ *Controller, from, to fsm.StateID) {
	ch := StateChange{From: c.phaseOf[from], To: c.phaseOf[to], MatchID: c.matchID}
	c.statPhase.Store(ch.To.String())
	c.logger.Info("phase change", "from", ch.From.String(), "phase", ch.To.String(), "match_id", c.matchID)

	c.stateChanges.Notify(ch)

	if ch.To != PhaseEnded {
		return
	}
	res, ok := c.result.Get()
	if !ok {
		return
	}
	c.statMatches.Add(1)
	if res.Draw() {
		c.statDraws.Add(1)
	}
	c.logger.Info("match ended", "match_id", res.MatchID, "winner", res.Headline(), "reason", res.Reason.String())
	c.matchEnds.Notify(res)
}
