// Package player turns queued intent events into movement, attacks and pickup claims
package player

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/mask-arena/core"
	"github.com/lixenwraith/mask-arena/engine"
	"github.com/lixenwraith/mask-arena/event"
	"github.com/lixenwraith/mask-arena/mask"
	"github.com/lixenwraith/mask-arena/match"
	"github.com/lixenwraith/mask-arena/spawn"
	"github.com/lixenwraith/mask-arena/status"
	"github.com/lixenwraith/mask-arena/vmath"
)

// Pickups is the spawn scheduler as seen by the claim path
type Pickups interface {
	Nearest(pos vmath.Vec2, radius float64) (spawn.Pickup, bool)
	Consume(id spawn.PickupID) (mask.Kind, bool)
}

// Config holds movement and claim tuning
type Config struct {
	MoveSpeed      float64
	PickupRange    float64
	BuffMultiplier float64
	BuffDuration   time.Duration
	// InputHold keeps a direction active after the last key report
	InputHold time.Duration
	Arena     vmath.Rect
}

// Claim describes a successful pickup
type Claim struct {
	Player core.EntityID
	Pickup spawn.PickupID
	Kind   mask.Kind
}

type seat struct {
	dir  vmath.Vec2
	hold time.Duration
	buff *engine.Timer
}

// Controller moves both seats and forwards their attack and pickup intents
// Implements event.Handler[*match.Controller]
type Controller struct {
	cfg     Config
	pickups Pickups
	clock   engine.Clock
	logger  *slog.Logger

	seats  [2]seat
	claims engine.Observers[Claim]

	statClaims *atomic.Int64
	statMissed *atomic.Int64
}

// NewController creates a player controller; nil clock, registry or logger fall back to defaults
func NewController(cfg Config, pickups Pickups, clock engine.Clock, reg *status.Registry, logger *slog.Logger) *Controller {
	if clock == nil {
		clock = engine.NewTimeProvider()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.BuffMultiplier <= 0 {
		cfg.BuffMultiplier = 1
	}

	c := &Controller{
		cfg:        cfg,
		pickups:    pickups,
		clock:      clock,
		logger:     logger,
		statClaims: reg.Ints.Get("player.claims"),
		statMissed: reg.Ints.Get("player.claims_missed"),
	}
	for i := range c.seats {
		c.seats[i].buff = engine.NewTimer(cfg.BuffDuration)
	}
	return c
}

// EventTypes implements event.Handler
func (c *Controller) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMoveRequest,
		event.EventAttackRequest,
		event.EventPickupRequest,
	}
}

// HandleEvent implements event.Handler
func (c *Controller) HandleEvent(m *match.Controller, ev event.GameEvent) {
	switch ev.Type {
	case event.EventMoveRequest:
		if p, ok := ev.Payload.(*event.MoveRequestPayload); ok {
			c.SetDirection(p.Player, p.Dir)
		}
	case event.EventAttackRequest:
		if p, ok := ev.Payload.(*event.PlayerRequestPayload); ok {
			now := ev.Timestamp
			if now.IsZero() {
				now = c.clock.Now()
			}
			m.Attack(p.Player, now)
		}
	case event.EventPickupRequest:
		if p, ok := ev.Payload.(*event.PlayerRequestPayload); ok {
			c.Claim(m, p.Player)
		}
	}
}

// SetDirection sets the seat's heading and refreshes its hold window, zero stops
func (c *Controller) SetDirection(id core.EntityID, dir vmath.Vec2) {
	i := id.Index()
	if i < 0 {
		return
	}
	s := &c.seats[i]
	if dir.X == 0 && dir.Y == 0 {
		s.dir = vmath.Vec2{}
		s.hold = 0
		return
	}
	s.dir = vmath.V2Normalize(dir)
	s.hold = c.cfg.InputHold
}

// Claim equips the nearest pickup in range and starts the speed buff
func (c *Controller) Claim(m *match.Controller, id core.EntityID) (mask.Kind, bool) {
	if m.Phase() != match.PhasePlaying || c.pickups == nil {
		return 0, false
	}
	e := m.Entity(id)
	if e == nil || !e.Alive() {
		return 0, false
	}

	p, ok := c.pickups.Nearest(e.Position, c.cfg.PickupRange)
	if !ok {
		c.statMissed.Add(1)
		return 0, false
	}
	kind, ok := c.pickups.Consume(p.ID)
	if !ok {
		c.statMissed.Add(1)
		return 0, false
	}

	e.Equip(kind)
	buff := c.seats[id.Index()].buff
	buff.Stop()
	buff.Start()

	c.statClaims.Add(1)
	c.logger.Debug("mask claimed", "player", id.String(), "mask", kind.String(), "pickup", uint64(p.ID))
	c.claims.Notify(Claim{Player: id, Pickup: p.ID, Kind: kind})
	return kind, true
}

// Update moves seats for one step; outside play all intent is dropped
func (c *Controller) Update(m *match.Controller, dt time.Duration) {
	if m.Phase() != match.PhasePlaying {
		c.clear()
		return
	}

	for i, id := range core.Players {
		s := &c.seats[i]
		s.buff.Update(dt)

		e := m.Entity(id)
		if e == nil || !e.Alive() || s.hold <= 0 {
			continue
		}

		step := min(dt, s.hold)
		s.hold -= step
		dist := c.cfg.MoveSpeed * step.Seconds()
		if s.buff.Running() {
			dist *= c.cfg.BuffMultiplier
		}
		next := vmath.V2Add(e.Position, vmath.V2Scale(s.dir, dist))
		if !c.cfg.Arena.Empty() {
			next = c.cfg.Arena.ClampPoint(next)
		}
		e.Position = next
	}
}

// Buffed reports whether the seat's speed buff is active
func (c *Controller) Buffed(id core.EntityID) bool {
	if i := id.Index(); i >= 0 {
		return c.seats[i].buff.Running()
	}
	return false
}

// OnClaim subscribes to successful pickups
func (c *Controller) OnClaim(fn func(Claim)) (unsubscribe func()) {
	return c.claims.Subscribe(fn)
}

func (c *Controller) clear() {
	for i := range c.seats {
		c.seats[i].dir = vmath.Vec2{}
		c.seats[i].hold = 0
		c.seats[i].buff.Stop()
	}
}

var _ event.Handler[*match.Controller] = (*Controller)(nil)
