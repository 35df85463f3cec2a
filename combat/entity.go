package combat

import (
	"time"

	"github.com/lixenwraith/mask-arena/core"
	"github.com/lixenwraith/mask-arena/mask"
	"github.com/lixenwraith/mask-arena/vmath"
)

// Stats are the fixed attack parameters of an entity
type Stats struct {
	Damage   int
	Range    float64
	Cooldown time.Duration
}

// Entity is one competitor as seen by combat
// Mask is written only through Equip by the pickup claim path
type Entity struct {
	ID        core.EntityID
	Health    int
	MaxHealth int
	Mask      core.Option[mask.Kind]
	Position  vmath.Vec2
	Spawn     vmath.Vec2
	Stats     Stats
	Opponent  *Entity

	lastAttack core.Option[time.Time]
}

// NewEntity creates an entity at its spawn point with full health
func NewEntity(id core.EntityID, maxHealth int, stats Stats, spawn vmath.Vec2) *Entity {
	e := &Entity{
		ID:        id,
		MaxHealth: maxHealth,
		Stats:     stats,
		Spawn:     spawn,
	}
	e.Reset()
	return e
}

// Reset restores health to max, clears mask and cooldown, returns to spawn
func (e *Entity) Reset() {
	e.Health = max(1, e.MaxHealth)
	e.Mask = core.None[mask.Kind]()
	e.lastAttack = core.None[time.Time]()
	e.Position = e.Spawn
}

// Equip replaces the worn mask
func (e *Entity) Equip(k mask.Kind) {
	e.Mask = core.Some(k)
}

// Alive reports positive health
func (e *Entity) Alive() bool {
	return e.Health > 0
}

// LastAttack returns the time of the last attempt that passed the cooldown check
func (e *Entity) LastAttack() core.Option[time.Time] {
	return e.lastAttack
}

// CooldownRemaining returns time until the next attempt is allowed
func (e *Entity) CooldownRemaining(now time.Time) time.Duration {
	last, ok := e.lastAttack.Get()
	if !ok {
		return 0
	}
	if left := e.Stats.Cooldown - now.Sub(last); left > 0 {
		return left
	}
	return 0
}

// TakeDamage subtracts amount clamped at zero and returns the health actually removed
// Non-positive amounts are ignored
func (e *Entity) TakeDamage(amount int) int {
	if amount <= 0 || e.Health <= 0 {
		return 0
	}
	applied := min(amount, e.Health)
	e.Health -= applied
	return applied
}

// Link cross-wires two entities as each other's opponent
func Link(a, b *Entity) {
	a.Opponent = b
	b.Opponent = a
}
