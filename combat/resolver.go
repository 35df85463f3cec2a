// Package combat resolves attack attempts between the two competitors
package combat

//go:generate go tool mockgen -destination=./mocks/combat_mock.go -package=mocks . DeathNotifier,ResultSink

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/mask-arena/core"
	"github.com/lixenwraith/mask-arena/mask"
	"github.com/lixenwraith/mask-arena/status"
	"github.com/lixenwraith/mask-arena/vmath"
)

// Outcome classifies an attack attempt
type Outcome uint8

const (
	OutcomeHit Outcome = iota
	OutcomeBlockedCooldown
	OutcomeBlockedNoMask
	OutcomeBlockedOutOfRange
	OutcomeBlockedNoDominance
	// OutcomeBlockedNoTarget covers an attack with no opponent wired
	OutcomeBlockedNoTarget

	outcomeCount
)

var outcomeNames = [outcomeCount]string{
	"hit",
	"blocked_cooldown",
	"blocked_no_mask",
	"blocked_out_of_range",
	"blocked_no_dominance",
	"blocked_no_target",
}

func (o Outcome) String() string {
	if o >= outcomeCount {
		return "unknown"
	}
	return outcomeNames[o]
}

// Blocked reports any outcome other than a hit
func (o Outcome) Blocked() bool {
	return o != OutcomeHit
}

// Result describes one resolved attempt
type Result struct {
	Attacker core.EntityID
	Defender core.EntityID
	Outcome  Outcome
	// Damage is the health actually removed, zero unless Outcome is OutcomeHit
	Damage int
	Killed bool
	At     time.Time
}

// DeathNotifier receives the loser when a hit brings health to zero
type DeathNotifier interface {
	NotifyDeath(loser core.EntityID)
}

// ResultSink receives every resolved attempt, e.g. for display or audio
type ResultSink interface {
	PublishResult(r Result)
}

// Resolver applies the attack rules
// Not safe for concurrent use; called on the scheduler goroutine
type Resolver struct {
	deaths DeathNotifier
	sink   ResultSink
	logger *slog.Logger

	statOutcomes [outcomeCount]*atomic.Int64
}

// NewResolver creates a resolver, sink and reg may be nil
func NewResolver(deaths DeathNotifier, sink ResultSink, reg *status.Registry, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	r := &Resolver{
		deaths: deaths,
		sink:   sink,
		logger: logger,
	}
	for o := Outcome(0); o < outcomeCount; o++ {
		r.statOutcomes[o] = reg.Ints.Get("combat." + o.String())
	}
	return r
}

// TryAttack resolves one attempt by attacker against defender at now
// Checks run in order and the first failure decides the outcome
// Every attempt that clears the cooldown check consumes the cooldown window
func (r *Resolver) TryAttack(attacker, defender *Entity, now time.Time) Result {
	res := Result{At: now, Outcome: OutcomeBlockedNoTarget}
	if attacker == nil {
		return r.publish(res)
	}
	res.Attacker = attacker.ID

	if last, ok := attacker.lastAttack.Get(); ok && now.Sub(last) < attacker.Stats.Cooldown {
		res.Outcome = OutcomeBlockedCooldown
		return r.publish(res)
	}
	attacker.lastAttack = core.Some(now)

	atkMask, ok := attacker.Mask.Get()
	if !ok {
		res.Outcome = OutcomeBlockedNoMask
		return r.publish(res)
	}

	if defender == nil {
		res.Outcome = OutcomeBlockedNoTarget
		return r.publish(res)
	}
	res.Defender = defender.ID

	if vmath.Distance(attacker.Position, defender.Position) > attacker.Stats.Range {
		res.Outcome = OutcomeBlockedOutOfRange
		return r.publish(res)
	}

	defMask, ok := defender.Mask.Get()
	if !ok {
		res.Outcome = OutcomeBlockedNoMask
		return r.publish(res)
	}

	if !mask.Dominates(atkMask, defMask) {
		res.Outcome = OutcomeBlockedNoDominance
		return r.publish(res)
	}

	res.Outcome = OutcomeHit
	res.Damage = defender.TakeDamage(attacker.Stats.Damage)
	res.Killed = res.Damage > 0 && defender.Health == 0

	r.logger.Debug("attack hit",
		"attacker", attacker.ID.String(),
		"defender", defender.ID.String(),
		"damage", res.Damage,
		"health", defender.Health,
	)

	r.publish(res)
	if res.Killed && r.deaths != nil {
		r.deaths.NotifyDeath(defender.ID)
	}
	return res
}

// Attack resolves an attempt against the attacker's wired opponent
func (r *Resolver) Attack(attacker *Entity, now time.Time) Result {
	var defender *Entity
	if attacker != nil {
		defender = attacker.Opponent
	}
	return r.TryAttack(attacker, defender, now)
}

func (r *Resolver) publish(res Result) Result {
	r.statOutcomes[res.Outcome].Add(1)
	if r.sink != nil {
		r.sink.PublishResult(res)
	}
	return res
}
