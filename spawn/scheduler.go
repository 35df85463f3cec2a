// Package spawn places mask pickups in the arena during play
package spawn

//go:generate go tool mockgen -destination=./mocks/spawn_mock.go -package=mocks . Occupancy,PlayerLocator

import (
	"log/slog"
	"sort"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/mask-arena/engine"
	"github.com/lixenwraith/mask-arena/mask"
	"github.com/lixenwraith/mask-arena/status"
	"github.com/lixenwraith/mask-arena/vmath"
)

// Occupancy probes whether a candidate point is blocked
type Occupancy interface {
	Occupied(p vmath.Vec2) bool
}

// PlayerLocator reports the positions of players that are currently active
type PlayerLocator interface {
	ActivePlayers() []vmath.Vec2
}

// Config is the placement and pacing setup
type Config struct {
	IntervalMin       time.Duration
	IntervalMax       time.Duration
	MaxLive           int
	MinPlayerDistance float64
	Attempts          int
	// Region is the placement bound, an empty rect disables spawning
	Region vmath.Rect
	Roster []mask.Kind
	// OverlapRadius rejects candidates this close to a live pickup, 0 disables
	OverlapRadius float64
}

// Scheduler owns the live pickup set
// Not safe for concurrent use; driven by the scheduler goroutine
type Scheduler struct {
	cfg       Config
	rng       vmath.RNG
	clock     engine.Clock
	players   PlayerLocator
	occupancy Occupancy
	logger    *slog.Logger

	enabled  bool
	playing  bool
	nextTime time.Time
	nextID   PickupID
	live     map[PickupID]*entry

	spawned engine.Observers[Pickup]
	removed engine.Observers[PickupID]

	statEnabled *atomic.Bool
	statLive    *atomic.Int64
	statTotal   *atomic.Int64
	statFailed  *atomic.Int64
}

// Deps groups the collaborators of a Scheduler; nil fields fall back to inert defaults
type Deps struct {
	RNG       vmath.RNG
	Clock     engine.Clock
	Players   PlayerLocator
	Occupancy Occupancy
	Status    *status.Registry
	Logger    *slog.Logger
}

// NewScheduler creates a disabled scheduler with an empty live set
func NewScheduler(cfg Config, deps Deps) *Scheduler {
	if cfg.Attempts <= 0 {
		cfg.Attempts = 1
	}
	if cfg.IntervalMax < cfg.IntervalMin {
		cfg.IntervalMax = cfg.IntervalMin
	}
	if deps.RNG == nil {
		deps.RNG = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}
	if deps.Clock == nil {
		deps.Clock = engine.NewTimeProvider()
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Status == nil {
		deps.Status = status.NewRegistry()
	}

	return &Scheduler{
		cfg:         cfg,
		rng:         deps.RNG,
		clock:       deps.Clock,
		players:     deps.Players,
		occupancy:   deps.Occupancy,
		logger:      deps.Logger,
		live:        make(map[PickupID]*entry),
		statEnabled: deps.Status.Bools.Get("spawn.enabled"),
		statLive:    deps.Status.Ints.Get("spawn.live"),
		statTotal:   deps.Status.Ints.Get("spawn.total"),
		statFailed:  deps.Status.Ints.Get("spawn.failed"),
	}
}

// StartSpawning enables scheduling and arms the first attempt, no-op while enabled
func (s *Scheduler) StartSpawning(now time.Time) {
	if s.enabled {
		return
	}
	s.enabled = true
	s.statEnabled.Store(true)
	s.reschedule(now)
}

// StopSpawning disables scheduling and keeps live pickups, no-op while disabled
func (s *Scheduler) StopSpawning() {
	if !s.enabled {
		return
	}
	s.enabled = false
	s.statEnabled.Store(false)
}

// ClearAll destroys every live pickup regardless of enabled state
func (s *Scheduler) ClearAll() {
	for _, id := range s.sortedIDs() {
		if e, ok := s.live[id]; ok {
			e.destroy()
		}
	}
	// Entries without a watcher would survive destroy
	clear(s.live)
	s.statLive.Store(0)
}

// HandleStateChange couples spawning to the match phase
// Entering play auto-starts; leaving play stops and clears
func (s *Scheduler) HandleStateChange(playing bool) {
	if playing == s.playing {
		return
	}
	s.playing = playing
	if playing {
		s.StartSpawning(s.clock.Now())
		return
	}
	s.StopSpawning()
	s.ClearAll()
}

// Update evaluates one scheduling step
func (s *Scheduler) Update(now time.Time) {
	if !s.enabled || !s.playing {
		return
	}

	if len(s.live) >= s.cfg.MaxLive {
		s.reschedule(now)
		return
	}
	if now.Before(s.nextTime) {
		return
	}

	if !s.trySpawn() {
		s.statFailed.Add(1)
	}
	s.reschedule(now)
}

// Consume destroys the pickup through its watcher and returns its kind
func (s *Scheduler) Consume(id PickupID) (mask.Kind, bool) {
	e, ok := s.live[id]
	if !ok {
		return 0, false
	}
	kind := e.Kind
	e.destroy()
	return kind, true
}

// Nearest returns the closest live pickup within radius of pos, lowest id on ties
func (s *Scheduler) Nearest(pos vmath.Vec2, radius float64) (Pickup, bool) {
	var best Pickup
	bestDist := -1.0
	for _, id := range s.sortedIDs() {
		p := s.live[id].Pickup
		d := vmath.Distance(pos, p.Position)
		if d > radius {
			continue
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = p, d
		}
	}
	return best, bestDist >= 0
}

// Live returns a snapshot of live pickups sorted by id
func (s *Scheduler) Live() []Pickup {
	ids := s.sortedIDs()
	out := make([]Pickup, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.live[id].Pickup)
	}
	return out
}

// Count returns the live pickup count
func (s *Scheduler) Count() int {
	return len(s.live)
}

// Enabled reports whether scheduling is on
func (s *Scheduler) Enabled() bool {
	return s.enabled
}

// NextSpawn returns the armed attempt time
func (s *Scheduler) NextSpawn() time.Time {
	return s.nextTime
}

// Occupied reports a live pickup within the overlap radius of p
func (s *Scheduler) Occupied(p vmath.Vec2) bool {
	if s.cfg.OverlapRadius <= 0 {
		return false
	}
	for _, e := range s.live {
		if vmath.Within(e.Position, p, s.cfg.OverlapRadius) {
			return true
		}
	}
	return false
}

// OnSpawned subscribes to pickup creation
func (s *Scheduler) OnSpawned(fn func(Pickup)) (unsubscribe func()) {
	return s.spawned.Subscribe(fn)
}

// OnRemoved subscribes to pickup destruction, claimed or cleared
func (s *Scheduler) OnRemoved(fn func(PickupID)) (unsubscribe func()) {
	return s.removed.Subscribe(fn)
}

func (s *Scheduler) reschedule(now time.Time) {
	span := s.cfg.IntervalMax - s.cfg.IntervalMin
	wait := s.cfg.IntervalMin + time.Duration(s.rng.Float64()*float64(span))
	s.nextTime = now.Add(wait)
}

// trySpawn draws up to Attempts candidates and places the first acceptable one
func (s *Scheduler) trySpawn() bool {
	if s.cfg.Region.Empty() || len(s.cfg.Roster) == 0 {
		return false
	}

	var players []vmath.Vec2
	if s.players != nil {
		players = s.players.ActivePlayers()
	}

	for i := 0; i < s.cfg.Attempts; i++ {
		p := s.cfg.Region.RandomPoint(s.rng)
		if !s.clearOfPlayers(p, players) {
			continue
		}
		if s.Occupied(p) {
			continue
		}
		if s.occupancy != nil && s.occupancy.Occupied(p) {
			continue
		}
		s.create(s.cfg.Roster[s.rng.Intn(len(s.cfg.Roster))], p)
		return true
	}

	s.logger.Debug("spawn abandoned", "attempts", s.cfg.Attempts)
	return false
}

func (s *Scheduler) clearOfPlayers(p vmath.Vec2, players []vmath.Vec2) bool {
	for _, pl := range players {
		if vmath.Distance(p, pl) <= s.cfg.MinPlayerDistance {
			return false
		}
	}
	return true
}

func (s *Scheduler) create(kind mask.Kind, pos vmath.Vec2) {
	s.nextID++
	e := &entry{
		Pickup:  Pickup{ID: s.nextID, Kind: kind, Position: pos},
		watcher: s.notifyDestroyed,
	}
	s.live[e.ID] = e

	s.statLive.Store(int64(len(s.live)))
	s.statTotal.Add(1)
	s.logger.Debug("pickup spawned", "id", e.ID, "kind", kind.String(), "x", pos.X, "y", pos.Y)
	s.spawned.Notify(e.Pickup)
}

// notifyDestroyed is the lifecycle watcher; frees the capacity slot
func (s *Scheduler) notifyDestroyed(id PickupID) {
	if _, ok := s.live[id]; !ok {
		return
	}
	delete(s.live, id)
	s.statLive.Store(int64(len(s.live)))
	s.removed.Notify(id)
}

func (s *Scheduler) sortedIDs() []PickupID {
	ids := make([]PickupID, 0, len(s.live))
	for id := range s.live {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
