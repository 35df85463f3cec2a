package player

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/mask-arena/combat"
	"github.com/lixenwraith/mask-arena/core"
	"github.com/lixenwraith/mask-arena/engine"
	"github.com/lixenwraith/mask-arena/event"
	"github.com/lixenwraith/mask-arena/mask"
	"github.com/lixenwraith/mask-arena/match"
	"github.com/lixenwraith/mask-arena/spawn"
	"github.com/lixenwraith/mask-arena/vmath"
)

var t0 = time.Unix(1_700_000_000, 0)

// stubPickups serves a fixed set of pickups
type stubPickups struct {
	live map[spawn.PickupID]spawn.Pickup
}

func (s *stubPickups) Nearest(pos vmath.Vec2, radius float64) (spawn.Pickup, bool) {
	var best spawn.Pickup
	found := false
	for _, p := range s.live {
		if !vmath.Within(pos, p.Position, radius) {
			continue
		}
		if !found || vmath.Distance(pos, p.Position) < vmath.Distance(pos, best.Position) {
			best, found = p, true
		}
	}
	return best, found
}

func (s *stubPickups) Consume(id spawn.PickupID) (mask.Kind, bool) {
	p, ok := s.live[id]
	if !ok {
		return 0, false
	}
	delete(s.live, id)
	return p.Kind, true
}

func testConfig() Config {
	return Config{
		MoveSpeed:      4,
		PickupRange:    0.8,
		BuffMultiplier: 1.5,
		BuffDuration:   500 * time.Millisecond,
		InputHold:      150 * time.Millisecond,
		Arena:          vmath.NewRect(-8, -5, 8, 5),
	}
}

// playingMatch returns a controller already in Playing with default spawns
func playingMatch(t *testing.T) *match.Controller {
	t.Helper()
	m, err := match.NewController(match.Config{
		CountdownSeconds: 0,
		Duration:         time.Minute,
		MaxHealth:        3,
		Stats:            combat.Stats{Damage: 1, Range: 1, Cooldown: time.Second},
		Spawns:           [2]vmath.Vec2{{X: -2}, {X: 2}},
	}, match.Deps{Clock: engine.NewMockTimeProvider(t0)})
	if err != nil {
		t.Fatalf("match.NewController: %v", err)
	}
	m.Begin()
	m.Step(t0, time.Millisecond)
	if m.Phase() != match.PhasePlaying {
		t.Fatalf("phase = %s, want Playing", m.Phase())
	}
	return m
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestMoveWithinHoldWindow(t *testing.T) {
	m := playingMatch(t)
	c := NewController(testConfig(), nil, nil, nil, nil)

	c.HandleEvent(m, event.GameEvent{
		Type:    event.EventMoveRequest,
		Payload: &event.MoveRequestPayload{Player: core.Player1, Dir: vmath.Vec2{X: 2}},
	})

	c.Update(m, 100*time.Millisecond)
	if got := m.Entity(core.Player1).Position.X; !approx(got, -1.6) {
		t.Fatalf("x = %v after 100ms, want -1.6", got)
	}

	// Only the remaining 50ms of hold moves
	c.Update(m, 100*time.Millisecond)
	if got := m.Entity(core.Player1).Position.X; !approx(got, -1.4) {
		t.Fatalf("x = %v after hold expired, want -1.4", got)
	}

	c.Update(m, 100*time.Millisecond)
	if got := m.Entity(core.Player1).Position.X; !approx(got, -1.4) {
		t.Errorf("moved without input, x = %v", got)
	}
}

func TestStopRequest(t *testing.T) {
	m := playingMatch(t)
	c := NewController(testConfig(), nil, nil, nil, nil)

	c.SetDirection(core.Player2, vmath.Vec2{Y: 1})
	c.SetDirection(core.Player2, vmath.Vec2{})
	c.Update(m, 100*time.Millisecond)
	if got := m.Entity(core.Player2).Position; got != (vmath.Vec2{X: 2}) {
		t.Errorf("position = %+v, want unchanged", got)
	}
}

func TestMovementClampedToArena(t *testing.T) {
	m := playingMatch(t)
	cfg := testConfig()
	cfg.InputHold = 10 * time.Second
	c := NewController(cfg, nil, nil, nil, nil)

	c.SetDirection(core.Player1, vmath.Vec2{X: -1})
	for i := 0; i < 10; i++ {
		c.Update(m, time.Second)
	}
	if got := m.Entity(core.Player1).Position.X; got != -8 {
		t.Errorf("x = %v, want clamped to -8", got)
	}
}

func TestClaimEquipsAndBuffs(t *testing.T) {
	m := playingMatch(t)
	pickups := &stubPickups{live: map[spawn.PickupID]spawn.Pickup{
		1: {ID: 1, Kind: mask.Green, Position: vmath.Vec2{X: -1.5}},
		2: {ID: 2, Kind: mask.Blue, Position: vmath.Vec2{X: -2.3, Y: 0.1}},
		3: {ID: 3, Kind: mask.Red, Position: vmath.Vec2{X: 5}},
	}}
	c := NewController(testConfig(), pickups, nil, nil, nil)

	var claims []Claim
	c.OnClaim(func(cl Claim) { claims = append(claims, cl) })

	c.HandleEvent(m, event.GameEvent{
		Type:    event.EventPickupRequest,
		Payload: &event.PlayerRequestPayload{Player: core.Player1},
	})

	k, ok := m.Entity(core.Player1).Mask.Get()
	if !ok || k != mask.Blue {
		t.Fatalf("mask = %v, want Blue from the nearest pickup", m.Entity(core.Player1).Mask)
	}
	if _, live := pickups.live[2]; live {
		t.Error("claimed pickup still live")
	}
	if len(claims) != 1 || claims[0].Pickup != 2 {
		t.Errorf("claims = %+v", claims)
	}
	if !c.Buffed(core.Player1) || c.Buffed(core.Player2) {
		t.Error("buff not applied to the claimer only")
	}

	// Buffed speed is 6 u/s
	c.SetDirection(core.Player1, vmath.Vec2{Y: 1})
	c.Update(m, 100*time.Millisecond)
	if got := m.Entity(core.Player1).Position.Y; !approx(got, 0.6) {
		t.Errorf("y = %v, want 0.6 with buff", got)
	}

	c.Update(m, 500*time.Millisecond)
	if c.Buffed(core.Player1) {
		t.Error("buff outlived its duration")
	}
}

func TestClaimOutOfRange(t *testing.T) {
	m := playingMatch(t)
	pickups := &stubPickups{live: map[spawn.PickupID]spawn.Pickup{
		1: {ID: 1, Kind: mask.Red, Position: vmath.Vec2{X: 5}},
	}}
	c := NewController(testConfig(), pickups, nil, nil, nil)

	if _, ok := c.Claim(m, core.Player2); ok {
		t.Fatal("claimed a pickup 3 units away")
	}
	if m.Entity(core.Player2).Mask.IsSome() {
		t.Error("mask equipped without a claim")
	}
}

func TestClaimOutsidePlay(t *testing.T) {
	m, err := match.NewController(match.Config{Duration: time.Minute}, match.Deps{Clock: engine.NewMockTimeProvider(t0)})
	if err != nil {
		t.Fatal(err)
	}
	pickups := &stubPickups{live: map[spawn.PickupID]spawn.Pickup{1: {ID: 1}}}
	c := NewController(testConfig(), pickups, nil, nil, nil)

	if _, ok := c.Claim(m, core.Player1); ok {
		t.Fatal("claim accepted on the start screen")
	}
	if len(pickups.live) != 1 {
		t.Error("pickup consumed on the start screen")
	}
}

func TestAttackRoutedToMatch(t *testing.T) {
	m := playingMatch(t)
	c := NewController(testConfig(), nil, nil, nil, nil)

	var results []combat.Result
	m.OnAttackResult(func(r combat.Result) { results = append(results, r) })

	m.Entity(core.Player2).Equip(mask.Purple)
	m.Entity(core.Player1).Equip(mask.Blue)
	m.Entity(core.Player2).Position = vmath.Vec2{X: -1.2}

	c.HandleEvent(m, event.GameEvent{
		Type:      event.EventAttackRequest,
		Payload:   &event.PlayerRequestPayload{Player: core.Player1},
		Timestamp: t0,
	})

	if len(results) != 1 || results[0].Outcome != combat.OutcomeHit {
		t.Fatalf("results = %+v, want one hit", results)
	}
	if m.Entity(core.Player2).Health != 2 {
		t.Errorf("health = %d, want 2", m.Entity(core.Player2).Health)
	}
}

func TestIntentDroppedOutsidePlay(t *testing.T) {
	m := playingMatch(t)
	c := NewController(testConfig(), nil, nil, nil, nil)
	c.SetDirection(core.Player1, vmath.Vec2{X: 1})

	// Time up ends the match
	m.Step(t0, time.Hour)
	if m.Phase() != match.PhaseEnded {
		t.Fatalf("phase = %s, want Ended", m.Phase())
	}
	before := m.Entity(core.Player1).Position
	c.Update(m, 100*time.Millisecond)
	if m.Entity(core.Player1).Position != before {
		t.Error("moved while Ended")
	}
}

func TestHandlerTypes(t *testing.T) {
	c := NewController(testConfig(), nil, nil, nil, nil)
	r := event.NewRouter[*match.Controller]()
	r.Register(c)
	for _, et := range []event.EventType{event.EventMoveRequest, event.EventAttackRequest, event.EventPickupRequest} {
		if r.HandlerCount(et) != 1 {
			t.Errorf("%s not routed", event.GetEventName(et))
		}
	}
}
