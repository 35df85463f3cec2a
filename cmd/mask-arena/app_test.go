package main

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mask-arena/audio"
	"github.com/lixenwraith/mask-arena/config"
	"github.com/lixenwraith/mask-arena/core"
	"github.com/lixenwraith/mask-arena/engine"
	"github.com/lixenwraith/mask-arena/event"
	"github.com/lixenwraith/mask-arena/match"
	"github.com/lixenwraith/mask-arena/vmath"
)

var t0 = time.Unix(1_700_000_000, 0)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testApp(t *testing.T) (*app, *engine.MockTimeProvider) {
	t.Helper()
	cfg := config.Default()
	cfg.Match.CountdownSeconds = 2
	cfg.Match.DurationSeconds = 10
	cfg.Engine.Seed = 99

	clock := engine.NewMockTimeProvider(t0)
	a, err := newApp(cfg, clock, audio.Silent{}, quietLogger())
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	return a, clock
}

// tick advances the clock one scheduler step and processes it
func tick(a *app, clock *engine.MockTimeProvider, dt time.Duration) {
	clock.Advance(dt)
	a.sched.Tick()
}

func TestQueuedEventsDriveMatch(t *testing.T) {
	a, clock := testApp(t)

	a.queue.Emit(event.EventBeginRequest, nil)
	tick(a, clock, 16*time.Millisecond)
	if a.ctrl.Phase() != match.PhaseCountdown {
		t.Fatalf("phase = %s, want Countdown", a.ctrl.Phase())
	}

	for i := 0; i < 3; i++ {
		tick(a, clock, time.Second)
	}
	if a.ctrl.Phase() != match.PhasePlaying {
		t.Fatalf("phase = %s, want Playing", a.ctrl.Phase())
	}

	a.queue.Push(event.GameEvent{
		Type:    event.EventMoveRequest,
		Payload: &event.MoveRequestPayload{Player: core.Player1, Dir: vmath.Vec2{Y: 1}},
	})
	tick(a, clock, 100*time.Millisecond)
	if y := a.ctrl.Entity(core.Player1).Position.Y; y <= 0 {
		t.Errorf("player 1 did not move, y = %v", y)
	}

	// Pickups appear within the max interval
	for i := 0; i < 6; i++ {
		tick(a, clock, time.Second)
	}
	if a.spawner.Count() == 0 {
		t.Error("no pickups spawned during play")
	}

	for i := 0; i < 10; i++ {
		tick(a, clock, time.Second)
	}
	if a.ctrl.Phase() != match.PhaseEnded {
		t.Fatalf("phase = %s, want Ended", a.ctrl.Phase())
	}
	if a.spawner.Count() != 0 {
		t.Errorf("pickups = %d after end", a.spawner.Count())
	}
	res, ok := a.ctrl.Result().Get()
	if !ok || !res.Draw() {
		t.Errorf("result = %+v, want draw", res)
	}

	a.queue.Emit(event.EventReturnRequest, nil)
	tick(a, clock, 16*time.Millisecond)
	if a.ctrl.Phase() != match.PhaseStartScreen {
		t.Fatalf("phase = %s, want StartScreen", a.ctrl.Phase())
	}
}

func TestOverlayAndQuitEvents(t *testing.T) {
	a, clock := testApp(t)

	a.queue.Emit(event.EventOverlayToggle, nil)
	a.queue.Emit(event.EventQuitRequest, nil)
	a.queue.Emit(event.EventQuitRequest, nil)
	tick(a, clock, 16*time.Millisecond)

	if !a.renderer.Overlay() {
		t.Error("overlay not toggled")
	}
	select {
	case <-a.quit:
	default:
		t.Error("quit not signalled")
	}

	f := a.frame()
	if len(f.Status) == 0 {
		t.Error("overlay frame carries no status lines")
	}
	joined := strings.Join(f.Status, "\n")
	if !strings.Contains(joined, "match.phase: StartScreen") {
		t.Errorf("status = %s", joined)
	}
}

func TestServeStopsOnQuit(t *testing.T) {
	cfg := config.Default()
	a, err := newApp(cfg, engine.NewTimeProvider(), audio.Silent{}, quietLogger())
	if err != nil {
		t.Fatal(err)
	}

	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(60, 20)

	done := make(chan error, 1)
	go func() { done <- a.serve(context.Background(), screen, quietLogger()) }()

	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop after q")
	}
	if a.sched.TickCount() == 0 {
		t.Error("scheduler never ticked")
	}
}
