package main

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/mask-arena/audio"
	"github.com/lixenwraith/mask-arena/config"
	"github.com/lixenwraith/mask-arena/core"
	"github.com/lixenwraith/mask-arena/engine"
	"github.com/lixenwraith/mask-arena/event"
	"github.com/lixenwraith/mask-arena/match"
	"github.com/lixenwraith/mask-arena/player"
	"github.com/lixenwraith/mask-arena/render"
	"github.com/lixenwraith/mask-arena/spawn"
	"github.com/lixenwraith/mask-arena/status"
	"github.com/lixenwraith/mask-arena/vmath"
)

// app wires the match components around one scheduler
type app struct {
	cfg      config.Config
	clock    engine.Clock
	queue    *event.EventQueue
	reg      *status.Registry
	ctrl     *match.Controller
	spawner  *spawn.Scheduler
	players  *player.Controller
	sched    *engine.ClockScheduler[*match.Controller]
	renderer *render.ArenaRenderer
	detach   func()
	quit     chan struct{}
}

type locatorFunc func() []vmath.Vec2

func (f locatorFunc) ActivePlayers() []vmath.Vec2 { return f() }

func newApp(cfg config.Config, clock engine.Clock, cues audio.Player, logger *slog.Logger) (*app, error) {
	event.InitRegistry()

	seed := cfg.Engine.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	a := &app{
		cfg:      cfg,
		clock:    clock,
		queue:    event.NewEventQueue(),
		reg:      status.NewRegistry(),
		renderer: render.NewArenaRenderer(cfg.Spawn.Region.Rect()),
		quit:     make(chan struct{}),
	}

	a.spawner = spawn.NewScheduler(cfg.SpawnConfig(), spawn.Deps{
		RNG:   vmath.NewFastRand(seed),
		Clock: clock,
		Players: locatorFunc(func() []vmath.Vec2 {
			if a.ctrl == nil {
				return nil
			}
			return a.ctrl.ActivePlayers()
		}),
		Status: a.reg,
		Logger: logger.With("component", "spawn"),
	})

	ctrl, err := match.NewController(cfg.MatchConfig(), match.Deps{
		Clock:   clock,
		Spawner: a.spawner,
		FSMPath: cfg.Engine.FSMPath,
		Status:  a.reg,
		Logger:  logger.With("component", "match"),
	})
	if err != nil {
		return nil, err
	}
	a.ctrl = ctrl

	a.players = player.NewController(cfg.PlayerConfig(), a.spawner, clock, a.reg, logger.With("component", "player"))
	a.detach = audio.AttachCues(cues, ctrl, a.players)

	a.sched = engine.NewClockScheduler(ctrl, clock, a.queue, cfg.Tick(), a.reg, logger.With("component", "scheduler"))
	a.sched.SetMachine(ctrl.Machine())
	a.sched.RegisterEventHandler(a.players)
	a.sched.RegisterEventHandler(event.HandlerFunc[*match.Controller]{
		Types: []event.EventType{event.EventOverlayToggle},
		Fn: func(*match.Controller, event.GameEvent) {
			a.renderer.ToggleOverlay()
		},
	})
	a.sched.RegisterEventHandler(event.HandlerFunc[*match.Controller]{
		Types: []event.EventType{event.EventQuitRequest},
		Fn: func(*match.Controller, event.GameEvent) {
			select {
			case <-a.quit:
			default:
				close(a.quit)
			}
		},
	})
	a.sched.SetUpdate(func(c *match.Controller, now time.Time, dt time.Duration) {
		c.Step(now, dt)
		a.players.Update(c, dt)
	})

	return a, nil
}

// frame copies render state while no tick runs
func (a *app) frame() render.Frame {
	var f render.Frame
	a.sched.RunSafe(func() {
		f.Match = a.ctrl.Snapshot()
		if f.Match.Phase != match.PhaseStartScreen {
			f.Pickups = a.spawner.Live()
		}
		for i, id := range core.Players {
			f.Buffed[i] = a.players.Buffed(id)
		}
	})
	if a.renderer.Overlay() {
		f.Status = a.reg.Lines()
	}
	return f
}
