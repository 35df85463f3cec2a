package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/mask-arena/audio"
	"github.com/lixenwraith/mask-arena/config"
	"github.com/lixenwraith/mask-arena/core"
	"github.com/lixenwraith/mask-arena/engine"
	"github.com/lixenwraith/mask-arena/input"
)

var (
	configPath = flag.String("config", "", "Config file (.toml, .yaml or .yml)")
	envPath    = flag.String("env", ".env", "Dotenv file, skipped when missing")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/mask-arena.log")
	schemaFlag = flag.Bool("schema", false, "Print the config JSON schema and exit")
	seedFlag   = flag.Uint64("seed", 0, "Spawn RNG seed, 0 uses the clock")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
	fsmPath    = flag.String("fsm", "", "Phase graph TOML overriding the embedded one")
)

func main() {
	flag.Parse()

	if *schemaFlag {
		data, err := config.SchemaJSON()
		if err != nil {
			fmt.Fprintf(os.Stderr, "schema: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	logger, logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(logger); err != nil {
		fmt.Fprintf(os.Stderr, "mask-arena: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	if err := config.LoadDotEnv(*envPath); err != nil {
		return err
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *seedFlag != 0 {
		cfg.Engine.Seed = *seedFlag
	}
	if *muteFlag {
		cfg.Audio.Muted = true
	}
	if *fsmPath != "" {
		cfg.Engine.FSMPath = *fsmPath
	}

	var cues audio.Player = audio.Silent{}
	if !cfg.Audio.Muted {
		sm := audio.NewSoundManager(cfg.Audio.Volume, nil, logger.With("component", "audio"))
		if err := sm.Initialize(); err != nil {
			logger.Warn("audio disabled", "error", err)
		} else {
			cues = sm
			defer sm.Close()
		}
	}

	a, err := newApp(cfg, engine.NewTimeProvider(), cues, logger)
	if err != nil {
		return err
	}
	defer a.detach()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()

	logger.Info("starting", "tick", cfg.Tick(), "seed", cfg.Engine.Seed)
	return a.serve(context.Background(), screen, logger)
}

// serve runs the scheduler, input and render loops until quit or error
func (a *app) serve(parent context.Context, screen tcell.Screen, logger *slog.Logger) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(core.Guard(func() error {
		return a.sched.Run(gctx)
	}))

	g.Go(core.Guard(func() error {
		return input.Pump(gctx, screen, input.DefaultKeyMap(), a.queue, screen.Sync, logger)
	}))

	g.Go(core.Guard(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-a.sched.Updates():
				a.renderer.Draw(screen, a.frame())
				screen.Show()
			}
		}
	}))

	g.Go(core.Guard(func() error {
		select {
		case <-a.quit:
			logger.Info("quit requested")
			cancel()
		case <-gctx.Done():
		}
		// Unblocks PollEvent in the input loop
		screen.Fini()
		return nil
	}))

	return g.Wait()
}
