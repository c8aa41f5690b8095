package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-tennis/audio"
	"github.com/lixenwraith/vi-tennis/config"
	"github.com/lixenwraith/vi-tennis/engine"
	"github.com/lixenwraith/vi-tennis/input"
	"github.com/lixenwraith/vi-tennis/metrics"
	"github.com/lixenwraith/vi-tennis/render"
	"github.com/lixenwraith/vi-tennis/server"
)

var (
	envFileFlag  = flag.String("env", ".env", "Environment file to load (optional)")
	debugFlag    = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	seedFlag     = flag.Int64("seed", 0, "Random seed (0 = from clock)")
	fpsFlag      = flag.Int("fps", 0, "Frame rate")
	headlessFlag = flag.Bool("headless", false, "Run AI-vs-AI attract mode without a terminal")
	serveFlag    = flag.String("serve", "", "Spectator API listen address, e.g. :8080")
	noAudioFlag  = flag.Bool("no-audio", false, "Disable sound")
	keysFlag     = flag.String("keys", "", "Key binding overrides, e.g. w=up,s=down")
	keyFileFlag  = flag.String("keyfile", "", "TOML key binding file with a [keys] table")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*envFileFlag)
	if err == nil {
		applyFlags(&cfg)
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		log.Printf("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "vi-tennis: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags overrides cfg with the flags given on the command line
func applyFlags(cfg *config.AppConfig) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Log.Debug = *debugFlag
		case "seed":
			cfg.Game.Seed = *seedFlag
		case "fps":
			cfg.Game.FPS = *fpsFlag
		case "headless":
			cfg.Game.Headless = *headlessFlag
		case "serve":
			cfg.Server.Addr = *serveFlag
		case "no-audio":
			cfg.Audio.Enabled = !*noAudioFlag
		case "keys":
			cfg.Game.Keys = *keysFlag
		case "keyfile":
			cfg.Game.KeyFile = *keyFileFlag
		}
	})
}

// loadKeymap builds the bindings: defaults, then the key file, then inline overrides
func loadKeymap(cfg config.GameConfig) (input.Keymap, error) {
	keymap := input.DefaultKeymap()
	if cfg.KeyFile != "" {
		var err error
		if keymap, err = keymap.LoadKeyFile(cfg.KeyFile); err != nil {
			return keymap, errors.Wrapf(err, "key file %s", cfg.KeyFile)
		}
	}
	keymap, err := keymap.Apply(cfg.Keys)
	return keymap, errors.Wrap(err, "key bindings")
}

func run(cfg config.AppConfig) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sink := &frameSink{metrics: metrics.New(prometheus.DefaultRegisterer)}

	if cfg.Server.Enabled() {
		sink.hub = server.NewHub(cfg.Server.SpectatorFPS, cfg.Server.CORSOrigins, sink.metrics)
		srv := server.New(cfg.Server.Addr, sink.hub, server.RouterConfig{
			Images:      render.NewImageRenderer(cfg.Server.ImageWidth),
			CORSOrigins: cfg.Server.CORSOrigins,
		})
		if _, err := srv.Start(ctx); err != nil {
			return errors.Wrap(err, "start spectator server")
		}
	}

	rng := engine.NewRand(cfg.Game.Seed)
	interval := cfg.Game.FrameInterval()

	if cfg.Game.Headless {
		log.Printf("headless attract mode at %v per frame", interval)
		runHeadless(ctx, engine.NewGame(engine.GameOptions{Rand: rng, Attract: true}), interval, sink)
		return nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("not a terminal; use -headless to run without one")
	}

	keymap, err := loadKeymap(cfg.Game)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "initialize screen")
	}
	defer screen.Fini()

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nVI-TENNIS CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()

	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = cfg.Audio.Enabled
	audioCfg.MasterVolume = cfg.Audio.Volume
	sink.sounds = audio.NewSoundManager(audioCfg)
	if err := sink.sounds.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sink.sounds.Cleanup()

	clock := engine.NewMonotonicTimeProvider()
	game := engine.NewGame(engine.GameOptions{Rand: rng, Clock: clock})
	tracker := input.NewTracker(clock, keymap)

	runTerminal(ctx, screen, game, tracker, interval, sink)

	played, dropped := sink.sounds.Stats()
	log.Printf("exit after %d frames, sounds played %d dropped %d", game.FrameNumber(), played, dropped)
	return nil
}
