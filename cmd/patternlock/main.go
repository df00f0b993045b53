// Command patternlock runs the pattern lock grid in a terminal.
//
// Drag with the primary mouse button across the cells to draw a pattern.
// Keys: l lock, u unlock, m modify, r re-arm attempts, s mute, q quit.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/patternlock/audio"
	"github.com/lixenwraith/patternlock/config"
	"github.com/lixenwraith/patternlock/core"
	"github.com/lixenwraith/patternlock/event"
	"github.com/lixenwraith/patternlock/logging"
	"github.com/lixenwraith/patternlock/service"
	"github.com/lixenwraith/patternlock/session"
	"github.com/lixenwraith/patternlock/store"
)

var (
	configFlag = flag.String("config", "patternlock.toml", "Path to the TOML configuration file")
	modeFlag   = flag.String("mode", "", "Override the lock mode: lock, unlock, modify")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *modeFlag != "" {
		cfg.Lock.Mode = *modeFlag
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid -mode: %v\n", err)
			os.Exit(1)
		}
	}

	logger, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()
	logger = logger.With().Str("run", uuid.NewString()).Logger()
	core.SetCrashLogger(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("patternlock exited with error")
		fmt.Fprintf(os.Stderr, "patternlock: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger zerolog.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sessionCfg, err := cfg.Session()
	if err != nil {
		return err
	}

	services := service.NewHub(logging.Component(logger, "service"))
	defer services.Stop()

	answers, err := store.Open(ctx, cfg.Store, cfg.Grid.Count)
	if err != nil {
		return fmt.Errorf("failed to open answer store: %w", err)
	}
	player := audio.NewPlayer(cfg.Audio.Enabled)
	if err := services.Register(service.Closer("store", answers)); err != nil {
		return err
	}
	if err := services.Register(player); err != nil {
		return err
	}
	if err := services.Start(); err != nil {
		return err
	}

	switch saved, err := answers.Load(ctx); {
	case err == nil:
		sessionCfg.Answer = saved
		logger.Info().Str("backend", cfg.Store.Backend).Int("length", len(saved)).Msg("answer loaded")
	case errors.Is(err, store.ErrNotFound):
		logger.Info().Str("backend", cfg.Store.Backend).Msg("no saved answer")
	default:
		return fmt.Errorf("failed to load answer: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	screen.EnableMouse(tcell.MouseDragEvents)

	queue := event.NewQueue()
	a := newApp(ctx, screen, answers, player, logging.Component(logger, "host"), cancel)

	sess, err := session.New(sessionCfg,
		session.WithListener(session.Listeners{a}),
		session.WithPoster(queue.Post),
		session.WithLogger(logging.Component(logger, "session")),
	)
	if err != nil {
		return err
	}
	defer sess.Detach()
	a.attach(sess)

	loop := event.NewLoop(queue, a,
		event.WithAfterBatch(a.draw),
		event.WithLogger(logging.Component(logger, "loop")),
	)

	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			queue.Post(func() { a.handleTerminal(ev) })
		}
	})

	a.draw()
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
