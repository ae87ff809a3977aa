package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hoopshot/audio"
	"github.com/lixenwraith/hoopshot/config"
	"github.com/lixenwraith/hoopshot/core"
	"github.com/lixenwraith/hoopshot/engine"
	"github.com/lixenwraith/hoopshot/parameter"
	"github.com/lixenwraith/hoopshot/render"
	"github.com/lixenwraith/hoopshot/session"
)

func main() {
	os.Exit(runMain(os.Args[1:]))
}

// runMain returns the process exit code so deferred cleanup always runs before exit
func runMain(args []string) int {
	cfg, err := config.FromArgs("hoopshot", args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 2
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	logger := log.Default()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}

	// Panic recovery: reset the terminal before printing the crash
	core.SetCrashCleanup(screen.Fini)
	defer func() {
		core.HandleCrash(recover())
	}()
	defer screen.Fini()

	sounds := audio.NewSoundManager()
	if err := sounds.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
	}
	defer sounds.Cleanup()
	sounds.SetMuted(cfg.Muted)

	sess, err := newSession(cfg, sounds, logger)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 2
	}

	run(screen, sess, engine.NewMonotonicTimeProvider())
	return 0
}

// newSession wires config, engine, audio and logging into a session
func newSession(cfg config.Config, sounds *audio.SoundManager, logger *log.Logger) (*session.Session, error) {
	table, err := cfg.LevelTable()
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	eng := engine.New(engine.WithLevels(table), engine.WithSeed(seed), engine.WithLogger(logger))
	logger.Info("starting", "seed", seed, "levels", table.IDs(), "duration", cfg.Duration)

	return session.New(eng,
		session.WithLogger(logger),
		session.WithDuration(cfg.Duration),
		session.WithLevel(cfg.Level),
		session.WithMuted(cfg.Muted),
		session.WithMuteHandler(sounds.SetMuted),
		session.WithSinks(sounds, session.NewLogSink(logger)),
	), nil
}

// run polls terminal events on one goroutine and owns the session on this one
func run(screen tcell.Screen, sess *session.Session, tp engine.TimeProvider) {
	renderer := render.NewTerminalRenderer(screen)
	clock := engine.NewFrameClock(tp)

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if in, ok := render.KeyToInput(ev, sess.Phase()); ok {
					wasPlaying := sess.Phase() == session.PhasePlaying
					sess.Handle(in)
					if !wasPlaying && sess.Phase() == session.PhasePlaying {
						clock.Reset()
					}
				}
				if sess.Done() {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
				renderer.Resize()
			}

		case <-frameTicker.C:
			sess.Tick(clock.Delta())
			renderer.RenderFrame(sess.View())
		}
	}
}
