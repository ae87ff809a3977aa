package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/hoopshot/audio"
	"github.com/lixenwraith/hoopshot/config"
	"github.com/lixenwraith/hoopshot/engine"
	"github.com/lixenwraith/hoopshot/gui"
	"github.com/lixenwraith/hoopshot/parameter"
	"github.com/lixenwraith/hoopshot/session"
)

func main() {
	os.Exit(runMain(os.Args[1:]))
}

// runMain returns the process exit code so deferred cleanup always runs before exit
func runMain(args []string) int {
	cfg, err := config.FromArgs("hoopshot-gui", args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 2
	}

	// The window leaves the terminal free, so logs go to stderr
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "hoopshot"})
	if cfg.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	table, err := cfg.LevelTable()
	if err != nil {
		logger.Error("invalid level table", "error", err)
		return 2
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	sounds := audio.NewSoundManager()
	if err := sounds.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
	}
	defer sounds.Cleanup()
	sounds.SetMuted(cfg.Muted)

	eng := engine.New(engine.WithLevels(table), engine.WithSeed(seed), engine.WithLogger(logger))
	sess := session.New(eng,
		session.WithLogger(logger),
		session.WithDuration(cfg.Duration),
		session.WithLevel(cfg.Level),
		session.WithMuted(cfg.Muted),
		session.WithMuteHandler(sounds.SetMuted),
		session.WithSinks(sounds, session.NewLogSink(logger)),
	)

	ebiten.SetWindowSize(int(parameter.PlayfieldWidth), int(parameter.PlayfieldHeight))
	ebiten.SetWindowTitle(parameter.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gui.NewGame(sess, engine.NewMonotonicTimeProvider())); err != nil {
		logger.Error("game exited", "error", err)
		return 1
	}
	return 0
}
