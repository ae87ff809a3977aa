package config

import (
	"flag"
	"fmt"

	"github.com/lixenwraith/hoopshot/parameter"
)

// FromArgs parses command-line flags and layers them over Load(-config)
// Only flags given explicitly override file and environment values
func FromArgs(name string, args []string) (Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	path := fs.String("config", "", "TOML config file")
	duration := fs.Int("duration", parameter.DurationDefault, "Match duration in seconds (10-120, step 10)")
	lvl := fs.Int("level", parameter.DefaultLevel, "Level preselected on the menu")
	seed := fs.Uint64("seed", 0, "Wind random seed, 0 picks one from the clock")
	muted := fs.Bool("mute", false, "Start with sound muted")
	debug := fs.Bool("debug", false, "Write debug logs to logs/")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg, err := Load(*path)
	if err != nil {
		return cfg, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "duration":
			cfg.Duration = *duration
		case "level":
			cfg.Level = *lvl
		case "seed":
			cfg.Seed = *seed
		case "mute":
			cfg.Muted = *muted
		case "debug":
			cfg.Debug = *debug
		}
	})
	return cfg, cfg.Validate()
}
