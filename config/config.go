// Package config loads game settings from defaults, a TOML file, the environment and flags
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/hoopshot/core"
	"github.com/lixenwraith/hoopshot/level"
	"github.com/lixenwraith/hoopshot/parameter"
)

// ErrInvalidConfig is returned for unreadable or out-of-range settings
var ErrInvalidConfig = errors.New("invalid config")

// Environment variable names
const (
	EnvDuration = "HOOPSHOT_DURATION"
	EnvLevel    = "HOOPSHOT_LEVEL"
	EnvSeed     = "HOOPSHOT_SEED"
	EnvMuted    = "HOOPSHOT_MUTED"
	EnvDebug    = "HOOPSHOT_DEBUG"
)

// LevelEntry adds or overrides one difficulty profile
type LevelEntry struct {
	ID          int     `toml:"id"`
	TargetWidth float64 `toml:"target_width"`
	Gravity     float64 `toml:"gravity"`
	Wind        float64 `toml:"wind"`
}

type Config struct {
	Duration int          `toml:"duration"` // Seconds, [10, 120] in steps of 10
	Level    int          `toml:"level"`    // Level preselected on the menu
	Seed     uint64       `toml:"seed"`     // Wind seed, 0 picks one from the clock
	Muted    bool         `toml:"muted"`
	Debug    bool         `toml:"debug"`
	Levels   []LevelEntry `toml:"levels"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Duration: parameter.DurationDefault,
		Level:    parameter.DefaultLevel,
	}
}

// Load builds a config from defaults, the optional TOML file at path and the environment
// A .env file in the working directory is read when present
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return cfg, err
		}
	}
	if err := loadDotEnv(".env"); err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile merges settings from a TOML file; keys absent from the file keep their values
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrInvalidConfig, path, err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
	}
	return nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return nil
}

// ApplyEnv overrides fields from HOOPSHOT_* variables
func (c *Config) ApplyEnv() error {
	var err error
	if c.Duration, err = getEnvInt(EnvDuration, c.Duration); err != nil {
		return err
	}
	if c.Level, err = getEnvInt(EnvLevel, c.Level); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, perr := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if perr != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvSeed, v)
		}
		c.Seed = seed
	}
	if c.Muted, err = getEnvBool(EnvMuted, c.Muted); err != nil {
		return err
	}
	if c.Debug, err = getEnvBool(EnvDebug, c.Debug); err != nil {
		return err
	}
	return nil
}

func getEnvInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, key, v)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, key, v)
	}
	return b, nil
}

// Profiles returns the default profiles merged with configured level entries
func (c *Config) Profiles() map[int]core.Profile {
	profiles := make(map[int]core.Profile, len(level.Defaults)+len(c.Levels))
	for id, p := range level.Defaults {
		profiles[id] = p
	}
	for _, l := range c.Levels {
		profiles[l.ID] = core.Profile{TargetWidth: l.TargetWidth, Gravity: l.Gravity, WindMagnitude: l.Wind}
	}
	return profiles
}

// LevelTable builds the validated level table
func (c *Config) LevelTable() (*level.Table, error) {
	t, err := level.NewTable(c.Profiles())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return t, nil
}

// Validate checks duration range and step, level presence and every profile
func (c *Config) Validate() error {
	if c.Duration < parameter.DurationMin || c.Duration > parameter.DurationMax {
		return fmt.Errorf("%w: duration %d outside [%d, %d]", ErrInvalidConfig, c.Duration, parameter.DurationMin, parameter.DurationMax)
	}
	if (c.Duration-parameter.DurationMin)%parameter.DurationStep != 0 {
		return fmt.Errorf("%w: duration %d not a multiple of %d", ErrInvalidConfig, c.Duration, parameter.DurationStep)
	}
	t, err := c.LevelTable()
	if err != nil {
		return err
	}
	if !t.Has(c.Level) {
		return fmt.Errorf("%w: level %d not configured", ErrInvalidConfig, c.Level)
	}
	return nil
}
