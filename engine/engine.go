// Package engine advances the shot simulation one tick at a time and applies player inputs
package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/hoopshot/core"
	"github.com/lixenwraith/hoopshot/event"
	"github.com/lixenwraith/hoopshot/level"
	"github.com/lixenwraith/hoopshot/parameter"
	"github.com/lixenwraith/hoopshot/physics"
	"github.com/lixenwraith/hoopshot/vmath"
)

var (
	// ErrInvalidState is returned when an input is not allowed in the current state
	ErrInvalidState = errors.New("invalid state")
	// ErrInvalidInput is returned for malformed input values
	ErrInvalidInput = errors.New("invalid input")
)

// RandomSource supplies uniform samples in [0, 1) for the wind term
type RandomSource interface {
	Float64() float64
}

// Engine owns no state of its own beyond collaborators: every call takes the State it mutates
// Not safe for concurrent use
type Engine struct {
	levels *level.Table
	rng    RandomSource
	queue  *event.Queue
	logger *log.Logger
	frame  int64
}

// Option configures an Engine
type Option func(*Engine)

// WithRandom injects the wind sample source
func WithRandom(r RandomSource) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// WithSeed seeds the default xorshift source
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.rng = vmath.NewFastRand(seed)
	}
}

// WithLevels replaces the default three-level table
func WithLevels(t *level.Table) Option {
	return func(e *Engine) {
		if t != nil {
			e.levels = t
		}
	}
}

// WithLogger sets the debug logger
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine with the default level table and a seed-1 random source
func New(opts ...Option) *Engine {
	e := &Engine{
		levels: level.DefaultTable(),
		rng:    vmath.NewFastRand(1),
		queue:  event.NewQueue(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Levels returns the engine's level table
func (e *Engine) Levels() *level.Table {
	return e.levels
}

// Frame returns the number of Step calls made so far
func (e *Engine) Frame() int64 {
	return e.frame
}

// NewState returns an idle state on the default level with default aim and duration
func (e *Engine) NewState() *core.State {
	s := &core.State{
		Field: core.Playfield{
			Width:      parameter.PlayfieldWidth,
			Height:     parameter.PlayfieldHeight,
			BallRadius: parameter.BallRadius,
		},
		Aim: core.Aim{
			Power:        parameter.PowerDefault,
			AngleDegrees: parameter.AngleDefault,
		},
		Match: core.Match{DurationSeconds: parameter.DurationDefault},
	}
	id := parameter.DefaultLevel
	if !e.levels.Has(id) {
		id = e.levels.IDs()[0]
	}
	if _, _, err := e.SelectLevel(s, id); err != nil {
		// id comes from the table itself
		panic(err)
	}
	e.ResetProjectile(s)
	return s
}

// SelectLevel installs the profile and target for levelID
// Unknown ids leave the state untouched
func (e *Engine) SelectLevel(s *core.State, levelID int) (core.Profile, core.Target, error) {
	p, t, err := e.levels.Select(levelID, s.Field)
	if err != nil {
		return core.Profile{}, core.Target{}, err
	}
	s.Profile = p
	s.Target = t
	s.Match.Level = levelID
	return p, t, nil
}

// SetDuration clamps seconds to the allowed range, snaps it to the duration step and stores it
// Returns the applied value
func (e *Engine) SetDuration(s *core.State, seconds int) int {
	d := ClampDuration(seconds)
	s.Match.DurationSeconds = d
	return d
}

// ClampDuration maps any value onto the nearest allowed match duration
func ClampDuration(seconds int) int {
	if seconds <= parameter.DurationMin {
		return parameter.DurationMin
	}
	if seconds >= parameter.DurationMax {
		return parameter.DurationMax
	}
	offset := seconds - parameter.DurationMin
	steps := (offset + parameter.DurationStep/2) / parameter.DurationStep
	return parameter.DurationMin + steps*parameter.DurationStep
}

// StartMatch selects the level, applies the duration and begins a fresh match
func (e *Engine) StartMatch(s *core.State, levelID, durationSeconds int) error {
	if _, _, err := e.SelectLevel(s, levelID); err != nil {
		return fmt.Errorf("start match: %w", err)
	}
	e.SetDuration(s, durationSeconds)
	s.Match.Score = 0
	s.Match.Attempts = 0
	s.Match.ElapsedMs = 0
	s.Match.Active = true
	e.ResetProjectile(s)
	e.logger.Debug("match started", "level", levelID, "duration", s.Match.DurationSeconds)
	return nil
}

// EndMatchEarly stops an active match without the buzzer
// Returns false when no match was running
func (e *Engine) EndMatchEarly(s *core.State) bool {
	if !s.Match.Active {
		return false
	}
	s.Match.Active = false
	e.ResetProjectile(s)
	event.EmitMatchEnd(e.queue, s.Match.Score, s.Match.Attempts, event.EndAborted, e.frame)
	e.logger.Debug("match aborted", "score", s.Match.Score, "attempts", s.Match.Attempts)
	return true
}

// ResetProjectile parks the ball on the launch point
// Aim and match counters are left alone
func (e *Engine) ResetProjectile(s *core.State) {
	physics.Park(&s.Projectile, s.Field.LaunchPoint(parameter.LaunchOffsetY))
}

// Launch fires the ball with the current aim and counts an attempt
func (e *Engine) Launch(s *core.State) error {
	switch {
	case !s.Match.Active:
		e.logger.Debug("launch rejected", "reason", "match inactive")
		return fmt.Errorf("%w: no active match", ErrInvalidState)
	case s.Projectile.InFlight:
		e.logger.Debug("launch rejected", "reason", "in flight")
		return fmt.Errorf("%w: ball already in flight", ErrInvalidState)
	}
	s.Match.Attempts++
	physics.Launch(&s.Projectile, s.Aim.Power, s.Aim.AngleDegrees, parameter.LaunchSpeedScale)
	return nil
}

// AdjustAim moves one aim axis by a single step in direction (+1 or -1), saturating at the bounds
func (e *Engine) AdjustAim(s *core.State, axis core.AimAxis, direction int) error {
	if direction != 1 && direction != -1 {
		return fmt.Errorf("%w: direction %d", ErrInvalidInput, direction)
	}
	if s.Projectile.InFlight {
		e.logger.Debug("aim rejected", "axis", axis, "reason", "in flight")
		return fmt.Errorf("%w: cannot aim while in flight", ErrInvalidState)
	}
	delta := direction * parameter.AimStep
	switch axis {
	case core.AxisPower:
		s.Aim.Power = clampInt(s.Aim.Power+delta, parameter.PowerMin, parameter.PowerMax)
	case core.AxisAngle:
		s.Aim.AngleDegrees = clampInt(s.Aim.AngleDegrees+delta, parameter.AngleMin, parameter.AngleMax)
	default:
		return fmt.Errorf("%w: axis %d", ErrInvalidInput, axis)
	}
	return nil
}

// CheckScore awards a basket when the descending ball center is inside the target band
// A flight scores at most once
func (e *Engine) CheckScore(s *core.State) bool {
	p := &s.Projectile
	if !p.InFlight || p.Scored || !physics.InTarget(p, s.Target) {
		return false
	}
	p.Scored = true
	s.Match.Score++
	event.EmitScore(e.queue, s.Match.Score, s.Match.Attempts, e.frame)
	return true
}

// Step runs one simulation tick and returns true only on the tick the match ends
// deltaMs is the driver's wall-clock time since the previous call; negative values count as zero
func (e *Engine) Step(s *core.State, deltaMs int64) bool {
	if !s.Match.Active {
		return false
	}
	e.frame++

	if deltaMs > 0 {
		s.Match.ElapsedMs += deltaMs
	}
	if s.Match.ElapsedMs >= int64(s.Match.DurationSeconds)*1000 {
		s.Match.Active = false
		event.EmitMatchEnd(e.queue, s.Match.Score, s.Match.Attempts, event.EndTimeUp, e.frame)
		e.logger.Debug("match ended", "score", s.Match.Score, "attempts", s.Match.Attempts)
		return true
	}

	p := &s.Projectile
	if !p.InFlight {
		return false
	}

	physics.Integrate(p, physics.Acceleration(s.Profile.Gravity, s.Profile.WindMagnitude, e.rng.Float64()))
	e.CheckScore(s)

	floorY := s.Field.FloorY()
	r := s.Field.BallRadius
	if c, hit := physics.ReflectFloor(p, floorY, r, &physics.Floor); hit && c.Audible {
		event.EmitBounce(e.queue, c, e.frame)
	}
	if c, hit := physics.ReflectWalls(p, s.Field.Width, r, &physics.Wall); hit && c.Audible {
		event.EmitBounce(e.queue, c, e.frame)
	}

	if physics.AtRest(p, floorY, r, parameter.RestSpeed, parameter.RestBand) {
		e.ResetProjectile(s)
	}
	return false
}

// Drain returns and clears events emitted since the previous call
func (e *Engine) Drain() []event.GameEvent {
	return e.queue.Consume()
}

// Snapshot returns a value copy for renderers
func (e *Engine) Snapshot(s *core.State) core.State {
	return s.Clone()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
