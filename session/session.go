// Package session drives the engine from player input and frame ticks and tracks menu and game-over screens
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/hoopshot/core"
	"github.com/lixenwraith/hoopshot/engine"
	"github.com/lixenwraith/hoopshot/event"
	"github.com/lixenwraith/hoopshot/level"
	"github.com/lixenwraith/hoopshot/parameter"
)

// Session owns the simulation state and is the only caller of the engine
// Not safe for concurrent use; front-ends call it from their loop goroutine
type Session struct {
	engine *engine.Engine
	state  *core.State
	phase  Phase
	sinks  []event.Sink
	logger *log.Logger

	selectedLevel int
	final         event.MatchEndedPayload
	muted         bool
	onMute        func(muted bool)
	done          bool
}

// Option configures a Session
type Option func(*Session)

// WithSinks registers event consumers, notified in order after every call
func WithSinks(sinks ...event.Sink) Option {
	return func(s *Session) {
		s.sinks = append(s.sinks, sinks...)
	}
}

// WithLogger sets the session logger
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDuration sets the initial match duration shown on the menu
func WithDuration(seconds int) Option {
	return func(s *Session) {
		s.engine.SetDuration(s.state, seconds)
	}
}

// WithLevel sets the level preselected on the menu
func WithLevel(id int) Option {
	return func(s *Session) {
		s.selectedLevel = id
	}
}

// WithMuteHandler is called with the new mute state on ActionToggleMute
func WithMuteHandler(fn func(muted bool)) Option {
	return func(s *Session) {
		s.onMute = fn
	}
}

// WithMuted sets the initial mute state
func WithMuted(muted bool) Option {
	return func(s *Session) {
		s.muted = muted
	}
}

// New creates a session on the menu screen
func New(e *engine.Engine, opts ...Option) *Session {
	s := &Session{
		engine:        e,
		state:         e.NewState(),
		phase:         PhaseMenu,
		logger:        log.New(io.Discard),
		selectedLevel: parameter.DefaultLevel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Phase returns the current screen
func (s *Session) Phase() Phase {
	return s.phase
}

// Done reports whether the player asked to quit
func (s *Session) Done() bool {
	return s.done
}

// Muted reports the current mute state
func (s *Session) Muted() bool {
	return s.muted
}

// Start begins a match on levelID, falling back to the default level when it is not configured
func (s *Session) Start(levelID int) error {
	err := s.engine.StartMatch(s.state, levelID, s.state.Match.DurationSeconds)
	if errors.Is(err, level.ErrUnknownLevel) {
		s.logger.Warn("unknown level, using default", "level", levelID, "default", parameter.DefaultLevel)
		levelID = parameter.DefaultLevel
		err = s.engine.StartMatch(s.state, levelID, s.state.Match.DurationSeconds)
	}
	if err != nil {
		return fmt.Errorf("session start: %w", err)
	}
	s.selectedLevel = levelID
	s.phase = PhasePlaying
	s.logger.Info("match started", "level", levelID, "duration", s.state.Match.DurationSeconds)
	return nil
}

// Handle applies one input for the current phase
// Rejected inputs are logged and dropped, none of them ends a running match
func (s *Session) Handle(in Input) {
	if in.Action == ActionQuit {
		s.quit()
		return
	}
	if in.Action == ActionToggleMute {
		s.muted = !s.muted
		if s.onMute != nil {
			s.onMute(s.muted)
		}
		return
	}

	switch s.phase {
	case PhaseMenu:
		s.handleMenu(in)
	case PhasePlaying:
		s.handlePlaying(in)
	case PhaseGameOver:
		if in.Action == ActionConfirm || in.Action == ActionBack {
			s.phase = PhaseMenu
		}
	}
	s.flush()
}

func (s *Session) handleMenu(in Input) {
	switch in.Action {
	case ActionStart:
		if err := s.Start(in.Level); err != nil {
			s.logger.Error("start failed", "level", in.Level, "error", err)
		}
	case ActionConfirm:
		if err := s.Start(s.selectedLevel); err != nil {
			s.logger.Error("start failed", "level", s.selectedLevel, "error", err)
		}
	case ActionDurationUp:
		s.engine.SetDuration(s.state, s.state.Match.DurationSeconds+parameter.DurationStep)
	case ActionDurationDown:
		s.engine.SetDuration(s.state, s.state.Match.DurationSeconds-parameter.DurationStep)
	case ActionBack:
		s.quit()
	}
}

func (s *Session) handlePlaying(in Input) {
	var err error
	switch in.Action {
	case ActionLaunch:
		err = s.engine.Launch(s.state)
	case ActionPowerUp:
		err = s.engine.AdjustAim(s.state, core.AxisPower, 1)
	case ActionPowerDown:
		err = s.engine.AdjustAim(s.state, core.AxisPower, -1)
	case ActionAngleUp:
		err = s.engine.AdjustAim(s.state, core.AxisAngle, 1)
	case ActionAngleDown:
		err = s.engine.AdjustAim(s.state, core.AxisAngle, -1)
	case ActionReset:
		s.engine.ResetProjectile(s.state)
	case ActionBack:
		s.engine.EndMatchEarly(s.state)
	}
	if err != nil {
		s.logger.Debug("input rejected", "action", in.Action, "error", err)
	}
}

// Tick advances one frame; deltaMs is the wall-clock time since the previous tick
func (s *Session) Tick(deltaMs int64) {
	if s.phase != PhasePlaying {
		return
	}
	s.engine.Step(s.state, deltaMs)
	s.flush()
}

// flush drains engine events, applies screen transitions and fans them out to the sinks
func (s *Session) flush() {
	events := s.engine.Drain()
	for _, ev := range events {
		if ev.Type != event.EventMatchEnded {
			continue
		}
		p, ok := ev.Payload.(*event.MatchEndedPayload)
		if !ok {
			continue
		}
		s.final = *p
		if p.Reason == event.EndTimeUp {
			s.phase = PhaseGameOver
		} else {
			s.phase = PhaseMenu
		}
		s.logger.Info("match ended", "frame", s.engine.Frame(), "score", p.FinalScore, "attempts", p.Attempts, "reason", p.Reason)
	}
	event.Dispatch(events, s.sinks...)
}

func (s *Session) quit() {
	if s.phase == PhasePlaying {
		s.engine.EndMatchEarly(s.state)
		s.flush()
	}
	s.done = true
}

// View is a read-only snapshot for renderers
type View struct {
	Phase  Phase
	State  core.State
	Levels []int
	Level  int // Selected level on the menu, current level otherwise
	Clock  string
	Final  event.MatchEndedPayload
	Muted  bool
}

// View returns the current snapshot
func (s *Session) View() View {
	snap := s.engine.Snapshot(s.state)
	clock := FormatClock(snap.Match.RemainingSeconds())
	if s.phase == PhaseMenu {
		clock = FormatClock(snap.Match.DurationSeconds)
	}
	return View{
		Phase:  s.phase,
		State:  snap,
		Levels: s.engine.Levels().IDs(),
		Level:  s.selectedLevel,
		Clock:  clock,
		Final:  s.final,
		Muted:  s.muted,
	}
}

// FormatClock renders seconds as MM:SS
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
