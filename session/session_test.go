package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/hoopshot/engine"
	"github.com/lixenwraith/hoopshot/event"
	"github.com/lixenwraith/hoopshot/vmath"
)

type recorder struct {
	events []event.GameEvent
}

func (r *recorder) Notify(ev event.GameEvent) {
	r.events = append(r.events, ev)
}

func (r *recorder) types() []event.EventType {
	out := make([]event.EventType, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Type
	}
	return out
}

func newTestSession(opts ...Option) (*Session, *recorder) {
	rec := &recorder{}
	e := engine.New(engine.WithRandom(vmath.ConstRand(0.5)))
	opts = append([]Option{WithSinks(rec)}, opts...)
	return New(e, opts...), rec
}

func TestMenuStartsMatch(t *testing.T) {
	s, _ := newTestSession()
	if s.Phase() != PhaseMenu {
		t.Fatalf("Expected menu, got %v", s.Phase())
	}
	s.Handle(Input{Action: ActionDurationDown})
	s.Handle(Input{Action: ActionStart, Level: 2})

	v := s.View()
	if v.Phase != PhasePlaying || v.State.Match.Level != 2 || !v.State.Match.Active {
		t.Errorf("Expected level 2 match running, got %v %+v", v.Phase, v.State.Match)
	}
	if v.State.Match.DurationSeconds != 50 {
		t.Errorf("Expected duration 50, got %d", v.State.Match.DurationSeconds)
	}
	if v.Clock != "00:50" {
		t.Errorf("Expected clock 00:50, got %s", v.Clock)
	}
}

func TestUnknownLevelFallsBack(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	s, _ := newTestSession(WithLogger(logger))

	if err := s.Start(7); err != nil {
		t.Fatalf("Expected fallback, got error %v", err)
	}
	if s.View().State.Match.Level != 1 {
		t.Errorf("Expected level 1, got %d", s.View().State.Match.Level)
	}
	if !strings.Contains(buf.String(), "unknown level") {
		t.Errorf("Expected fallback warning in log, got %q", buf.String())
	}
}

func TestDurationLimitsOnMenu(t *testing.T) {
	s, _ := newTestSession(WithDuration(120))
	s.Handle(Input{Action: ActionDurationUp})
	if d := s.View().State.Match.DurationSeconds; d != 120 {
		t.Errorf("Expected 120, got %d", d)
	}
	for i := 0; i < 20; i++ {
		s.Handle(Input{Action: ActionDurationDown})
	}
	if d := s.View().State.Match.DurationSeconds; d != 10 {
		t.Errorf("Expected 10, got %d", d)
	}
}

func TestPlayingInputs(t *testing.T) {
	s, _ := newTestSession()
	s.Handle(Input{Action: ActionConfirm})

	s.Handle(Input{Action: ActionPowerUp})
	s.Handle(Input{Action: ActionAngleUp})
	s.Handle(Input{Action: ActionAngleUp})
	aim := s.View().State.Aim
	if aim.Power != 55 || aim.AngleDegrees != 55 {
		t.Errorf("Expected 55/55, got %d/%d", aim.Power, aim.AngleDegrees)
	}

	s.Handle(Input{Action: ActionLaunch})
	s.Handle(Input{Action: ActionLaunch})
	if a := s.View().State.Match.Attempts; a != 1 {
		t.Errorf("Expected second launch rejected, got %d attempts", a)
	}

	s.Tick(16)
	s.Handle(Input{Action: ActionReset})
	if s.View().State.Projectile.InFlight {
		t.Error("Expected reset to park the ball")
	}
	if s.Phase() != PhasePlaying {
		t.Errorf("Expected still playing, got %v", s.Phase())
	}
}

func TestTimeUpGoesToGameOver(t *testing.T) {
	s, rec := newTestSession(WithDuration(10))
	s.Handle(Input{Action: ActionStart, Level: 1})
	s.Handle(Input{Action: ActionLaunch})

	for i := 0; i < 10 && s.Phase() == PhasePlaying; i++ {
		s.Tick(1000)
	}
	if s.Phase() != PhaseGameOver {
		t.Fatalf("Expected game over, got %v", s.Phase())
	}
	v := s.View()
	if v.Final.Attempts != 1 || v.Final.Reason != event.EndTimeUp {
		t.Errorf("Unexpected final tally %+v", v.Final)
	}
	if v.Clock != "00:00" {
		t.Errorf("Expected clock 00:00, got %s", v.Clock)
	}

	types := rec.types()
	n := len(types)
	if n < 2 || types[n-2] != event.EventBuzzer || types[n-1] != event.EventMatchEnded {
		t.Errorf("Expected trailing [Buzzer MatchEnded], got %v", types)
	}

	s.Handle(Input{Action: ActionConfirm})
	if s.Phase() != PhaseMenu {
		t.Errorf("Expected menu after confirm, got %v", s.Phase())
	}
}

func TestBackAbortsWithoutBuzzer(t *testing.T) {
	s, rec := newTestSession()
	s.Handle(Input{Action: ActionConfirm})
	s.Handle(Input{Action: ActionBack})

	if s.Phase() != PhaseMenu {
		t.Fatalf("Expected menu, got %v", s.Phase())
	}
	for _, typ := range rec.types() {
		if typ == event.EventBuzzer {
			t.Error("Expected no buzzer on abort")
		}
	}
	if s.Done() {
		t.Error("Expected session still running")
	}

	s.Handle(Input{Action: ActionBack})
	if !s.Done() {
		t.Error("Expected back on menu to quit")
	}
}

func TestToggleMute(t *testing.T) {
	var got []bool
	s, _ := newTestSession(WithMuteHandler(func(m bool) { got = append(got, m) }))
	s.Handle(Input{Action: ActionToggleMute})
	s.Handle(Input{Action: ActionToggleMute})
	if len(got) != 2 || !got[0] || got[1] {
		t.Errorf("Expected [true false], got %v", got)
	}
	if s.Muted() {
		t.Error("Expected unmuted after two toggles")
	}
}

func TestTickIgnoredOutsidePlay(t *testing.T) {
	s, rec := newTestSession()
	s.Tick(100000)
	if s.View().State.Match.ElapsedMs != 0 || len(rec.events) != 0 {
		t.Error("Expected menu ticks to do nothing")
	}
}

func TestFormatClock(t *testing.T) {
	cases := map[int]string{0: "00:00", 9: "00:09", 60: "01:00", 119: "01:59", -3: "00:00"}
	for in, want := range cases {
		if got := FormatClock(in); got != want {
			t.Errorf("FormatClock(%d): expected %s, got %s", in, want, got)
		}
	}
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)
	sink := NewLogSink(logger)
	sink.Notify(event.GameEvent{Type: event.EventScore, Payload: &event.ScorePayload{Score: 1, Attempts: 2}, Frame: 9})
	sink.Notify(event.GameEvent{Type: event.EventBuzzer, Frame: 10})

	out := buf.String()
	if !strings.Contains(out, "score") || !strings.Contains(out, "Buzzer") {
		t.Errorf("Expected score and Buzzer lines, got %q", out)
	}
}
