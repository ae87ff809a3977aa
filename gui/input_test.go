package gui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/hoopshot/session"
)

func TestActionFor(t *testing.T) {
	cases := []struct {
		key   ebiten.Key
		phase session.Phase
		want  session.Action
		ok    bool
	}{
		{ebiten.KeySpace, session.PhasePlaying, session.ActionLaunch, true},
		{ebiten.KeySpace, session.PhaseMenu, session.ActionNone, false},
		{ebiten.KeyUp, session.PhaseMenu, session.ActionDurationUp, true},
		{ebiten.KeyUp, session.PhasePlaying, session.ActionPowerUp, true},
		{ebiten.KeyLeft, session.PhasePlaying, session.ActionAngleUp, true},
		{ebiten.KeyEnter, session.PhaseGameOver, session.ActionConfirm, true},
		{ebiten.KeyEscape, session.PhasePlaying, session.ActionBack, true},
		{ebiten.KeyQ, session.PhasePlaying, session.ActionNone, false},
	}
	for _, tc := range cases {
		got, ok := ActionFor(tc.key, tc.phase)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ActionFor(%v, %v): expected %v/%v, got %v/%v", tc.key, tc.phase, tc.want, tc.ok, got, ok)
		}
	}
}

func TestFires(t *testing.T) {
	if Fires(0, true) {
		t.Error("Expected released key not to fire")
	}
	if !Fires(1, false) {
		t.Error("Expected first frame to fire")
	}
	if Fires(repeatDelay+repeatInterval, false) {
		t.Error("Expected non-repeating key to fire once")
	}
	if Fires(repeatDelay, true) {
		t.Error("Expected no repeat before the delay")
	}
	if !Fires(repeatDelay+repeatInterval, true) {
		t.Error("Expected repeat after the delay")
	}
}
