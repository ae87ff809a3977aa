package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/hoopshot/session"
)

// Held aim keys repeat after repeatDelay frames, once every repeatInterval frames
const (
	repeatDelay    = 15
	repeatInterval = 3
)

// binding maps one key to an input per phase
type binding struct {
	key    ebiten.Key
	menu   session.Action
	play   session.Action
	over   session.Action
	repeat bool
}

var bindings = []binding{
	{key: ebiten.KeySpace, play: session.ActionLaunch},
	{key: ebiten.KeyUp, menu: session.ActionDurationUp, play: session.ActionPowerUp, repeat: true},
	{key: ebiten.KeyDown, menu: session.ActionDurationDown, play: session.ActionPowerDown, repeat: true},
	{key: ebiten.KeyLeft, play: session.ActionAngleUp, repeat: true},
	{key: ebiten.KeyRight, play: session.ActionAngleDown, repeat: true},
	{key: ebiten.KeyR, play: session.ActionReset},
	{key: ebiten.KeyM, menu: session.ActionToggleMute, play: session.ActionToggleMute, over: session.ActionToggleMute},
	{key: ebiten.KeyEscape, menu: session.ActionBack, play: session.ActionBack, over: session.ActionBack},
	{key: ebiten.KeyEnter, menu: session.ActionConfirm, over: session.ActionConfirm},
}

var levelKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// ActionFor returns the action a key triggers in phase
func ActionFor(k ebiten.Key, phase session.Phase) (session.Action, bool) {
	for _, b := range bindings {
		if b.key != k {
			continue
		}
		var a session.Action
		switch phase {
		case session.PhaseMenu:
			a = b.menu
		case session.PhasePlaying:
			a = b.play
		case session.PhaseGameOver:
			a = b.over
		}
		return a, a != session.ActionNone
	}
	return session.ActionNone, false
}

// Fires reports whether a key held for duration frames triggers this frame
func Fires(duration int, repeat bool) bool {
	if duration == 1 {
		return true
	}
	return repeat && duration > repeatDelay && (duration-repeatDelay)%repeatInterval == 0
}

// pollInputs collects this frame's inputs
func pollInputs(phase session.Phase) []session.Input {
	var inputs []session.Input
	for _, b := range bindings {
		if !Fires(inpututil.KeyPressDuration(b.key), b.repeat) {
			continue
		}
		if a, ok := ActionFor(b.key, phase); ok {
			inputs = append(inputs, session.Input{Action: a})
		}
	}
	if phase == session.PhaseMenu {
		for i, k := range levelKeys {
			if inpututil.IsKeyJustPressed(k) {
				inputs = append(inputs, session.Input{Action: session.ActionStart, Level: i + 1})
			}
		}
	}
	return inputs
}
