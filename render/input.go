package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hoopshot/session"
)

// KeyToInput maps a terminal key to a session input for the given phase
// Returns false for keys with no binding
func KeyToInput(ev *tcell.EventKey, phase session.Phase) (session.Input, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return session.Input{Action: session.ActionQuit}, true
	case tcell.KeyEscape:
		return session.Input{Action: session.ActionBack}, true
	case tcell.KeyEnter:
		return session.Input{Action: session.ActionConfirm}, true
	case tcell.KeyUp:
		if phase == session.PhaseMenu {
			return session.Input{Action: session.ActionDurationUp}, true
		}
		return session.Input{Action: session.ActionPowerUp}, true
	case tcell.KeyDown:
		if phase == session.PhaseMenu {
			return session.Input{Action: session.ActionDurationDown}, true
		}
		return session.Input{Action: session.ActionPowerDown}, true
	case tcell.KeyLeft:
		return session.Input{Action: session.ActionAngleUp}, true
	case tcell.KeyRight:
		return session.Input{Action: session.ActionAngleDown}, true
	case tcell.KeyRune:
		return runeToInput(ev.Rune(), phase)
	}
	return session.Input{}, false
}

func runeToInput(ch rune, phase session.Phase) (session.Input, bool) {
	switch {
	case ch == ' ':
		return session.Input{Action: session.ActionLaunch}, true
	case ch == 'r' || ch == 'R':
		return session.Input{Action: session.ActionReset}, true
	case ch == 'm' || ch == 'M':
		return session.Input{Action: session.ActionToggleMute}, true
	case ch == 'q' && phase != session.PhasePlaying:
		return session.Input{Action: session.ActionQuit}, true
	case ch >= '1' && ch <= '9' && phase == session.PhaseMenu:
		return session.Input{Action: session.ActionStart, Level: int(ch - '0')}, true
	}
	return session.Input{}, false
}
