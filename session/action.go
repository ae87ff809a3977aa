package session

// Action is a discrete player command, independent of the input device
type Action uint8

const (
	ActionNone Action = iota
	ActionStart        // Start a match on Input.Level (menu)
	ActionDurationUp   // Menu
	ActionDurationDown // Menu
	ActionLaunch
	ActionPowerUp
	ActionPowerDown
	ActionAngleUp
	ActionAngleDown
	ActionReset
	ActionBack // Playing: abort to menu, game over: menu, menu: quit
	ActionConfirm
	ActionToggleMute
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:         "none",
	ActionStart:        "start",
	ActionDurationUp:   "duration_up",
	ActionDurationDown: "duration_down",
	ActionLaunch:       "launch",
	ActionPowerUp:      "power_up",
	ActionPowerDown:    "power_down",
	ActionAngleUp:      "angle_up",
	ActionAngleDown:    "angle_down",
	ActionReset:        "reset",
	ActionBack:         "back",
	ActionConfirm:      "confirm",
	ActionToggleMute:   "toggle_mute",
	ActionQuit:         "quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Input is one mapped key press
type Input struct {
	Action Action
	Level  int // Level id for ActionStart
}

// Phase is the screen the session is on
type Phase uint8

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
