package event

// EventType represents the type of game event
type EventType int

const (
	// EventBounce signals an audible floor or wall contact
	// Trigger: Engine.Step when reflected speed exceeds the bounce sound threshold
	// Consumer: audio | Payload: *BouncePayload
	EventBounce EventType = iota

	// EventScore signals a made basket
	// Trigger: Engine.CheckScore
	// Consumer: audio, HUD | Payload: *ScorePayload
	EventScore

	// EventBuzzer signals the match clock ran out
	// Trigger: Engine.Step on time-up, emitted before EventMatchEnded
	// Consumer: audio | Payload: nil
	EventBuzzer

	// EventMatchEnded signals the match is over
	// Trigger: Engine.Step on time-up, Engine.EndMatchEarly
	// Consumer: session (game-over screen), log | Payload: *MatchEndedPayload
	EventMatchEnded

	EventTypeCount
)

var eventNames = [EventTypeCount]string{
	EventBounce:     "Bounce",
	EventScore:      "Score",
	EventBuzzer:     "Buzzer",
	EventMatchEnded: "MatchEnded",
}

// String returns the event name used in logs
func (t EventType) String() string {
	if t < 0 || t >= EventTypeCount {
		return "Unknown"
	}
	return eventNames[t]
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64 // Engine tick that produced the event
}
