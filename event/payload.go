package event

import "github.com/lixenwraith/hoopshot/physics"

// BouncePayload describes an audible boundary contact
type BouncePayload struct {
	Surface physics.Surface
	Speed   float64
}

// ScorePayload carries the counters right after a made basket
type ScorePayload struct {
	Score    int
	Attempts int
}

// EndReason tells why a match stopped
type EndReason uint8

const (
	EndTimeUp EndReason = iota
	EndAborted
)

func (r EndReason) String() string {
	switch r {
	case EndTimeUp:
		return "time_up"
	case EndAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// MatchEndedPayload carries the final tally
type MatchEndedPayload struct {
	FinalScore int
	Attempts   int
	Reason     EndReason
}
