package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundBounce SoundType = iota // Floor or wall contact
	SoundSwish                   // Made basket
	SoundBuzzer                  // Time up
	SoundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundBounce:
		return "bounce"
	case SoundSwish:
		return "swish"
	case SoundBuzzer:
		return "buzzer"
	default:
		return "unknown"
	}
}
