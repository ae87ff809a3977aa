package core

// Match holds the counters and clock of one timed session
// Invariant: 0 <= Score <= Attempts
type Match struct {
	Score           int
	Attempts        int
	Level           int
	DurationSeconds int
	ElapsedMs       int64
	Active          bool
}

// RemainingSeconds returns whole seconds left, never negative
func (m Match) RemainingSeconds() int {
	remaining := m.DurationSeconds - int(m.ElapsedMs/1000)
	if remaining < 0 {
		return 0
	}
	return remaining
}

