package core

// State is the complete mutable world of one match, owned by a single driver
type State struct {
	Field      Playfield
	Projectile Projectile
	Aim        Aim
	Match      Match
	Profile    Profile
	Target     Target
}

// Clone returns a copy safe to hand to a renderer
// State holds no references, so a value copy is a full snapshot
func (s *State) Clone() State {
	return *s
}
