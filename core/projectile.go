package core

import "github.com/lixenwraith/hoopshot/vmath"

// Projectile is the ball's kinematic state
// While InFlight is false, Velocity is zero and Position is the launch point
type Projectile struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
	InFlight bool
	// Scored is set once the current flight has passed the target, cleared on launch/reset
	Scored bool
}
