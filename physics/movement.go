package physics

import (
	"math"

	"github.com/lixenwraith/hoopshot/core"
)

// AtRest reports whether the ball has stopped on the ground
// Both velocity components must be under restSpeed and the ball within band of the floor contact line
func AtRest(p *core.Projectile, floorY, radius, restSpeed, band float64) bool {
	return math.Abs(p.Velocity.X) < restSpeed &&
		math.Abs(p.Velocity.Y) < restSpeed &&
		p.Position.Y > floorY-radius-band
}

// InTarget reports whether the ball center is inside the target band while descending
func InTarget(p *core.Projectile, t core.Target) bool {
	return p.Velocity.Y > 0 && t.Rect().ContainsClosed(p.Position)
}
