package physics

import (
	"github.com/lixenwraith/hoopshot/core"
	"github.com/lixenwraith/hoopshot/vmath"
)

// Integrate advances one tick with semi-implicit Euler: v = v + a; p = p + v
// Position uses the already-updated velocity
func Integrate(p *core.Projectile, accel vmath.Vec2) {
	p.Velocity = p.Velocity.Add(accel)
	p.Position = p.Position.Add(p.Velocity)
}

// Acceleration returns the per-tick acceleration for gravity and a wind sample
// sample is a uniform value in [0, 1); 0.5 yields no wind
func Acceleration(gravity, windMagnitude, sample float64) vmath.Vec2 {
	return vmath.Vec2{X: windMagnitude * (sample - 0.5), Y: gravity}
}

// Launch sets the flight velocity for power and angle and marks the ball in flight
func Launch(p *core.Projectile, power, angleDegrees int, speedScale float64) {
	p.Velocity = vmath.FromPolar(float64(power)*speedScale, float64(angleDegrees))
	p.InFlight = true
	p.Scored = false
}

// Park puts the ball at rest on the launch point
func Park(p *core.Projectile, launch vmath.Vec2) {
	p.Position = launch
	p.Velocity = vmath.Vec2{}
	p.InFlight = false
	p.Scored = false
}
