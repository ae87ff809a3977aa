package physics

import (
	"math"

	"github.com/lixenwraith/hoopshot/core"
	"github.com/lixenwraith/hoopshot/vmath"
)

// Surface identifies which boundary a contact hit
type Surface uint8

const (
	SurfaceFloor Surface = iota
	SurfaceLeftWall
	SurfaceRightWall
)

func (s Surface) String() string {
	switch s {
	case SurfaceFloor:
		return "floor"
	case SurfaceLeftWall:
		return "left_wall"
	case SurfaceRightWall:
		return "right_wall"
	default:
		return "unknown"
	}
}

// Contact describes one boundary reflection
type Contact struct {
	Surface Surface
	Speed   float64 // Absolute normal speed after reflection
	Audible bool    // Speed exceeded the profile's sound threshold
	Settled bool    // Normal velocity was zeroed as resting contact
}

// ReflectFloor clamps the ball onto the floor and reflects vertical velocity
// Returns false when the ball is above the floor
// The sound threshold is checked on the reflected value
func ReflectFloor(p *core.Projectile, floorY, radius float64, profile *SurfaceProfile) (Contact, bool) {
	if p.Position.Y+radius <= floorY {
		return Contact{}, false
	}
	p.Position.Y = floorY - radius
	p.Velocity = vmath.ReflectAxisY(p.Velocity, profile.Restitution)

	c := Contact{Surface: SurfaceFloor, Speed: math.Abs(p.Velocity.Y)}
	c.Audible = c.Speed > profile.SoundSpeed
	if c.Speed < profile.SettleSpeed {
		p.Velocity.Y = 0
		p.Velocity.X *= profile.Friction
		c.Settled = true
	}
	return c, true
}

// ReflectWalls clamps the ball inside [radius, width-radius] and reflects horizontal velocity
// At most one wall can be hit per call
func ReflectWalls(p *core.Projectile, width, radius float64, profile *SurfaceProfile) (Contact, bool) {
	var surface Surface
	switch {
	case p.Position.X < radius:
		p.Position.X = radius
		surface = SurfaceLeftWall
	case p.Position.X > width-radius:
		p.Position.X = width - radius
		surface = SurfaceRightWall
	default:
		return Contact{}, false
	}
	p.Velocity = vmath.ReflectAxisX(p.Velocity, profile.Restitution)

	c := Contact{Surface: surface, Speed: math.Abs(p.Velocity.X)}
	c.Audible = c.Speed > profile.SoundSpeed
	return c, true
}
