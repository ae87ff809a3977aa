package physics

import "github.com/lixenwraith/hoopshot/parameter"

// SurfaceProfile defines how a static boundary responds to contact
// Profiles are pre-defined as package variables
type SurfaceProfile struct {
	Restitution float64 // Fraction of normal velocity kept after reflection
	SoundSpeed  float64 // Reflected speed a contact must exceed to be audible
	SettleSpeed float64 // Reflected speed below which normal velocity is zeroed (0 = never)
	Friction    float64 // Tangential velocity kept on a settled contact (1 = none)
}

// Floor is the ground line: bouncy while airborne, rolling with friction once settled
var Floor = SurfaceProfile{
	Restitution: parameter.Restitution,
	SoundSpeed:  parameter.BounceSoundSpeed,
	SettleSpeed: parameter.FloorSettleSpeed,
	Friction:    parameter.FloorFriction,
}

// Wall is the left and right playfield edge
var Wall = SurfaceProfile{
	Restitution: parameter.Restitution,
	SoundSpeed:  parameter.BounceSoundSpeed,
	Friction:    1,
}
