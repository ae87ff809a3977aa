package core

// Profile holds the per-level difficulty constants
type Profile struct {
	TargetWidth   float64 // Scoring band width, > 0
	Gravity       float64 // Downward acceleration per tick, > 0
	WindMagnitude float64 // Peak-to-peak horizontal perturbation per tick, >= 0
}

// Aim holds the launch parameters chosen between shots
type Aim struct {
	Power        int // [0, 100]
	AngleDegrees int // [0, 90]
}

// AimAxis selects which aim parameter an adjustment targets
type AimAxis uint8

const (
	AxisPower AimAxis = iota
	AxisAngle
)

func (a AimAxis) String() string {
	switch a {
	case AxisPower:
		return "power"
	case AxisAngle:
		return "angle"
	default:
		return "unknown"
	}
}
