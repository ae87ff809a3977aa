package parameter

// Aim
const (
	PowerMin     = 0
	PowerMax     = 100
	PowerDefault = 50

	AngleMin     = 0
	AngleMax     = 90
	AngleDefault = 45

	// AimStep is the increment for one power or angle adjustment
	AimStep = 5
)

// Match duration in seconds
const (
	DurationMin     = 10
	DurationMax     = 120
	DurationStep    = 10
	DurationDefault = 60
)

// Target region
const (
	// TargetHeight is the fixed scoring band height below the rim line
	TargetHeight = 10.0

	// TargetOffsetX is the rim's left edge distance from the right playfield edge
	TargetOffsetX = 150.0

	// TargetLiftPerLevel raises the rim above playfield center for each level past the first
	TargetLiftPerLevel = 50.0

	// TargetTopMargin caps the lift so high levels keep the rim on screen
	TargetTopMargin = 20.0
)

// Net decoration
const (
	NetStrands = 6
	NetInset   = 10.0
	NetDepth   = 60.0
)

// Levels
const (
	// DefaultLevel is the fallback when a requested level is not configured
	DefaultLevel = 1
)
