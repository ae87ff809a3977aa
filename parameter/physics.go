package parameter

// Playfield geometry (playfield units; one unit per source pixel)
const (
	PlayfieldWidth  = 800.0
	PlayfieldHeight = 600.0

	// BallRadius is used for boundary collision only, scoring tests the ball center
	BallRadius = 30.0

	// LaunchOffsetY is the launch point height above the floor line
	LaunchOffsetY = 100.0
)

// Boundary response
const (
	// Restitution is the fraction of normal velocity kept on floor and wall contact
	Restitution = 0.7

	// BounceSoundSpeed is the post-reflection speed a contact must exceed to be audible
	BounceSoundSpeed = 2.0

	// FloorSettleSpeed zeroes a post-reflection floor speed below it (resting contact)
	// Must stay below Restitution*BounceSoundSpeed so quiet bounces keep their rebound
	FloorSettleSpeed = 1.0

	// FloorFriction is the horizontal velocity kept per tick of resting floor contact
	FloorFriction = 0.95
)

// Rest detection
const (
	// RestSpeed is the per-axis speed below which the ball may be at rest
	RestSpeed = 0.1

	// RestBand is the height above the floor contact line still counted as grounded
	RestBand = 10.0
)

// Launch
const (
	// LaunchSpeedScale converts power units to playfield units per tick
	LaunchSpeedScale = 0.2
)
