package parameter

import "time"

// Frame pacing
const (
	// FrameUpdateInterval is the driver tick, one physics step per frame (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// Terminal layout
const (
	// HUDRows is reserved at the top of the terminal for score/time/level
	HUDRows = 1

	// PowerMeterCells is the terminal width of a full power meter
	PowerMeterCells = 20

	// AngleIndicatorLength is the aim line length in playfield units
	AngleIndicatorLength = 50.0
)

// Window layout (ebiten front-end draws at playfield resolution)
const (
	WindowTitle = "Hoop Shot"

	PowerMeterX      = 50.0
	PowerMeterY      = 50.0
	PowerMeterWidth  = 200.0
	PowerMeterHeight = 20.0

	BackboardWidth  = 10.0
	BackboardHeight = 100.0
)
