package core

import "github.com/lixenwraith/hoopshot/vmath"

// Playfield is the simulated court, origin top-left, y grows downward
type Playfield struct {
	Width, Height float64
	BallRadius    float64
}

// FloorY is the floor line the ball rests on
func (f Playfield) FloorY() float64 {
	return f.Height
}

// LaunchPoint is the fixed ball position between shots
func (f Playfield) LaunchPoint(launchOffsetY float64) vmath.Vec2 {
	return vmath.Vec2{X: f.Width / 4, Y: f.Height - launchOffsetY}
}

// Target is the scoring rectangle below the rim
type Target struct {
	Position      vmath.Vec2 // Top-left corner
	Width, Height float64
}

// Rect returns the target as a closed rectangle
func (t Target) Rect() vmath.Rect {
	return vmath.Rect{X: t.Position.X, Y: t.Position.Y, Width: t.Width, Height: t.Height}
}
