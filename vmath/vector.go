package vmath

import "math"

// Vec2 is a 2D vector in playfield units (x right, y down)
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale multiplies both components by factor
func (v Vec2) Scale(factor float64) Vec2 {
	return Vec2{X: v.X * factor, Y: v.Y * factor}
}

// Magnitude returns Euclidean length
func (v Vec2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// ReflectAxisX returns velocity reflected off a vertical wall (X axis boundary)
// restitution scales the reflected component, tangential component is untouched
func ReflectAxisX(vel Vec2, restitution float64) Vec2 {
	return Vec2{X: -vel.X * restitution, Y: vel.Y}
}

// ReflectAxisY returns velocity reflected off a horizontal wall (Y axis boundary)
func ReflectAxisY(vel Vec2, restitution float64) Vec2 {
	return Vec2{X: vel.X, Y: -vel.Y * restitution}
}

// FromPolar returns the launch vector for speed and angle in degrees above the horizon
// Screen y grows downward, so a positive angle yields negative Y
func FromPolar(speed float64, angleDegrees float64) Vec2 {
	rad := angleDegrees * math.Pi / 180
	return Vec2{X: speed * math.Cos(rad), Y: -speed * math.Sin(rad)}
}
