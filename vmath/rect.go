package vmath

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// ContainsClosed reports whether p lies inside the rectangle, edges included
func (r Rect) ContainsClosed(p Vec2) bool {
	return r.X <= p.X && p.X <= r.X+r.Width &&
		r.Y <= p.Y && p.Y <= r.Y+r.Height
}
