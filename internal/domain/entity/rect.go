package entity

// Rect is an axis-aligned rectangle in world pixels.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the horizontal center
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the vertical center
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Overlaps reports whether r and o intersect on both axes.
// Touching edges count as an overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X <= o.Right() &&
		r.Right() >= o.X &&
		r.Y <= o.Bottom() &&
		r.Bottom() >= o.Y
}

// OverlapsX reports whether the horizontal spans of r and o intersect.
func (r Rect) OverlapsX(o Rect) bool {
	return r.X <= o.Right() && r.Right() >= o.X
}

// Contains reports whether the point (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}
