package scene

// Rect is an axis-aligned rectangle in scene space.
type Rect struct {
	X, Y float64
	W, H float64
}

// Bottom is the y coordinate of the lower edge, used for depth ordering.
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W &&
		r.X+r.W > other.X &&
		r.Y < other.Y+other.H &&
		r.Y+r.H > other.Y
}
