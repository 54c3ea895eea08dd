package entity

// Body is the movable axis-aligned rectangle shared by every physical
// entity. Position is the top-left corner in pixels; velocity is in
// pixels per simulation tick.
type Body struct {
	X, Y   float64
	W, H   float64
	VX, VY float64

	Grounded    bool
	FacingRight bool
	Alive       bool
}

// Left returns the left edge in pixels.
func (b *Body) Left() float64 { return b.X }

// Right returns the right edge in pixels.
func (b *Body) Right() float64 { return b.X + b.W }

// Top returns the top edge in pixels.
func (b *Body) Top() float64 { return b.Y }

// Bottom returns the bottom edge in pixels.
func (b *Body) Bottom() float64 { return b.Y + b.H }

// CenterX returns the horizontal center in pixels.
func (b *Body) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical center in pixels.
func (b *Body) CenterY() float64 { return b.Y + b.H/2 }

// Facing returns the facing direction as +1 (right) or -1 (left).
func (b *Body) Facing() float64 {
	if b.FacingRight {
		return 1
	}
	return -1
}

// Overlaps reports whether two bodies intersect.
func (b *Body) Overlaps(o *Body) bool {
	return RectsOverlap(b.X, b.Y, b.W, b.H, o.X, o.Y, o.W, o.H)
}

// OverlapsRect reports whether the body intersects the given rectangle.
func (b *Body) OverlapsRect(x, y, w, h float64) bool {
	return RectsOverlap(b.X, b.Y, b.W, b.H, x, y, w, h)
}

// RectsOverlap reports whether two rectangles intersect.
func RectsOverlap(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	return x1 < x2+w2 && x1+w1 > x2 && y1 < y2+h2 && y1+h1 > y2
}
