package entity

import (
	"image/color"
	"math"
)

// Owner tags who fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Projectile is a straight-flying shot. It dies on wall impact, on
// hitting a target, or when its lifetime runs out.
type Projectile struct {
	Body
	Owner  Owner
	Damage int
	Life   int        // remaining ticks
	Color  color.RGBA // render hint only
}

// NewShot creates a projectile centered on (x, y) with the given
// velocity in pixels per tick.
func NewShot(owner Owner, x, y, vx, vy float64, damage, life int, c color.RGBA) *Projectile {
	const size = 6
	return &Projectile{
		Body: Body{
			X: x - size/2, Y: y - size/2,
			W: size, H: size,
			VX: vx, VY: vy,
			Alive: true,
		},
		Owner:  owner,
		Damage: damage,
		Life:   life,
		Color:  c,
	}
}

// AimedVelocity returns the velocity components for a shot of the
// given speed from (x, y) toward (tx, ty). A degenerate zero-length
// aim falls back to firing straight right.
func AimedVelocity(x, y, tx, ty, speed float64) (vx, vy float64) {
	dx := tx - x
	dy := ty - y
	dist := math.Hypot(dx, dy)
	if dist < 1 {
		return speed, 0
	}
	return dx / dist * speed, dy / dist * speed
}

// RadialVelocity returns the velocity components for the i-th of n
// evenly spaced shots of the given speed.
func RadialVelocity(i, n int, speed float64) (vx, vy float64) {
	angle := 2 * math.Pi * float64(i) / float64(n)
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}
