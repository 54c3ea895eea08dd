package entity

import "image/color"

// Particle is a short-lived cosmetic fragment (debris, sparks). It
// falls under gravity but never collides with anything.
type Particle struct {
	Body
	Life  int
	Color color.RGBA
}

// NewParticle creates a particle at the given pixel position.
func NewParticle(x, y, vx, vy float64, life int, c color.RGBA) *Particle {
	return &Particle{
		Body: Body{
			X: x, Y: y,
			W: 3, H: 3,
			VX: vx, VY: vy,
			Alive: true,
		},
		Life:  life,
		Color: c,
	}
}

// Effect is floating feedback text (damage numbers, announcements).
// It drifts upward and fades out as its life runs down.
type Effect struct {
	Body
	Life  int
	Text  string
	Color color.RGBA
}

// NewEffect creates a floating text effect centered on (x, y).
func NewEffect(x, y float64, text string, life int, c color.RGBA) *Effect {
	return &Effect{
		Body: Body{
			X: x, Y: y,
			VY:    -0.5,
			Alive: true,
		},
		Life:  life,
		Text:  text,
		Color: c,
	}
}
