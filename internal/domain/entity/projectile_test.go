package entity

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShot(t *testing.T) {
	c := color.RGBA{255, 80, 80, 255}
	p := NewShot(OwnerPlayer, 100, 50, 7, 0, 2, 70, c)

	require.NotNil(t, p)
	assert.Equal(t, OwnerPlayer, p.Owner)
	assert.Equal(t, 2, p.Damage)
	assert.Equal(t, 70, p.Life)
	assert.Equal(t, c, p.Color)
	assert.True(t, p.Alive)

	// Spawn position is the shot's center.
	assert.Equal(t, 100.0, p.CenterX())
	assert.Equal(t, 50.0, p.CenterY())
}

func TestAimedVelocity(t *testing.T) {
	tests := []struct {
		name           string
		x, y, tx, ty   float64
		speed          float64
		wantVX, wantVY float64
	}{
		{"straight right", 0, 0, 10, 0, 5, 5, 0},
		{"straight down", 0, 0, 0, 10, 5, 0, 5},
		{"straight left", 10, 0, 0, 0, 4, -4, 0},
		{"diagonal", 0, 0, 10, 10, math.Sqrt2, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vx, vy := AimedVelocity(tt.x, tt.y, tt.tx, tt.ty, tt.speed)
			assert.InDelta(t, tt.wantVX, vx, 0.0001)
			assert.InDelta(t, tt.wantVY, vy, 0.0001)
		})
	}
}

func TestAimedVelocity_NormalizesSpeed(t *testing.T) {
	vx, vy := AimedVelocity(3, -2, 847, 311, 6)
	assert.InDelta(t, 6.0, math.Hypot(vx, vy), 0.0001, "speed is preserved for any aim")
}

func TestAimedVelocity_DegenerateAim(t *testing.T) {
	// Aiming at yourself still produces a moving shot.
	vx, vy := AimedVelocity(50, 50, 50, 50, 6)
	assert.Equal(t, 6.0, vx)
	assert.Equal(t, 0.0, vy)
}

func TestRadialVelocity_EvenlySpaced(t *testing.T) {
	const n = 12
	const speed = 2.6

	for i := 0; i < n; i++ {
		vx, vy := RadialVelocity(i, n, speed)
		assert.InDelta(t, speed, math.Hypot(vx, vy), 0.0001)

		wantAngle := 2 * math.Pi * float64(i) / n
		gotAngle := math.Atan2(vy, vx)
		if gotAngle < 0 {
			gotAngle += 2 * math.Pi
		}
		assert.InDelta(t, wantAngle, gotAngle, 0.0001, "ring angles are evenly spaced")
	}
}
