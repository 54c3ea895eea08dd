package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gauntlet/internal/domain/entity"
)

// gridFrom builds a grid from a row-per-string layout.
// '#' wall, '-' platform, '^' hazard, 'E' exit, '.' empty.
func gridFrom(t *testing.T, layout []string) *entity.Grid {
	t.Helper()
	require.NotEmpty(t, layout)
	g := entity.NewGrid(len(layout[0]), len(layout))
	for row, line := range layout {
		require.Len(t, line, g.Cols, "ragged layout row %d", row)
		for col, ch := range line {
			switch ch {
			case '#':
				g.SetTile(col, row, entity.TileWall)
			case '-':
				g.SetTile(col, row, entity.TilePlatform)
			case '^':
				g.SetTile(col, row, entity.TileHazard)
			case 'E':
				g.SetTile(col, row, entity.TileExit)
			}
		}
	}
	return g
}

func testBody(x, y float64) *entity.Body {
	return &entity.Body{X: x, Y: y, W: 12, H: 12, Alive: true}
}

func TestStepFallsAndLandsOnFloor(t *testing.T) {
	g := gridFrom(t, []string{
		"....",
		"....",
		"....",
		"####",
	})
	b := testBody(8, 4)

	for i := 0; i < 60; i++ {
		Step(g, b)
	}

	assert.True(t, b.Grounded)
	assert.Equal(t, 48.0-b.H, b.Y, "bottom flush with the floor top")
	assert.Zero(t, b.VY)
	assert.Equal(t, 8.0, b.X, "no horizontal drift while falling")
}

func TestStepClampsFallSpeed(t *testing.T) {
	g := gridFrom(t, []string{
		"....",
		"....",
		"....",
		"....",
	})
	b := testBody(8, 0)

	for i := 0; i < 120; i++ {
		Step(g, b)
		assert.LessOrEqual(t, b.VY, MaxFallSpeed)
	}
}

func TestStepRestingBodyStaysPut(t *testing.T) {
	g := gridFrom(t, []string{
		"....",
		"....",
		"####",
	})
	b := testBody(10, 32-12)

	for i := 0; i < 30; i++ {
		Step(g, b)
		assert.True(t, b.Grounded)
		assert.Equal(t, 10.0, b.X)
		assert.Equal(t, 20.0, b.Y)
	}
}

func TestStepSnapsAgainstWalls(t *testing.T) {
	tests := []struct {
		name  string
		vx    float64
		x     float64
		wantX float64
	}{
		{name: "moving right into wall", vx: 5, x: 34, wantX: 48 - 12},
		{name: "moving left into wall", vx: -5, x: 18, wantX: 16},
		{name: "stops short of wall", vx: 2, x: 20, wantX: 22},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gridFrom(t, []string{
				"#..#",
				"#..#",
				"####",
			})
			b := testBody(tt.x, 32-12)
			b.VX = tt.vx

			Step(g, b)

			assert.Equal(t, tt.wantX, b.X)
			if tt.x+tt.vx != tt.wantX {
				assert.Zero(t, b.VX, "horizontal momentum dies on impact")
			}
		})
	}
}

func TestStepStopsRisingAtCeiling(t *testing.T) {
	g := gridFrom(t, []string{
		"####",
		"....",
		"####",
	})
	b := &entity.Body{X: 10, Y: 17, W: 12, H: 12, VY: -8, Alive: true}

	Step(g, b)

	assert.Equal(t, 16.0, b.Y, "snapped below the ceiling")
	assert.Zero(t, b.VY)
	assert.False(t, b.Grounded)
}

func TestStepOneWayPlatform(t *testing.T) {
	layout := []string{
		"....",
		"....",
		"----",
		"....",
		"####",
	}

	t.Run("falling body lands from above", func(t *testing.T) {
		g := gridFrom(t, layout)
		b := testBody(8, 32-12)

		for i := 0; i < 30; i++ {
			Step(g, b)
		}

		assert.True(t, b.Grounded)
		assert.Equal(t, 20.0, b.Y, "resting on the platform top")
	})

	t.Run("rising body passes through", func(t *testing.T) {
		g := gridFrom(t, layout)
		b := &entity.Body{X: 8, Y: 50, W: 12, H: 12, VY: -9, Alive: true}

		Step(g, b)

		assert.False(t, b.Grounded)
		assert.Less(t, b.Y, 50.0, "no snap while rising")
		assert.Negative(t, b.VY)
	})

	t.Run("body already inside keeps falling", func(t *testing.T) {
		g := gridFrom(t, layout)
		// Bottom edge below the platform top from the previous tick.
		b := &entity.Body{X: 8, Y: 26, W: 12, H: 12, VY: 2, Alive: true}

		Step(g, b)

		assert.False(t, b.Grounded)
		assert.Greater(t, b.Y, 26.0, "fell through instead of snapping")
	})
}

func TestStepTreatsOutOfBoundsAsSolid(t *testing.T) {
	g := gridFrom(t, []string{
		"....",
		"....",
	})

	t.Run("cannot leave through the left edge", func(t *testing.T) {
		b := &entity.Body{X: 2, Y: 4, W: 12, H: 12, VX: -6, Alive: true}
		Step(g, b)
		assert.Equal(t, 0.0, b.X)
	})

	t.Run("cannot fall below the last row", func(t *testing.T) {
		b := testBody(8, 10)
		for i := 0; i < 60; i++ {
			Step(g, b)
		}
		assert.True(t, b.Grounded)
		assert.Equal(t, 32.0-12, b.Y)
	})
}
