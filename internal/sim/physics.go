package sim

import (
	"math"

	"github.com/younwookim/gauntlet/internal/domain/entity"
)

// Step advances one body by one tick against the grid: gravity, then
// the horizontal axis, then the vertical axis. Each axis integrates
// first and snaps back to the tile boundary on contact, so a body
// never ends a tick inside a solid tile it entered this tick.
//
// One-way platforms only catch a falling body whose bottom edge was at
// or above the platform top on the previous tick; rising or already
// embedded bodies pass through.
func Step(g *entity.Grid, b *entity.Body) {
	prevBottom := b.Bottom()

	b.VY += Gravity
	if b.VY > MaxFallSpeed {
		b.VY = MaxFallSpeed
	}

	stepX(g, b)
	stepY(g, b, prevBottom)
}

func stepX(g *entity.Grid, b *entity.Body) {
	b.X += b.VX
	if b.VX == 0 {
		return
	}

	r0, r1 := rowSpan(b)
	if b.VX > 0 {
		lead := lastCol(b.Right())
		for r := r0; r <= r1; r++ {
			if g.TileAt(lead, r).Solid() {
				b.X = float64(lead*entity.TileSize) - b.W
				b.VX = 0
				return
			}
		}
	} else {
		lead := firstCol(b.Left())
		for r := r0; r <= r1; r++ {
			if g.TileAt(lead, r).Solid() {
				b.X = float64((lead + 1) * entity.TileSize)
				b.VX = 0
				return
			}
		}
	}
}

func stepY(g *entity.Grid, b *entity.Body, prevBottom float64) {
	b.Grounded = false
	b.Y += b.VY

	c0, c1 := colSpan(b)
	if b.VY > 0 {
		lead := lastRow(b.Bottom())
		top := float64(lead * entity.TileSize)
		for c := c0; c <= c1; c++ {
			t := g.TileAt(c, lead)
			if t.Solid() || (t == entity.TilePlatform && prevBottom <= top) {
				b.Y = top - b.H
				b.VY = 0
				b.Grounded = true
				return
			}
		}
	} else if b.VY < 0 {
		lead := firstRow(b.Top())
		for c := c0; c <= c1; c++ {
			if g.TileAt(c, lead).Solid() {
				b.Y = float64((lead + 1) * entity.TileSize)
				b.VY = 0
				return
			}
		}
	}
}

// rowSpan returns the inclusive tile rows the body currently overlaps.
// A body flush against a boundary does not overlap the far cell.
func rowSpan(b *entity.Body) (int, int) {
	return firstRow(b.Top()), lastRow(b.Bottom())
}

func colSpan(b *entity.Body) (int, int) {
	return firstCol(b.Left()), lastCol(b.Right())
}

func firstRow(edge float64) int { return int(math.Floor(edge / entity.TileSize)) }
func firstCol(edge float64) int { return int(math.Floor(edge / entity.TileSize)) }
func lastRow(edge float64) int  { return int(math.Ceil(edge/entity.TileSize)) - 1 }
func lastCol(edge float64) int  { return int(math.Ceil(edge/entity.TileSize)) - 1 }
