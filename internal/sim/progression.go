package sim

import (
	"image/color"

	"github.com/younwookim/gauntlet/internal/domain/entity"
)

var (
	lockedColor = color.RGBA{R: 255, G: 120, B: 120, A: 255}
	debrisColor = color.RGBA{R: 120, G: 110, B: 100, A: 255}
)

// CheckExit advances the run when the player stands in the exit cell
// with no hostiles left. While enemies remain the exit stays locked
// and occasionally says so. The terminal level's exit leads out of the
// game instead of into another room.
func CheckExit(w *World) {
	g := w.Grid
	if g.ExitCol < 0 {
		return
	}
	x := float64(g.ExitCol * entity.TileSize)
	y := float64(g.ExitRow * entity.TileSize)
	if !w.Player.OverlapsRect(x, y, entity.TileSize, entity.TileSize) {
		return
	}
	if w.HostileCount() > 0 {
		if w.rng.Float64() < LockedExitChance {
			spawnEffect(w, x+entity.TileSize/2, y-10, "locked", lockedColor)
		}
		return
	}
	if w.Level == w.cfg.Generation.TerminalLevel {
		w.beginVictoryExit(VictoryExitDelay)
		return
	}
	w.beginExiting()
}

func (w *World) beginExiting() {
	w.mode = ModeExiting
	w.modeTicks = ExitDelay
	w.sound("exit")
}

// beginVictoryExit opens the right-hand border and walks the player
// out; the victory callback fires when the delay elapses. Both the
// terminal exit and the boss kill funnel through here. Enemy shots
// still in flight die with the wall, so a won fight stays won.
func (w *World) beginVictoryExit(delay int) {
	if w.mode == ModeVictoryExit {
		return
	}
	w.mode = ModeVictoryExit
	w.modeTicks = delay
	w.clearRightWall()
	for _, p := range w.Projectiles {
		if p.Owner == entity.OwnerEnemy {
			p.Alive = false
		}
	}
	w.sound("exit")
}

func (w *World) clearRightWall() {
	g := w.Grid
	for r := 1; r < g.Rows-1; r++ {
		if g.TileAt(g.Cols-1, r) != entity.TileWall {
			continue
		}
		g.SetTile(g.Cols-1, r, entity.TileEmpty)
		x := float64((g.Cols-1)*entity.TileSize) + 8
		spawnParticle(w, x, float64(r*entity.TileSize)+8, -1+w.rng.Float64()*2, -1, debrisColor)
	}
}

// updateExiting force-walks the player out under normal physics and
// counts the transition down. A plain exit reloads the next level; a
// victory exit ends the run.
func (w *World) updateExiting() {
	p := w.Player
	p.VX = ForceWalkSpeed
	p.FacingRight = true
	Step(w.Grid, &p.Body)

	w.modeTicks--
	if w.modeTicks > 0 {
		return
	}
	if w.mode == ModeVictoryExit {
		w.over = true
		w.sound("victory")
		if w.cb.Victory != nil {
			w.cb.Victory()
		}
		return
	}
	w.loadLevel(w.Level + 1)
}

// updateBossIntro crumbles the arena fill one row at a time, bottom
// up, clearing a bounded handful of tiles per tick so the collapse
// reads as a sequence. The player is held in the entry pocket until
// the fight starts.
func (w *World) updateBossIntro() {
	p := w.Player
	p.VX = 0
	Step(w.Grid, &p.Body)

	g := w.Grid
	topLimit := g.Rows - 1 - CollapsibleRows
	if w.crumbleRow < topLimit {
		w.mode = ModeNormal
		return
	}

	cleared := 0
	remaining := 0
	for c := BossPocketCols; c < g.Cols-1; c++ {
		if g.TileAt(c, w.crumbleRow) != entity.TileWall {
			continue
		}
		if cleared < CrumblePerTick && w.rng.Float64() < CrumbleChance {
			g.SetTile(c, w.crumbleRow, entity.TileEmpty)
			x := float64(c*entity.TileSize) + 8
			y := float64(w.crumbleRow*entity.TileSize) + 8
			spawnParticle(w, x, y, -0.5+w.rng.Float64(), 0.5, debrisColor)
			cleared++
			continue
		}
		remaining++
	}
	if cleared > 0 {
		w.shake(1.5)
	}
	if remaining == 0 {
		w.crumbleRow--
	}
}
