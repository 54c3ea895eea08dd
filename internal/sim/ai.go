package sim

import (
	"image/color"
	"math"
	"strconv"

	"github.com/younwookim/gauntlet/internal/domain/entity"
)

var (
	enemyShotColor = color.RGBA{R: 255, G: 120, B: 80, A: 255}
	bossShotColor  = color.RGBA{R: 220, G: 90, B: 255, A: 255}
	announceColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// UpdateEnemies runs one AI and physics tick for every live enemy,
// then resolves body contact with the player. A sleeping boss has no
// contact damage; everything else gates on the player's
// invulnerability window inside damagePlayer.
func UpdateEnemies(w *World) {
	for _, e := range w.Enemies {
		if !e.IsAlive() {
			continue
		}
		if e.HitFlashTicks > 0 {
			e.HitFlashTicks--
		}
		if e.ShotCooldown > 0 {
			e.ShotCooldown--
		}

		switch e.Archetype {
		case entity.ArchetypeMidBoss:
			updateMidBoss(w, e)
		case entity.ArchetypeOverlord:
			updateOverlord(w, e)
		default:
			updateGrounded(w, e)
		}

		if !e.Asleep() && e.Overlaps(&w.Player.Body) {
			damagePlayer(w, "slain by "+e.Archetype.String())
		}
		if e.Top() > w.Grid.Height()+FallKillMargin {
			e.Alive = false
		}
	}
}

// updateGrounded drives the walker, archer and tank. Within aggro
// range they chase head-on at full speed; otherwise they patrol at
// half speed and turn around at walls and ledges.
func updateGrounded(w *World, e *entity.Enemy) {
	dx := w.Player.CenterX() - e.CenterX()

	if math.Abs(dx) <= AggroRadius {
		e.VX = sign(dx) * e.Speed
		e.FacingRight = dx > 0
	} else {
		if e.Grounded && (wallAhead(w.Grid, e) || ledgeAhead(w.Grid, e)) {
			e.PatrolDir = -e.PatrolDir
		}
		e.VX = float64(e.PatrolDir) * e.Speed / 2
		e.FacingRight = e.PatrolDir > 0
	}

	Step(w.Grid, &e.Body)
	tryRangedShot(w, e)
}

// tryRangedShot fires one aimed shot when the archetype has a shot
// table entry, the cooldown has run out and the player is within
// engagement range. The next cooldown is re-randomized around the base
// so groups drift out of sync.
func tryRangedShot(w *World, e *entity.Enemy) {
	if e.ShotBase <= 0 || e.ShotCooldown > 0 {
		return
	}
	px, py := w.Player.CenterX(), w.Player.CenterY()
	if math.Hypot(px-e.CenterX(), py-e.CenterY()) > EngageRadius {
		return
	}
	fireAt(w, e, px, py, enemyShotColor)
	e.ShotCooldown = int(float64(e.ShotBase) * (0.75 + w.rng.Float64()*0.5))
}

// updateMidBoss holds position, faces the player and fires aimed shots
// on a fixed cadence with no range gate.
func updateMidBoss(w *World, e *entity.Enemy) {
	e.VX = 0
	e.FacingRight = w.Player.CenterX() > e.CenterX()
	Step(w.Grid, &e.Body)

	if e.ShotCooldown > 0 {
		return
	}
	fireAt(w, e, w.Player.CenterX(), w.Player.CenterY(), enemyShotColor)
	e.ShotCooldown = e.ShotBase
}

// updateOverlord runs the terminal boss phase machine. In ATTACK it
// fires radial rings on its cooldown, announcing how many remain;
// after the last ring it falls asleep and becomes vulnerable. Waking
// restarts the cycle from a full count.
func updateOverlord(w *World, e *entity.Enemy) {
	o := e.Overlord
	switch o.Phase {
	case entity.PhaseAttack:
		if e.ShotCooldown > 0 {
			return
		}
		for i := 0; i < OverlordSalvo; i++ {
			vx, vy := entity.RadialVelocity(i, OverlordSalvo, e.ShotSpeed)
			shot := entity.NewShot(entity.OwnerEnemy, e.CenterX(), e.CenterY(), vx, vy, e.Damage, 240, bossShotColor)
			w.Projectiles = append(w.Projectiles, shot)
		}
		o.SalvoCount++
		e.ShotCooldown = e.ShotBase
		w.sound("salvo")

		remaining := OverlordSalvos - o.SalvoCount
		if remaining > 0 {
			spawnEffect(w, e.CenterX(), e.Top()-14, strconv.Itoa(remaining), announceColor)
		} else {
			o.Phase = entity.PhaseSleep
			o.SleepTicks = OverlordSleep
			spawnEffect(w, e.CenterX(), e.Top()-14, "exhausted", announceColor)
			w.sound("boss_sleep")
		}
	case entity.PhaseSleep:
		o.SleepTicks--
		if o.SleepTicks <= 0 {
			o.Phase = entity.PhaseAttack
			o.SalvoCount = 0
			e.ShotCooldown = e.ShotBase
			spawnEffect(w, e.CenterX(), e.Top()-14, "awake", announceColor)
			w.sound("boss_wake")
		}
	}
}

func fireAt(w *World, e *entity.Enemy, tx, ty float64, c color.RGBA) {
	vx, vy := entity.AimedVelocity(e.CenterX(), e.CenterY(), tx, ty, e.ShotSpeed)
	shot := entity.NewShot(entity.OwnerEnemy, e.CenterX(), e.CenterY(), vx, vy, e.Damage, 240, c)
	w.Projectiles = append(w.Projectiles, shot)
	w.sound("enemy_shoot")
}

// wallAhead checks the tile just past the leading edge at mid-height.
func wallAhead(g *entity.Grid, e *entity.Enemy) bool {
	x := e.CenterX() + float64(e.PatrolDir)*(e.W/2+2)
	return g.TileAtPixel(x, e.CenterY()).Solid()
}

// ledgeAhead checks for missing floor just past the leading edge, so
// patrols stay on their platform.
func ledgeAhead(g *entity.Grid, e *entity.Enemy) bool {
	x := e.CenterX() + float64(e.PatrolDir)*(e.W/2+2)
	return g.TileAtPixel(x, e.Bottom()+2) == entity.TileEmpty
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	if v > 0 {
		return 1
	}
	return 0
}
