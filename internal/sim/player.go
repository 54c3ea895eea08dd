package sim

import "github.com/younwookim/gauntlet/internal/domain/entity"

// UpdatePlayer runs one tick of player control: timers, horizontal
// acceleration, buffered jumping with coyote time, physics, attacks
// and the hazard and fall checks.
func UpdatePlayer(w *World, in Input) {
	p := w.Player

	if p.IframeTicks > 0 {
		p.IframeTicks--
	}
	if p.AttackCooldown > 0 {
		p.AttackCooldown--
	}
	if p.JumpBufferTicks > 0 {
		p.JumpBufferTicks--
	}
	if p.CoyoteTicks > 0 {
		p.CoyoteTicks--
	}

	move := in.MoveX()
	target := move * PlayerMaxSpeed
	if target > p.VX {
		p.VX = minf(p.VX+accelFor(move), target)
	} else if target < p.VX {
		p.VX = maxf(p.VX-accelFor(move), target)
	}
	if move > 0 {
		p.FacingRight = true
	} else if move < 0 {
		p.FacingRight = false
	}

	if in.Jump && !w.prevJump {
		p.JumpBufferTicks = JumpBufferTicks
	}
	if p.JumpBufferTicks > 0 && (p.Grounded || p.CoyoteTicks > 0) {
		p.VY = PlayerJumpSpeed
		p.JumpBufferTicks = 0
		p.CoyoteTicks = 0
		w.sound("jump")
	}
	// Releasing jump while rising cuts the arc short.
	if !in.Jump && p.VY < 0 {
		p.VY *= JumpCutFactor
	}

	Step(w.Grid, &p.Body)
	if p.Grounded {
		p.CoyoteTicks = CoyoteTicks
	}

	handleAttack(w, in)
	p.TriggerHeld = in.Trigger()

	if touchesHazard(w.Grid, &p.Body) {
		damagePlayer(w, "impaled on spikes")
	}
	if p.Top() > w.Grid.Height()+FallKillMargin {
		w.gameOver("fell out of the world")
	}
}

// accelFor picks the acceleration rate: decel when no direction is
// held, accel otherwise.
func accelFor(move float64) float64 {
	if move == 0 {
		return PlayerDecel
	}
	return PlayerAccel
}

// touchesHazard scans the tiles under a slightly shrunk hurtbox, so
// brushing a hazard cell edge-on does not count.
func touchesHazard(g *entity.Grid, b *entity.Body) bool {
	left := b.Left() + HazardCheckInset
	right := b.Right() - HazardCheckInset
	top := b.Top() + HazardCheckInset
	bottom := b.Bottom() - HazardCheckInset
	for _, x := range []float64{left, right} {
		for _, y := range []float64{top, bottom} {
			if g.TileAtPixel(x, y) == entity.TileHazard {
				return true
			}
		}
	}
	return false
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
