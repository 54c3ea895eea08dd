package sim

import (
	"image/color"
	"math"
	"strconv"

	"github.com/younwookim/gauntlet/internal/domain/entity"
	"github.com/younwookim/gauntlet/internal/infrastructure/config"
)

var (
	damageColor = color.RGBA{R: 255, G: 235, B: 120, A: 255}
	bountyColor = color.RGBA{R: 255, G: 210, B: 60, A: 255}
	invulnColor = color.RGBA{R: 170, G: 170, B: 190, A: 255}
	hurtColor   = color.RGBA{R: 255, G: 90, B: 90, A: 255}
	armorColor  = color.RGBA{R: 140, G: 200, B: 255, A: 255}
	sparkColor  = color.RGBA{R: 255, G: 240, B: 200, A: 255}
)

// handleAttack fires the equipped weapon when the trigger allows it.
// Automatic weapons fire every time the cooldown clears; the rest need
// the trigger released and pressed again.
func handleAttack(w *World, in Input) {
	p := w.Player
	if !in.Trigger() || p.AttackCooldown > 0 {
		return
	}
	weapon, ok := w.cfg.Weapons.Weapons[p.Weapon]
	if !ok {
		return
	}
	if !weapon.Auto && p.TriggerHeld {
		return
	}

	p.AttackCooldown = weapon.Cooldown
	if weapon.Melee() {
		meleeAttack(w, weapon)
		return
	}
	rangedAttack(w, weapon, in)
}

// meleeAttack damages every live enemy overlapping a hitbox extended
// from the player's leading edge. Pickups and the shopkeeper live in
// their own lists and are never candidates.
func meleeAttack(w *World, weapon config.WeaponConfig) {
	p := w.Player
	x := p.Right()
	if !p.FacingRight {
		x = p.Left() - weapon.MeleeRange
	}
	y := p.Top()
	h := p.H

	for _, e := range w.Enemies {
		if e.IsAlive() && e.OverlapsRect(x, y, weapon.MeleeRange, h) {
			DamageEnemy(w, e, weapon.Damage)
		}
	}
	for i := 0; i < 5; i++ {
		vx := p.Facing() * (1 + w.rng.Float64()*2)
		vy := -1 + w.rng.Float64()*2
		spawnParticle(w, x+weapon.MeleeRange/2, p.CenterY(), vx, vy, sparkColor)
	}
	w.sound("slash")
}

func rangedAttack(w *World, weapon config.WeaponConfig, in Input) {
	p := w.Player
	cx, cy := p.CenterX(), p.CenterY()

	var vx, vy float64
	if in.Aimed() {
		vx, vy = entity.AimedVelocity(cx, cy, in.PointerX, in.PointerY, weapon.ProjectileSpeed)
	} else {
		vx, vy = p.Facing()*weapon.ProjectileSpeed, 0
	}
	if vx > 0 {
		p.FacingRight = true
	} else if vx < 0 {
		p.FacingRight = false
	}

	n := weapon.ProjectileCount
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		angle := weapon.SpreadStep * (float64(i) - float64(n-1)/2)
		rx, ry := rotate(vx, vy, angle)
		shot := entity.NewShot(entity.OwnerPlayer, cx, cy, rx, ry, weapon.Damage, weapon.ProjectileLife, weapon.RGBA())
		w.Projectiles = append(w.Projectiles, shot)
	}
	w.sound("shoot")
}

// DamageEnemy applies a hit to one enemy, honoring the terminal boss
// phase rules: an attacking boss rejects all damage, a sleeping boss
// loses exactly one hitpoint per hit regardless of the amount.
func DamageEnemy(w *World, e *entity.Enemy, amount int) {
	if !e.IsAlive() || amount <= 0 {
		return
	}
	if e.Overlord != nil {
		if e.Overlord.Phase == entity.PhaseAttack {
			spawnEffect(w, e.CenterX(), e.Top()-8, "invulnerable", invulnColor)
			w.sound("deflect")
			return
		}
		amount = 1
	}

	dead := e.ApplyDamage(amount)
	spawnEffect(w, e.CenterX(), e.Top()-8, strconv.Itoa(amount), damageColor)
	w.hitstop(2)
	if dead {
		killEnemy(w, e)
		return
	}
	w.sound("hit")
}

// killEnemy pays the bounty and fires the deaths that matter: the
// mid-boss unlock on the second-hardest tier and the terminal boss
// victory. Removal itself waits for compaction.
func killEnemy(w *World, e *entity.Enemy) {
	e.Alive = false
	w.shake(3)
	w.sound("kill")
	for i := 0; i < 8; i++ {
		vx := -2 + w.rng.Float64()*4
		vy := -3 + w.rng.Float64()*2
		spawnParticle(w, e.CenterX(), e.CenterY(), vx, vy, hurtColor)
	}

	if e.Bounty > 0 {
		w.Player.AddMoney(e.Bounty)
		spawnEffect(w, e.CenterX(), e.Top()-20, "+"+strconv.Itoa(e.Bounty), bountyColor)
	}

	switch e.Archetype {
	case entity.ArchetypeMidBoss:
		if w.tier.SecondHardest() && w.cb.UnlockHardest != nil {
			w.cb.UnlockHardest()
		}
	case entity.ArchetypeOverlord:
		w.beginVictoryExit(BossVictoryDelay)
	}
}

// damagePlayer applies one incoming hit. Damage intake is a flat one
// hitpoint no matter the source; armor eats the hit instead. The
// invulnerability window gates every source, so this is safe to call
// every tick an overlap persists.
func damagePlayer(w *World, cause string) {
	p := w.Player
	if p.IsInvincible() || w.over {
		return
	}
	p.IframeTicks = PlayerIframes
	if p.Armor {
		p.Armor = false
		spawnEffect(w, p.CenterX(), p.Top()-10, "armor broke", armorColor)
		w.sound("armor")
		return
	}

	p.Health--
	p.VY = -3
	p.VX = -p.Facing() * 2.5
	w.shake(4)
	w.sound("hurt")
	spawnEffect(w, p.CenterX(), p.Top()-10, "-1", hurtColor)
	if p.Health <= 0 {
		p.Alive = false
		w.gameOver(cause)
	}
}

// gameOver ends the run. The over flag makes the callback fire at most
// once and freezes the world against further ticks.
func (w *World) gameOver(cause string) {
	if w.over {
		return
	}
	w.over = true
	w.sound("gameover")
	if w.cb.GameOver != nil {
		w.cb.GameOver(cause, w.Level)
	}
}

func spawnParticle(w *World, x, y, vx, vy float64, c color.RGBA) {
	life := 20 + w.rng.Intn(20)
	w.Particles = append(w.Particles, entity.NewParticle(x, y, vx, vy, life, c))
}

func spawnEffect(w *World, x, y float64, text string, c color.RGBA) {
	w.Effects = append(w.Effects, entity.NewEffect(x, y, text, 45, c))
}

func rotate(vx, vy, angle float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	return vx*cos - vy*sin, vx*sin + vy*cos
}
