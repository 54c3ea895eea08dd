package sim

import "github.com/younwookim/gauntlet/internal/domain/entity"

// UpdateProjectiles flies every live shot and resolves its hits. A
// projectile dies on the first wall or body it meets, or when its
// lifetime runs out. Hits on an attacking terminal boss still consume
// the shot; DamageEnemy rejects the damage itself.
func UpdateProjectiles(w *World) {
	for _, p := range w.Projectiles {
		if !p.Alive {
			continue
		}
		p.Life--
		if p.Life <= 0 {
			p.Alive = false
			continue
		}
		p.X += p.VX
		p.Y += p.VY

		if w.Grid.SolidAtPixel(p.CenterX(), p.CenterY()) {
			p.Alive = false
			spawnParticle(w, p.CenterX(), p.CenterY(), -p.VX*0.1, -p.VY*0.1, p.Color)
			continue
		}

		if p.Owner == entity.OwnerPlayer {
			for _, e := range w.Enemies {
				if e.IsAlive() && p.Overlaps(&e.Body) {
					p.Alive = false
					DamageEnemy(w, e, p.Damage)
					break
				}
			}
		} else if !w.Player.IsInvincible() && p.Overlaps(&w.Player.Body) {
			p.Alive = false
			damagePlayer(w, "shot down")
		}
	}
}

// UpdateParticles integrates debris under light gravity. Particles are
// cosmetic and pass through everything.
func UpdateParticles(w *World) {
	for _, p := range w.Particles {
		if !p.Alive {
			continue
		}
		p.Life--
		if p.Life <= 0 {
			p.Alive = false
			continue
		}
		p.VY += Gravity * 0.6
		p.X += p.VX
		p.Y += p.VY
	}
}

// UpdateEffects drifts floating text upward until it expires.
func UpdateEffects(w *World) {
	for _, e := range w.Effects {
		if !e.Alive {
			continue
		}
		e.Life--
		if e.Life <= 0 {
			e.Alive = false
			continue
		}
		e.Y += e.VY
	}
}

// UpdatePickups drops loot with full physics and collects anything the
// player touches.
func UpdatePickups(w *World) {
	for _, p := range w.Pickups {
		if !p.Alive {
			continue
		}
		Step(w.Grid, &p.Body)
		if !p.Overlaps(&w.Player.Body) {
			continue
		}
		p.Alive = false
		switch p.Kind {
		case entity.PickupCoin:
			w.Player.AddMoney(p.Value)
			w.sound("coin")
		case entity.PickupHeal:
			w.Player.Heal(p.Value)
			w.sound("heal")
		}
	}
}
