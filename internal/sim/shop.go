package sim

import "image/color"

var healColor = color.RGBA{R: 120, G: 255, B: 140, A: 255}

// Purchase resolves one shop transaction by catalog id, which may name
// a weapon or an item. Validation runs before any money moves: an
// unaffordable or pointless purchase is a no-op and returns false.
// Weapons the player already owns re-equip for free.
func (w *World) Purchase(id string) bool {
	if weapon, ok := w.cfg.Weapons.Weapons[id]; ok {
		return w.buyWeapon(id, weapon.Price)
	}
	if item, ok := w.cfg.Weapons.Items[id]; ok {
		return w.buyItem(item.Kind, item.Price)
	}
	return false
}

func (w *World) buyWeapon(id string, price int) bool {
	p := w.Player
	if p.Weapon == id {
		return false
	}
	if p.Owned[id] {
		p.Weapon = id
		w.sound("equip")
		return true
	}
	if p.Money < price {
		w.sound("denied")
		return false
	}
	p.Money -= price
	p.Owned[id] = true
	p.Weapon = id
	w.sound("purchase")
	return true
}

func (w *World) buyItem(kind string, price int) bool {
	p := w.Player
	if p.Money < price {
		w.sound("denied")
		return false
	}
	switch kind {
	case "heart":
		p.MaxHealth++
		p.Health++
	case "elixir":
		if p.Health >= p.MaxHealth {
			return false
		}
		p.Heal(p.MaxHealth)
	case "armor":
		if p.Armor {
			return false
		}
		p.Armor = true
	default:
		return false
	}
	p.Money -= price
	spawnEffect(w, p.CenterX(), p.Top()-10, "purchased", healColor)
	w.sound("purchase")
	return true
}
