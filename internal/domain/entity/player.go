package entity

// Player represents the player character. Exactly one instance exists
// per run; the world creates it and drops it when the run ends.
type Player struct {
	Body

	Health    int
	MaxHealth int
	Money     int
	Armor     bool

	// Weapons
	Weapon string          // equipped weapon id
	Owned  map[string]bool // weapon ids the player has bought or started with

	// Timers (ticks)
	IframeTicks     int
	AttackCooldown  int
	CoyoteTicks     int
	JumpBufferTicks int

	// TriggerHeld remembers last tick's fire input so that non-auto
	// weapons only fire again after the trigger is released.
	TriggerHeld bool

	// MoneyEarned is the run total, used for scoring. Money is the
	// spendable balance.
	MoneyEarned int
}

// NewPlayer creates a player at the given pixel position with the
// starter weapon equipped.
func NewPlayer(x, y float64, weapon string, maxHealth int) *Player {
	return &Player{
		Body: Body{
			X: x, Y: y,
			W: 12, H: 22,
			FacingRight: true,
			Alive:       true,
		},
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Weapon:    weapon,
		Owned:     map[string]bool{weapon: true},
	}
}

// Heal raises health by n, clamped to max health.
func (p *Player) Heal(n int) {
	p.Health += n
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

// AddMoney credits the balance and the run total.
func (p *Player) AddMoney(n int) {
	p.Money += n
	p.MoneyEarned += n
}

// IsInvincible reports whether the player currently ignores damage.
func (p *Player) IsInvincible() bool {
	return p.IframeTicks > 0
}
