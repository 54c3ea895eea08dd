package entity

// Archetype identifies an enemy behavior family.
type Archetype int

const (
	ArchetypeWalker Archetype = iota
	ArchetypeArcher
	ArchetypeTank
	ArchetypeMidBoss
	ArchetypeOverlord
)

// String returns the archetype name as used in the config tables.
func (a Archetype) String() string {
	switch a {
	case ArchetypeWalker:
		return "walker"
	case ArchetypeArcher:
		return "archer"
	case ArchetypeTank:
		return "tank"
	case ArchetypeMidBoss:
		return "midboss"
	case ArchetypeOverlord:
		return "overlord"
	default:
		return "unknown"
	}
}

// BossTier reports whether deaths of this archetype pay the boss bounty.
func (a Archetype) BossTier() bool {
	return a == ArchetypeMidBoss || a == ArchetypeOverlord
}

// Phase is the overlord's activity state.
type Phase int

const (
	PhaseAttack Phase = iota
	PhaseSleep
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseSleep {
		return "sleep"
	}
	return "attack"
}

// OverlordState holds the fields that only exist on the terminal boss.
// A nil pointer on Enemy means the enemy has no phase machine.
type OverlordState struct {
	Phase      Phase
	SalvoCount int
	SleepTicks int
}

// Enemy represents a hostile entity.
type Enemy struct {
	Body
	Archetype Archetype

	MaxHealth int
	Health    int
	Damage    int
	Speed     float64 // pixels per tick when chasing
	Bounty    int

	// Ranged sub-behavior, resolved from the archetype table at spawn.
	// ShotBase of zero disables it.
	ShotBase  int
	ShotSpeed float64

	// State
	PatrolDir     int // +1 or -1
	HitFlashTicks int
	ShotCooldown  int // ticks until the ranged sub-behavior may fire

	Overlord *OverlordState // non-nil only for ArchetypeOverlord
}

// NewEnemy creates an enemy of the given archetype at the given pixel
// position. Stats and size come from the archetype table at spawn time.
func NewEnemy(a Archetype, x, y float64) *Enemy {
	e := &Enemy{
		Body: Body{
			X: x, Y: y,
			Alive: true,
		},
		Archetype: a,
		PatrolDir: -1,
	}
	if a == ArchetypeOverlord {
		e.Overlord = &OverlordState{Phase: PhaseAttack}
	}
	return e
}

// ApplyDamage subtracts health and starts the hit flash. It returns
// true when the hit was lethal. Phase gating for the terminal boss is
// the combat resolver's job, not this method's.
func (e *Enemy) ApplyDamage(n int) bool {
	e.Health -= n
	e.HitFlashTicks = 12
	return e.Health <= 0
}

// IsAlive reports whether the enemy is still part of the simulation.
func (e *Enemy) IsAlive() bool {
	return e.Alive && e.Health > 0
}

// Asleep reports whether the enemy is a sleeping overlord. Sleeping
// overlords deal no contact damage and are the only damageable state.
func (e *Enemy) Asleep() bool {
	return e.Overlord != nil && e.Overlord.Phase == PhaseSleep
}
