package sim

import (
	"math/rand"
	"time"

	"github.com/younwookim/gauntlet/internal/domain/entity"
	"github.com/younwookim/gauntlet/internal/infrastructure/config"
)

// Mode is the coarse sub-state of a running room.
type Mode int

const (
	ModeNormal Mode = iota
	ModeBossIntro
	ModeExiting
	ModeVictoryExit
)

// RoomKind identifies what a generated room contains.
type RoomKind int

const (
	RoomCombat RoomKind = iota
	RoomShop
	RoomBoss
)

// Stats is the HUD-facing snapshot published at a throttled cadence.
type Stats struct {
	HP     int
	MaxHP  int
	Money  int
	Level  int
	Weapon string
	Score  int
}

// Callbacks are the host hooks the simulation fires as side effects.
// Any of them may be nil.
type Callbacks struct {
	// GameOver fires exactly once per run, with a human-readable cause
	// and the level the run ended on.
	GameOver func(cause string, level int)
	// Victory fires exactly once, after the victory-exit delay.
	Victory func()
	// ShopOpen fires when a shop room finishes generating.
	ShopOpen func()
	// UnlockHardest fires when the mid-boss dies on the second-hardest
	// tier.
	UnlockHardest func()
	// Stats receives a snapshot every StatsInterval ticks.
	Stats func(Stats)
}

// Feedback carries presentation-only hooks: screen shake, hitstop and
// sound cues. The simulation works identically with all of them nil.
type Feedback struct {
	Shake   func(strength float64)
	Hitstop func(ticks int)
	Sound   func(cue string)
}

// World is the whole simulation state for one run. A single goroutine
// owns it: the host calls Advance once per frame and may read any
// exported field between calls, but must never write one. All
// cross-entity effects go through methods on World, and dead entities
// are only dropped by the end-of-tick compaction pass.
type World struct {
	Grid        *entity.Grid
	Player      *entity.Player
	Enemies     []*entity.Enemy
	Projectiles []*entity.Projectile
	Particles   []*entity.Particle
	Effects     []*entity.Effect
	Pickups     []*entity.Pickup
	Shopkeeper  *entity.NPC

	Level    int
	Kind     RoomKind
	CameraX  float64
	CameraY  float64
	Feedback Feedback

	cfg  *config.GameConfig
	tier config.Tier
	cb   Callbacks
	rng  *rand.Rand

	mode       Mode
	modeTicks  int // countdown for the timed modes
	crumbleRow int
	over       bool
	ticks      int

	prevJump bool
}

// NewWorld builds a run on the given tier and generates level 1.
// A nil rng gets a time-seeded one.
func NewWorld(cfg *config.GameConfig, tier config.Tier, cb Callbacks, rng *rand.Rand) *World {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	w := &World{
		cfg:  cfg,
		tier: tier,
		cb:   cb,
		rng:  rng,
	}

	pc := cfg.Entities.Player
	w.Player = entity.NewPlayer(0, 0, cfg.Weapons.Starter, pc.MaxHealth)
	w.loadLevel(1)
	return w
}

// Advance runs one simulation tick. After the run has ended it is a
// no-op, so late frames never mutate final state.
func (w *World) Advance(in Input) {
	if w.over {
		return
	}
	w.ticks++

	switch w.mode {
	case ModeBossIntro:
		w.updateBossIntro()
	case ModeExiting, ModeVictoryExit:
		w.updateExiting()
	default:
		UpdatePlayer(w, in)
		UpdateEnemies(w)
		UpdatePickups(w)
		CheckExit(w)
	}
	w.prevJump = in.Jump

	UpdateProjectiles(w)
	UpdateParticles(w)
	UpdateEffects(w)
	w.updateCamera()
	w.compact()
	w.publishStats()
}

// Mode reports the current room sub-state.
func (w *World) Mode() Mode { return w.mode }

// Over reports whether the run has ended in either a defeat or a
// victory.
func (w *World) Over() bool { return w.over }

// Ticks reports how many ticks this world has advanced.
func (w *World) Ticks() int { return w.ticks }

// Tier reports the difficulty the run was started on.
func (w *World) Tier() config.Tier { return w.tier }

// Config exposes the loaded data tables, for the host UI.
func (w *World) Config() *config.GameConfig { return w.cfg }

// Snapshot builds the current HUD stats. Completed levels are worth a
// flat score bonus on top of money earned.
func (w *World) Snapshot() Stats {
	return Stats{
		HP:     w.Player.Health,
		MaxHP:  w.Player.MaxHealth,
		Money:  w.Player.Money,
		Level:  w.Level,
		Weapon: w.Player.Weapon,
		Score:  w.Player.MoneyEarned + 100*(w.Level-1),
	}
}

func (w *World) publishStats() {
	if w.cb.Stats == nil || w.ticks%StatsInterval != 0 {
		return
	}
	w.cb.Stats(w.Snapshot())
}

// HostileCount reports how many live hostile enemies remain. The
// shopkeeper is not an enemy and never counts.
func (w *World) HostileCount() int {
	n := 0
	for _, e := range w.Enemies {
		if e.IsAlive() {
			n++
		}
	}
	return n
}

func (w *World) updateCamera() {
	w.CameraX = clamp(w.Player.CenterX()-ViewWidth/2, 0, w.Grid.Width()-ViewWidth)
	w.CameraY = clamp(w.Player.CenterY()-ViewHeight/2, 0, w.Grid.Height()-ViewHeight)
}

// compact drops dead entities. This is the only place anything is
// removed from the world, so systems may hold indices for the rest of
// a tick without them going stale.
func (w *World) compact() {
	enemies := w.Enemies[:0]
	for _, e := range w.Enemies {
		if e.Alive {
			enemies = append(enemies, e)
		}
	}
	w.Enemies = enemies

	projectiles := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if p.Alive {
			projectiles = append(projectiles, p)
		}
	}
	w.Projectiles = projectiles

	particles := w.Particles[:0]
	for _, p := range w.Particles {
		if p.Alive {
			particles = append(particles, p)
		}
	}
	w.Particles = particles

	effects := w.Effects[:0]
	for _, e := range w.Effects {
		if e.Alive {
			effects = append(effects, e)
		}
	}
	w.Effects = effects

	pickups := w.Pickups[:0]
	for _, p := range w.Pickups {
		if p.Alive {
			pickups = append(pickups, p)
		}
	}
	w.Pickups = pickups
}

func (w *World) sound(cue string) {
	if w.Feedback.Sound != nil {
		w.Feedback.Sound(cue)
	}
}

func (w *World) shake(strength float64) {
	if w.Feedback.Shake != nil {
		w.Feedback.Shake(strength)
	}
}

func (w *World) hitstop(ticks int) {
	if w.Feedback.Hitstop != nil {
		w.Feedback.Hitstop(ticks)
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
