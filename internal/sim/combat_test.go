package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gauntlet/internal/domain/entity"
)

func effectTexts(w *World) []string {
	texts := make([]string, 0, len(w.Effects))
	for _, e := range w.Effects {
		texts = append(texts, e.Text)
	}
	return texts
}

func TestDamageEnemyKillPaysBounty(t *testing.T) {
	w, _ := newTestWorld(t, "normal", 4)
	e := spawnEnemy(w, entity.ArchetypeWalker, w.Grid, 40, 10)
	require.NotNil(t, e)
	before := w.Player.Money

	DamageEnemy(w, e, 99)

	assert.False(t, e.IsAlive())
	assert.Equal(t, before+5, w.Player.Money)
	assert.Contains(t, effectTexts(w), "+5")
}

func TestDamageEnemyShowsTheAmount(t *testing.T) {
	w, _ := newTestWorld(t, "normal", 4)
	e := spawnEnemy(w, entity.ArchetypeTank, w.Grid, 40, 10)
	require.NotNil(t, e)

	DamageEnemy(w, e, 2)

	assert.Equal(t, e.MaxHealth-2, e.Health)
	assert.Equal(t, 12, e.HitFlashTicks)
	assert.Contains(t, effectTexts(w), "2")
}

func TestOverlordPhaseGatesDamage(t *testing.T) {
	w, _ := newTestWorld(t, "nightmare", 4)
	w.loadLevel(10)
	require.Len(t, w.Enemies, 1)
	boss := w.Enemies[0]
	require.NotNil(t, boss.Overlord)

	t.Run("attack phase rejects everything", func(t *testing.T) {
		boss.Overlord.Phase = entity.PhaseAttack
		hp := boss.Health

		DamageEnemy(w, boss, 99)

		assert.Equal(t, hp, boss.Health)
		assert.Contains(t, effectTexts(w), "invulnerable")
	})

	t.Run("sleep phase takes exactly one point per hit", func(t *testing.T) {
		boss.Overlord.Phase = entity.PhaseSleep
		hp := boss.Health

		DamageEnemy(w, boss, 99)

		assert.Equal(t, hp-1, boss.Health)
	})
}

func TestOverlordDeathStartsTheVictoryExit(t *testing.T) {
	w, c := newTestWorld(t, "nightmare", 4)
	w.loadLevel(10)
	boss := w.Enemies[0]
	boss.Overlord.Phase = entity.PhaseSleep
	boss.Health = 1

	DamageEnemy(w, boss, 1)

	require.False(t, boss.IsAlive())
	assert.Equal(t, ModeVictoryExit, w.Mode())
	g := w.Grid
	assert.Equal(t, entity.TileEmpty, g.TileAt(g.Cols-1, g.Rows-2),
		"right-hand border opened for the walk-off")

	for i := 0; i < BossVictoryDelay+5; i++ {
		w.Advance(Input{})
	}
	assert.Equal(t, 1, c.victories)
	assert.True(t, w.Over())
}

func TestOverlordDiesToExactlyThreeSleepHits(t *testing.T) {
	w, c := newTestWorld(t, "nightmare", 4)
	w.loadLevel(10)
	require.Len(t, w.Enemies, 1)
	boss := w.Enemies[0]
	require.NotNil(t, boss.Overlord)
	boss.Overlord.Phase = entity.PhaseSleep

	DamageEnemy(w, boss, 99)
	DamageEnemy(w, boss, 99)
	require.True(t, boss.IsAlive(), "two hits are not enough")
	assert.Equal(t, 1, boss.Health)

	DamageEnemy(w, boss, 99)

	assert.Zero(t, boss.Health)
	require.False(t, boss.IsAlive())
	assert.Equal(t, ModeVictoryExit, w.Mode())

	for i := 0; i < BossVictoryDelay+5; i++ {
		w.Advance(Input{})
	}
	assert.Equal(t, 1, c.victories)
}

// Incoming damage to the player is a flat single hitpoint per hit.
// The attacker's damage stat scales nothing on this side; it only
// exists so tier multipliers have somewhere to land.
func TestPlayerDamageIsFlatRegardlessOfAttacker(t *testing.T) {
	w, _ := newTestWorld(t, "nightmare", 8)
	w.Enemies = nil
	tank := spawnEnemy(w, entity.ArchetypeTank, w.Grid, 40, 10)
	require.NotNil(t, tank)
	require.GreaterOrEqual(t, tank.Damage, 6, "scaled attacker stat is well above one")

	tank.X, tank.Y = w.Player.X, w.Player.Y
	hp := w.Player.Health

	UpdateEnemies(w)

	assert.Equal(t, hp-1, w.Player.Health)
}

func TestArmorAbsorbsExactlyOneHit(t *testing.T) {
	w, _ := newTestWorld(t, "normal", 8)
	w.Player.Armor = true
	hp := w.Player.Health

	damagePlayer(w, "slain by walker")
	assert.False(t, w.Player.Armor)
	assert.Equal(t, hp, w.Player.Health, "armor ate the hit")
	assert.Contains(t, effectTexts(w), "armor broke")

	w.Player.IframeTicks = 0
	damagePlayer(w, "slain by walker")
	assert.Equal(t, hp-1, w.Player.Health)
}

func TestInvulnerabilityWindowGatesRepeatHits(t *testing.T) {
	w, _ := newTestWorld(t, "normal", 8)
	hp := w.Player.Health

	damagePlayer(w, "slain by walker")
	require.Equal(t, hp-1, w.Player.Health)
	require.Equal(t, PlayerIframes, w.Player.IframeTicks)

	for i := 0; i < 10; i++ {
		damagePlayer(w, "slain by walker")
	}
	assert.Equal(t, hp-1, w.Player.Health, "no hits land inside the window")
}

func TestLethalHitReportsItsCause(t *testing.T) {
	w, c := newTestWorld(t, "normal", 8)
	w.Player.Health = 1
	w.Level = 4

	damagePlayer(w, "impaled on spikes")

	require.Equal(t, []string{"impaled on spikes"}, c.causes)
	assert.Equal(t, 4, c.overLevel)
	assert.True(t, w.Over())

	w.Player.IframeTicks = 0
	damagePlayer(w, "slain by walker")
	assert.Len(t, c.causes, 1, "the run only ends once")
}

func TestMeleeSwingHitsWhatTheHitboxTouches(t *testing.T) {
	w, _ := newTestWorld(t, "normal", 8)
	w.Enemies = nil
	w.Player.Weapon = "saber"
	w.Player.Owned["saber"] = true
	w.Player.FacingRight = true

	inRange := spawnEnemy(w, entity.ArchetypeWalker, w.Grid, 0, 0)
	inRange.X = w.Player.Right() + 4
	inRange.Y = w.Player.Y
	behind := spawnEnemy(w, entity.ArchetypeWalker, w.Grid, 0, 0)
	behind.X = w.Player.Left() - 40
	behind.Y = w.Player.Y

	handleAttack(w, Input{Fire: true})

	assert.Equal(t, inRange.MaxHealth-2, inRange.Health, "saber damage applied")
	assert.Equal(t, behind.MaxHealth, behind.Health, "swing does not reach backwards")
	assert.NotEmpty(t, w.Particles, "swing sparks")
}

func TestSemiAutoNeedsTheTriggerReleased(t *testing.T) {
	w, _ := newTestWorld(t, "normal", 8)
	w.Enemies = nil

	handleAttack(w, Input{Fire: true})
	require.Len(t, w.Projectiles, 1)
	w.Player.TriggerHeld = true
	w.Player.AttackCooldown = 0

	handleAttack(w, Input{Fire: true})
	assert.Len(t, w.Projectiles, 1, "held trigger does not refire")

	w.Player.TriggerHeld = false
	handleAttack(w, Input{Fire: true})
	assert.Len(t, w.Projectiles, 2)
}

func TestAutomaticWeaponFiresWhileHeld(t *testing.T) {
	w, _ := newTestWorld(t, "normal", 8)
	w.Enemies = nil
	w.Player.Weapon = "repeater"
	w.Player.TriggerHeld = true

	handleAttack(w, Input{Fire: true})
	require.Len(t, w.Projectiles, 1)

	w.Player.AttackCooldown = 0
	handleAttack(w, Input{Fire: true})
	assert.Len(t, w.Projectiles, 2)
}

func TestSpreadWeaponFansItsProjectiles(t *testing.T) {
	w, _ := newTestWorld(t, "normal", 8)
	w.Enemies = nil
	w.Player.Weapon = "scatter"

	handleAttack(w, Input{Fire: true})

	require.Len(t, w.Projectiles, 3)
	up, down := 0, 0
	for _, p := range w.Projectiles {
		if p.VY < -0.01 {
			up++
		}
		if p.VY > 0.01 {
			down++
		}
	}
	assert.Equal(t, 1, up, "one shot angled up")
	assert.Equal(t, 1, down, "one shot angled down")
}

func TestAimedShotFliesTowardThePointer(t *testing.T) {
	w, _ := newTestWorld(t, "normal", 8)
	w.Enemies = nil
	p := w.Player

	handleAttack(w, Input{PointerHeld: true, PointerX: p.CenterX(), PointerY: p.CenterY() - 100})

	require.Len(t, w.Projectiles, 1)
	shot := w.Projectiles[0]
	assert.InDelta(t, 0, shot.VX, 1e-9)
	assert.Negative(t, shot.VY)
}
