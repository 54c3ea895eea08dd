package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gauntlet/internal/domain/entity"
	"github.com/younwookim/gauntlet/internal/infrastructure/config"
)

// capture records every callback the world fires.
type capture struct {
	causes    []string
	overLevel int
	victories int
	shops     int
	unlocks   int
	stats     []Stats
}

func newTestWorld(t *testing.T, tierID string, seed int64) (*World, *capture) {
	t.Helper()
	loader, err := config.Embedded()
	require.NoError(t, err)
	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	tier, ok := cfg.Difficulties.Tier(tierID)
	require.True(t, ok, "unknown tier %q", tierID)

	c := &capture{}
	cb := Callbacks{
		GameOver: func(cause string, level int) {
			c.causes = append(c.causes, cause)
			c.overLevel = level
		},
		Victory:       func() { c.victories++ },
		ShopOpen:      func() { c.shops++ },
		UnlockHardest: func() { c.unlocks++ },
		Stats:         func(s Stats) { c.stats = append(c.stats, s) },
	}
	return NewWorld(cfg, tier, cb, rand.New(rand.NewSource(seed))), c
}

func TestNewWorldStartsOnLevelOne(t *testing.T) {
	w, c := newTestWorld(t, "easy", 1)

	assert.Equal(t, 1, w.Level)
	assert.Equal(t, RoomCombat, w.Kind)
	assert.Equal(t, ModeNormal, w.Mode())
	assert.Equal(t, w.Grid.SpawnX, w.Player.X)
	assert.Equal(t, 4, w.Player.Health)
	assert.Equal(t, "blaster", w.Player.Weapon)
	assert.Zero(t, c.shops)

	// base count plus level and tier contributions: 2 + 1/2 + 0.
	assert.Len(t, w.Enemies, 2)
}

func TestEnemyCountScalesWithLevelAndTier(t *testing.T) {
	tests := []struct {
		tier  string
		level int
		want  int
	}{
		{tier: "easy", level: 1, want: 2},
		{tier: "easy", level: 4, want: 4},
		{tier: "normal", level: 3, want: 4},
		{tier: "nightmare", level: 8, want: 9},
		{tier: "nightmare", level: 9, want: 9}, // capped
	}
	for _, tt := range tests {
		w, _ := newTestWorld(t, tt.tier, 7)
		w.loadLevel(tt.level)
		assert.Len(t, w.Enemies, tt.want, "tier %s level %d", tt.tier, tt.level)
	}
}

func TestAdvanceIsNoOpAfterRunEnds(t *testing.T) {
	w, c := newTestWorld(t, "normal", 3)
	w.Player.Health = 1
	w.Player.Y = w.Grid.Height() + FallKillMargin + 50

	w.Advance(Input{})
	require.Equal(t, []string{"fell out of the world"}, c.causes)
	require.True(t, w.Over())

	hp := w.Player.Health
	x, y := w.Player.X, w.Player.Y
	ticks := w.Ticks()
	for i := 0; i < 30; i++ {
		w.Advance(Input{Right: true, Jump: true})
	}

	assert.Equal(t, hp, w.Player.Health)
	assert.Equal(t, x, w.Player.X)
	assert.Equal(t, y, w.Player.Y)
	assert.Equal(t, ticks, w.Ticks())
	assert.Len(t, c.causes, 1, "game over fires exactly once")
}

func TestCompactionDropsDeadEntitiesAtTickEnd(t *testing.T) {
	w, _ := newTestWorld(t, "easy", 5)
	require.NotEmpty(t, w.Enemies)

	w.Enemies[0].Alive = false
	w.Effects = append(w.Effects, entity.NewEffect(100, 100, "x", 1, damageColor))
	before := len(w.Enemies)

	w.Advance(Input{})

	assert.Len(t, w.Enemies, before-1)
	for _, e := range w.Enemies {
		assert.True(t, e.Alive)
	}
	assert.Empty(t, w.Effects, "expired effect compacted")
}

func TestProjectilesExpireAndCompact(t *testing.T) {
	w, _ := newTestWorld(t, "easy", 5)
	w.Enemies = nil
	shot := entity.NewShot(entity.OwnerPlayer, 200, 100, 1, 0, 1, 3, damageColor)
	w.Projectiles = append(w.Projectiles, shot)

	for i := 0; i < 5; i++ {
		w.Advance(Input{})
	}

	assert.Empty(t, w.Projectiles)
}

func TestSnapshotScore(t *testing.T) {
	w, _ := newTestWorld(t, "easy", 2)
	w.Player.AddMoney(30)
	w.Player.Money -= 10 // spending does not reduce score
	w.Level = 3

	s := w.Snapshot()

	assert.Equal(t, 30+200, s.Score)
	assert.Equal(t, 20, s.Money)
	assert.Equal(t, 3, s.Level)
	assert.Equal(t, "blaster", s.Weapon)
}

func TestStatsPublishedAtThrottledCadence(t *testing.T) {
	w, c := newTestWorld(t, "easy", 2)
	w.Enemies = nil

	for i := 0; i < 25; i++ {
		w.Advance(Input{})
	}

	assert.Len(t, c.stats, 2, "one snapshot per interval, not per tick")
	last := c.stats[len(c.stats)-1]
	assert.Equal(t, w.Player.Health, last.HP)
}

func TestHostileCountIgnoresDeadAndShopkeeper(t *testing.T) {
	w, _ := newTestWorld(t, "easy", 9)
	w.loadLevel(5)
	require.Equal(t, RoomShop, w.Kind)
	require.NotNil(t, w.Shopkeeper)

	assert.Zero(t, w.HostileCount())
}
