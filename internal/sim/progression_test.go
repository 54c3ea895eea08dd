package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gauntlet/internal/domain/entity"
)

// standOnExit parks the player inside the exit cell.
func standOnExit(w *World) {
	g := w.Grid
	w.Player.X = float64(g.ExitCol*entity.TileSize) + 2
	w.Player.Y = float64((g.ExitRow+1)*entity.TileSize) - w.Player.H
	w.Player.VX, w.Player.VY = 0, 0
}

func TestExitStaysLockedWhileHostilesRemain(t *testing.T) {
	w, _ := newTestWorld(t, "normal", 21)
	require.Positive(t, w.HostileCount())
	standOnExit(w)

	CheckExit(w)

	assert.Equal(t, ModeNormal, w.Mode())
	assert.Equal(t, 1, w.Level)
}

func TestExitAdvancesToTheNextLevel(t *testing.T) {
	w, _ := newTestWorld(t, "normal", 21)
	w.Enemies = nil
	standOnExit(w)

	CheckExit(w)
	require.Equal(t, ModeExiting, w.Mode())

	// The player walks out under force for the whole transition.
	startX := w.Player.X
	w.Advance(Input{})
	assert.Greater(t, w.Player.X, startX, "force-walked forward")

	for i := 0; i < ExitDelay+5; i++ {
		w.Advance(Input{})
	}

	assert.Equal(t, 2, w.Level)
	assert.Equal(t, ModeNormal, w.Mode())
	assert.Equal(t, w.Grid.SpawnX, w.Player.X, "respawned at the new room's spawn")
	assert.NotEmpty(t, w.Enemies, "fresh room repopulated")
}

func TestExitIgnoredAwayFromTheCell(t *testing.T) {
	w, _ := newTestWorld(t, "normal", 21)
	w.Enemies = nil

	CheckExit(w)

	assert.Equal(t, ModeNormal, w.Mode(), "spawn position is nowhere near the exit")
}

func TestPlayerKeepsProgressAcrossRooms(t *testing.T) {
	w, _ := newTestWorld(t, "normal", 21)
	w.Enemies = nil
	w.Player.AddMoney(77)
	w.Player.Health = 2
	standOnExit(w)

	CheckExit(w)
	for i := 0; i < ExitDelay+5; i++ {
		w.Advance(Input{})
	}

	assert.Equal(t, 77, w.Player.Money)
	assert.Equal(t, 2, w.Player.Health)
}

func TestTerminalExitTriggersVictoryNotAnotherRoom(t *testing.T) {
	w, c := newTestWorld(t, "hard", 21)
	w.loadLevel(10)
	require.Len(t, w.Enemies, 1, "terminal room stages the mid-boss")

	DamageEnemy(w, w.Enemies[0], 9999)
	require.Zero(t, w.HostileCount())

	standOnExit(w)
	CheckExit(w)
	require.Equal(t, ModeVictoryExit, w.Mode())
	assert.Equal(t, entity.TileEmpty, w.Grid.TileAt(w.Grid.Cols-1, w.Grid.Rows-2),
		"right border opened")

	for i := 0; i < VictoryExitDelay+5; i++ {
		w.Advance(Input{})
	}
	assert.Equal(t, 1, c.victories)
	assert.True(t, w.Over())
	assert.Equal(t, 10, w.Level, "no room reload after the terminal exit")
}

func TestMidBossDeathUnlocksOnlyOnTheSecondHardestTier(t *testing.T) {
	t.Run("second hardest unlocks", func(t *testing.T) {
		w, c := newTestWorld(t, "hard", 3)
		w.loadLevel(10)
		DamageEnemy(w, w.Enemies[0], 9999)
		assert.Equal(t, 1, c.unlocks)
	})

	t.Run("lower tiers do not", func(t *testing.T) {
		w, c := newTestWorld(t, "normal", 3)
		w.loadLevel(10)
		DamageEnemy(w, w.Enemies[0], 9999)
		assert.Zero(t, c.unlocks)
	})
}

func TestShopRoomOpensTheShopOnArrival(t *testing.T) {
	w, c := newTestWorld(t, "easy", 17)
	w.loadLevel(5)

	assert.Equal(t, RoomShop, w.Kind)
	assert.Equal(t, 1, c.shops)
	assert.NotNil(t, w.Shopkeeper)
	assert.Zero(t, w.HostileCount())

	// Safe rooms carry no hazards.
	g := w.Grid
	for col := 0; col < g.Cols; col++ {
		for row := 0; row < g.Rows; row++ {
			assert.NotEqual(t, entity.TileHazard, g.TileAt(col, row))
		}
	}
}

func TestBossIntroCrumblesTheArenaGradually(t *testing.T) {
	w, _ := newTestWorld(t, "nightmare", 29)
	w.loadLevel(10)
	require.Equal(t, ModeBossIntro, w.Mode())

	countFill := func() int {
		n := 0
		g := w.Grid
		for row := g.Rows - 1 - CollapsibleRows; row <= g.Rows-2; row++ {
			for col := BossPocketCols; col < g.Cols-1; col++ {
				if g.TileAt(col, row) == entity.TileWall {
					n++
				}
			}
		}
		return n
	}

	before := countFill()
	require.Positive(t, before)
	sawDebris := false

	for i := 0; i < 5000 && w.Mode() == ModeBossIntro; i++ {
		prev := countFill()
		w.Advance(Input{})
		now := countFill()
		assert.LessOrEqual(t, prev-now, CrumblePerTick, "bounded clears per tick")
		if len(w.Particles) > 0 {
			sawDebris = true
		}
	}

	assert.Equal(t, ModeNormal, w.Mode(), "intro finished")
	assert.Zero(t, countFill(), "the whole collapsible height cleared")
	assert.True(t, sawDebris, "crumbling throws debris")
	assert.True(t, w.Enemies[0].IsAlive(), "boss untouched by the intro")
}

func TestVictoryExitSurvivesIdleTicksBeforeFiring(t *testing.T) {
	w, c := newTestWorld(t, "hard", 21)
	w.loadLevel(10)
	DamageEnemy(w, w.Enemies[0], 9999)
	standOnExit(w)
	CheckExit(w)
	require.Equal(t, ModeVictoryExit, w.Mode())

	for i := 0; i < VictoryExitDelay-1; i++ {
		w.Advance(Input{})
	}
	assert.Zero(t, c.victories, "not a tick early")

	w.Advance(Input{})
	assert.Equal(t, 1, c.victories)
}
