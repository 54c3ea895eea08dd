package sim

import (
	"math"

	"github.com/younwookim/gauntlet/internal/domain/entity"
)

// loadLevel tears down the current room and generates the one for the
// given level. The player keeps health, money and weapons; everything
// else is rebuilt.
func (w *World) loadLevel(level int) {
	w.Level = level
	w.Enemies = w.Enemies[:0]
	w.Projectiles = w.Projectiles[:0]
	w.Particles = w.Particles[:0]
	w.Effects = w.Effects[:0]
	w.Pickups = w.Pickups[:0]
	w.Shopkeeper = nil

	GenerateRoom(w, level)

	p := w.Player
	p.X = w.Grid.SpawnX
	p.Y = w.Grid.SpawnY
	p.VX, p.VY = 0, 0
	p.Grounded = false

	if w.Kind == RoomBoss {
		w.mode = ModeBossIntro
		w.crumbleRow = w.Grid.Rows - 2
	} else {
		w.mode = ModeNormal
	}
	w.updateCamera()

	if w.Kind == RoomShop && w.cb.ShopOpen != nil {
		w.cb.ShopOpen()
	}
}

// GenerateRoom builds the grid and populates the world for one level.
// Room choice: the terminal level on the hardest tier is the boss
// arena, every ShopInterval-th level short of the terminal one is a
// shop, everything else is a combat room.
func GenerateRoom(w *World, level int) {
	gen := w.cfg.Generation
	g := entity.NewGrid(gen.Cols, gen.Rows)
	buildBorder(g)

	g.SpawnX = 3*entity.TileSize + 2
	g.SpawnY = float64((gen.Rows-1)*entity.TileSize) - w.Player.H

	switch {
	case level == gen.TerminalLevel && w.tier.Hardest():
		w.Kind = RoomBoss
		buildBossRoom(w, g)
	case gen.ShopInterval > 0 && level%gen.ShopInterval == 0 && level != gen.TerminalLevel:
		w.Kind = RoomShop
		buildShopRoom(w, g)
	default:
		w.Kind = RoomCombat
		buildCombatRoom(w, g, level)
	}
	w.Grid = g
}

func buildBorder(g *entity.Grid) {
	for c := 0; c < g.Cols; c++ {
		g.SetTile(c, 0, entity.TileWall)
		g.SetTile(c, g.Rows-1, entity.TileWall)
	}
	for r := 0; r < g.Rows; r++ {
		g.SetTile(0, r, entity.TileWall)
		g.SetTile(g.Cols-1, r, entity.TileWall)
	}
}

// placeExit marks the exit cell just above the floor at its fixed
// column. It goes in before any random geometry, and the scatter and
// hazard passes refuse to overwrite non-empty cells, so it survives
// generation untouched.
func placeExit(w *World, g *entity.Grid) {
	g.ExitCol = w.cfg.Generation.Exit.Col
	g.ExitRow = g.Rows - 2
	g.SetTile(g.ExitCol, g.ExitRow, entity.TileExit)
}

func buildCombatRoom(w *World, g *entity.Grid, level int) {
	placeExit(w, g)
	scatterGeometry(w, g)
	placeHazardStrip(w, g)
	spawnEnemies(w, g, level)
	dropPickups(w, g)
}

// scatterGeometry lays horizontal segments of walls and one-way
// platforms at random positions. Cells that already hold something and
// the pockets around the spawn and exit are left alone.
func scatterGeometry(w *World, g *entity.Grid) {
	sc := w.cfg.Generation.Scatter
	n := sc.MinSegments + w.rng.Intn(sc.MaxSegments-sc.MinSegments+1)
	for i := 0; i < n; i++ {
		length := sc.MinLength + w.rng.Intn(sc.MaxLength-sc.MinLength+1)
		row := 4 + w.rng.Intn(g.Rows-8)
		col := 2 + w.rng.Intn(g.Cols-3-length)
		tile := entity.TilePlatform
		if w.rng.Float64() < 0.35 {
			tile = entity.TileWall
		}
		for c := col; c < col+length; c++ {
			if g.TileAt(c, row) != entity.TileEmpty || protectedCell(g, c, row) {
				continue
			}
			g.SetTile(c, row, tile)
		}
	}
}

// protectedCell guards the spawn pocket on the left and the approach
// to the exit so generation can never wall either one in.
func protectedCell(g *entity.Grid, col, row int) bool {
	if col <= 6 && row >= g.Rows-6 {
		return true
	}
	if g.ExitCol > 0 && col >= g.ExitCol-1 && col <= g.ExitCol+1 && row >= g.ExitRow-2 {
		return true
	}
	return false
}

// placeHazardStrip lays one run of hazard cells on the floor, at least
// SafeColumns away from the spawn so a fresh room never starts lethal.
func placeHazardStrip(w *World, g *entity.Grid) {
	hz := w.cfg.Generation.Hazards
	length := hz.MinLength + w.rng.Intn(hz.MaxLength-hz.MinLength+1)
	lo := 3 + hz.SafeColumns
	hi := g.Cols - 3 - length
	if hi <= lo {
		return
	}
	start := lo + w.rng.Intn(hi-lo+1)
	row := g.Rows - 2
	for c := start; c < start+length; c++ {
		if g.TileAt(c, row) != entity.TileEmpty || protectedCell(g, c, row) {
			continue
		}
		g.SetTile(c, row, entity.TileHazard)
	}
}

// spawnEnemies fills a combat room. Count scales with level and tier;
// placement resamples empty interior cells within a retry budget and
// falls back to a known-good cell rather than looping forever. The
// terminal level outside the hardest tier stages the mid-boss as its
// finale.
func spawnEnemies(w *World, g *entity.Grid, level int) {
	sp := w.cfg.Generation.Spawning

	if level == w.cfg.Generation.TerminalLevel {
		col, row := findSpawnCell(w, g, sp.RetryBudget)
		spawnEnemy(w, entity.ArchetypeMidBoss, g, col, row)
		return
	}

	count := sp.BaseCount + level/sp.LevelDivisor + w.tier.Index
	if count > sp.MaxCount {
		count = sp.MaxCount
	}
	for i := 0; i < count; i++ {
		col, row := findSpawnCell(w, g, sp.RetryBudget)
		spawnEnemy(w, rollArchetype(w, level), g, col, row)
	}
}

// findSpawnCell resamples random interior cells until it hits an empty
// one away from the player spawn, then gives up and returns the
// fallback cell.
func findSpawnCell(w *World, g *entity.Grid, budget int) (int, int) {
	sp := w.cfg.Generation.Spawning
	for try := 0; try < budget; try++ {
		col := 8 + w.rng.Intn(g.Cols-10)
		row := 2 + w.rng.Intn(g.Rows-4)
		if g.TileAt(col, row) == entity.TileEmpty {
			return col, row
		}
	}
	return sp.FallbackCol, sp.FallbackRow
}

func rollArchetype(w *World, level int) entity.Archetype {
	sp := w.cfg.Generation.Spawning
	r := w.rng.Float64()
	if level >= sp.TankLevel && r < sp.TankChance {
		return entity.ArchetypeTank
	}
	if level >= sp.ArcherLevel && r < sp.TankChance+sp.ArcherChance {
		return entity.ArchetypeArcher
	}
	return entity.ArchetypeWalker
}

// spawnEnemy builds one enemy from its archetype table entry, scaled
// by the tier multipliers; the terminal boss takes its stats as
// written. Bounties stay unscaled; the money multiplier applies to
// coin pickups instead.
func spawnEnemy(w *World, a entity.Archetype, g *entity.Grid, col, row int) *entity.Enemy {
	base, ok := w.cfg.Entities.Get(a.String())
	if !ok {
		return nil
	}
	x := float64(col*entity.TileSize) + (entity.TileSize-float64(base.Width))/2
	y := float64((row+1)*entity.TileSize) - float64(base.Height)

	e := entity.NewEnemy(a, x, y)
	e.W = float64(base.Width)
	e.H = float64(base.Height)

	hpScale, dmgScale, spdScale := w.tier.EnemyHP, w.tier.Damage, w.tier.EnemySpeed
	switch {
	case a == entity.ArchetypeOverlord:
		// The terminal boss is scripted; the tier table never
		// touches its stats.
		hpScale, dmgScale, spdScale = 1, 1, 1
	case a.BossTier():
		hpScale = w.tier.BossHP
	}
	e.MaxHealth = atLeast(1, int(math.Round(float64(base.Health)*hpScale)))
	e.Health = e.MaxHealth
	e.Damage = atLeast(1, int(math.Round(float64(base.Damage)*dmgScale)))
	e.Speed = base.Speed * spdScale
	e.Bounty = base.Bounty
	e.ShotSpeed = base.ShotSpeed
	if base.ShotCooldown > 0 {
		e.ShotBase = atLeast(30, int(float64(base.ShotCooldown)/spdScale))
		e.ShotCooldown = e.ShotBase/2 + w.rng.Intn(e.ShotBase/2+1)
	}

	w.Enemies = append(w.Enemies, e)
	return e
}

func dropPickups(w *World, g *entity.Grid) {
	pk := w.cfg.Generation.Pickups
	y := float64(pk.DropRow * entity.TileSize)

	if w.rng.Float64() < pk.HealChance {
		col := 8 + w.rng.Intn(g.Cols-12)
		w.Pickups = append(w.Pickups, entity.NewPickup(entity.PickupHeal, float64(col*entity.TileSize)+4, y, 1))
	}
	coins := w.rng.Intn(pk.MaxCoins + 1)
	value := atLeast(1, int(math.Round(float64(pk.CoinValue)*w.tier.Money)))
	for i := 0; i < coins; i++ {
		col := 8 + w.rng.Intn(g.Cols-12)
		w.Pickups = append(w.Pickups, entity.NewPickup(entity.PickupCoin, float64(col*entity.TileSize)+4, y, value))
	}
}

// buildShopRoom is an enclosed safe room: the shopkeeper, the exit and
// nothing hostile.
func buildShopRoom(w *World, g *entity.Grid) {
	placeExit(w, g)
	x := float64(g.Cols/2*entity.TileSize) + 1
	y := float64((g.Rows-1)*entity.TileSize) - 24
	w.Shopkeeper = entity.NewNPC("shopkeeper", x, y)
}

// buildBossRoom builds the sealed arena: no exit tile, the interior
// pre-filled with collapsible wall rows outside the player's entry
// pocket, and the boss hovering above the fill. The intro sequence
// crumbles the fill away before the fight starts.
func buildBossRoom(w *World, g *entity.Grid) {
	g.ExitCol = -1
	g.ExitRow = -1
	for row := g.Rows - 1 - CollapsibleRows; row <= g.Rows-2; row++ {
		for col := BossPocketCols; col < g.Cols-1; col++ {
			g.SetTile(col, row, entity.TileWall)
		}
	}

	col := g.Cols * 2 / 3
	row := g.Rows - 4 - CollapsibleRows
	spawnEnemy(w, entity.ArchetypeOverlord, g, col, row)
}

func atLeast(lo, v int) int {
	if v < lo {
		return lo
	}
	return v
}
