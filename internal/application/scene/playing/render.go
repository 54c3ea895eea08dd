package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/gauntlet/internal/application/state"
	"github.com/younwookim/gauntlet/internal/domain/entity"
	"github.com/younwookim/gauntlet/internal/sim"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorWall      = color.RGBA{80, 80, 100, 255}
	colorPlatform  = color.RGBA{110, 100, 140, 255}
	colorHazard    = color.RGBA{200, 50, 50, 255}
	colorExitOpen  = color.RGBA{120, 230, 170, 255}
	colorExitShut  = color.RGBA{70, 120, 95, 255}
	colorPlayer    = color.RGBA{100, 200, 100, 255}
	colorArmor     = color.RGBA{140, 200, 255, 255}
	colorShopkeep  = color.RGBA{230, 180, 90, 255}
	colorCoin      = color.RGBA{255, 215, 0, 255}
	colorHeal      = color.RGBA{120, 255, 140, 255}
	colorHeartBG   = color.RGBA{60, 60, 60, 255}
	colorHeart     = color.RGBA{220, 70, 90, 255}
	colorFlash     = color.RGBA{255, 255, 255, 255}
	colorOverlay   = color.RGBA{0, 0, 0, 128}
	colorDefeatBG  = color.RGBA{100, 0, 0, 180}
	colorVictoryBG = color.RGBA{0, 70, 40, 180}
)

// Enemy body colors by archetype.
var enemyColors = map[entity.Archetype]color.RGBA{
	entity.ArchetypeWalker:   {200, 100, 100, 255},
	entity.ArchetypeArcher:   {220, 140, 80, 255},
	entity.ArchetypeTank:     {150, 110, 170, 255},
	entity.ArchetypeMidBoss:  {230, 80, 120, 255},
	entity.ArchetypeOverlord: {190, 90, 230, 255},
}

var colorAsleep = color.RGBA{100, 80, 130, 255}

// Draw renders the world, the HUD and whatever overlay the state asks
// for. All world drawing is offset by the camera plus screen shake.
func (p *Playing) Draw(screen *ebiten.Image) {
	// Fill background
	screen.Fill(colorBG)

	// Apply screen shake
	camX := int(p.world.CameraX + p.shakeX*(2*randFloat()-1))
	camY := int(p.world.CameraY + p.shakeY*(2*randFloat()-1))

	// Draw world
	p.drawTiles(screen, camX, camY)
	p.drawPickups(screen, camX, camY)
	p.drawShopkeeper(screen, camX, camY)
	p.drawEnemies(screen, camX, camY)
	p.drawPlayer(screen, camX, camY)
	p.drawProjectiles(screen, camX, camY)
	p.drawParticles(screen, camX, camY)
	p.drawEffects(screen, camX, camY)

	// Draw UI (hearts, money, level, etc.) - always on top
	p.drawHUD(screen)

	// Draw state overlays
	switch p.state {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateShopping:
		p.drawShopOverlay(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen)
	case state.StateVictory:
		p.drawVictoryOverlay(screen)
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY int) {
	g := p.world.Grid
	exitShut := p.world.HostileCount() > 0

	startCol := camX / entity.TileSize
	startRow := camY / entity.TileSize
	endCol := (camX+sim.ViewWidth)/entity.TileSize + 1
	endRow := (camY+sim.ViewHeight)/entity.TileSize + 1

	for row := startRow; row <= endRow && row < g.Rows; row++ {
		for col := startCol; col <= endCol && col < g.Cols; col++ {
			if col < 0 || row < 0 {
				continue
			}

			x := float64(col*entity.TileSize - camX)
			y := float64(row*entity.TileSize - camY)

			switch g.TileAt(col, row) {
			case entity.TileWall:
				ebitenutil.DrawRect(screen, x, y, entity.TileSize, entity.TileSize, colorWall)
			case entity.TilePlatform:
				// One-way platforms read as a thin slab
				ebitenutil.DrawRect(screen, x, y, entity.TileSize, 4, colorPlatform)
			case entity.TileHazard:
				ebitenutil.DrawRect(screen, x, y+entity.TileSize-5, entity.TileSize, 5, colorHazard)
				ebitenutil.DrawRect(screen, x+2, y+entity.TileSize-10, 4, 5, colorHazard)
				ebitenutil.DrawRect(screen, x+10, y+entity.TileSize-10, 4, 5, colorHazard)
			case entity.TileExit:
				// Doorway spans the exit cell and the cell above it
				c := colorExitOpen
				if exitShut {
					c = colorExitShut
				}
				ebitenutil.DrawRect(screen, x+2, y-entity.TileSize+2, entity.TileSize-4, entity.TileSize*2-4, c)
			}
		}
	}
}

func (p *Playing) drawPickups(screen *ebiten.Image, camX, camY int) {
	for _, pk := range p.world.Pickups {
		if !pk.Alive {
			continue
		}

		x := pk.X - float64(camX)
		y := pk.Y - float64(camY)

		c := colorCoin
		if pk.Kind == entity.PickupHeal {
			c = colorHeal
		}
		ebitenutil.DrawRect(screen, x, y, pk.W, pk.H, c)
	}
}

func (p *Playing) drawShopkeeper(screen *ebiten.Image, camX, camY int) {
	sk := p.world.Shopkeeper
	if sk == nil {
		return
	}

	x := sk.X - float64(camX)
	y := sk.Y - float64(camY)
	ebitenutil.DrawRect(screen, x, y, sk.W, sk.H, colorShopkeep)
	ebitenutil.DebugPrintAt(screen, "$", int(sk.CenterX())-3-camX, int(sk.Y)-18-camY)

	if p.nearShopkeeper() && p.state == state.StatePlaying {
		ebitenutil.DebugPrintAt(screen, "E: Shop", int(sk.X)-12-camX, int(sk.Bottom())+4-camY)
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image, camX, camY int) {
	for _, e := range p.world.Enemies {
		if !e.IsAlive() {
			continue
		}

		x := e.X - float64(camX)
		y := e.Y - float64(camY)

		// Flash on hit
		c := enemyColors[e.Archetype]
		if e.Asleep() {
			c = colorAsleep
		}
		if e.HitFlashTicks > 0 {
			c = colorFlash
		}
		ebitenutil.DrawRect(screen, x, y, e.W, e.H, c)

		// Facing marker
		eyeX := x + 2
		if e.FacingRight {
			eyeX = x + e.W - 5
		}
		ebitenutil.DrawRect(screen, eyeX, y+3, 3, 3, colorBG)

		if e.Asleep() {
			ebitenutil.DebugPrintAt(screen, "z z", int(e.CenterX())-9-camX, int(e.Y)-18-camY)
		}
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX, camY int) {
	pl := p.world.Player

	x := pl.X - float64(camX)
	y := pl.Y - float64(camY)

	// Flash when invincible
	c := colorPlayer
	if pl.IsInvincible() && (pl.IframeTicks/4)%2 == 0 {
		c = color.RGBA{255, 255, 255, 200}
	}
	ebitenutil.DrawRect(screen, x, y, pl.W, pl.H, c)

	if pl.Armor {
		ebitenutil.DrawRect(screen, x-1, y-1, pl.W+2, 2, colorArmor)
	}

	// Facing marker
	eyeX := x + 2
	if pl.FacingRight {
		eyeX = x + pl.W - 5
	}
	ebitenutil.DrawRect(screen, eyeX, y+4, 3, 3, colorBG)
}

func (p *Playing) drawProjectiles(screen *ebiten.Image, camX, camY int) {
	for _, pr := range p.world.Projectiles {
		if !pr.Alive {
			continue
		}

		x := pr.CenterX() - float64(camX)
		y := pr.CenterY() - float64(camY)

		// Core plus a short trail back along the velocity
		ebitenutil.DrawRect(screen, x-2, y-2, 4, 4, pr.Color)
		ebitenutil.DrawLine(screen, x, y, x-pr.VX*1.5, y-pr.VY*1.5, pr.Color)
	}
}

func (p *Playing) drawParticles(screen *ebiten.Image, camX, camY int) {
	for _, pt := range p.world.Particles {
		if !pt.Alive {
			continue
		}
		ebitenutil.DrawRect(screen, pt.X-float64(camX), pt.Y-float64(camY), pt.W, pt.H, pt.Color)
	}
}

func (p *Playing) drawEffects(screen *ebiten.Image, camX, camY int) {
	for _, e := range p.world.Effects {
		if !e.Alive {
			continue
		}
		x := int(e.X) - 3*len(e.Text) - camX
		ebitenutil.DebugPrintAt(screen, e.Text, x, int(e.Y)-camY)
	}
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	s := p.stats

	// Hearts
	for i := 0; i < s.MaxHP; i++ {
		c := colorHeartBG
		if i < s.HP {
			c = colorHeart
		}
		ebitenutil.DrawRect(screen, 10+float64(i)*14, 10, 12, 10, c)
	}

	weapon := s.Weapon
	if w, ok := p.cfg.Weapons.Weapons[s.Weapon]; ok {
		weapon = w.Name
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("$%d", s.Money), 10, 24)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Level %d/%d  |  %s  |  Score %d", s.Level, p.cfg.Generation.TerminalLevel, weapon, s.Score), 10, 38)

	// Controls
	ebitenutil.DebugPrintAt(screen,
		"A/D: Move | Space: Jump | LClick: Aim+Fire | X: Fire | E: Talk | ESC: Pause",
		10, sim.ViewHeight-16)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, sim.ViewWidth, sim.ViewHeight, colorOverlay)

	text := "PAUSED\n\nPress ESC to resume\nPress Q to quit to menu"
	ebitenutil.DebugPrintAt(screen, text, sim.ViewWidth/2-60, sim.ViewHeight/2-25)
}

func (p *Playing) drawShopOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, sim.ViewWidth, sim.ViewHeight, colorOverlay)
	if p.shop != nil {
		p.shop.Draw(screen)
	}
	ebitenutil.DebugPrintAt(screen, "ESC: Leave shop", 10, sim.ViewHeight-16)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, sim.ViewWidth, sim.ViewHeight, colorDefeatBG)

	text := fmt.Sprintf("GAME OVER\n\n%s on level %d\nScore: %d\n\nPress Z for menu",
		p.overCause, p.stats.Level, p.stats.Score)
	ebitenutil.DebugPrintAt(screen, text, sim.ViewWidth/2-70, sim.ViewHeight/2-35)
}

func (p *Playing) drawVictoryOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, sim.ViewWidth, sim.ViewHeight, colorVictoryBG)

	text := fmt.Sprintf("VICTORY\n\nThe tower is cleared (%s)\nScore: %d\n\nPress Z for menu",
		p.tier.Name, p.stats.Score)
	ebitenutil.DebugPrintAt(screen, text, sim.ViewWidth/2-80, sim.ViewHeight/2-35)
}

var randState uint32 = 1

func randFloat() float64 {
	randState = randState*1103515245 + 12345
	return float64(randState&0x7fffffff) / float64(0x7fffffff)
}
