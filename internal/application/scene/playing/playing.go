// Package playing provides the main gameplay scene. It owns one run's
// simulation world, feeds it input, and layers the pause, shop and
// end-of-run overlays on top; the world itself never sees ebiten.
package playing

import (
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/gauntlet/internal/application/scene"
	"github.com/younwookim/gauntlet/internal/application/state"
	"github.com/younwookim/gauntlet/internal/infrastructure/audio"
	"github.com/younwookim/gauntlet/internal/infrastructure/config"
	"github.com/younwookim/gauntlet/internal/infrastructure/save"
	"github.com/younwookim/gauntlet/internal/sim"
)

const shakeDecay = 0.9

// Playing is the gameplay scene.
type Playing struct {
	cfg   *config.GameConfig
	tier  config.Tier
	world *sim.World
	store *save.Store
	au    *audio.Player
	state state.GameState

	// Latest throttled snapshot, for the HUD.
	stats sim.Stats

	// Feedback
	hitstopTicks int
	shakeX       float64
	shakeY       float64

	// Shop overlay; dropped to nil whenever it needs a rebuild.
	shop *ebitenui.UI

	overCause string
	lastLevel int

	backToMenu func() scene.Scene
}

// New starts a run on the given tier. backToMenu builds the scene to
// hand control back to when the player leaves.
func New(cfg *config.GameConfig, tier config.Tier, store *save.Store, au *audio.Player, backToMenu func() scene.Scene) *Playing {
	p := &Playing{
		cfg:        cfg,
		tier:       tier,
		store:      store,
		au:         au,
		state:      state.StatePlaying,
		lastLevel:  1,
		backToMenu: backToMenu,
	}

	cb := sim.Callbacks{
		GameOver: func(cause string, level int) {
			p.overCause = cause
			p.state = state.StateGameOver
			log.Printf("Run over on level %d: %s", level, cause)
			if err := store.RecordProgress(level, tier.ID); err != nil {
				log.Printf("Failed to record progress: %v", err)
			}
		},
		Victory: func() {
			p.state = state.StateVictory
			log.Printf("Run won on the %s tier", tier.Name)
			if err := store.RecordProgress(cfg.Generation.TerminalLevel, tier.ID); err != nil {
				log.Printf("Failed to record progress: %v", err)
			}
		},
		ShopOpen: func() {
			p.state = state.StateShopping
			p.shop = nil
		},
		UnlockHardest: func() {
			if !store.HardestUnlocked() {
				log.Printf("Hardest tier unlocked")
			}
			if err := store.RecordUnlock(); err != nil {
				log.Printf("Failed to record unlock: %v", err)
			}
		},
		Stats: func(s sim.Stats) { p.stats = s },
	}

	p.world = sim.NewWorld(cfg, tier, cb, nil)
	p.world.Feedback = sim.Feedback{
		Shake: func(strength float64) {
			p.shakeX = strength
			p.shakeY = strength
		},
		Hitstop: func(ticks int) { p.hitstopTicks += ticks },
		Sound:   au.Play,
	}
	p.stats = p.world.Snapshot()
	return p
}

// Update advances whichever layer is active: the world, an overlay,
// or an end-of-run screen. (Implements scene.Scene.)
func (p *Playing) Update() (scene.Scene, error) {
	switch p.state {
	case state.StatePlaying:
		p.updatePlaying()
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			return p.backToMenu(), nil
		}
	case state.StateShopping:
		p.updateShopping()
	case state.StateGameOver, state.StateVictory:
		if inpututil.IsKeyJustPressed(ebiten.KeyZ) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			return p.backToMenu(), nil
		}
	}
	return nil, nil
}

func (p *Playing) updatePlaying() {
	// Check for pause
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.state = state.StatePaused
		return
	}

	// Handle hitstop
	if p.hitstopTicks > 0 {
		p.hitstopTicks--
		return
	}

	p.world.Advance(p.readInput())

	// Decay screen shake
	p.shakeX *= shakeDecay
	p.shakeY *= shakeDecay

	if p.world.Level != p.lastLevel {
		p.lastLevel = p.world.Level
		log.Printf("Level %d", p.world.Level)
	}

	// Talking to the shopkeeper reopens the overlay.
	if p.nearShopkeeper() && confirmJustPressed() {
		p.state = state.StateShopping
		p.shop = nil
	}
}

func (p *Playing) updateShopping() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.state = state.StatePlaying
		return
	}
	if p.shop == nil {
		p.shop = p.buildShopUI()
	}
	p.shop.Update()
}

// readInput gathers this tick's devices into the simulation's input
// struct, translating the pointer into world coordinates.
func (p *Playing) readInput() sim.Input {
	in := sim.Input{
		Left:    ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:    ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Fire:    ebiten.IsKeyPressed(ebiten.KeyX),
		Confirm: ebiten.IsKeyPressed(ebiten.KeyE) || ebiten.IsKeyPressed(ebiten.KeyEnter),
	}

	// Convert mouse screen position to world position
	mx, my := ebiten.CursorPosition()
	in.PointerX = float64(mx) + p.world.CameraX
	in.PointerY = float64(my) + p.world.CameraY
	in.PointerHeld = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if pads := ebiten.GamepadIDs(); len(pads) > 0 {
		id := pads[0]
		in.Axis = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		in.Jump = in.Jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.Fire = in.Fire || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft)
		in.Confirm = in.Confirm || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightRight)
	}
	return in
}

func confirmJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyE) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return true
	}
	for _, id := range ebiten.GamepadIDs() {
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight) {
			return true
		}
	}
	return false
}

// nearShopkeeper reports whether the player stands close enough to
// the shopkeeper to talk.
func (p *Playing) nearShopkeeper() bool {
	sk := p.world.Shopkeeper
	if sk == nil {
		return false
	}
	return p.world.Player.OverlapsRect(sk.X-12, sk.Y-8, sk.W+24, sk.H+16)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	log.Printf("Run started: %s", p.tier.Name)
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	// The world is dropped with the scene; nothing to tear down.
}
