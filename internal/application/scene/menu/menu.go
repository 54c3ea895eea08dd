// Package menu provides the title scene: difficulty selection and the
// record of the player's best run.
package menu

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/gauntlet/internal/application/scene"
	"github.com/younwookim/gauntlet/internal/application/scene/playing"
	"github.com/younwookim/gauntlet/internal/infrastructure/audio"
	"github.com/younwookim/gauntlet/internal/infrastructure/config"
	"github.com/younwookim/gauntlet/internal/infrastructure/save"
	"github.com/younwookim/gauntlet/internal/sim"
)

var colorBG = color.RGBA{26, 26, 46, 255}

// Menu is the title scene.
type Menu struct {
	src   *config.Source
	store *save.Store
	au    *audio.Player

	ui   *ebitenui.UI
	next scene.Scene
}

// New creates the title scene. Runs started from here read the
// source's current config snapshot, so table reloads apply to the
// next run, never a running one.
func New(src *config.Source, store *save.Store, au *audio.Player) *Menu {
	m := &Menu{src: src, store: store, au: au}
	m.ui = m.buildUI()
	return m
}

// Update pumps the selection UI and performs the scene switch queued
// by a difficulty button. (Implements scene.Scene.)
func (m *Menu) Update() (scene.Scene, error) {
	if m.next != nil {
		next := m.next
		m.next = nil
		return next, nil
	}
	m.ui.Update()
	return nil, nil
}

// Draw renders the title screen.
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	m.ui.Draw(screen)

	ebitenutil.DebugPrintAt(screen,
		"A/D: Move | Space: Jump | LClick: Aim+Fire | E: Talk",
		10, sim.ViewHeight-16)
}

// OnEnter is called when entering this scene
func (m *Menu) OnEnter() {}

// OnExit is called when leaving this scene
func (m *Menu) OnExit() {}

// startRun queues the switch into a run on the given tier. Locked
// tiers stay inert until the save says otherwise.
func (m *Menu) startRun(tierID string) {
	cfg := m.src.Current()
	tier, ok := cfg.Difficulties.Tier(tierID)
	if !ok {
		return
	}
	if tier.Locked && !m.store.HardestUnlocked() {
		m.au.Play("denied")
		return
	}

	src, store, au := m.src, m.store, m.au
	m.next = playing.New(cfg, tier, store, au, func() scene.Scene {
		return New(src, store, au)
	})
}

func (m *Menu) buildUI() *ebitenui.UI {
	cfg := m.src.Current()

	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x10, G: 0x10, B: 0x1e, A: 220})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x3c, A: 255})
	btnDisabledImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x28, A: 255})

	// Create a text.Face from the built-in basic font
	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{
		Idle:     color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Disabled: color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff},
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(sim.ViewWidth/3, sim.ViewHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	title := widget.NewText(
		widget.TextOpts.Text("G A U N T L E T", &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	panel.AddChild(title)

	progress := widget.NewText(
		widget.TextOpts.Text(m.progressLine(), &face, color.NRGBA{R: 0xaa, G: 0xaa, B: 0xc0, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	panel.AddChild(progress)

	for _, id := range cfg.Difficulties.Order {
		tier, ok := cfg.Difficulties.Tier(id)
		if !ok {
			continue
		}

		locked := tier.Locked && !m.store.HardestUnlocked()
		label := tier.Name
		if locked {
			label = tier.Name + " (locked)"
		}

		id := id
		btn := widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg, Disabled: btnDisabledImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
				Stretch:  true,
			})),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				m.startRun(id)
			}),
		)
		if locked {
			btn.GetWidget().Disabled = true
		}
		panel.AddChild(btn)
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func (m *Menu) progressLine() string {
	d := m.store.Data()
	if d.BestLevel <= 0 {
		return "No runs recorded"
	}
	if d.BestTier == "" {
		return fmt.Sprintf("Best: level %d", d.BestLevel)
	}
	return fmt.Sprintf("Best: level %d (%s)", d.BestLevel, d.BestTier)
}
