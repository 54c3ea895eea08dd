package playing

import (
	"fmt"
	"image/color"
	"sort"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/gauntlet/internal/application/state"
	"github.com/younwookim/gauntlet/internal/sim"
)

// shopEntry is one row of the purchase overlay.
type shopEntry struct {
	id       string
	label    string
	disabled bool
}

// catalog lists the purchasable weapons and then the items in a stable
// order, with labels reflecting what buying each would do right now.
func (p *Playing) catalog() []shopEntry {
	pl := p.world.Player
	var entries []shopEntry

	weaponIDs := make([]string, 0, len(p.cfg.Weapons.Weapons))
	for id, w := range p.cfg.Weapons.Weapons {
		// The free starter is not merchandise
		if w.Price > 0 {
			weaponIDs = append(weaponIDs, id)
		}
	}
	sort.Strings(weaponIDs)
	for _, id := range weaponIDs {
		w := p.cfg.Weapons.Weapons[id]
		switch {
		case pl.Weapon == id:
			entries = append(entries, shopEntry{id: id, label: w.Name + " (equipped)", disabled: true})
		case pl.Owned[id]:
			entries = append(entries, shopEntry{id: id, label: w.Name + " (equip)"})
		default:
			entries = append(entries, shopEntry{id: id, label: fmt.Sprintf("%s  $%d", w.Name, w.Price)})
		}
	}

	itemIDs := make([]string, 0, len(p.cfg.Weapons.Items))
	for id := range p.cfg.Weapons.Items {
		itemIDs = append(itemIDs, id)
	}
	sort.Strings(itemIDs)
	for _, id := range itemIDs {
		item := p.cfg.Weapons.Items[id]
		e := shopEntry{id: id, label: fmt.Sprintf("%s  $%d", item.Name, item.Price)}
		switch item.Kind {
		case "armor":
			if pl.Armor {
				e.label = item.Name + " (worn)"
				e.disabled = true
			}
		case "elixir":
			if pl.Health >= pl.MaxHealth {
				e.disabled = true
			}
		}
		entries = append(entries, e)
	}
	return entries
}

// buildShopUI lays out the purchase overlay: the player's balance, one
// button per catalog entry, and a leave button. Any successful purchase
// drops the tree so the next update rebuilds it with fresh labels.
func (p *Playing) buildShopUI() *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x10, G: 0x10, B: 0x1e, A: 230})
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
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 14, Bottom: 14, Left: 24, Right: 24}),
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
		widget.TextOpts.Text("SHOP", &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	panel.AddChild(title)

	balance := widget.NewText(
		widget.TextOpts.Text(fmt.Sprintf("$%d", p.world.Player.Money), &face, color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	panel.AddChild(balance)

	for _, entry := range p.catalog() {
		entry := entry
		btn := widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg, Disabled: btnDisabledImg}),
			widget.ButtonOpts.Text(entry.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
				Stretch:  true,
			})),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if p.world.Purchase(entry.id) {
					p.shop = nil
				}
			}),
		)
		if entry.disabled {
			btn.GetWidget().Disabled = true
		}
		panel.AddChild(btn)
	}

	leaveBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Leave", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			p.state = state.StatePlaying
		}),
	)
	panel.AddChild(leaveBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
