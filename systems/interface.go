package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/babel/components"
	cfg "github.com/automoto/babel/config"
	"github.com/automoto/babel/fonts"
	"github.com/automoto/babel/log"
	"github.com/automoto/babel/menu"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// layerView draws what the menu controller tells it to. It keeps its state
// on the interface entity so systems and renderers can read it.
type layerView struct {
	world donburi.World
}

func (v *layerView) entry() *donburi.Entry {
	entry, ok := components.Interface.First(v.world)
	if !ok {
		return nil
	}
	return entry
}

func (v *layerView) ShowItems(items []menu.Item) {
	entry := v.entry()
	if entry == nil {
		return
	}
	components.Interface.Get(entry).Items = items

	// A fresh menu starts on its first row without sliding
	hl := components.Highlight.Get(entry)
	*hl = components.HighlightData{Y: float32(cfg.Interface.ItemY(0))}
}

func (v *layerView) AnimateSelection(from, to int) {
	entry := v.entry()
	if entry == nil {
		return
	}
	hl := components.Highlight.Get(entry)

	// Start from where the bar is now so quick presses chain smoothly
	begin := hl.Y
	if !hl.Animating {
		begin = float32(cfg.Interface.ItemY(from))
	}
	end := float32(cfg.Interface.ItemY(to))

	hl.Tween = gween.New(begin, end, cfg.Interface.HighlightDuration, cfg.Interface.HighlightEase)
	hl.Y = begin
	hl.From = from
	hl.To = to
	hl.Animating = true
	log.Trace("highlight %d -> %d", from, to)
}

func (v *layerView) ShowTurn(name string) {
	entry := v.entry()
	if entry == nil {
		return
	}
	banner := components.Banner.Get(entry)
	banner.Label = turnLabel(name)
	banner.Alpha = 0
	banner.Tween = gween.New(0, 1, cfg.Banner.FadeIn, ease.Linear)
}

func (v *layerView) HideItems() {
	entry := v.entry()
	if entry == nil {
		return
	}
	components.Interface.Get(entry).Items = nil

	hl := components.Highlight.Get(entry)
	hl.Tween = nil
	hl.Animating = false
}

func turnLabel(name string) string {
	if name == "" {
		return cfg.Banner.EmptyLabel
	}
	return fmt.Sprintf(cfg.Banner.Format, name)
}

// GetOrCreateInterface returns the singleton Interface component, creating if needed
func GetOrCreateInterface(e *ecs.ECS) *components.InterfaceData {
	if _, ok := components.Interface.First(e.World); !ok {
		var opts []menu.Option
		if cfg.Interface.ClampSelection {
			opts = append(opts, menu.WithBoundary(menu.Clamp))
		}

		ent := e.World.Entry(e.World.Create(components.Interface, components.Highlight, components.Banner))
		components.Interface.SetValue(ent, components.InterfaceData{
			Controller: menu.NewController(&layerView{world: e.World}, opts...),
		})
	}

	ent, _ := components.Interface.First(e.World)
	return components.Interface.Get(ent)
}

// OpenMenu shows the named menu, remembering the open one for BackMenu.
// It reports false when no menu has that name.
func OpenMenu(e *ecs.ECS, name string) bool {
	items, ok := cfg.Menus[name]
	if !ok {
		log.Warn("menu %q not found", name)
		return false
	}

	ui := GetOrCreateInterface(e)
	if ui.Controller.IsOpen() && ui.MenuName != "" {
		ui.History = append(ui.History, ui.MenuName)
	}
	ui.MenuName = name
	ui.Controller.InitMenu(items)
	log.Debug("opened menu %s (%d items)", name, len(items))
	return true
}

// BackMenu reopens the parent of the open menu. At the root it does nothing.
func BackMenu(e *ecs.ECS) {
	ui := GetOrCreateInterface(e)
	if len(ui.History) == 0 {
		return
	}

	parent := ui.History[len(ui.History)-1]
	ui.History = ui.History[:len(ui.History)-1]
	ui.MenuName = parent
	ui.Controller.InitMenu(cfg.Menus[parent])
	log.Debug("back to menu %s", parent)
}

// CloseInterface closes the open menu and forgets its parents.
func CloseInterface(e *ecs.ECS) {
	ui := GetOrCreateInterface(e)
	ui.Controller.CloseMenu()
	ui.MenuName = ""
	ui.History = nil
}

// SelectedItem returns the highlighted item of the open menu.
func SelectedItem(e *ecs.ECS) (menu.Item, bool) {
	ui := GetOrCreateInterface(e)
	sel := ui.Controller.Selected()
	if !ui.Controller.IsOpen() || sel < 0 || sel >= len(ui.Items) {
		return menu.Item{}, false
	}
	return ui.Items[sel], true
}

// UpdateInterface advances the layer's tweens and routes menu input into the
// controller. Must run AFTER UpdateInput.
func UpdateInterface(e *ecs.ECS) {
	ui := GetOrCreateInterface(e)
	advanceTweens(e, cfg.C.TickSeconds())

	if !ui.Controller.IsOpen() {
		return
	}

	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		ui.Controller.Move(-1)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		ui.Controller.Move(+1)
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		activateSelected(e)
		return
	}
	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		BackMenu(e)
	}
}

// activateSelected runs the action of the highlighted item
func activateSelected(e *ecs.ECS) {
	item, ok := SelectedItem(e)
	if !ok {
		return
	}

	if sub, ok := cfg.SubmenuName(item.Action); ok {
		OpenMenu(e, sub)
		return
	}
	if item.Action == cfg.ActionBack {
		BackMenu(e)
		return
	}

	ui := GetOrCreateInterface(e)
	log.Info("%s chose %s", ui.Controller.Turn(), item.Label)
	EndTurn(e)
}

func advanceTweens(e *ecs.ECS, dt float32) {
	entry, ok := components.Interface.First(e.World)
	if !ok {
		return
	}

	hl := components.Highlight.Get(entry)
	if hl.Animating && hl.Tween != nil {
		y, finished := hl.Tween.Update(dt)
		hl.Y = y
		if finished {
			hl.Animating = false
			hl.Tween = nil
		}
	}

	banner := components.Banner.Get(entry)
	if banner.Tween != nil {
		alpha, finished := banner.Tween.Update(dt)
		banner.Alpha = alpha
		if finished {
			banner.Tween = nil
		}
	}
}

// DrawInterface renders the command panel, the highlight bar and the items.
func DrawInterface(e *ecs.ECS, screen *ebiten.Image) {
	ui := GetOrCreateInterface(e)
	if !ui.Controller.IsOpen() {
		return
	}
	ic := cfg.Interface

	rows := len(ui.Items)
	height := ic.PanelPadding*2 + float64(rows)*(ic.ItemHeight+ic.ItemGap) - ic.ItemGap
	if rows == 0 {
		height = ic.PanelPadding * 2
	}

	vector.FillRect(screen,
		float32(ic.PanelX), float32(ic.PanelY),
		float32(ic.PanelWidth), float32(height),
		ic.PanelColor, false)
	vector.StrokeRect(screen,
		float32(ic.PanelX), float32(ic.PanelY),
		float32(ic.PanelWidth), float32(height),
		1, ic.PanelBorderColor, false)

	if rows == 0 {
		return
	}

	entry, _ := components.Interface.First(e.World)
	hl := components.Highlight.Get(entry)
	vector.FillRect(screen,
		float32(ic.PanelX+2), hl.Y,
		float32(ic.PanelWidth-4), float32(ic.ItemHeight),
		ic.HighlightColor, false)

	face := fonts.Bold.Get()
	selected := ui.Controller.Selected()
	for i, item := range ui.Items {
		textColor := ic.TextColorNormal
		if i == selected {
			textColor = ic.TextColorSelected
		}
		x := int(ic.PanelX + ic.PanelPadding*2)
		y := int(ic.ItemY(i) + ic.ItemHeight - 5)
		text.Draw(screen, item.Label, face, x, y, textColor)
	}

	input := getOrCreateInput(e)
	hint := getMenuHint(input.LastInputMethod)
	hintWidth := len(hint) * 5
	hintX := (cfg.C.Width - hintWidth) / 2
	text.Draw(screen, hint, fonts.Small.Get(), hintX, cfg.C.Height-8, ic.TextColorNormal)
}

// DrawTurnBanner renders whose turn it is at the top of the screen.
func DrawTurnBanner(e *ecs.ECS, screen *ebiten.Image) {
	GetOrCreateInterface(e)
	entry, _ := components.Interface.First(e.World)
	banner := components.Banner.Get(entry)
	if banner.Label == "" {
		return
	}

	bc := cfg.Banner
	vector.FillRect(screen,
		0, float32(bc.Y),
		float32(cfg.C.Width), float32(bc.Height),
		fade(bc.BackColor, banner.Alpha), false)

	face := fonts.Banner.Get()
	textWidth := len(banner.Label) * 11
	x := (cfg.C.Width - textWidth) / 2
	y := int(bc.Y + bc.Height - 7)
	text.Draw(screen, banner.Label, face, x, y, fade(bc.TextColor, banner.Alpha))
}

// fade scales a color by alpha, keeping it premultiplied.
func fade(c color.RGBA, alpha float32) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Navigate   Cross: Select   Circle: Back"
	case components.InputXbox:
		return "D-Pad: Navigate   A: Select   B: Back"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Back"
}
