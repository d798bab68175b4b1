package systems

import (
	"github.com/automoto/babel/components"
	cfg "github.com/automoto/babel/config"
	"github.com/automoto/babel/fonts"
	"github.com/automoto/babel/log"
	"github.com/automoto/babel/menu"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateTitle creates an UpdateTitle system with scene transition capability
func NewUpdateTitle(sceneChanger SceneChanger, createBattleScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		title := GetOrCreateTitle(e)
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			title.Controller.Move(-1)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			title.Controller.Move(+1)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			sel := title.Controller.Selected()
			if sel < 0 || sel >= len(cfg.Title.MenuItems) {
				return
			}
			switch cfg.Title.MenuItems[sel].Action {
			case cfg.TitleNewBattle:
				log.Info("starting battle")
				title.Controller.CloseMenu()
				sceneChanger.ChangeScene(createBattleScene())
			case cfg.TitleQuit:
				title.QuitRequested = true
			}
		}
	}
}

// DrawTitle renders the title screen
func DrawTitle(e *ecs.ECS, screen *ebiten.Image) {
	title := GetOrCreateTitle(e)
	tc := cfg.Title

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		tc.BackgroundColor,
		false,
	)

	name := "BABEL"
	nameWidth := len(name) * 14 // Approximate width for the banner face
	text.Draw(screen, name, fonts.Banner.Get(), int((width-float64(nameWidth))/2), int(tc.TitleY), tc.TitleColor)

	menuFont := fonts.Bold.Get()
	for i, item := range tc.MenuItems {
		y := tc.MenuStartY + float64(i)*(tc.MenuItemHeight+tc.MenuItemGap)

		textColor := tc.TextColorNormal
		if i == title.Controller.Selected() {
			textColor = tc.TextColorSelected
		}

		textWidth := len(item.Label) * 9
		x := int((width - float64(textWidth)) / 2)
		text.Draw(screen, item.Label, menuFont, x, int(y)+int(tc.MenuItemHeight), textColor)
	}

	input := getOrCreateInput(e)
	hint := getMenuHint(input.LastInputMethod)
	hintWidth := len(hint) * 5
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, hint, fonts.Small.Get(), hintX, int(height)-8, tc.TextColorNormal)
}

// GetOrCreateTitle returns the singleton Title component, creating if needed.
// The title menu opens as soon as it is created.
func GetOrCreateTitle(e *ecs.ECS) *components.TitleData {
	if _, ok := components.Title.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Title))
		c := menu.NewController(nil)
		c.InitMenu(cfg.Title.MenuItems)
		components.Title.SetValue(ent, components.TitleData{Controller: c})
	}

	ent, _ := components.Title.First(e.World)
	return components.Title.Get(ent)
}
