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

// UpdatePause handles pause toggle and menu navigation.
// This system should run AFTER UpdateInput but BEFORE the interface layer.
func UpdatePause(e *ecs.ECS) {
	pause := GetOrCreatePause(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionPause).JustPressed {
		if pause.IsPaused {
			Resume(e)
		} else {
			Pause(e)
		}
		consumeInput(input)
		return
	}

	// Only process menu input while paused
	if !pause.IsPaused {
		return
	}

	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		pause.Controller.Move(-1)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		pause.Controller.Move(+1)
	}
	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		Resume(e)
		consumeInput(input)
		return
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		sel := pause.Controller.Selected()
		if sel < 0 || sel >= len(cfg.Pause.MenuItems) {
			return
		}
		switch cfg.Pause.MenuItems[sel].Action {
		case cfg.PauseResume:
			Resume(e)
		case cfg.PauseQuit:
			log.Info("quit requested from pause menu")
			pause.QuitRequested = true
		}
		consumeInput(input)
	}
}

// consumeInput marks every held action as already seen so systems running
// later in the same tick don't react to the press that closed the menu.
func consumeInput(input *components.InputData) {
	input.Previous = input.Current
}

// Pause opens the pause menu on its first item.
func Pause(e *ecs.ECS) {
	pause := GetOrCreatePause(e)
	pause.IsPaused = true
	pause.Controller.InitMenu(cfg.Pause.MenuItems)
}

// Resume closes the pause menu.
func Resume(e *ecs.ECS) {
	pause := GetOrCreatePause(e)
	pause.IsPaused = false
	pause.Controller.CloseMenu()
}

// DrawPause renders the pause overlay and menu.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	items := cfg.Pause.MenuItems
	totalMenuHeight := float64(len(items)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2

	fontFace := fonts.Bold.Get()
	for i, item := range items {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if i == pause.Controller.Selected() {
			textColor = cfg.Pause.TextColorSelected
		}

		// Center text horizontally (approximate width for the bold face)
		textWidth := len(item.Label) * 9
		x := int((width - float64(textWidth)) / 2)

		text.Draw(screen, item.Label, fontFace, x, int(y)+int(cfg.Pause.MenuItemHeight), textColor)
	}
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// QuitRequested reports whether the player chose to quit.
func QuitRequested(e *ecs.ECS) bool {
	return GetOrCreatePause(e).QuitRequested
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			// The pause list has no highlight animation
			Controller: menu.NewController(nil),
		})
	}

	ent, _ := components.Pause.First(e.World)
	return components.Pause.Get(ent)
}
