package components

import (
	"github.com/automoto/babel/menu"
	"github.com/yohamta/donburi"
)

// TitleData stores the title screen menu (singleton component)
type TitleData struct {
	Controller    *menu.Controller
	QuitRequested bool
}

// Title is the component type for title screen state
var Title = donburi.NewComponentType[TitleData]()
