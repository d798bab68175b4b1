package components

import (
	"github.com/automoto/babel/menu"
	"github.com/yohamta/donburi"
)

// PauseData stores the pause state and its menu
type PauseData struct {
	IsPaused      bool
	Controller    *menu.Controller
	QuitRequested bool
}

var Pause = donburi.NewComponentType[PauseData]()
