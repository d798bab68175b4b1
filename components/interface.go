package components

import (
	"github.com/automoto/babel/menu"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// InterfaceData stores the command menu layer state (singleton component)
type InterfaceData struct {
	Controller *menu.Controller
	MenuName   string      // Name of the open menu, empty when closed
	Items      []menu.Item // Items last shown by the controller
	History    []string    // Parent menus, innermost last
}

// HighlightData stores the selection bar position and its slide tween
type HighlightData struct {
	Tween     *gween.Tween
	Y         float32 // Current top of the bar
	From      int
	To        int
	Animating bool
}

// BannerData stores the turn banner text and its fade tween
type BannerData struct {
	Label string
	Tween *gween.Tween
	Alpha float32 // 0.0 - 1.0
}

var Interface = donburi.NewComponentType[InterfaceData]()
var Highlight = donburi.NewComponentType[HighlightData]()
var Banner = donburi.NewComponentType[BannerData]()
