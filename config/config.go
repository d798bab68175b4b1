package config

import (
	"image/color"

	"github.com/automoto/babel/menu"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in order.
const (
	Default ecs.LayerID = iota
	HUD
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int // Ticks per second; tweens advance 1/TPS per update
}

// InterfaceConfig contains the command menu panel layout and animation values
type InterfaceConfig struct {
	PanelColor        color.RGBA
	PanelBorderColor  color.RGBA
	HighlightColor    color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA

	PanelX       float64
	PanelY       float64
	PanelWidth   float64
	PanelPadding float64
	ItemHeight   float64
	ItemGap      float64

	// Highlight slide between rows, in seconds
	HighlightDuration float32
	HighlightEase     ease.TweenFunc

	// Use clamp instead of wrap-around at the ends of a menu
	ClampSelection bool
}

// BannerConfig contains the turn banner values
type BannerConfig struct {
	TextColor  color.RGBA
	BackColor  color.RGBA
	Y          float64
	Height     float64
	FadeIn     float32 // seconds
	Format     string  // fmt verb receives the acting member's name
	EmptyLabel string  // shown when no one is acting
}

// BattleConfig contains the party and the menu opened at the start of each turn
type BattleConfig struct {
	Party    []string
	RootMenu string
}

// PauseConfig contains the pause overlay values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuItems         []menu.Item
}

// TitleConfig contains title screen configuration values
type TitleConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuItems         []menu.Item
}

// Title menu actions
const (
	TitleNewBattle = "new-battle"
	TitleQuit      = "quit"
)

// Pause menu actions
const (
	PauseResume = "resume"
	PauseQuit   = "quit"
)

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	LogLevel  string
	SkipTitle bool // Skip the title screen and go directly to battle
}

// Global configuration instances
var C *Config
var Interface InterfaceConfig
var Banner BannerConfig
var Battle BattleConfig
var Pause PauseConfig
var Title TitleConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Navy         = color.RGBA{R: 15, G: 25, B: 50, A: 230}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Babel",
		TPS:    60,
	}

	Interface = InterfaceConfig{
		PanelColor:        Navy,
		PanelBorderColor:  LightBlue,
		HighlightColor:    DarkBlue,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,

		PanelX:       16,
		PanelY:       200,
		PanelWidth:   160,
		PanelPadding: 8,
		ItemHeight:   20,
		ItemGap:      4,

		HighlightDuration: 0.12,
		HighlightEase:     ease.OutQuad,
	}

	Banner = BannerConfig{
		TextColor:  Orange,
		BackColor:  BlackOverlay,
		Y:          16,
		Height:     28,
		FadeIn:     0.4,
		Format:     "%s's turn",
		EmptyLabel: "",
	}

	Battle = BattleConfig{
		Party:    []string{"Aria", "Borin", "Cael"},
		RootMenu: "command",
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuItems: []menu.Item{
			{Label: "Resume", Action: PauseResume},
			{Label: "Quit", Action: PauseQuit},
		},
	}

	Title = TitleConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            90,
		MenuStartY:        160,
		MenuItemHeight:    24,
		MenuItemGap:       12,
		MenuItems: []menu.Item{
			{Label: "New Battle", Action: TitleNewBattle},
			{Label: "Quit", Action: TitleQuit},
		},
	}

	Debug = DebugConfig{
		LogLevel: "info",
	}
}

// ItemY returns the top of the row at index i inside the command panel.
func (ic InterfaceConfig) ItemY(i int) float64 {
	return ic.PanelY + ic.PanelPadding + float64(i)*(ic.ItemHeight+ic.ItemGap)
}

// TickSeconds returns the duration of one update tick.
func (c *Config) TickSeconds() float32 {
	if c.TPS <= 0 {
		return 0
	}
	return 1 / float32(c.TPS)
}
