package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/babel/config"
	"github.com/automoto/babel/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BattleScene displays the battlefield with the command menu layer on top
type BattleScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

// NewBattleScene creates a new battle scene
func NewBattleScene() *BattleScene {
	return &BattleScene{}
}

func (bs *BattleScene) Update() {
	bs.once.Do(bs.configure)
	bs.ecs.Update()
}

func (bs *BattleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if bs.ecs == nil {
		return
	}
	bs.ecs.Draw(screen)
}

// Done reports whether the player quit from the pause menu.
func (bs *BattleScene) Done() bool {
	return bs.ecs != nil && systems.QuitRequested(bs.ecs)
}

func (bs *BattleScene) configure() {
	bs.ecs = ecs.NewECS(donburi.NewWorld())

	bs.ecs.AddSystem(systems.UpdateInput)
	bs.ecs.AddSystem(systems.UpdatePause)
	bs.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateInterface))

	// Interface layer draws over the battlefield, banner over everything
	bs.ecs.AddRenderer(cfg.Default, systems.DrawBattlefield)
	bs.ecs.AddRenderer(cfg.Default, systems.DrawInterface)
	bs.ecs.AddRenderer(cfg.HUD, systems.DrawTurnBanner)
	bs.ecs.AddRenderer(cfg.HUD, systems.DrawPause)

	// The key that started the battle may still be down
	systems.SeedInput(bs.ecs)
	systems.StartTurn(bs.ecs)
}
