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

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// TitleScene displays the title menu
type TitleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewTitleScene creates a new title scene
func NewTitleScene(sc SceneChanger) *TitleScene {
	return &TitleScene{sceneChanger: sc}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)
	ts.ecs.Update()
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
}

// Done reports whether the player chose to quit.
func (ts *TitleScene) Done() bool {
	return ts.ecs != nil && systems.GetOrCreateTitle(ts.ecs).QuitRequested
}

func (ts *TitleScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())

	createBattleScene := func() interface{} {
		return NewBattleScene()
	}

	ts.ecs.AddSystem(systems.UpdateInput)
	ts.ecs.AddSystem(systems.NewUpdateTitle(ts.sceneChanger, createBattleScene))

	ts.ecs.AddRenderer(cfg.Default, systems.DrawTitle)
}
