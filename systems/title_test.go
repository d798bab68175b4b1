package systems

import (
	"testing"

	cfg "github.com/automoto/babel/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

type fakeSceneChanger struct {
	scenes []interface{}
}

func (f *fakeSceneChanger) ChangeScene(scene interface{}) {
	f.scenes = append(f.scenes, scene)
}

func pressTitle(e *ecs.ECS, system ecs.System, id cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = [cfg.ActionCount]bool{}
	input.Current = [cfg.ActionCount]bool{}
	input.Current[id] = true
	system(e)
}

func TestGetOrCreateTitle_OpensMenu(t *testing.T) {
	e := newTestECS()

	title := GetOrCreateTitle(e)

	assert.True(t, title.Controller.IsOpen())
	assert.Equal(t, len(cfg.Title.MenuItems), title.Controller.Count())
	assert.Equal(t, 0, title.Controller.Selected())
}

func TestUpdateTitle_NewBattle(t *testing.T) {
	e := newTestECS()
	sc := &fakeSceneChanger{}
	system := NewUpdateTitle(sc, func() interface{} { return "battle" })

	pressTitle(e, system, cfg.ActionMenuSelect)

	require.Len(t, sc.scenes, 1)
	assert.Equal(t, "battle", sc.scenes[0])
	assert.False(t, GetOrCreateTitle(e).Controller.IsOpen())
}

func TestUpdateTitle_Quit(t *testing.T) {
	e := newTestECS()
	sc := &fakeSceneChanger{}
	system := NewUpdateTitle(sc, func() interface{} { return "battle" })

	pressTitle(e, system, cfg.ActionMenuUp)
	pressTitle(e, system, cfg.ActionMenuSelect)

	assert.Empty(t, sc.scenes)
	assert.True(t, GetOrCreateTitle(e).QuitRequested)
}
