package systems

import (
	"testing"

	cfg "github.com/automoto/babel/config"
	"github.com/automoto/babel/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

// pressPause runs one pause update with only the given action newly pressed.
func pressPause(e *ecs.ECS, id cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = [cfg.ActionCount]bool{}
	input.Current = [cfg.ActionCount]bool{}
	input.Current[id] = true
	UpdatePause(e)
}

func TestUpdatePause_Toggle(t *testing.T) {
	e := newTestECS()
	pause := GetOrCreatePause(e)
	require.Equal(t, menu.Closed, pause.Controller.State())

	pressPause(e, cfg.ActionPause)
	assert.True(t, pause.IsPaused)
	assert.Equal(t, 0, pause.Controller.Selected())
	assert.Equal(t, len(cfg.Pause.MenuItems), pause.Controller.Count())

	pressPause(e, cfg.ActionPause)
	assert.False(t, pause.IsPaused)
	assert.Equal(t, menu.Closed, pause.Controller.State())
}

func TestUpdatePause_Navigation(t *testing.T) {
	e := newTestECS()
	Pause(e)
	pause := GetOrCreatePause(e)

	pressPause(e, cfg.ActionMenuUp)
	assert.Equal(t, len(cfg.Pause.MenuItems)-1, pause.Controller.Selected())

	pressPause(e, cfg.ActionMenuDown)
	assert.Equal(t, 0, pause.Controller.Selected())
}

func TestUpdatePause_SelectResume(t *testing.T) {
	e := newTestECS()
	Pause(e)

	pressPause(e, cfg.ActionMenuSelect)

	assert.False(t, GetOrCreatePause(e).IsPaused)
	assert.False(t, QuitRequested(e))
	assert.False(t, GetAction(getOrCreateInput(e), cfg.ActionMenuSelect).JustPressed)
}

func TestResumeDoesNotLeakSelectToBattleMenu(t *testing.T) {
	e := newTestECS()
	StartTurn(e)
	Pause(e)

	pressPause(e, cfg.ActionMenuSelect)
	WithPauseCheck(UpdateInterface)(e)

	ui := GetOrCreateInterface(e)
	assert.Equal(t, cfg.Battle.Party[0], ui.Controller.Turn())
	assert.Equal(t, 0, GetOrCreateTurn(e).Index)
}

func TestUpdatePause_SelectQuit(t *testing.T) {
	e := newTestECS()
	Pause(e)

	pressPause(e, cfg.ActionMenuDown)
	pressPause(e, cfg.ActionMenuSelect)

	assert.True(t, QuitRequested(e))
}

func TestUpdatePause_BackResumes(t *testing.T) {
	e := newTestECS()
	Pause(e)

	pressPause(e, cfg.ActionMenuBack)

	assert.False(t, GetOrCreatePause(e).IsPaused)
}

func TestUpdatePause_IgnoresMenuInputWhenRunning(t *testing.T) {
	e := newTestECS()
	pause := GetOrCreatePause(e)

	pressPause(e, cfg.ActionMenuSelect)

	assert.False(t, pause.IsPaused)
	assert.Equal(t, menu.NoSelection, pause.Controller.Selected())
}

func TestWithPauseCheck(t *testing.T) {
	e := newTestECS()
	calls := 0
	system := WithPauseCheck(func(*ecs.ECS) { calls++ })

	system(e)
	Pause(e)
	system(e)
	Resume(e)
	system(e)

	assert.Equal(t, 2, calls)
}

func TestPauseKeepsBattleMenu(t *testing.T) {
	e := newTestECS()
	StartTurn(e)
	ui := GetOrCreateInterface(e)
	ui.Controller.Move(+1)

	Pause(e)
	WithPauseCheck(UpdateInterface)(e)
	Resume(e)

	assert.True(t, ui.Controller.IsOpen())
	assert.Equal(t, 1, ui.Controller.Selected())
	assert.Equal(t, cfg.Battle.Party[0], ui.Controller.Turn())
}
