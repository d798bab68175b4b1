package systems

import (
	"testing"

	"github.com/automoto/babel/components"
	cfg "github.com/automoto/babel/config"
	"github.com/stretchr/testify/assert"
)

func TestGetAction(t *testing.T) {
	tests := []struct {
		name string
		prev bool
		curr bool
		want components.ActionState
	}{
		{name: "idle", want: components.ActionState{}},
		{name: "just pressed", curr: true, want: components.ActionState{Pressed: true, JustPressed: true}},
		{name: "held", prev: true, curr: true, want: components.ActionState{Pressed: true}},
		{name: "just released", prev: true, want: components.ActionState{JustReleased: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := &components.InputData{}
			input.Previous[cfg.ActionMenuSelect] = tt.prev
			input.Current[cfg.ActionMenuSelect] = tt.curr

			assert.Equal(t, tt.want, GetAction(input, cfg.ActionMenuSelect))
		})
	}
}

func TestControllerTypeFromName(t *testing.T) {
	assert.Equal(t, components.InputPlayStation, controllerTypeFromName("Sony DualSense Wireless Controller"))
	assert.Equal(t, components.InputPlayStation, controllerTypeFromName("PS4 Controller"))
	assert.Equal(t, components.InputXbox, controllerTypeFromName("Xbox Wireless Controller"))
	assert.Equal(t, components.InputXbox, controllerTypeFromName("8BitDo Pro 2"))
}

func TestGetOrCreateInput_Singleton(t *testing.T) {
	e := newTestECS()

	a := getOrCreateInput(e)
	a.Current[cfg.ActionMenuUp] = true

	assert.True(t, getOrCreateInput(e).Current[cfg.ActionMenuUp])
}

func TestApplyInput(t *testing.T) {
	input := &components.InputData{}

	var s inputSnapshot
	s.actions[cfg.ActionMenuDown] = true
	s.method = components.InputXbox
	s.used = true
	applyInput(input, s)

	assert.True(t, GetAction(input, cfg.ActionMenuDown).JustPressed)
	assert.Equal(t, components.InputXbox, input.LastInputMethod)

	// Nothing held keeps the last method
	applyInput(input, inputSnapshot{})
	assert.True(t, GetAction(input, cfg.ActionMenuDown).JustReleased)
	assert.Equal(t, components.InputXbox, input.LastInputMethod)
}

func TestSeedInput_HeldSelectDoesNotActOnFirstTurn(t *testing.T) {
	e := newTestECS()
	input := getOrCreateInput(e)

	var held inputSnapshot
	held.actions[cfg.ActionMenuSelect] = true
	held.method = components.InputKeyboard
	held.used = true

	// Enter from the title screen is still down when the battle starts
	seedInput(input, held)
	StartTurn(e)
	applyInput(input, held)
	UpdateInterface(e)

	turn := GetOrCreateTurn(e)
	assert.Equal(t, 0, turn.Index)
	assert.Equal(t, cfg.Battle.Party[0], GetOrCreateInterface(e).Controller.Turn())
	assert.True(t, GetOrCreateInterface(e).Controller.IsOpen())

	// Releasing and pressing again acts for the first member
	applyInput(input, inputSnapshot{})
	UpdateInterface(e)
	applyInput(input, held)
	UpdateInterface(e)

	assert.Equal(t, 1, turn.Index)
}
