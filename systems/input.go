package systems

import (
	"strings"

	"github.com/automoto/babel/components"
	cfg "github.com/automoto/babel/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// inputSnapshot is the raw input read during one tick.
type inputSnapshot struct {
	actions [cfg.ActionCount]bool
	method  components.InputMethod
	used    bool
}

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdateInterface in the system order.
func UpdateInput(e *ecs.ECS) {
	applyInput(getOrCreateInput(e), pollInput())
}

// SeedInput records what is held when a scene starts. Keys still down from
// the previous scene (the Enter that chose "New Battle") are then seen as
// held, not as new presses, on the scene's first update.
func SeedInput(e *ecs.ECS) {
	seedInput(getOrCreateInput(e), pollInput())
}

func applyInput(input *components.InputData, s inputSnapshot) {
	// Swap buffers: current becomes previous
	input.Previous = input.Current
	input.Current = s.actions
	if s.used {
		input.LastInputMethod = s.method
	}
}

func seedInput(input *components.InputData, s inputSnapshot) {
	applyInput(input, s)
	input.Previous = input.Current
}

func pollInput() inputSnapshot {
	var s inputSnapshot

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	analogUp, analogDown, analogGpID := getAnalogStickState(gamepadIDs)

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				s.actions[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					s.actions[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Merge analog stick into menu navigation
	if analogUp {
		s.actions[cfg.ActionMenuUp] = true
		gamepadUsed = true
		activeGamepadID = analogGpID
	}
	if analogDown {
		s.actions[cfg.ActionMenuDown] = true
		gamepadUsed = true
		activeGamepadID = analogGpID
	}

	// Gamepad takes priority if both used
	if gamepadUsed {
		s.method = getControllerType(activeGamepadID)
		s.used = true
	} else if keyboardUsed {
		s.method = components.InputKeyboard
		s.used = true
	}
	return s
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	method := controllerTypeFromName(ebiten.GamepadName(gpID))
	controllerTypeCache[gpID] = method
	return method
}

func controllerTypeFromName(name string) components.InputMethod {
	name = strings.ToLower(name)
	for _, s := range []string{"ps4", "ps5", "playstation", "dualshock", "dualsense"} {
		if strings.Contains(name, s) {
			return components.InputPlayStation
		}
	}
	// Default gamepad to Xbox-style
	return components.InputXbox
}

// getAnalogStickState reads the left stick's vertical axis from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (up, down bool, activeGpID ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if vertical < -deadzone {
			up = true
			activeGpID = gpID
		}
		if vertical > deadzone {
			down = true
			activeGpID = gpID
		}
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		// Zero-value InputData is correct (all bools false)
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
