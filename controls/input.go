package controls

import (
	"github.com/automoto/dashrun/components"
	cfg "github.com/automoto/dashrun/config"
	"github.com/automoto/dashrun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdatePlayerInput polls each player's keyboard scheme and, if connected,
// the gamepad at the player's roster index.
// Must run BEFORE UpdateMovement in the system order.
func UpdatePlayerInput(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		input.Swap()

		pad, hasPad := gamepadFor(input.PlayerIndex)
		for actionID, binding := range Schemes[input.ControlScheme] {
			for _, key := range binding.Keys {
				if ebiten.IsKeyPressed(key) {
					input.CurrentInput[actionID] = true
				}
			}
			if !hasPad {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(pad, btn) {
					input.CurrentInput[actionID] = true
				}
			}
		}

		if hasPad {
			mergeAnalogStick(input, pad)
		}
	})
}

// BackPressed reports whether any player pressed Back this frame.
func BackPressed(w donburi.World) bool {
	pressed := false
	tags.Player.Each(w, func(entry *donburi.Entry) {
		if components.PlayerInput.Get(entry).JustPressed(cfg.ActionBack) {
			pressed = true
		}
	})
	return pressed
}

func gamepadFor(index int) (ebiten.GamepadID, bool) {
	if index < 0 || index >= len(gamepadIDs) {
		return 0, false
	}
	id := gamepadIDs[index]
	return id, ebiten.IsStandardGamepadLayoutAvailable(id)
}

// mergeAnalogStick folds the left stick into the directional actions
func mergeAnalogStick(input *components.PlayerInputData, pad ebiten.GamepadID) {
	horizontal := ebiten.StandardGamepadAxisValue(pad, ebiten.StandardGamepadAxisLeftStickHorizontal)
	vertical := ebiten.StandardGamepadAxisValue(pad, ebiten.StandardGamepadAxisLeftStickVertical)

	if horizontal < -AnalogDeadzone {
		input.CurrentInput[cfg.ActionMoveLeft] = true
	}
	if horizontal > AnalogDeadzone {
		input.CurrentInput[cfg.ActionMoveRight] = true
	}
	// stick Y grows downward, world Y grows upward
	if vertical < -AnalogDeadzone {
		input.CurrentInput[cfg.ActionMoveUp] = true
	}
	if vertical > AnalogDeadzone {
		input.CurrentInput[cfg.ActionMoveDown] = true
	}
}
