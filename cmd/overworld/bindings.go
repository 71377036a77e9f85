package main

import (
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

var bindings = map[config.ActionID]InputBinding{
	config.ActionJump: {
		Keys: []ebiten.Key{ebiten.KeySpace},
		// A / Cross button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightBottom,
		},
	},
	config.ActionCrouch: {
		Keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyC},
		// Left trigger
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonFrontBottomLeft,
		},
	},
	config.ActionInteract: {
		Keys: []ebiten.Key{ebiten.KeyF},
		// X / Square button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightLeft,
		},
	},
	config.ActionCamRotateLeft: {
		Keys: []ebiten.Key{ebiten.KeyQ},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonFrontTopLeft,
		},
	},
	config.ActionCamRotateRight: {
		Keys: []ebiten.Key{ebiten.KeyE},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonFrontTopRight,
		},
	},
	config.ActionCamModeUp: {
		Keys: []ebiten.Key{ebiten.KeyR},
		// D-pad Up
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftTop,
		},
	},
	config.ActionCamModeDown: {
		Keys: []ebiten.Key{ebiten.KeyT},
		// D-pad Down
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftBottom,
		},
	},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// pollController writes this frame's device state into c.
func pollController(c *components.ControllerData) {
	c.Current = [config.ActionCount]bool{}
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				c.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					c.Current[actionID] = true
				}
			}
		}
	}

	c.MoveX, c.MoveZ = keyboardAxis()
	if c.MoveX == 0 && c.MoveZ == 0 {
		c.MoveX, c.MoveZ = stickAxis()
	}
}

// keyboardAxis reads WASD and the arrow keys. Up is forward.
func keyboardAxis() (x, z float64) {
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		x--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		x++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		z++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		z--
	}
	return x, z
}

// stickAxis reads the left stick of the first standard gamepad. The deadzone
// is applied by the input system.
func stickAxis() (x, z float64) {
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		x = ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		// Stick up reads negative
		z = -ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		return x, z
	}
	return 0, 0
}
