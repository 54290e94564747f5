package main

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const stickDeadZone = 0.3

// KeyboardInput reads A/D or the arrow keys for movement and Space, W or Up
// for jump. The first connected gamepad works too.
type KeyboardInput struct{}

func (KeyboardInput) Left() bool {
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		return true
	}
	if gid, ok := firstGamepad(); ok {
		return ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal) < -stickDeadZone ||
			ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftLeft)
	}
	return false
}

func (KeyboardInput) Right() bool {
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		return true
	}
	if gid, ok := firstGamepad(); ok {
		return ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal) > stickDeadZone ||
			ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftRight)
	}
	return false
}

// Jump reports the held state; edge detection happens in obj.Control.
func (KeyboardInput) Jump() bool {
	if ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		return true
	}
	if gid, ok := firstGamepad(); ok {
		// StandardGamepadButtonRightBottom is the A / cross button
		return ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
	}
	return false
}

func firstGamepad() (ebiten.GamepadID, bool) {
	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}
