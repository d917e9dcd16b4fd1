// Package controls maps keyboard and gamepad state onto per-player actions.
package controls

import (
	cfg "github.com/automoto/dashrun/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding lists the keys and pad buttons that trigger one action
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Scheme binds every action for one keyboard layout
type Scheme map[cfg.ActionID]Binding

// AnalogDeadzone is the stick deflection (0.0 to 1.0) below which input is ignored
var AnalogDeadzone = 0.25

// Schemes is indexed by cfg.ControlSchemeID
var Schemes [cfg.ControlSchemeCount]Scheme

func init() {
	pad := func(btns ...ebiten.StandardGamepadButton) []ebiten.StandardGamepadButton { return btns }

	Schemes[cfg.ControlSchemeWASD] = Scheme{
		cfg.ActionMoveUp:    {Keys: []ebiten.Key{ebiten.KeyW}, StandardGamepadButtons: pad(ebiten.StandardGamepadButtonLeftTop)},
		cfg.ActionMoveDown:  {Keys: []ebiten.Key{ebiten.KeyS}, StandardGamepadButtons: pad(ebiten.StandardGamepadButtonLeftBottom)},
		cfg.ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyA}, StandardGamepadButtons: pad(ebiten.StandardGamepadButtonLeftLeft)},
		cfg.ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyD}, StandardGamepadButtons: pad(ebiten.StandardGamepadButtonLeftRight)},
		// LB / L1
		cfg.ActionSprint: {Keys: []ebiten.Key{ebiten.KeyShiftLeft}, StandardGamepadButtons: pad(ebiten.StandardGamepadButtonFrontTopLeft)},
		// A / Cross
		cfg.ActionDash: {Keys: []ebiten.Key{ebiten.KeySpace}, StandardGamepadButtons: pad(ebiten.StandardGamepadButtonRightBottom)},
		// Start / Options
		cfg.ActionBack: {Keys: []ebiten.Key{ebiten.KeyEscape}, StandardGamepadButtons: pad(ebiten.StandardGamepadButtonCenterRight)},
	}

	Schemes[cfg.ControlSchemeArrows] = Scheme{
		cfg.ActionMoveUp:    {Keys: []ebiten.Key{ebiten.KeyArrowUp}, StandardGamepadButtons: pad(ebiten.StandardGamepadButtonLeftTop)},
		cfg.ActionMoveDown:  {Keys: []ebiten.Key{ebiten.KeyArrowDown}, StandardGamepadButtons: pad(ebiten.StandardGamepadButtonLeftBottom)},
		cfg.ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyArrowLeft}, StandardGamepadButtons: pad(ebiten.StandardGamepadButtonLeftLeft)},
		cfg.ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyArrowRight}, StandardGamepadButtons: pad(ebiten.StandardGamepadButtonLeftRight)},
		cfg.ActionSprint:    {Keys: []ebiten.Key{ebiten.KeyShiftRight}, StandardGamepadButtons: pad(ebiten.StandardGamepadButtonFrontTopLeft)},
		cfg.ActionDash:      {Keys: []ebiten.Key{ebiten.KeyEnter}, StandardGamepadButtons: pad(ebiten.StandardGamepadButtonRightBottom)},
		cfg.ActionBack:      {Keys: []ebiten.Key{ebiten.KeyEscape}, StandardGamepadButtons: pad(ebiten.StandardGamepadButtonCenterRight)},
	}
}
