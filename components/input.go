package components

import (
	cfg "github.com/automoto/dashrun/config"
	"github.com/yohamta/donburi"
)

// PlayerInputData stores per-player input state.
// JustPressed is computed on demand by comparing the two frames.
type PlayerInputData struct {
	PlayerIndex   int                   // roster position
	ControlScheme cfg.ControlSchemeID   // keyboard layout bound to this player
	CurrentInput  [cfg.ActionCount]bool // Current frame's Pressed state
	PreviousInput [cfg.ActionCount]bool // Previous frame's Pressed state
}

// Swap moves the current frame into the previous slot and clears current.
func (p *PlayerInputData) Swap() {
	p.PreviousInput = p.CurrentInput
	p.CurrentInput = [cfg.ActionCount]bool{}
}

func (p *PlayerInputData) Pressed(a cfg.ActionID) bool {
	return p.CurrentInput[a]
}

func (p *PlayerInputData) JustPressed(a cfg.ActionID) bool {
	return p.CurrentInput[a] && !p.PreviousInput[a]
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
