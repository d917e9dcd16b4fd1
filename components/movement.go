package components

import (
	"github.com/automoto/dashrun/shared/movement"
	"github.com/yohamta/donburi"
)

// MovementData wraps the character controller owned by a player entity.
type MovementData struct {
	Controller *movement.Controller
	LastInput  movement.InputSnapshot // snapshot consumed on the latest tick
}

var Movement = donburi.NewComponentType[MovementData]()
