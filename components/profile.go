package components

import (
	"github.com/automoto/dashrun/shared/armory"
	"github.com/yohamta/donburi"
)

// ProfileData is the player's identity and stat block
type ProfileData struct {
	ID       int
	Name     string
	Stats    armory.Profile
	Equipped []string // utilities applied this match, in order
}

var Profile = donburi.NewComponentType[ProfileData]()
