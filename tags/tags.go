package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Lobby  = donburi.NewTag().SetName("Lobby")
)
