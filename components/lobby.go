package components

import "github.com/yohamta/donburi"

// LobbyPlayer is one roster entry
type LobbyPlayer struct {
	ID    int
	Name  string
	Ready bool
}

// LobbyData stores the pre-match roster and its size policy
type LobbyData struct {
	Players    []LobbyPlayer // join order
	MinPlayers int
	MaxPlayers int

	// Set when a match is started from this lobby
	MatchID string
}

var Lobby = donburi.NewComponentType[LobbyData]()
