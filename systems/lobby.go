package systems

import (
	"fmt"
	"slices"

	"github.com/automoto/dashrun/components"
	"github.com/google/uuid"
)

// InitLobby resets a lobby to an empty roster with the given size policy
func InitLobby(lobby *components.LobbyData, minPlayers, maxPlayers int) {
	lobby.Players = lobby.Players[:0]
	lobby.MinPlayers = minPlayers
	lobby.MaxPlayers = maxPlayers
	lobby.MatchID = ""
}

func findPlayer(lobby *components.LobbyData, id int) int {
	return slices.IndexFunc(lobby.Players, func(p components.LobbyPlayer) bool {
		return p.ID == id
	})
}

// JoinLobby adds a not-ready player. It refuses when the lobby is full or
// the id is already present.
func JoinLobby(lobby *components.LobbyData, id int, name string) bool {
	if len(lobby.Players) >= lobby.MaxPlayers || findPlayer(lobby, id) >= 0 {
		return false
	}
	lobby.Players = append(lobby.Players, components.LobbyPlayer{ID: id, Name: name})
	return true
}

// LeaveLobby removes a player, keeping the join order of the rest
func LeaveLobby(lobby *components.LobbyData, id int) bool {
	i := findPlayer(lobby, id)
	if i < 0 {
		return false
	}
	lobby.Players = slices.Delete(lobby.Players, i, i+1)
	return true
}

// SetReady sets a player's ready flag
func SetReady(lobby *components.LobbyData, id int, ready bool) bool {
	i := findPlayer(lobby, id)
	if i < 0 {
		return false
	}
	lobby.Players[i].Ready = ready
	return true
}

// ToggleReady flips a player's ready flag
func ToggleReady(lobby *components.LobbyData, id int) bool {
	i := findPlayer(lobby, id)
	if i < 0 {
		return false
	}
	lobby.Players[i].Ready = !lobby.Players[i].Ready
	return true
}

// GetReadyCount returns the number of ready players
func GetReadyCount(lobby *components.LobbyData) int {
	count := 0
	for _, p := range lobby.Players {
		if p.Ready {
			count++
		}
	}
	return count
}

// NextPlayerID returns an id one above the largest in the roster
func NextPlayerID(lobby *components.LobbyData) int {
	next := 1
	for _, p := range lobby.Players {
		if p.ID >= next {
			next = p.ID + 1
		}
	}
	return next
}

// CanStartMatch returns true when the roster meets the minimum size and
// every player is ready
func CanStartMatch(lobby *components.LobbyData) bool {
	if len(lobby.Players) < lobby.MinPlayers {
		return false
	}
	return GetReadyCount(lobby) == len(lobby.Players)
}

// StartMatch assigns a fresh match id if the lobby can start
func StartMatch(lobby *components.LobbyData) (string, bool) {
	if !CanStartMatch(lobby) {
		return "", false
	}
	lobby.MatchID = uuid.NewString()
	return lobby.MatchID, true
}

// LobbyValidationMessage explains why the match can't start yet, or
// returns "" when it can
func LobbyValidationMessage(lobby *components.LobbyData) string {
	if n := len(lobby.Players); n < lobby.MinPlayers {
		return fmt.Sprintf("Need at least %d players (%d joined)", lobby.MinPlayers, n)
	}
	if waiting := len(lobby.Players) - GetReadyCount(lobby); waiting > 0 {
		return fmt.Sprintf("Waiting on %d player(s) to ready up", waiting)
	}
	return ""
}

// LobbyStatus renders the roster as a block of text lines
func LobbyStatus(lobby *components.LobbyData) []string {
	lines := make([]string, 0, len(lobby.Players)+3)
	lines = append(lines,
		"=== Lobby Status ===",
		fmt.Sprintf("Players: %d/%d", len(lobby.Players), lobby.MaxPlayers),
	)
	for _, p := range lobby.Players {
		lines = append(lines, fmt.Sprintf("- [%s] %s (id %d)", readyLabel(p.Ready), p.Name, p.ID))
	}

	start := "WAITING"
	if CanStartMatch(lobby) {
		start = "AVAILABLE"
	}
	return append(lines, "Match start: "+start)
}

func readyLabel(ready bool) string {
	if ready {
		return "Ready"
	}
	return "Not Ready"
}
