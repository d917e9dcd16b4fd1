package systems

import (
	"testing"

	"github.com/automoto/dashrun/components"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLobby(minPlayers, maxPlayers int) *components.LobbyData {
	lobby := &components.LobbyData{}
	InitLobby(lobby, minPlayers, maxPlayers)
	return lobby
}

func TestJoinLobby(t *testing.T) {
	lobby := newLobby(2, 2)

	assert.True(t, JoinLobby(lobby, 1, "Alice"))
	assert.False(t, JoinLobby(lobby, 1, "Alice again"), "duplicate id")
	assert.True(t, JoinLobby(lobby, 2, "Bob"))
	assert.False(t, JoinLobby(lobby, 3, "Carol"), "lobby full")

	require.Len(t, lobby.Players, 2)
	assert.Equal(t, components.LobbyPlayer{ID: 1, Name: "Alice"}, lobby.Players[0])
	assert.False(t, lobby.Players[1].Ready)
}

func TestLeaveLobbyKeepsOrder(t *testing.T) {
	lobby := newLobby(0, 4)
	for i, name := range []string{"A", "B", "C"} {
		require.True(t, JoinLobby(lobby, i+1, name))
	}

	assert.False(t, LeaveLobby(lobby, 9))
	assert.True(t, LeaveLobby(lobby, 2))
	assert.Equal(t, []string{"A", "C"}, []string{lobby.Players[0].Name, lobby.Players[1].Name})
	assert.True(t, JoinLobby(lobby, 2, "B"), "ids can rejoin after leaving")
	assert.Equal(t, 4, NextPlayerID(lobby))
}

func TestReadyGating(t *testing.T) {
	cases := []struct {
		name    string
		min     int
		players int
		ready   []int
		want    bool
	}{
		{"below_minimum", 2, 1, []int{1}, false},
		{"not_all_ready", 2, 3, []int{1, 2}, false},
		{"all_ready", 2, 2, []int{1, 2}, true},
		{"empty_with_zero_minimum", 0, 0, nil, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lobby := newLobby(c.min, 4)
			for id := 1; id <= c.players; id++ {
				require.True(t, JoinLobby(lobby, id, "p"))
			}
			for _, id := range c.ready {
				require.True(t, SetReady(lobby, id, true))
			}
			assert.Equal(t, c.want, CanStartMatch(lobby))
			assert.Equal(t, c.want, LobbyValidationMessage(lobby) == "")
		})
	}
}

func TestSetReadyUnknownPlayer(t *testing.T) {
	lobby := newLobby(1, 4)
	assert.False(t, SetReady(lobby, 7, true))
	assert.False(t, ToggleReady(lobby, 7))

	require.True(t, JoinLobby(lobby, 7, "Gus"))
	assert.True(t, ToggleReady(lobby, 7))
	assert.True(t, lobby.Players[0].Ready)
	assert.True(t, ToggleReady(lobby, 7))
	assert.Equal(t, 0, GetReadyCount(lobby))
}

func TestStartMatch(t *testing.T) {
	lobby := newLobby(1, 4)
	require.True(t, JoinLobby(lobby, 1, "Alice"))

	_, ok := StartMatch(lobby)
	assert.False(t, ok)
	assert.Empty(t, lobby.MatchID)

	require.True(t, SetReady(lobby, 1, true))
	id, ok := StartMatch(lobby)
	require.True(t, ok)
	assert.Equal(t, id, lobby.MatchID)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestLobbyStatus(t *testing.T) {
	lobby := newLobby(2, 4)
	JoinLobby(lobby, 1, "Alice")
	JoinLobby(lobby, 2, "Bob")
	SetReady(lobby, 1, true)

	assert.Equal(t, []string{
		"=== Lobby Status ===",
		"Players: 2/4",
		"- [Ready] Alice (id 1)",
		"- [Not Ready] Bob (id 2)",
		"Match start: WAITING",
	}, LobbyStatus(lobby))
	assert.Equal(t, "Waiting on 1 player(s) to ready up", LobbyValidationMessage(lobby))

	SetReady(lobby, 2, true)
	status := LobbyStatus(lobby)
	assert.Equal(t, "Match start: AVAILABLE", status[len(status)-1])
}
