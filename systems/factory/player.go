package factory

import (
	"github.com/automoto/dashrun/archetypes"
	"github.com/automoto/dashrun/components"
	cfg "github.com/automoto/dashrun/config"
	"github.com/automoto/dashrun/shared/armory"
	"github.com/automoto/dashrun/shared/gamemath"
	"github.com/automoto/dashrun/shared/movement"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns a player entity at spawn with a fresh controller
// using the global movement tuning.
func CreatePlayer(ecs *ecs.ECS, index int, lp components.LobbyPlayer, spawn gamemath.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Movement.SetValue(player, components.MovementData{
		Controller: movement.NewWithTuning(spawn, movement.Tuning(cfg.Movement)),
	})
	components.PlayerInput.SetValue(player, components.PlayerInputData{
		PlayerIndex:   index,
		ControlScheme: cfg.ControlSchemeID(index % int(cfg.ControlSchemeCount)),
	})
	components.Profile.SetValue(player, components.ProfileData{
		ID:    lp.ID,
		Name:  lp.Name,
		Stats: armory.NewProfile(),
	})
	components.DashFlash.SetValue(player, components.DashFlashData{})

	return player
}

// CreatePlayers spawns one player per roster entry, spread along the X axis.
func CreatePlayers(ecs *ecs.ECS, lobby *components.LobbyData) []*donburi.Entry {
	const spacing = 3.0

	entries := make([]*donburi.Entry, 0, len(lobby.Players))
	offset := -spacing * float64(len(lobby.Players)-1) / 2
	for i, lp := range lobby.Players {
		spawn := gamemath.Vec2{X: offset + spacing*float64(i)}
		entries = append(entries, CreatePlayer(ecs, i, lp, spawn))
	}
	return entries
}

// CreateLobby spawns the lobby entity with the configured size policy.
func CreateLobby(ecs *ecs.ECS) *donburi.Entry {
	lobby := archetypes.Lobby.Spawn(ecs)
	components.Lobby.SetValue(lobby, components.LobbyData{
		MinPlayers: cfg.Lobby.MinPlayers,
		MaxPlayers: cfg.Lobby.MaxPlayers,
	})
	return lobby
}
