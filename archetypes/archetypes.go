package archetypes

import (
	"github.com/automoto/dashrun/components"
	"github.com/automoto/dashrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LayerDefault is the single render layer used by the arena.
const LayerDefault ecs.LayerID = iota

var (
	Player = newArchetype(
		tags.Player,
		components.Movement,
		components.PlayerInput,
		components.Profile,
		components.DashFlash,
	)
	Lobby = newArchetype(
		tags.Lobby,
		components.Lobby,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
