package systems

import (
	"testing"

	"github.com/automoto/dashrun/components"
	cfg "github.com/automoto/dashrun/config"
	"github.com/automoto/dashrun/shared/gamemath"
	"github.com/automoto/dashrun/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newArena(t *testing.T, names ...string) (*ecs.ECS, []*donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	lobby := &components.LobbyData{}
	InitLobby(lobby, 0, len(names))
	for i, n := range names {
		require.True(t, JoinLobby(lobby, i+1, n))
	}
	return e, factory.CreatePlayers(e, lobby)
}

func hold(entry *donburi.Entry, actions ...cfg.ActionID) {
	input := components.PlayerInput.Get(entry)
	input.Swap()
	for _, a := range actions {
		input.CurrentInput[a] = true
	}
}

func TestSnapshotFromInputEdgeTriggersDash(t *testing.T) {
	input := &components.PlayerInputData{}
	input.CurrentInput[cfg.ActionMoveUp] = true
	input.CurrentInput[cfg.ActionSprint] = true
	input.CurrentInput[cfg.ActionDash] = true

	snap := SnapshotFromInput(input)
	assert.True(t, snap.Up)
	assert.True(t, snap.Sprint)
	assert.True(t, snap.Dash)
	assert.False(t, snap.Left)

	input.PreviousInput = input.CurrentInput
	snap = SnapshotFromInput(input)
	assert.True(t, snap.Up)
	assert.False(t, snap.Dash, "held dash is not a new request")
}

func TestCreatePlayersSpreadsSpawns(t *testing.T) {
	_, players := newArena(t, "Alice", "Bob")
	require.Len(t, players, 2)

	a := components.Movement.Get(players[0]).Controller
	b := components.Movement.Get(players[1]).Controller
	assert.Equal(t, gamemath.Vec2{X: -1.5}, a.Position())
	assert.Equal(t, gamemath.Vec2{X: 1.5}, b.Position())

	assert.Equal(t, cfg.ControlSchemeWASD, components.PlayerInput.Get(players[0]).ControlScheme)
	assert.Equal(t, cfg.ControlSchemeArrows, components.PlayerInput.Get(players[1]).ControlScheme)
	assert.Equal(t, "Bob", components.Profile.Get(players[1]).Name)
}

func TestUpdateMovementStepsEveryPlayer(t *testing.T) {
	e, players := newArena(t, "Alice", "Bob")

	hold(players[0], cfg.ActionMoveUp)
	hold(players[1], cfg.ActionMoveLeft, cfg.ActionDash)
	UpdateMovement(e)

	a := components.Movement.Get(players[0])
	b := components.Movement.Get(players[1])
	assert.InDelta(t, 18*cfg.FrameDelta(), a.Controller.Velocity().Y, 1e-9)
	assert.True(t, a.LastInput.Up)
	assert.False(t, a.Controller.Dashed())

	assert.True(t, b.Controller.Dashed())
	assert.InDelta(t, -(18*cfg.FrameDelta() + 10), b.Controller.Velocity().X, 1e-9)

	// still holding dash on the next frame: no new request
	hold(players[1], cfg.ActionMoveLeft, cfg.ActionDash)
	UpdateMovement(e)
	assert.False(t, b.Controller.Dashed())
	assert.False(t, b.LastInput.Dash)
}

func TestApplyTuning(t *testing.T) {
	orig := cfg.Movement
	t.Cleanup(func() { cfg.Movement = orig })

	e, players := newArena(t, "Alice")
	cfg.Movement.WalkSpeed = 1
	ApplyTuning(e.World)

	assert.Equal(t, 1.0, components.Movement.Get(players[0]).Controller.Tuning().WalkSpeed)
	assert.Equal(t, TuningFromConfig(), components.Movement.Get(players[0]).Controller.Tuning())
}
