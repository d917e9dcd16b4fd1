package systems

import (
	"testing"

	"github.com/automoto/dashrun/components"
	cfg "github.com/automoto/dashrun/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashFlashFadesOut(t *testing.T) {
	e, players := newArena(t, "Alice")
	p := players[0]

	hold(p, cfg.ActionMoveRight, cfg.ActionDash)
	UpdateMovement(e)
	UpdateDashFlash(e)

	flash := components.DashFlash.Get(p)
	require.NotNil(t, flash.Tween)
	assert.Equal(t, float32(1), flash.Alpha)

	prev := flash.Alpha
	frames := int(cfg.Effects.DashFlashSeconds*float64(cfg.Simulation.TickRate)) + 2
	for i := 0; i < frames; i++ {
		hold(p, cfg.ActionMoveRight)
		UpdateMovement(e)
		UpdateDashFlash(e)
		assert.LessOrEqual(t, flash.Alpha, prev)
		prev = flash.Alpha
	}

	assert.Nil(t, flash.Tween)
	assert.Equal(t, float32(0), flash.Alpha)
}
