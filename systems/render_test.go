package systems

import (
	"image/color"
	"testing"

	"github.com/automoto/dashrun/components"
	cfg "github.com/automoto/dashrun/config"
	"github.com/stretchr/testify/assert"
)

func TestGridLines(t *testing.T) {
	// 640px at 24px/unit spans about +-13.3 units; spacing 2
	lines := gridLines(0, 640)
	assert.Equal(t, -12.0, lines[0])
	assert.Equal(t, 12.0, lines[len(lines)-1])
	assert.Len(t, lines, 13)

	orig := cfg.Arena
	t.Cleanup(func() { cfg.Arena = orig })
	cfg.Arena.GridSpacing = 0
	assert.Nil(t, gridLines(0, 640))
}

func TestWithAlpha(t *testing.T) {
	assert.Equal(t, color.RGBA{}, withAlpha(cfg.White, 0))
	assert.Equal(t, cfg.White, withAlpha(cfg.White, 2))
	assert.Equal(t, color.RGBA{R: 127, G: 127, B: 127, A: 127}, withAlpha(cfg.White, 0.5))
}

func TestPlayerColorWraps(t *testing.T) {
	assert.Equal(t, PlayerColor(0), PlayerColor(len(cfg.PlayerColors)))
}

func TestPlayerHUDLine(t *testing.T) {
	e, players := newArena(t, "Alice")
	assert.Equal(t, "Alice  Pos(0.00, 0.00)  Vel(0.00, 0.00)  Speed 0.00  Dash READY", PlayerHUDLine(players[0]))

	hold(players[0], cfg.ActionMoveUp, cfg.ActionDash)
	UpdateMovement(e)
	c := components.Movement.Get(players[0]).Controller
	assert.False(t, c.DashReady())
	assert.Contains(t, PlayerHUDLine(players[0]), "Dash 0.8s")
}
