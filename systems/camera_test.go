package systems

import (
	"testing"

	"github.com/automoto/dashrun/components"
	cfg "github.com/automoto/dashrun/config"
	"github.com/automoto/dashrun/shared/gamemath"
	"github.com/automoto/dashrun/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraConvergesOnCentroid(t *testing.T) {
	e, _ := newArena(t, "Alice", "Bob")
	camEntry := factory.CreateCamera(e)
	camera := components.Camera.Get(camEntry)

	camera.Position = gamemath.Vec2{X: 10, Y: -10}
	for i := 0; i < 200; i++ {
		UpdateCamera(e)
	}
	assert.InDelta(t, 0, camera.Position.X, 1e-6)
	assert.InDelta(t, 0, camera.Position.Y, 1e-6)
}

func TestDashShakesCamera(t *testing.T) {
	e, players := newArena(t, "Alice")
	camEntry := factory.CreateCamera(e)

	hold(players[0], cfg.ActionMoveRight, cfg.ActionDash)
	UpdateMovement(e)
	UpdateCamera(e)
	require.True(t, camEntry.HasComponent(components.ScreenShake))

	for i := 0; i < cfg.ScreenShake.DashDuration; i++ {
		hold(players[0], cfg.ActionMoveRight)
		UpdateMovement(e)
		UpdateCamera(e)
	}
	assert.False(t, camEntry.HasComponent(components.ScreenShake))
	camera := components.Camera.Get(camEntry)
	assert.Zero(t, camera.ShakeX)
	assert.Zero(t, camera.ShakeY)
}

func TestWorldToScreen(t *testing.T) {
	camera := &components.CameraData{Position: gamemath.Vec2{X: 1, Y: 1}}
	cx, cy := float64(cfg.C.Width)/2, float64(cfg.C.Height)/2
	ppu := cfg.Arena.PixelsPerUnit

	x, y := WorldToScreen(gamemath.Vec2{X: 1, Y: 1}, camera)
	assert.Equal(t, cx, x)
	assert.Equal(t, cy, y)

	x, y = WorldToScreen(gamemath.Vec2{X: 2, Y: 2}, camera)
	assert.Equal(t, cx+ppu, x)
	assert.Equal(t, cy-ppu, y, "world up is screen up")
}
