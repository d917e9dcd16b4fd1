package systems

import (
	"image/color"
	"math"

	"github.com/automoto/dashrun/components"
	cfg "github.com/automoto/dashrun/config"
	"github.com/automoto/dashrun/shared/gamemath"
	"github.com/automoto/dashrun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawArena fills the background and draws world grid lines around the camera.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.ArenaBg)

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	for _, x := range gridLines(camera.Position.X, float64(cfg.C.Width)) {
		sx, _ := WorldToScreen(gamemath.Vec2{X: x, Y: camera.Position.Y}, camera)
		vector.StrokeLine(screen, float32(sx), 0, float32(sx), float32(cfg.C.Height), 1, cfg.GridColor, false)
	}
	for _, y := range gridLines(camera.Position.Y, float64(cfg.C.Height)) {
		_, sy := WorldToScreen(gamemath.Vec2{X: camera.Position.X, Y: y}, camera)
		vector.StrokeLine(screen, 0, float32(sy), float32(cfg.C.Width), float32(sy), 1, cfg.GridColor, false)
	}
}

// gridLines returns the world coordinates of grid lines visible across a
// screen extent centred on center.
func gridLines(center, extentPixels float64) []float64 {
	spacing := cfg.Arena.GridSpacing
	if spacing <= 0 || cfg.Arena.PixelsPerUnit <= 0 {
		return nil
	}
	half := extentPixels / 2 / cfg.Arena.PixelsPerUnit
	first := math.Ceil((center-half)/spacing) * spacing

	var lines []float64
	for v := first; v <= center+half; v += spacing {
		lines = append(lines, v)
	}
	return lines
}

// DrawPlayers renders each player as a square in their roster colour, with
// a fading outline while a dash flash is running.
func DrawPlayers(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	size := float32(cfg.Arena.PlayerSize)

	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		c := components.Movement.Get(entry).Controller
		if c == nil {
			return
		}
		x, y := WorldToScreen(c.Position(), camera)
		left, top := float32(x)-size/2, float32(y)-size/2

		if flash := components.DashFlash.Get(entry); flash.Alpha > 0 {
			pad := size / 2
			vector.FillRect(screen, left-pad, top-pad, size+2*pad, size+2*pad,
				withAlpha(cfg.White, flash.Alpha), false)
		}

		vector.FillRect(screen, left, top, size, size,
			PlayerColor(components.PlayerInput.Get(entry).PlayerIndex), false)
	})
}

// PlayerColor returns the roster colour for a player index.
func PlayerColor(index int) color.RGBA {
	if len(cfg.PlayerColors) == 0 {
		return cfg.White
	}
	return cfg.PlayerColors[index%len(cfg.PlayerColors)]
}

// withAlpha scales a colour to premultiplied alpha a in [0, 1].
func withAlpha(c color.RGBA, a float32) color.RGBA {
	a = max(0, min(a, 1))
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}
