package systems

import (
	"github.com/automoto/dashrun/components"
	cfg "github.com/automoto/dashrun/config"
	"github.com/automoto/dashrun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug draws each player's velocity (yellow) and commanded direction
// (magenta) as lines from the player's centre.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowVectors {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		move := components.Movement.Get(entry)
		if move.Controller == nil {
			return
		}
		pos := move.Controller.Position()
		x0, y0 := WorldToScreen(pos, camera)

		// Velocity drawn as the distance covered in a quarter second
		x1, y1 := WorldToScreen(pos.Add(move.Controller.Velocity().Scale(0.25)), camera)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, cfg.Yellow, false)

		if dir := move.LastInput.Direction(); !dir.IsZero() {
			x2, y2 := WorldToScreen(pos.Add(dir), camera)
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x2), float32(y2), 1, cfg.Magenta, false)
		}
	})
}
