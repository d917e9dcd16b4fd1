package systems

import (
	"github.com/automoto/dashrun/components"
	cfg "github.com/automoto/dashrun/config"
	"github.com/automoto/dashrun/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDashFlash starts a fading flash on players that dashed this tick and
// advances running flashes. Must run AFTER UpdateMovement.
func UpdateDashFlash(ecs *ecs.ECS) {
	dt := float32(cfg.FrameDelta())
	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		stepDashFlash(entry, dt)
	})
}

func stepDashFlash(entry *donburi.Entry, dt float32) {
	flash := components.DashFlash.Get(entry)

	if c := components.Movement.Get(entry).Controller; c != nil && c.Dashed() {
		flash.Tween = gween.New(1, 0, float32(cfg.Effects.DashFlashSeconds), ease.OutQuad)
		flash.Alpha = 1
		return
	}

	if flash.Tween == nil {
		return
	}
	alpha, finished := flash.Tween.Update(dt)
	flash.Alpha = alpha
	if finished {
		flash.Tween = nil
		flash.Alpha = 0
	}
}
