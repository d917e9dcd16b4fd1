package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DashFlashData fades a highlight around a player after a dash.
// Tween is nil when no flash is running.
type DashFlashData struct {
	Tween *gween.Tween
	Alpha float32 // 0 = invisible, 1 = full flash
}

var DashFlash = donburi.NewComponentType[DashFlashData]()
