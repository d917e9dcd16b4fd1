package components

import (
	"github.com/automoto/dashrun/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CameraData centres the arena view. Position and LookAhead are in world
// units; the shake offset is applied in screen pixels.
type CameraData struct {
	Position  gamemath.Vec2
	LookAhead gamemath.Vec2 // Current smoothed offset toward where players are heading
	ShakeX    float64
	ShakeY    float64
}

var Camera = donburi.NewComponentType[CameraData]()

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
