package systems

import (
	"math"

	"github.com/automoto/dashrun/components"
	"github.com/automoto/dashrun/config"
	"github.com/automoto/dashrun/shared/gamemath"
	"github.com/automoto/dashrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the players' centroid, leading it
// by their average velocity, and shakes it when anyone dashes.
// Must run AFTER UpdateMovement.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	centroid, velocity, dashed, ok := playerSpread(e.World)
	if ok {
		targetLookAhead := velocity.Scale(config.Camera.LookAheadSeconds)
		camera.LookAhead = lerp(camera.LookAhead, targetLookAhead, config.Camera.LookAheadSmoothing)
		camera.Position = lerp(camera.Position, centroid.Add(camera.LookAhead), config.Camera.FollowSmoothing)
	}

	if dashed {
		TriggerScreenShake(e, config.ScreenShake.DashIntensity, config.ScreenShake.DashDuration)
	}
	updateScreenShake(cameraEntry, camera)
}

// playerSpread returns the mean position and velocity of all players, and
// whether any of them dashed this tick.
func playerSpread(w donburi.World) (centroid, velocity gamemath.Vec2, dashed, ok bool) {
	n := 0
	tags.Player.Each(w, func(entry *donburi.Entry) {
		c := components.Movement.Get(entry).Controller
		if c == nil {
			return
		}
		centroid = centroid.Add(c.Position())
		velocity = velocity.Add(c.Velocity())
		dashed = dashed || c.Dashed()
		n++
	})
	if n == 0 {
		return gamemath.Zero, gamemath.Zero, false, false
	}
	inv := 1 / float64(n)
	return centroid.Scale(inv), velocity.Scale(inv), dashed, true
}

func lerp(from, to gamemath.Vec2, t float64) gamemath.Vec2 {
	return from.Add(to.Sub(from).Scale(t))
}

// WorldToScreen converts a world position to screen pixels for a camera.
// World Y points up, screen Y points down.
func WorldToScreen(p gamemath.Vec2, camera *components.CameraData) (x, y float64) {
	ppu := config.Arena.PixelsPerUnit
	x = float64(config.C.Width)/2 + (p.X-camera.Position.X)*ppu + camera.ShakeX
	y = float64(config.C.Height)/2 - (p.Y-camera.Position.Y)*ppu + camera.ShakeY
	return x, y
}

// updateScreenShake sets the camera's shake offset and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	camera.ShakeX, camera.ShakeY = 0, 0
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	camera.ShakeX = math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.ShakeY = math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	if duration <= 0 {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}
	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}
