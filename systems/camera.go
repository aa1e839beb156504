package systems

import (
	"math"

	"github.com/automoto/shadow-runner/components"
	"github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/shared/gamemath"
	"github.com/automoto/shadow-runner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	updateCameraZoom(camera)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		updateScreenShake(cameraEntry, camera)
		return
	}
	playerObject := components.Object.Get(playerEntry)
	playerData := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	// Only update look-ahead when player is moving - freeze offset when idle
	if math.Abs(physics.SpeedX) > config.Camera.LookAheadSpeedThreshold {
		targetLookAhead := playerData.Direction.X * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	targetX := playerObject.X + playerObject.W/2 + camera.LookAheadX
	targetY := playerObject.Y + playerObject.H/2
	targetX, targetY = clampCameraTarget(targetX, targetY, camera.Zoom,
		float64(levelData.CurrentLevel.Width), float64(levelData.CurrentLevel.Height))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing

	updateScreenShake(cameraEntry, camera)
}

// ViewSize returns the world-space size of the visible area at a zoom level.
func ViewSize(zoom float64) (float64, float64) {
	if zoom <= 0 {
		zoom = 1
	}
	return gamemath.FitAspect(float64(config.C.Width)/zoom, float64(config.C.Height)/zoom, config.Camera.AspectRatio)
}

// clampCameraTarget keeps the view inside the level. Levels smaller than the
// view are centred.
func clampCameraTarget(x, y, zoom, levelWidth, levelHeight float64) (float64, float64) {
	viewW, viewH := ViewSize(zoom)
	return gamemath.ClampAxis(x, viewW, 0, levelWidth), gamemath.ClampAxis(y, viewH, 0, levelHeight)
}

func updateCameraZoom(camera *components.CameraData) {
	if camera.ZoomTween == nil {
		if camera.Zoom == 0 {
			camera.Zoom = 1
		}
		return
	}
	zoom, done := camera.ZoomTween.Update(tick)
	camera.Zoom = float64(zoom)
	if done {
		camera.ZoomTween = nil
		camera.Zoom = 1
	}
}

// SnapCamera centres the camera on the player without smoothing.
func SnapCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok || components.Level.Get(levelEntry).CurrentLevel == nil {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	camera := components.Camera.Get(cameraEntry)
	obj := components.Object.Get(playerEntry)

	zoom := camera.Zoom
	if zoom == 0 {
		zoom = 1
	}
	camera.Position.X, camera.Position.Y = clampCameraTarget(obj.X+obj.W/2, obj.Y+obj.H/2, zoom,
		float64(level.Width), float64(level.Height))
	camera.LookAheadX = 0
}

// updateScreenShake nudges the camera by the current shake offset.
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}
	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++
	dx, dy := shakeOffset(shake)
	camera.Position.X += dx
	camera.Position.Y += dy
	if shake.Elapsed >= shake.Total {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// shakeOffset is a wobble whose amplitude falls linearly to zero.
func shakeOffset(s *components.ScreenShakeData) (float64, float64) {
	if s.Total <= 0 {
		return 0, 0
	}
	amp := s.Strength * math.Max(0, float64(s.Total-s.Elapsed)/float64(s.Total))
	t := float64(s.Elapsed)
	return math.Sin(t*1.1) * amp, math.Cos(t*1.3) * amp
}

// TriggerScreenShake shakes the camera. A weaker shake does not cut short
// a stronger one already running.
func TriggerScreenShake(ecs *ecs.ECS, strength float64, ticks int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	if cameraEntry.HasComponent(components.ScreenShake) {
		if components.ScreenShake.Get(cameraEntry).Strength >= strength {
			return
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
	}
	components.ScreenShake.SetValue(cameraEntry, components.ScreenShakeData{Strength: strength, Total: ticks})
}
