package systems

import (
	"github.com/automoto/shadow-runner/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// worldToScreen builds the camera transform: translate to camera-relative
// position, scale by zoom, then centre on screen.
func worldToScreen(camera *components.CameraData, screen *ebiten.Image) ebiten.GeoM {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	// Safety check for zero zoom
	zoom := camera.Zoom
	if zoom == 0 {
		zoom = 1.0
	}

	var m ebiten.GeoM
	m.Translate(-camera.Position.X, -camera.Position.Y)
	m.Scale(zoom, zoom)
	m.Translate(float64(width)/2, float64(height)/2)
	return m
}

// visibleBounds returns the world rectangle the camera shows, grown by pad.
func visibleBounds(camera *components.CameraData, screen *ebiten.Image, pad float64) (minX, minY, maxX, maxY float64) {
	zoom := camera.Zoom
	if zoom == 0 {
		zoom = 1.0
	}
	halfW := float64(screen.Bounds().Dx()) / 2 / zoom
	halfH := float64(screen.Bounds().Dy()) / 2 / zoom
	return camera.Position.X - halfW - pad, camera.Position.Y - halfH - pad,
		camera.Position.X + halfW + pad, camera.Position.Y + halfH + pad
}

func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil || levelData.CurrentLevel.Background == nil {
		return
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM = worldToScreen(camera, screen)
	screen.DrawImage(levelData.CurrentLevel.Background, opts)
}
