package systems

import (
	"github.com/automoto/shadow-runner/assets"
	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BlindPlayer darkens the view for the given number of frames. A new blind
// restarts the countdown.
func BlindPlayer(playerEntry *donburi.Entry, frames int) {
	if playerEntry.HasComponent(components.Blinded) {
		components.Blinded.Get(playerEntry).FramesRemaining = frames
		return
	}
	donburi.Add(playerEntry, components.Blinded, &components.BlindedData{FramesRemaining: frames})
}

// UpdateBlindness counts down the blind timer.
func UpdateBlindness(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || !playerEntry.HasComponent(components.Blinded) {
		return
	}
	blinded := components.Blinded.Get(playerEntry)
	blinded.FramesRemaining--
	if blinded.FramesRemaining <= 0 {
		playerEntry.RemoveComponent(components.Blinded)
	}
}

// DrawBlindness covers the screen except for a soft circle around the player.
func DrawBlindness(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || !playerEntry.HasComponent(components.Blinded) {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	obj := components.Object.Get(playerEntry)

	zoom := camera.Zoom
	if zoom == 0 {
		zoom = 1
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	cx := (obj.X+obj.W/2-camera.Position.X)*zoom + float64(width)/2
	cy := (obj.Y+obj.H/2-camera.Position.Y)*zoom + float64(height)/2

	// Fade out over the last second.
	darkness := cfg.Blindness.Darkness
	if left := components.Blinded.Get(playerEntry).FramesRemaining; left < cfg.TPS {
		darkness *= float32(left) / cfg.TPS
	}

	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]any{
		"Center":   []float32{float32(cx), float32(cy)},
		"Radius":   float32(cfg.Blindness.Radius * zoom),
		"Softness": float32(cfg.Blindness.EdgeSoftness * zoom),
		"Darkness": darkness,
	}
	screen.DrawRectShader(width, height, assets.VignetteShader, op)
}
