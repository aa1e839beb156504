package factory

import (
	"github.com/automoto/shadow-runner/archetypes"
	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Zoom: 1})
	return camera
}

// StartIntroZoom makes the camera ease out from a close zoom.
func StartIntroZoom(camera *components.CameraData) {
	camera.Zoom = cfg.Camera.IntroZoom
	camera.ZoomTween = gween.New(float32(cfg.Camera.IntroZoom), 1, cfg.Camera.IntroZoomTime, ease.OutCubic)
}
