package scenes

import (
	"image/color"

	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/systems"
)

// MenuScene is the title screen.
type MenuScene struct {
	*menuScene
}

func NewMenuScene(sc SceneChanger) *MenuScene {
	s := &MenuScene{newMenuScene(sc, color.Black)}
	s.setup = s.configure
	return s
}

func (s *MenuScene) configure() {
	play := func() interface{} {
		menu := systems.GetOrCreateMenu(s.ecs)
		return NewPlatformerScene(s.sceneChanger, resumeLevel(s.sceneChanger.Catalog(), menu.ResumeLevel))
	}
	levels := func() interface{} {
		return NewLevelsScene(s.sceneChanger)
	}

	s.ecs.AddSystem(systems.NewUpdateMenu(s.sceneChanger, play, levels))
	s.ecs.AddSystem(systems.UpdateSettingsMenu)

	s.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
	s.ecs.AddRenderer(cfg.Overlay, systems.DrawSettingsMenu)
}
