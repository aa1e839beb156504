package scenes

import (
	"image/color"

	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/systems"
)

// GameOverScene follows a death. Retry restarts the level the player died in.
type GameOverScene struct {
	*menuScene
	levelID int
}

func NewGameOverScene(sc SceneChanger, levelID int) *GameOverScene {
	s := &GameOverScene{menuScene: newMenuScene(sc, color.Black), levelID: levelID}
	s.setup = s.configure
	return s
}

func (s *GameOverScene) configure() {
	retry := func(levelID int) interface{} {
		return NewPlatformerScene(s.sceneChanger, levelID)
	}
	levels := func() interface{} { return NewLevelsScene(s.sceneChanger) }
	menu := func() interface{} { return NewMenuScene(s.sceneChanger) }

	s.ecs.AddSystem(systems.NewUpdateGameOver(s.sceneChanger, retry, levels, menu))
	s.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	systems.GetOrCreateGameOver(s.ecs).LevelID = s.levelID
}
