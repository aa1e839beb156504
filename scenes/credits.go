package scenes

import (
	"fmt"

	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/shared/gamemath"
	"github.com/automoto/shadow-runner/systems"
	"github.com/automoto/shadow-runner/ui"
)

// CreditsScene is shown once the last level is cleared.
type CreditsScene struct {
	*menuScene
}

func NewCreditsScene(sc SceneChanger) *CreditsScene {
	s := &CreditsScene{newMenuScene(sc, cfg.Night)}
	s.setup = s.configure
	return s
}

func (s *CreditsScene) configure() {
	progress := systems.LoadProgress()
	var summary []string
	for _, level := range s.sceneChanger.Catalog().Levels {
		if best, ok := progress.BestTime(level.ID); ok {
			summary = append(summary, fmt.Sprintf("%s  %s", level.Name, gamemath.FormatDuration(best)))
		}
	}

	creditsUI := ui.NewCreditsUI(cfg.Credits.Title, cfg.Credits.Lines, summary,
		func() { s.goTo(NewMenuScene(s.sceneChanger)) },
		func() { s.goTo(NewLevelsScene(s.sceneChanger)) },
	)
	s.widgets = creditsUI.UI

	systems.PlaySFX(s.ecs, cfg.SoundLevelComplete)
}
