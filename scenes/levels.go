package scenes

import (
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/shared/gamemath"
	"github.com/automoto/shadow-runner/shared/leveldata"
	"github.com/automoto/shadow-runner/systems"
	"github.com/automoto/shadow-runner/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// LevelsScene is the level select grid.
type LevelsScene struct {
	*menuScene
}

func NewLevelsScene(sc SceneChanger) *LevelsScene {
	s := &LevelsScene{newMenuScene(sc, cfg.Night)}
	s.setup = s.configure
	return s
}

func (s *LevelsScene) configure() {
	s.ecs.AddSystem(func(*ecs.ECS) {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			s.goTo(NewMenuScene(s.sceneChanger))
		}
	})

	layout := ui.LevelsLayout{
		Title:   cfg.LevelsMenu.Title,
		Columns: cfg.LevelsMenu.Columns,
		ButtonW: cfg.LevelsMenu.ButtonWidth,
		ButtonH: cfg.LevelsMenu.ButtonHeight,
		Spacing: cfg.LevelsMenu.Spacing,
	}
	entries := levelEntries(s.sceneChanger.Catalog(), systems.LoadProgress())

	levelsUI := ui.NewLevelsUI(layout, entries,
		func(levelID int) {
			systems.PlaySFX(s.ecs, cfg.SoundMenuSelect)
			systems.FadeOutMusic(s.ecs)
			s.goTo(NewPlatformerScene(s.sceneChanger, levelID))
		},
		func() {
			systems.PlaySFX(s.ecs, cfg.SoundMenuSelect)
			s.goTo(NewMenuScene(s.sceneChanger))
		},
	)
	s.widgets = levelsUI.UI
}

// levelEntries lists the catalog with best times. Levels past the furthest
// unlocked one are locked.
func levelEntries(catalog *leveldata.Catalog, progress *systems.SavedProgress) []ui.LevelEntry {
	entries := make([]ui.LevelEntry, 0, catalog.Len())
	for _, level := range catalog.Levels {
		entry := ui.LevelEntry{
			ID:     level.ID,
			Name:   level.Name,
			Best:   cfg.LevelsMenu.EmptyTime,
			Locked: level.ID > progress.Unlocked,
		}
		if best, ok := progress.BestTime(level.ID); ok {
			entry.Best = gamemath.FormatDuration(best)
		}
		entries = append(entries, entry)
	}
	return entries
}
