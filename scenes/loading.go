package scenes

import (
	"github.com/automoto/shadow-runner/assets"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/fonts"
	"github.com/automoto/shadow-runner/logging"
	"github.com/automoto/shadow-runner/shared/leveldata"
	"github.com/automoto/shadow-runner/systems"
	"github.com/automoto/shadow-runner/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LoadingScene warms the asset caches one step per frame, then hands over
// to the next scene.
type LoadingScene struct {
	sceneChanger SceneChanger
	next         func() interface{}

	steps []loadStep
	done  int
	frame int
}

type loadStep struct {
	name string
	run  func() error
}

// NewLoadingScene creates a loading scene that switches to next() once
// everything is cached.
func NewLoadingScene(sc SceneChanger, next func() interface{}) *LoadingScene {
	s := &LoadingScene{sceneChanger: sc, next: next}
	s.steps = []loadStep{
		{"shaders", assets.LoadShaders},
		{"sound", systems.PreloadAllSFX},
		{"sprites", func() error { assets.PreloadAllAnimations(); return nil }},
		{"levels", func() error { factory.PreloadLevels(sc.Catalog()); return nil }},
		{"icons", func() error { checkIcons(sc.Catalog()); return nil }},
	}
	return s
}

// checkIcons reports legend icons the catalog names but the game does not
// ship. Intros still show, without the icon.
func checkIcons(catalog *leveldata.Catalog) int {
	missing := 0
	for _, icon := range catalog.Icons() {
		if !assets.HasIcon(icon) {
			logging.For("loading").Warn("catalog names an unknown icon", "icon", icon)
			missing++
		}
	}
	return missing
}

func (s *LoadingScene) Update() {
	s.frame++

	if s.done < len(s.steps) {
		step := s.steps[s.done]
		if err := step.run(); err != nil {
			logging.For("loading").Fatal("preload failed", "step", step.name, "err", err)
		}
		logging.For("loading").Debug("preloaded", "step", step.name)
		s.done++
		return
	}

	if s.frame >= cfg.Loading.MinFrames {
		s.sceneChanger.ChangeScene(s.next())
	}
}

func (s *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Night)

	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())

	face := fonts.Bold.Get()
	msg := "Loading..."
	bounds := text.BoundString(face, msg) //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, msg, face, int(w/2)-bounds.Dx()/2, int(h/2)-12, cfg.White)

	barW, barH := w/3, float32(6)
	x, y := (w-barW)/2, h/2
	progress := float32(s.done) / float32(len(s.steps))
	vector.StrokeRect(screen, x, y, barW, barH, 1, cfg.DarkBlue, false)
	vector.FillRect(screen, x, y, barW*progress, barH, cfg.LightBlue, false)
}
