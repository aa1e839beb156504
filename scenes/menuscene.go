package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// menuScene is a screen outside of a level. Its world runs audio and
// input ahead of whatever setup adds, and the menu track plays under it.
// Widget screens set widgets; the rest draw through ECS renderers.
type menuScene struct {
	sceneChanger SceneChanger
	background   color.Color
	setup        func()

	ecs     *ecs.ECS
	widgets *ebitenui.UI
	once    sync.Once
	next    interface{}
}

func newMenuScene(sc SceneChanger, background color.Color) *menuScene {
	return &menuScene{sceneChanger: sc, background: background}
}

func (s *menuScene) Update() {
	s.once.Do(func() {
		s.ecs = ecs.NewECS(donburi.NewWorld())
		s.ecs.AddSystem(systems.UpdateAudio)
		s.ecs.AddSystem(systems.UpdateInput)
		if s.setup != nil {
			s.setup()
		}
		systems.PlayMusic(s.ecs, cfg.Sound.MenuMusic)
	})

	s.ecs.Update()
	if s.widgets != nil {
		s.widgets.Update()
	}

	// Switched after the widgets have updated so a click handler never
	// swaps the scene out from under ebitenui.
	if s.next != nil {
		s.sceneChanger.ChangeScene(s.next)
	}
}

func (s *menuScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)
	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
	if s.widgets != nil {
		s.widgets.Draw(screen)
	}
}

// goTo switches to next at the end of this update.
func (s *menuScene) goTo(next interface{}) {
	s.next = next
}
