package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/shadow-runner/assets"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/logging"
	"github.com/automoto/shadow-runner/systems"
	"github.com/automoto/shadow-runner/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene runs the levels. One scene plays through the catalog; level
// changes rebuild the world in place.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	startLevel   int
	once         sync.Once
}

// NewPlatformerScene creates a platformer scene starting at the given level.
func NewPlatformerScene(sc SceneChanger, levelID int) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, startLevel: levelID}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if systems.IsRunFinished(ps.ecs) {
		systems.StopMusic(ps.ecs)
		ps.sceneChanger.ChangeScene(NewCreditsScene(ps.sceneChanger))
		return
	}

	if systems.IsGameOver(ps.ecs) {
		id, _ := systems.CurrentLevelID(ps.ecs)
		systems.StopMusic(ps.ecs)
		ps.sceneChanger.ChangeScene(NewGameOverScene(ps.sceneChanger, id))
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	// The loading scene normally warms these; --skip-menu paths may not.
	if assets.VignetteShader == nil {
		if err := assets.LoadShaders(); err != nil {
			panic("failed to load shaders: " + err.Error())
		}
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	createLevelsScene := func() interface{} {
		return NewLevelsScene(ps.sceneChanger)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(ps.sceneChanger)
	}

	// Audio system (runs first, even when paused for menu sounds)
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.NewUpdatePause(ps.sceneChanger, createLevelsScene, createMenuScene))
	ecs.AddSystem(systems.UpdateLevelChange)

	// Game systems wrapped with pause and end-of-run checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateHostiles))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateTriggers))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDamage))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDeaths))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateBlindness))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateHazardAnimations))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateTutorial))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateMessage))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateTimer))

	// Systems that run even when paused
	ecs.AddSystem(systems.UpdateSettingsMenu)
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	// World layer, then the screen-space overlay
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawAnimated)
	ecs.AddRenderer(cfg.Default, systems.DrawBlindness)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawMessage)
	ecs.AddRenderer(cfg.Overlay, systems.DrawTutorial)
	ecs.AddRenderer(cfg.Overlay, systems.DrawPause)
	ecs.AddRenderer(cfg.Overlay, systems.DrawSettingsMenu)

	ps.ecs = ecs

	// Singletons that outlive level changes
	factory.CreateLevel(ps.ecs, ps.sceneChanger.Catalog())
	factory.CreateCamera(ps.ecs)

	if err := systems.SelectLevel(ps.ecs, ps.startLevel); err != nil {
		logging.For("level").Error("could not start level", "id", ps.startLevel, "err", err)
	}

	systems.PlayMusic(ps.ecs, cfg.Sound.GameMusic)
}
