package systems

import (
	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdatePause creates the pause system. It runs after UpdateInput and
// before the gameplay systems.
func NewUpdatePause(sceneChanger SceneChanger, createLevelsScene, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		pause := GetOrCreatePause(e)
		input := getOrCreateInput(e)

		// Toggle pause on ESC or P, unless the settings overlay owns the key
		if input.JustPressed(cfg.ActionPause) && !IsSettingsOpen(e) {
			setPaused(e, pause, !pause.Paused)
		}

		if !pause.Paused || IsSettingsOpen(e) {
			return
		}

		navigateMenu(e, input, &pause.Cursor, len(cfg.Pause.MenuOptions))

		if !input.JustPressed(cfg.ActionMenuSelect) {
			return
		}
		PlaySFX(e, cfg.SoundMenuSelect)
		switch components.PauseMenuOption(pause.Row) {
		case components.MenuResume:
			setPaused(e, pause, false)
		case components.MenuRestart:
			setPaused(e, pause, false)
			RestartLevel(e)
		case components.MenuSettings:
			OpenSettings(e, true)
		case components.MenuLevels:
			StopMusic(e)
			sceneChanger.ChangeScene(createLevelsScene())
		case components.MenuExit:
			StopMusic(e)
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}

func setPaused(e *ecs.ECS, pause *components.PauseData, paused bool) {
	pause.Paused = paused
	if paused {
		pause.Row = int(components.MenuResume)
		PauseMusic(e)
		if timer, ok := levelTimer(e); ok {
			timer.Running = false
		}
		return
	}
	ResumeMusic(e)
	if timer, ok := levelTimer(e); ok && timerMayRun(e) {
		timer.Running = true
	}
}

// DrawPause renders the pause overlay and menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.Paused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	menuOptions := cfg.Pause.MenuOptions
	totalMenuHeight := float64(len(menuOptions)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2

	drawMenuOptions(screen, menuOptions, pause.Row, startY,
		cfg.Pause.MenuItemHeight, cfg.Pause.MenuItemGap, cfg.Pause.TextColorNormal, cfg.Pause.TextColorSelected)

	input := getOrCreateInput(ecs)
	drawHint(screen, getPauseHint(input.Device), cfg.Pause.TextColorNormal)
}

// getPauseHint returns the appropriate hint for pause menu
func getPauseHint(method components.Device) string {
	switch method {
	case components.DevicePlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select   Options: Resume"
	case components.DeviceXbox:
		return "Left Stick/D-Pad: Navigate   A: Select   Start: Resume"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Resume"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.Paused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or while
// the run is over and the scene is about to change.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(func(e *ecs.ECS) {
		if IsRunFinished(e) {
			return
		}
		system(e)
	})
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	ent, ok := components.Pause.First(ecs.World)
	if !ok {
		ent = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(ent)
}
