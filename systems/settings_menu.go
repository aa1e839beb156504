package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const numSettingsOptions = int(components.SettingsOptBack) + 1

// UpdateSettingsMenu handles settings navigation and value changes.
func UpdateSettingsMenu(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)
	if !settings.Open {
		return
	}

	input := getOrCreateInput(e)
	navigateMenu(e, input, &settings.Cursor, numSettingsOptions)

	if input.JustPressed(cfg.ActionMenuLeft) {
		adjustValue(e, settings, -1)
	}
	if input.JustPressed(cfg.ActionMenuRight) {
		adjustValue(e, settings, +1)
	}

	if input.JustPressed(cfg.ActionMenuSelect) {
		switch components.SettingsMenuOption(settings.Row) {
		case components.SettingsOptFullscreen:
			toggleFullscreen(settings)
			PlaySFX(e, cfg.SoundMenuSelect)
		case components.SettingsOptBack:
			closeSettings(e, settings)
			return
		}
	}

	if input.JustPressed(cfg.ActionMenuBack) ||
		input.JustPressed(cfg.ActionPause) {
		closeSettings(e, settings)
	}
}

// adjustValue changes the value for the selected option
func adjustValue(e *ecs.ECS, s *components.SettingsMenuData, direction int) {
	switch components.SettingsMenuOption(s.Row) {
	case components.SettingsOptMusicVolume:
		s.MusicVolume = adjustVolumeStep(s.MusicVolume, direction)
		SetMusicVolume(e, s.MusicVolume)
		PlaySFX(e, cfg.SoundMenuNavigate)

	case components.SettingsOptSFXVolume:
		s.SFXVolume = adjustVolumeStep(s.SFXVolume, direction)
		SetSFXVolume(e, s.SFXVolume)
		// Preview at the new level
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptFullscreen:
		toggleFullscreen(s)
		PlaySFX(e, cfg.SoundMenuSelect)
	}
}

// adjustVolumeStep adjusts volume by stepping through predefined values
func adjustVolumeStep(current float64, direction int) float64 {
	steps := cfg.SettingsMenu.VolumeSteps
	idx := findClosestStepIndex(current, steps) + direction
	if idx < 0 {
		idx = 0
	}
	if idx >= len(steps) {
		idx = len(steps) - 1
	}
	return steps[idx]
}

// findClosestStepIndex finds the closest step index for a volume value
func findClosestStepIndex(value float64, steps []float64) int {
	closest := 0
	minDiff := 2.0
	for i, step := range steps {
		diff := value - step
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	return closest
}

func toggleFullscreen(s *components.SettingsMenuData) {
	s.Fullscreen = !s.Fullscreen
	ebiten.SetFullscreen(s.Fullscreen)
}

// closeSettings closes the settings menu and saves settings
func closeSettings(e *ecs.ECS, s *components.SettingsMenuData) {
	s.Open = false
	PlaySFX(e, cfg.SoundMenuSelect)
	SaveCurrentSettings(s)
}

// DrawSettingsMenu renders the settings overlay.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettingsMenu(e)
	if !settings.Open {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Over a paused level the run stays visible underneath.
	bg := cfg.Menu.BackgroundColor
	if settings.FromPause {
		bg = cfg.Pause.OverlayColor
	}
	vector.FillRect(screen, 0, 0, float32(width), float32(height), bg, false)

	titleFont := fonts.Title.Get()
	title := "SETTINGS"
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), 50, cfg.Menu.TitleColor)

	face := fonts.Bold.Get()
	const itemHeight, itemGap = 24.0, 10.0
	startY := (height-float64(numSettingsOptions)*(itemHeight+itemGap))/2 + 10

	for i := 0; i < numSettingsOptions; i++ {
		opt := components.SettingsMenuOption(i)
		y := int(startY + float64(i)*(itemHeight+itemGap) + itemHeight)

		c := cfg.Pause.TextColorNormal
		if i == settings.Row {
			c = cfg.Pause.TextColorSelected
		}

		label, value := getOptionDisplay(settings, opt)
		if value == "" {
			text.Draw(screen, label, face, centerTextX(label, face, width), y, c)
			continue
		}
		text.Draw(screen, label, face, int(width/2)-140, y, c)
		text.Draw(screen, value, face, int(width/2)+20, y, c)
	}

	input := getOrCreateInput(e)
	drawHint(screen, getSettingsHint(input.Device), cfg.Pause.TextColorNormal)
}

// getSettingsHint returns the appropriate hint for settings menu
func getSettingsHint(method components.Device) string {
	switch method {
	case components.DevicePlayStation:
		return "D-Pad: Navigate   Left/Right: Change   Circle: Back"
	case components.DeviceXbox:
		return "D-Pad: Navigate   Left/Right: Change   B: Back"
	}
	return "Arrows: Navigate   Left/Right: Change   Esc: Back"
}

// getOptionDisplay returns the label and value display for an option
func getOptionDisplay(s *components.SettingsMenuData, opt components.SettingsMenuOption) (string, string) {
	label := ""
	if int(opt) < len(cfg.SettingsMenu.Options) {
		label = cfg.SettingsMenu.Options[opt]
	}
	switch opt {
	case components.SettingsOptMusicVolume:
		return label, formatVolumeBar(s.MusicVolume)
	case components.SettingsOptSFXVolume:
		return label, formatVolumeBar(s.SFXVolume)
	case components.SettingsOptFullscreen:
		return label, formatToggle(s.Fullscreen)
	}
	return label, ""
}

// formatVolumeBar creates a visual volume bar
func formatVolumeBar(volume float64) string {
	filled := int(volume*10 + 0.5)
	return fmt.Sprintf("[%s%s] %d%%", strings.Repeat("|", filled), strings.Repeat(".", 10-filled), int(volume*100+0.5))
}

// formatToggle formats a boolean as On/Off
func formatToggle(value bool) string {
	if value {
		return "[X] On"
	}
	return "[ ] Off"
}

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component, creating if needed.
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	ent, ok := components.SettingsMenu.First(e.World)
	if !ok {
		ent = e.World.Entry(e.World.Create(components.SettingsMenu))
		components.SettingsMenu.SetValue(ent, components.SettingsMenuData{
			MusicVolume: GetMusicVolume(),
			SFXVolume:   GetSFXVolume(),
			Fullscreen:  ebiten.IsFullscreen(),
		})
	}
	return components.SettingsMenu.Get(ent)
}

// OpenSettings shows the settings overlay with the live values. fromPause
// is set when a paused level sits underneath.
func OpenSettings(e *ecs.ECS, fromPause bool) {
	settings := GetOrCreateSettingsMenu(e)
	settings.Open = true
	settings.FromPause = fromPause
	settings.Row = int(components.SettingsOptMusicVolume)

	settings.MusicVolume = GetMusicVolume()
	settings.SFXVolume = GetSFXVolume()
	settings.Fullscreen = ebiten.IsFullscreen()
}

// IsSettingsOpen returns true if the settings menu is currently open
func IsSettingsOpen(e *ecs.ECS) bool {
	return GetOrCreateSettingsMenu(e).Open
}
