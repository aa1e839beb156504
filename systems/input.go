package systems

import (
	"strings"

	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var (
	gamepadIDs []ebiten.GamepadID
	// gamepad names are looked up once per pad
	gamepadDevices = map[ebiten.GamepadID]components.Device{}
)

// UpdateInput polls every keyboard and gamepad into the Input singleton.
// It runs before anything that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Advance()

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	keyboard := false
	pad, padUsed := ebiten.GamepadID(0), false

	for id, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Held[id] = true
				keyboard = true
			}
		}
		for _, gp := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
				continue
			}
			for _, btn := range binding.Buttons {
				if ebiten.IsStandardGamepadButtonPressed(gp, btn) {
					input.Held[id] = true
					pad, padUsed = gp, true
				}
			}
		}
	}

	for _, gp := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gp, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gp, ebiten.StandardGamepadAxisLeftStickVertical)
		for _, dir := range stickDirections(h, v, cfg.Input.Deadzone) {
			for _, id := range cfg.Input.Stick[dir] {
				input.Held[id] = true
			}
			pad, padUsed = gp, true
		}
	}

	// A pad wins over the keyboard when both were touched.
	switch {
	case padUsed:
		input.Device = gamepadDevice(pad)
	case keyboard:
		input.Device = components.DeviceKeyboard
	}

	if input.JustPressed(cfg.ActionFullscreen) {
		ToggleFullscreen()
	}
}

// stickDirections returns the halves of the stick axes tilted past deadzone.
func stickDirections(h, v, deadzone float64) []cfg.StickDirection {
	var dirs []cfg.StickDirection
	switch {
	case h < -deadzone:
		dirs = append(dirs, cfg.StickLeft)
	case h > deadzone:
		dirs = append(dirs, cfg.StickRight)
	}
	switch {
	case v < -deadzone:
		dirs = append(dirs, cfg.StickUp)
	case v > deadzone:
		dirs = append(dirs, cfg.StickDown)
	}
	return dirs
}

func gamepadDevice(gp ebiten.GamepadID) components.Device {
	if d, ok := gamepadDevices[gp]; ok {
		return d
	}
	d := deviceFromName(ebiten.GamepadName(gp))
	gamepadDevices[gp] = d
	return d
}

// deviceFromName guesses the button labels of a pad from its name. Unknown
// pads get Xbox labels.
func deviceFromName(name string) components.Device {
	name = strings.ToLower(name)
	for _, hint := range []string{"playstation", "dualshock", "dualsense", "ps4", "ps5"} {
		if strings.Contains(name, hint) {
			return components.DevicePlayStation
		}
	}
	return components.DeviceXbox
}

// ToggleFullscreen flips between windowed and fullscreen and remembers the choice.
func ToggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	settings := LoadSettings()
	settings.Fullscreen = fullscreen
	if err := SaveSettings(settings); err != nil {
		logging.For("settings").Warn("failed to save settings", "err", err)
	}
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}
