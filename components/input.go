package components

import (
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/yohamta/donburi"
)

// Device is the kind of controller the player touched last. Hints on the
// menus are worded for it.
type Device int

const (
	DeviceKeyboard Device = iota
	DeviceXbox
	DevicePlayStation
)

// InputData is the merged action state of every keyboard and gamepad for
// this tick and the one before. Edges are derived from the two.
type InputData struct {
	Held   [cfg.ActionCount]bool
	Before [cfg.ActionCount]bool
	Device Device
}

// Advance moves this tick's state into Before and clears Held for polling.
func (in *InputData) Advance() {
	in.Before = in.Held
	in.Held = [cfg.ActionCount]bool{}
}

func (in *InputData) Pressed(id cfg.ActionID) bool {
	return in.Held[id]
}

func (in *InputData) JustPressed(id cfg.ActionID) bool {
	return in.Held[id] && !in.Before[id]
}

func (in *InputData) JustReleased(id cfg.ActionID) bool {
	return !in.Held[id] && in.Before[id]
}

var Input = donburi.NewComponentType[InputData]()
