package config

import "github.com/hajimehoshi/ebiten/v2"

type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionPause
	ActionFullscreen
	ActionMenuUp
	ActionMenuDown
	ActionMenuLeft
	ActionMenuRight
	ActionMenuSelect
	ActionMenuBack
	ActionCount
)

// InputBinding lists the keys and standard-layout gamepad buttons of an
// action. Any one of them held holds the action.
type InputBinding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
}

// StickDirection is one half of a left-stick axis.
type StickDirection int

const (
	StickLeft StickDirection = iota
	StickRight
	StickUp
	StickDown
)

type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Stick maps a tilted stick onto the actions it holds.
	Stick map[StickDirection][]ActionID
	// Deadzone is the axis magnitude below which the stick counts as centred.
	Deadzone float64
}

var Input InputConfig

func bind(keys []ebiten.Key, buttons ...ebiten.StandardGamepadButton) InputBinding {
	return InputBinding{Keys: keys, Buttons: buttons}
}

func init() {
	var (
		left  = []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}
		right = []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}
		up    = []ebiten.Key{ebiten.KeyUp, ebiten.KeyW}
		down  = []ebiten.Key{ebiten.KeyDown, ebiten.KeyS}
	)
	const (
		dpadLeft  = ebiten.StandardGamepadButtonLeftLeft
		dpadRight = ebiten.StandardGamepadButtonLeftRight
		dpadUp    = ebiten.StandardGamepadButtonLeftTop
		dpadDown  = ebiten.StandardGamepadButtonLeftBottom
		south     = ebiten.StandardGamepadButtonRightBottom // A, Cross
		east      = ebiten.StandardGamepadButtonRightRight  // B, Circle
		start     = ebiten.StandardGamepadButtonCenterRight
	)

	Input = InputConfig{
		Deadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:   bind(left, dpadLeft),
			ActionMoveRight:  bind(right, dpadRight),
			ActionJump:       bind([]ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyUp}, south),
			ActionPause:      bind([]ebiten.Key{ebiten.KeyEscape, ebiten.KeyP}, start),
			ActionFullscreen: bind([]ebiten.Key{ebiten.KeyF11}),
			ActionMenuUp:     bind(up, dpadUp),
			ActionMenuDown:   bind(down, dpadDown),
			ActionMenuLeft:   bind(left, dpadLeft),
			ActionMenuRight:  bind(right, dpadRight),
			ActionMenuSelect: bind([]ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}, south),
			ActionMenuBack:   bind([]ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace}, east),
		},
		Stick: map[StickDirection][]ActionID{
			StickLeft:  {ActionMoveLeft, ActionMenuLeft},
			StickRight: {ActionMoveRight, ActionMenuRight},
			StickUp:    {ActionMenuUp},
			StickDown:  {ActionMenuDown},
		},
	}
}
