package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction    Vector
	InvulnFrames int  // Invulnerability frames timer
	JumpHeld     bool // Jump pressed since takeoff, released early cuts the jump
}

var Player = donburi.NewComponentType[PlayerData]()

// BlindedData darkens the view around the player until it runs out.
type BlindedData struct {
	FramesRemaining int
}

var Blinded = donburi.NewComponentType[BlindedData]()
