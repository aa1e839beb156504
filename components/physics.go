package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	AccelX   float64
	Gravity  float64
	Friction float64
	MaxSpeed float64
	OnGround *resolv.Object
	// Frames since the body last stood on ground, for coyote jumps.
	AirFrames int
}

var Physics = donburi.NewComponentType[PhysicsData]()

// ObjectData is an entity's body in the collision space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the level's collision space singleton.
var Space = donburi.NewComponentType[resolv.Space]()
