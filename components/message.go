package components

import "github.com/yohamta/donburi"

// MessagePointData is a sign placed in the level, shown when the player is near
type MessagePointData struct {
	Text string
	X, Y float64
}

var MessagePoint = donburi.NewComponentType[MessagePointData]()

// MessageStateData is a singleton tracking the active sign
type MessageStateData struct {
	Active       *donburi.Entry
	DisplayTimer int // Frames the current sign stays up after the player leaves
}

var MessageState = donburi.NewComponentType[MessageStateData]()
