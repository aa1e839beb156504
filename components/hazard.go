package components

import "github.com/yohamta/donburi"

// BoosterData is a jump booster pad.
type BoosterData struct {
	Boost    float64
	Cap      float64
	Touching bool
}

var Booster = donburi.NewComponentType[BoosterData]()

// SpikeData is a merged spike rectangle.
type SpikeData struct {
	Damage   int
	Touching bool
}

var Spike = donburi.NewComponentType[SpikeData]()

// WallData records what a merged wall rectangle is made of.
type WallData struct {
	Kind  int
	Cells int
}

var Wall = donburi.NewComponentType[WallData]()
