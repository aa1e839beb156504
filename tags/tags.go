package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Wall    = donburi.NewTag().SetName("Wall")
	Hostile = donburi.NewTag().SetName("Hostile")
	Booster = donburi.NewTag().SetName("Booster")
	Spike   = donburi.NewTag().SetName("Spike")
	Trigger = donburi.NewTag().SetName("Trigger")
	VFX     = donburi.NewTag().SetName("VFX")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvOutOfWorld = "outofworld"
	ResolvNextLevel  = "nextlevel"
	ResolvSpike      = "spike"
	ResolvBooster    = "booster"
	ResolvPlayer     = "Player"
	ResolvHostile    = "Hostile"
)
