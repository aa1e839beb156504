package components

import (
	"github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/shared/gamemath"
	"github.com/yohamta/donburi"
)

type HostileData struct {
	TypeName   string // "Sand_Ghoul", "Adept_Necromancer" etc...
	TypeConfig *config.HostileTypeConfig
	Direction  Vector
	Patrol     *gamemath.Patrol
	Velocity   gamemath.Vec
	Touching   bool // Player overlapped last frame
	InRange    bool // Player was inside the blind radius last frame
}

var Hostile = donburi.NewComponentType[HostileData]()
