package components

import (
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/yohamta/donburi"
)

// SoundQueueData collects the sound effects raised during a tick. One
// entity per world holds it.
type SoundQueueData struct {
	Pending []cfg.SoundID
}

var SoundQueue = donburi.NewComponentType[SoundQueueData]()
