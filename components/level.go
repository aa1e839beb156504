package components

import (
	"github.com/automoto/shadow-runner/assets"
	"github.com/automoto/shadow-runner/shared/leveldata"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type LevelData struct {
	Catalog      *leveldata.Catalog
	CurrentLevel *assets.Level
	LevelID      int
	// WallCount is the number of merged wall rectangles in the current level.
	WallCount int
	// Finished is set when the last level was completed or a missing level
	// was selected.
	Finished bool
}

var Level = donburi.NewComponentType[LevelData]()

// LevelChangeRequestData queues a level switch, applied once per frame.
type LevelChangeRequestData struct {
	LevelID int
}

var LevelChangeRequest = donburi.NewComponentType[LevelChangeRequestData]()

// TimerData is the per-level stopwatch, counted in ticks.
type TimerData struct {
	Ticks   int
	Running bool
}

var Timer = donburi.NewComponentType[TimerData]()

// CameraData is the view into the level. Position is its centre in world
// pixels.
type CameraData struct {
	Position math.Vec2
	// LookAheadX leads the camera in the direction the player runs.
	LookAheadX float64
	Zoom       float64
	ZoomTween  *gween.Tween
}

var Camera = donburi.NewComponentType[CameraData]()
