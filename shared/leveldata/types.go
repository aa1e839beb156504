// Package leveldata parses Shadow Runner levels authored in Tiled and the
// YAML level catalog. It has no dependencies on ebitengine, donburi, or
// resolv, so the CLI can inspect levels headlessly.
package leveldata

import (
	"errors"

	"github.com/automoto/shadow-runner/shared/walls"
)

var (
	// ErrLevelNotFound is returned when a level id is not in the catalog.
	ErrLevelNotFound = errors.New("level not found")
	// ErrNoWallLayer is returned when a map has no "walls" tile layer.
	ErrNoWallLayer = errors.New("no walls layer")
)

// WallLayerName is the tile layer holding typed wall tiles.
const WallLayerName = "walls"

// Rect is a merged block of wall tiles.
type Rect = walls.Rect[Kind]

// Point is a position in level pixels.
type Point struct {
	X, Y float64
}

// Area is an axis-aligned region in level pixels.
type Area struct {
	X, Y, W, H float64
}

// HostileSpawn places one hostile entity. Patrol holds the spawn point
// followed by the points of its patrol path.
type HostileSpawn struct {
	Type   string
	Area   Area
	Patrol []Point
}

// MessageSpawn is a sign that shows Text when the player is close.
type MessageSpawn struct {
	X, Y float64
	Text string
}

// Layout holds the object layers of a level.
type Layout struct {
	Spawn    Point
	Hostiles []HostileSpawn
	Boosters []Area
	Messages []MessageSpawn
}
