package factory

import (
	"time"

	"github.com/automoto/shadow-runner/archetypes"
	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/logging"
	"github.com/automoto/shadow-runner/shared/leveldata"
	"github.com/automoto/shadow-runner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WallBounds converts a merged rectangle of grid cells into level pixels.
// Row 0 is the top of the map, so the lowest row index gives the top edge.
func WallBounds(r leveldata.Rect, tileSize int) (x, y, w, h float64) {
	ts := float64(tileSize)
	return float64(r.Left) * ts, float64(r.Bottom) * ts, float64(r.Width()) * ts, float64(r.Height()) * ts
}

// resolvTag is the collision tag of a wall kind.
func resolvTag(k leveldata.Kind) string {
	switch k {
	case leveldata.KindOutOfWorld:
		return tags.ResolvOutOfWorld
	case leveldata.KindNextLevel:
		return tags.ResolvNextLevel
	case leveldata.KindSpike:
		return tags.ResolvSpike
	}
	return tags.ResolvSolid
}

// CreateWalls merges the wall grid into rectangles and registers one collider
// per rectangle. It returns the number of rectangles.
func CreateWalls(ecs *ecs.ECS, grid *leveldata.WallGrid) int {
	start := time.Now()
	rects := grid.Rectangles()

	for _, r := range rects {
		CreateWall(ecs, r, grid.TileSize)
	}

	logger := logging.For("walls")
	if grid.Skipped > 0 {
		logger.Warn("tiles without a known kind were ignored", "count", grid.Skipped)
	}
	logger.Debug("colliders built",
		"cells", grid.Count(), "rectangles", len(rects), "took", time.Since(start))
	return len(rects)
}

// CreateWall registers a single merged rectangle.
func CreateWall(ecs *ecs.ECS, r leveldata.Rect, tileSize int) *donburi.Entry {
	var wall *donburi.Entry
	switch {
	case r.Kind == leveldata.KindSpike:
		wall = archetypes.Spike.Spawn(ecs)
		components.Spike.SetValue(wall, components.SpikeData{Damage: cfg.Spike.Damage})
		anim := GenerateAnimations("spike")
		anim.SetAnimation(cfg.SpikeCycle)
		components.Animation.Set(wall, anim)
	case r.Kind.IsTrigger():
		wall = archetypes.Trigger.Spawn(ecs)
	default:
		wall = archetypes.Wall.Spawn(ecs)
	}

	components.Wall.SetValue(wall, components.WallData{
		Kind:  int(r.Kind),
		Cells: r.Width() * r.Height(),
	})

	x, y, w, h := WallBounds(r, tileSize)
	placeBody(ecs, wall, x, y, w, h, resolvTag(r.Kind))
	return wall
}
