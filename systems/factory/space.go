package factory

import (
	"github.com/automoto/shadow-runner/archetypes"
	"github.com/automoto/shadow-runner/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the collision space of a level. Cells match the tile
// grid so merged walls span as few cells as the tiles they came from.
func CreateSpace(ecs *ecs.ECS, width, height, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, resolv.NewSpace(width, height, cellSize, cellSize))
	return space
}

// placeBody gives entry a w x h body with its top-left at (x, y) and adds
// it to the level's space when there is one. obj.Data points back at entry.
func placeBody(ecs *ecs.ECS, entry *donburi.Entry, x, y, w, h float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}
