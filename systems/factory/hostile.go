package factory

import (
	"github.com/automoto/shadow-runner/archetypes"
	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/logging"
	"github.com/automoto/shadow-runner/shared/gamemath"
	"github.com/automoto/shadow-runner/shared/leveldata"
	"github.com/automoto/shadow-runner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHostile spawns a patrolling hostile. Unknown types are skipped with a
// warning and nil is returned.
func CreateHostile(ecs *ecs.ECS, spawn leveldata.HostileSpawn) *donburi.Entry {
	hostileType, ok := cfg.Hostile.Types[spawn.Type]
	if !ok {
		logging.For("level").Warn("unknown hostile type", "type", spawn.Type, "x", spawn.Area.X, "y", spawn.Area.Y)
		return nil
	}

	hostile := archetypes.Hostile.Spawn(ecs)

	w, h := float64(hostileType.CollisionWidth), float64(hostileType.CollisionHeight)
	placeBody(ecs, hostile, spawn.Area.X, spawn.Area.Y, w, h, tags.ResolvHostile)

	points := make([]gamemath.Vec, 0, len(spawn.Patrol))
	for _, p := range spawn.Patrol {
		points = append(points, gamemath.Vec{X: p.X, Y: p.Y})
	}

	components.Hostile.SetValue(hostile, components.HostileData{
		TypeName:   spawn.Type,
		TypeConfig: &hostileType,
		Direction:  components.Vector{X: cfg.DirectionRight, Y: 0},
		Patrol:     gamemath.NewPatrol(points),
	})
	components.State.SetValue(hostile, components.StateData{
		CurrentState:  cfg.Walk,
		PreviousState: cfg.StateNone,
	})

	animData := GenerateAnimations(hostileType.SpriteSheetKey)
	animData.SetAnimation(cfg.Walk)
	components.Animation.Set(hostile, animData)

	return hostile
}
