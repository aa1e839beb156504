package archetypes

import (
	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Animation,
		components.Physics,
		components.State,
		components.Flash,
	)
	Hostile = newArchetype(
		tags.Hostile,
		components.Hostile,
		components.Object,
		components.Animation,
		components.State,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Wall,
		components.Object,
	)
	Trigger = newArchetype(
		tags.Trigger,
		components.Wall,
		components.Object,
	)
	Spike = newArchetype(
		tags.Spike,
		components.Spike,
		components.Wall,
		components.Object,
		components.Animation,
	)
	Booster = newArchetype(
		tags.Booster,
		components.Booster,
		components.Object,
		components.Animation,
		components.Tween,
	)
	Level = newArchetype(
		components.Level,
		components.Timer,
	)
	Camera = newArchetype(
		components.Camera,
	)
	MessagePoint = newArchetype(
		components.MessagePoint,
	)
	Intro = newArchetype(
		components.Intro,
		components.Tween,
		components.Expiry,
	)
	Tutorial = newArchetype(
		components.Tutorial,
		components.Tween,
	)
	VFXEffect = newArchetype(
		tags.VFX,
		components.Object,
		components.Animation,
		components.Expiry,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
