package factory

import (
	"github.com/automoto/shadow-runner/archetypes"
	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its feet on the spawn point, facing
// right at full health.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight)
	placeBody(ecs, player, x-w/2, y-h, w, h, tags.ResolvPlayer)

	components.Player.SetValue(player, components.PlayerData{
		Direction: components.Vector{X: cfg.DirectionRight},
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:  cfg.Player.Gravity,
		Friction: cfg.Player.Friction,
		MaxSpeed: cfg.Player.MaxSpeed,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	anim := GenerateAnimations("player")
	anim.SetAnimation(cfg.Idle)
	components.Animation.Set(player, anim)

	// Kept attached so a hit never changes the player's archetype.
	components.Flash.SetValue(player, components.FlashData{Color: cfg.White})

	return player
}
