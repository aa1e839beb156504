package systems

import (
	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		// Freeze in place during the death delay
		if e.HasComponent(components.Death) {
			return
		}

		physics := components.Physics.Get(e)

		friction := physics.Friction
		if physics.OnGround == nil {
			friction = cfg.Player.AirFriction
		}
		physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, friction)
		physics.SpeedX = gamemath.ClampSpeed(physics.SpeedX, physics.MaxSpeed)

		physics.SpeedY += physics.Gravity
		if physics.SpeedY > cfg.Physics.MaxFallSpeed {
			physics.SpeedY = cfg.Physics.MaxFallSpeed
		}
		if physics.SpeedY < cfg.Physics.MaxRiseSpeed {
			physics.SpeedY = cfg.Physics.MaxRiseSpeed
		}

		if physics.OnGround != nil {
			physics.AirFrames = 0
		} else {
			physics.AirFrames++
		}
	})
}

// UpdateObjects refreshes the space cells of every moved object.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		components.Object.Get(e).Update()
	}
}
