package systems

import (
	"github.com/automoto/shadow-runner/components"
	"github.com/automoto/shadow-runner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Spikes block like walls; their damage is applied by the trigger system.
var blockingTags = []string{tags.ResolvSolid, tags.ResolvSpike}

// UpdateCollisions moves the player by its speed, one axis at a time,
// stopping flush against anything that blocks.
func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		moveX(physics, obj.Object)
		moveY(physics, obj.Object)
	})
}

func moveX(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}
	if check := object.Check(dx, 0, blockingTags...); check != nil {
		// Only blockers level with the body stop it; one it merely grazes
		// at a corner is handled by the vertical pass.
		for _, solid := range check.ObjectsByTags(blockingTags...) {
			if object.Y+object.H > solid.Y && object.Y < solid.Y+solid.H {
				dx = check.ContactWithObject(solid).X()
				physics.SpeedX = 0
				break
			}
		}
	}
	object.X += dx
}

func moveY(physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = nil
	dy := physics.SpeedY

	// A body at rest probes one pixel down so it still finds its floor.
	probe := dy
	if dy >= 0 {
		probe++
	}
	if check := object.Check(0, probe, blockingTags...); check != nil {
		if solids := check.ObjectsByTags(blockingTags...); len(solids) > 0 {
			dy = check.ContactWithObject(solids[0]).Y()
			if physics.SpeedY >= 0 {
				physics.OnGround = solids[0]
			}
			physics.SpeedY = 0
		}
	}
	object.Y += dy
}
