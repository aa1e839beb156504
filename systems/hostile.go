package systems

import (
	"math"

	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/logging"
	"github.com/automoto/shadow-runner/shared/gamemath"
	"github.com/automoto/shadow-runner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHostiles walks every hostile along its patrol and applies contact
// damage and blindness to the player.
func UpdateHostiles(ecs *ecs.ECS) {
	var playerObj *resolv.Object
	playerEntry, ok := tags.Player.First(ecs.World)
	alive := ok && !playerEntry.HasComponent(components.Death)
	if alive {
		playerObj = components.Object.Get(playerEntry).Object
	}

	tags.Hostile.Each(ecs.World, func(e *donburi.Entry) {
		hostile := components.Hostile.Get(e)
		obj := components.Object.Get(e)

		stepPatrol(hostile, obj.Object)

		if anim := components.Animation.Get(e); anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}

		if !alive {
			hostile.Touching = false
			return
		}
		updateHostileContact(ecs, playerEntry, playerObj, hostile, obj.Object)
	})
}

func stepPatrol(hostile *components.HostileData, obj *resolv.Object) {
	if hostile.Patrol == nil {
		return
	}

	pos := gamemath.Vec{X: obj.X, Y: obj.Y}
	step := hostile.Patrol.Step(pos, hostile.Velocity, cfg.Hostile.PatrolSpeed, cfg.Hostile.TurnSpeed)
	if step.Snap != nil {
		obj.X, obj.Y = step.Snap.X, step.Snap.Y
	}

	hostile.Velocity = step.Velocity
	obj.X += step.Velocity.X
	obj.Y += step.Velocity.Y

	// Face the way we walk; vertical legs keep the last facing.
	if step.Velocity.X > 0 {
		hostile.Direction.X = cfg.DirectionRight
	} else if step.Velocity.X < 0 {
		hostile.Direction.X = cfg.DirectionLeft
	}
}

func updateHostileContact(ecs *ecs.ECS, playerEntry *donburi.Entry, playerObj *resolv.Object, hostile *components.HostileData, obj *resolv.Object) {
	now := touching(playerObj, obj)
	if now && !hostile.Touching {
		QueueDamage(playerEntry, hostile.TypeConfig.Damage, true, hostile.TypeName)
	}
	hostile.Touching = now

	if !hostile.TypeConfig.Blinds {
		return
	}
	inRange := centerDistance(playerObj, obj) <= cfg.Hostile.BlindRadius
	if inRange && !hostile.InRange {
		BlindPlayer(playerEntry, cfg.Hostile.BlindFrames)
		logging.For("hostile").Debug("player blinded", "by", hostile.TypeName)
	}
	hostile.InRange = inRange
}

func centerDistance(a, b *resolv.Object) float64 {
	dx := (a.X + a.W/2) - (b.X + b.W/2)
	dy := (a.Y + a.H/2) - (b.Y + b.H/2)
	return math.Hypot(dx, dy)
}
