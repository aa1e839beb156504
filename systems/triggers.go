package systems

import (
	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/logging"
	"github.com/automoto/shadow-runner/shared/gamemath"
	"github.com/automoto/shadow-runner/systems/factory"
	"github.com/automoto/shadow-runner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// contactMargin lets objects that only share an edge count as touching, so
// standing on a spike or against a gate registers.
const contactMargin = 1.0

// outOfWorldMargin is how far below the map the player may fall before the
// run ends even without an out-of-world tile.
const outOfWorldMargin = cfg.GridSize * 4

var contactOffsets = [...][2]float64{
	{0, 0},
	{0, contactMargin},
	{0, -contactMargin},
	{contactMargin, 0},
	{-contactMargin, 0},
}

// touching reports whether two boxes overlap or share an edge.
func touching(a, b *resolv.Object) bool {
	return a.X-contactMargin < b.X+b.W && b.X < a.X+a.W+contactMargin &&
		a.Y-contactMargin < b.Y+b.H && b.Y < a.Y+a.H+contactMargin
}

// touchingObjects returns the objects carrying any of the tags that touch obj.
// The space lookup is cell based, so every candidate is confirmed by box.
func touchingObjects(obj *resolv.Object, tagNames ...string) []*resolv.Object {
	var found []*resolv.Object
	seen := make(map[*resolv.Object]bool)

	for _, off := range contactOffsets {
		check := obj.Check(off[0], off[1], tagNames...)
		if check == nil {
			continue
		}
		for _, o := range check.ObjectsByTags(tagNames...) {
			if seen[o] || !touching(obj, o) {
				continue
			}
			seen[o] = true
			found = append(found, o)
		}
	}
	return found
}

// entriesOf returns the entities linked to resolv objects.
func entriesOf(objs []*resolv.Object) map[donburi.Entity]bool {
	entries := make(map[donburi.Entity]bool, len(objs))
	for _, o := range objs {
		if e, ok := o.Data.(*donburi.Entry); ok && e != nil {
			entries[e.Entity()] = true
		}
	}
	return entries
}

// UpdateTriggers handles the player touching trigger walls, spikes and jump
// boosters.
func UpdateTriggers(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || playerEntry.HasComponent(components.Death) {
		return
	}
	playerObj := components.Object.Get(playerEntry)
	logger := logging.For("triggers")

	if fellOut(ecs, playerObj.Object) || len(touchingObjects(playerObj.Object, tags.ResolvOutOfWorld)) > 0 {
		logger.Debug("player left the world", "x", playerObj.X, "y", playerObj.Y)
		StartPlayerDeath(ecs, playerEntry, true)
		return
	}

	if len(touchingObjects(playerObj.Object, tags.ResolvNextLevel)) > 0 {
		logger.Debug("player reached the gate", "x", playerObj.X, "y", playerObj.Y)
		CompleteLevel(ecs)
		return
	}

	updateSpikeContacts(ecs, playerEntry, playerObj.Object)
	updateBoosterContacts(ecs, playerEntry, playerObj.Object)
}

func fellOut(ecs *ecs.ECS, obj *resolv.Object) bool {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return false
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return false
	}
	return obj.Y > float64(level.Height)+outOfWorldMargin
}

func updateSpikeContacts(ecs *ecs.ECS, playerEntry *donburi.Entry, playerObj *resolv.Object) {
	touched := entriesOf(touchingObjects(playerObj, tags.ResolvSpike))

	tags.Spike.Each(ecs.World, func(e *donburi.Entry) {
		spike := components.Spike.Get(e)
		now := touched[e.Entity()]
		if now && !spike.Touching {
			QueueDamage(playerEntry, spike.Damage, true, "spike")
		}
		spike.Touching = now
	})
}

func updateBoosterContacts(ecs *ecs.ECS, playerEntry *donburi.Entry, playerObj *resolv.Object) {
	touched := entriesOf(touchingObjects(playerObj, tags.ResolvBooster))

	tags.Booster.Each(ecs.World, func(e *donburi.Entry) {
		booster := components.Booster.Get(e)
		now := touched[e.Entity()]
		if now && !booster.Touching {
			boostPlayer(ecs, playerEntry, booster)
			factory.PulseBooster(e)
			o := components.Object.Get(e)
			factory.SpawnBoostBurst(ecs, o.X+o.W/2, o.Y)
		}
		booster.Touching = now
	})
}

func boostPlayer(ecs *ecs.ECS, playerEntry *donburi.Entry, booster *components.BoosterData) {
	physics := components.Physics.Get(playerEntry)
	physics.SpeedY = gamemath.BoostVelocity(physics.SpeedY, booster.Boost, booster.Cap)
	physics.OnGround = nil
	physics.AirFrames = cfg.Player.CoyoteFrames + 1

	// A boosted jump is not cut short by releasing the jump key.
	components.Player.Get(playerEntry).JumpHeld = false

	PlaySFX(ecs, cfg.SoundBoost)
	TriggerSquash(playerEntry, cfg.SquashStretch.JumpScaleX, cfg.SquashStretch.JumpScaleY)
}

// inContact reports whether any hostile or spike is touching the player.
func inContact(w donburi.World) bool {
	found := false
	tags.Spike.Each(w, func(e *donburi.Entry) {
		found = found || components.Spike.Get(e).Touching
	})
	tags.Hostile.Each(w, func(e *donburi.Entry) {
		found = found || components.Hostile.Get(e).Touching
	})
	return found
}
