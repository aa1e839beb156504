package systems

import (
	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/logging"
	"github.com/automoto/shadow-runner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartPlayerDeath begins the death sequence. The game over screen opens once
// the delay runs out. outOfWorld skips the death animation.
func StartPlayerDeath(ecs *ecs.ECS, e *donburi.Entry, outOfWorld bool) {
	if e.HasComponent(components.Death) {
		return
	}

	PlaySFX(ecs, cfg.SoundGameOver)
	TriggerScreenShake(ecs, cfg.ScreenShake.DeathIntensity, cfg.ScreenShake.DeathDuration)

	// Remove visual effect components to prevent rendering artifacts
	if e.HasComponent(components.Flash) {
		e.RemoveComponent(components.Flash)
	}
	if e.HasComponent(components.Squash) {
		e.RemoveComponent(components.Squash)
	}
	StopContinuousDamage(e)
	if e.HasComponent(components.DamageEvent) {
		e.RemoveComponent(components.DamageEvent)
	}

	donburi.Add(e, components.Death, &components.DeathData{
		Timer:      cfg.Death.DelayFrames,
		OutOfWorld: outOfWorld,
	})

	health := components.Health.Get(e)
	health.Current = 0

	physics := components.Physics.Get(e)
	physics.SpeedX = 0
	physics.SpeedY = 0

	state := components.State.Get(e)
	state.PreviousState = state.CurrentState
	state.CurrentState = cfg.Die
	state.StateTimer = 0

	if anim := components.Animation.Get(e); anim != nil && !outOfWorld {
		anim.SetAnimation(cfg.Die)
	}

	if timer, ok := levelTimer(ecs); ok {
		timer.Running = false
	}

	logging.For("death").Info("player died", "outOfWorld", outOfWorld)
}

// UpdateDeaths counts down the death delay.
func UpdateDeaths(ecs *ecs.ECS) {
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		if death.Timer > 0 {
			death.Timer--
		}
	})
}

// playerDying reports whether the death sequence has started, including the
// delay before the game over screen.
func playerDying(ecs *ecs.ECS) bool {
	playerEntry, ok := tags.Player.First(ecs.World)
	return ok && playerEntry.HasComponent(components.Death)
}

// IsGameOver reports whether the player's death sequence has finished.
func IsGameOver(ecs *ecs.ECS) bool {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || !playerEntry.HasComponent(components.Death) {
		return false
	}
	return components.Death.Get(playerEntry).Timer <= 0
}
