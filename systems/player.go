package systems

import (
	cfg "github.com/automoto/shadow-runner/config"

	"github.com/automoto/shadow-runner/components"
	"github.com/automoto/shadow-runner/systems/factory"
	"github.com/automoto/shadow-runner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// hitStunFrames is how long the hit pose is held after taking damage.
const hitStunFrames = 15

func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	// During the death sequence only the animation advances.
	if playerEntry.HasComponent(components.Death) {
		if anim := components.Animation.Get(playerEntry); anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
		return
	}

	input := getOrCreateInput(ecs)
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	state := components.State.Get(playerEntry)

	handleJumpInput(ecs, input, playerEntry, player, physics)
	handleMovementInput(input, player, physics)
	updatePlayerState(ecs, playerEntry, player, physics, state)

	if player.InvulnFrames > 0 {
		player.InvulnFrames--
	}
}

func handleJumpInput(e *ecs.ECS, input *components.InputData, playerEntry *donburi.Entry, player *components.PlayerData, physics *components.PhysicsData) {
	// Releasing jump early shortens the arc
	if input.JustReleased(cfg.ActionJump) && player.JumpHeld {
		if physics.SpeedY < 0 {
			physics.SpeedY *= cfg.Player.JumpCutFactor
		}
		player.JumpHeld = false
	}

	if !input.JustPressed(cfg.ActionJump) || !canJump(physics) {
		return
	}

	physics.SpeedY = -cfg.Player.JumpSpeed
	physics.OnGround = nil
	physics.AirFrames = cfg.Player.CoyoteFrames + 1
	player.JumpHeld = true
	PlaySFX(e, cfg.SoundJump)
	TriggerSquash(playerEntry, cfg.SquashStretch.JumpScaleX, cfg.SquashStretch.JumpScaleY)
	o := components.Object.Get(playerEntry)
	factory.SpawnJumpDust(e, o.X+o.W/2, o.Y+o.H)
}

// canJump allows a jump from the ground or shortly after walking off a ledge.
func canJump(physics *components.PhysicsData) bool {
	return physics.OnGround != nil || physics.AirFrames <= cfg.Player.CoyoteFrames
}

func handleMovementInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData) {
	accel := cfg.Player.Acceleration
	if physics.OnGround == nil {
		accel = cfg.Player.AirAcceleration
	}

	if input.Pressed(cfg.ActionMoveRight) {
		physics.SpeedX += accel
		player.Direction.X = cfg.DirectionRight
	}
	if input.Pressed(cfg.ActionMoveLeft) {
		physics.SpeedX -= accel
		player.Direction.X = cfg.DirectionLeft
	}
}

func updatePlayerState(ecs *ecs.ECS, playerEntry *donburi.Entry, player *components.PlayerData, physics *components.PhysicsData, state *components.StateData) {
	state.StateTimer++

	switch state.CurrentState {
	case cfg.Hit:
		if state.StateTimer > hitStunFrames {
			transitionToMovementState(physics, state)
		}

	case cfg.Jump, cfg.Fall:
		if physics.OnGround != nil {
			PlaySFX(ecs, cfg.SoundLand)
			TriggerSquash(playerEntry, cfg.SquashStretch.LandScaleX, cfg.SquashStretch.LandScaleY)
			o := components.Object.Get(playerEntry)
			factory.SpawnLandDust(ecs, o.X+o.W/2, o.Y+o.H)
			player.JumpHeld = false
		}
		transitionToMovementState(physics, state)

	default:
		transitionToMovementState(physics, state)
	}

	updatePlayerAnimation(state, components.Animation.Get(playerEntry))
}

// movementState picks the pose that matches the current motion.
func movementState(physics *components.PhysicsData) cfg.StateID {
	switch {
	case physics.OnGround == nil && physics.SpeedY < 0:
		return cfg.Jump
	case physics.OnGround == nil:
		return cfg.Fall
	case physics.SpeedX != 0:
		return cfg.Running
	default:
		return cfg.Idle
	}
}

func transitionToMovementState(physics *components.PhysicsData, state *components.StateData) {
	next := movementState(physics)
	if next == state.CurrentState {
		return
	}
	state.PreviousState = state.CurrentState
	state.CurrentState = next
	state.StateTimer = 0
}

// enterHitState interrupts movement with the hit pose.
func enterHitState(state *components.StateData) {
	state.PreviousState = state.CurrentState
	state.CurrentState = cfg.Hit
	state.StateTimer = 0
}

func updatePlayerAnimation(state *components.StateData, animData *components.AnimationData) {
	if animData == nil {
		return
	}

	animData.SetAnimation(state.CurrentState)

	if animData.CurrentAnimation != nil {
		animData.CurrentAnimation.Update()
	}
}
