package factory

import (
	"github.com/automoto/shadow-runner/archetypes"
	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// vfxKey is the sprite sheet directory of every effect.
const vfxKey = "vfx"

// SpawnVFX plays a one-shot effect with its bottom-center at (x, y). The
// entity removes itself when the animation has played once.
func SpawnVFX(ecs *ecs.ECS, x, y float64, effect cfg.StateID) *donburi.Entry {
	if _, ok := components.Space.First(ecs.World); !ok {
		return nil
	}
	animData := createVFXAnimation(effect)
	if animData == nil {
		return nil
	}

	entry := archetypes.VFXEffect.Spawn(ecs)

	w, h := float64(animData.FrameWidth), float64(animData.FrameHeight)
	placeBody(ecs, entry, x-w/2, y-h, w, h)

	components.Animation.Set(entry, animData)
	animData.SetAnimation(effect)

	// Zero ticks: gone once the animation has played.
	components.Expiry.SetValue(entry, components.ExpiryData{})
	return entry
}

// createVFXAnimation builds the clip of a single effect. Effects share one
// sheet key but each has its own state.
func createVFXAnimation(effect cfg.StateID) *components.AnimationData {
	def, ok := cfg.CharacterAnimations[vfxKey][effect]
	if !ok {
		return nil
	}
	animData := newAnimationData(vfxKey)
	animData.CurrentSheet = effect
	addClip(animData, vfxKey, effect, def)
	return animData
}

// SpawnJumpDust kicks up dust at the player's feet
func SpawnJumpDust(ecs *ecs.ECS, x, y float64) {
	SpawnVFX(ecs, x, y, cfg.JumpDust)
}

// SpawnLandDust spawns landing dust at the player's feet
func SpawnLandDust(ecs *ecs.ECS, x, y float64) {
	SpawnVFX(ecs, x, y, cfg.LandDust)
}

// SpawnBoostBurst flares on top of a booster.
func SpawnBoostBurst(ecs *ecs.ECS, x, y float64) {
	SpawnVFX(ecs, x, y, cfg.BoostBurst)
}

// SpawnHitSpark marks where the player was hurt.
func SpawnHitSpark(ecs *ecs.ECS, x, y float64) {
	SpawnVFX(ecs, x, y, cfg.HitSpark)
}
