package systems

import (
	"image/color"

	"github.com/automoto/shadow-runner/components"
	"github.com/automoto/shadow-runner/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const tick = 1.0 / float32(config.TPS)

// UpdateEffects ages flashes, squashes, tweens and expiring entities.
func UpdateEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		if f := components.Flash.Get(e); f.Ticks > 0 {
			f.Ticks--
		}
	})
	components.Tween.Each(ecs.World, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		if tw.Tween != nil && !tw.Done {
			tw.Value, tw.Done = tw.Tween.Update(tick)
		}
	})
	updateSquash(ecs)
	removeExpired(ecs)
}

func updateSquash(ecs *ecs.ECS) {
	var settled []*donburi.Entry
	components.Squash.Each(ecs.World, func(e *donburi.Entry) {
		sq := components.Squash.Get(e)
		x, doneX := sq.X.Update(tick)
		y, doneY := sq.Y.Update(tick)
		sq.ScaleX, sq.ScaleY = float64(x), float64(y)
		if doneX && doneY {
			settled = append(settled, e)
		}
	})
	for _, e := range settled {
		e.RemoveComponent(components.Squash)
	}
}

// expired reports whether an entity has outlived its Expiry.
func expired(ex *components.ExpiryData, anim *components.AnimationData) bool {
	if ex.Ticks == 0 {
		return anim != nil && anim.CurrentAnimation != nil && anim.CurrentAnimation.Done()
	}
	ex.Ticks--
	return ex.Ticks == 0
}

func removeExpired(ecs *ecs.ECS) {
	var dead []*donburi.Entry
	components.Expiry.Each(ecs.World, func(e *donburi.Entry) {
		var anim *components.AnimationData
		if e.HasComponent(components.Animation) {
			anim = components.Animation.Get(e)
		}
		if expired(components.Expiry.Get(e), anim) {
			dead = append(dead, e)
		}
	})

	for _, e := range dead {
		if e.HasComponent(components.Object) {
			if obj := components.Object.Get(e); obj.Space != nil {
				obj.Space.Remove(obj.Object)
			}
		}
		e.Remove()
	}
}

// TriggerSquash deforms entry to (scaleX, scaleY) and lets it spring back.
func TriggerSquash(entry *donburi.Entry, scaleX, scaleY float64) {
	d := config.SquashStretch.Recover
	sq := components.SquashData{
		X:      gween.New(float32(scaleX), 1, d, ease.OutBack),
		Y:      gween.New(float32(scaleY), 1, d, ease.OutBack),
		ScaleX: scaleX,
		ScaleY: scaleY,
	}
	if !entry.HasComponent(components.Squash) {
		entry.AddComponent(components.Squash)
	}
	components.Squash.SetValue(entry, sq)
}

// TriggerFlash tints entry's sprite with c for a number of ticks.
func TriggerFlash(entry *donburi.Entry, ticks int, c color.Color) {
	if !entry.HasComponent(components.Flash) {
		entry.AddComponent(components.Flash)
	}
	components.Flash.SetValue(entry, components.FlashData{Ticks: ticks, Color: c})
}
