package factory

import (
	"github.com/automoto/shadow-runner/archetypes"
	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/shared/leveldata"
	"github.com/automoto/shadow-runner/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBooster places a booster pad over area. An empty area falls back
// to a single tile.
func CreateBooster(ecs *ecs.ECS, area leveldata.Area) *donburi.Entry {
	booster := archetypes.Booster.Spawn(ecs)

	w, h := area.W, area.H
	if w <= 0 || h <= 0 {
		w, h = cfg.GridSize, cfg.GridSize
	}
	placeBody(ecs, booster, area.X, area.Y, w, h, tags.ResolvBooster)

	components.Booster.SetValue(booster, components.BoosterData{
		Boost: cfg.Booster.Boost,
		Cap:   cfg.Booster.Cap,
	})
	components.Tween.SetValue(booster, components.TweenData{Value: 1, Done: true})

	animData := GenerateAnimations("booster")
	animData.SetAnimation(cfg.BoosterIdle)
	components.Animation.Set(booster, animData)

	return booster
}

// PulseBooster restarts the bounce animation of a booster.
func PulseBooster(booster *donburi.Entry) {
	tw := components.Tween.Get(booster)
	tw.Tween = gween.New(float32(cfg.Booster.PulseScale), 1, cfg.Booster.PulseTime, ease.OutBack)
	tw.Value = float32(cfg.Booster.PulseScale)
	tw.Done = false
}
