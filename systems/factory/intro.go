package factory

import (
	"github.com/automoto/shadow-runner/archetypes"
	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/shared/leveldata"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateIntro shows a level's intro text. It fades in and removes itself
// after its lifetime.
func CreateIntro(ecs *ecs.ECS, intro *leveldata.Intro) *donburi.Entry {
	entry := archetypes.Intro.Spawn(ecs)

	seconds := intro.Seconds
	if seconds <= 0 {
		seconds = cfg.Tutorial.IntroSeconds
	}

	components.Intro.SetValue(entry, components.IntroData{Intro: intro})
	components.Tween.SetValue(entry, fadeIn())
	components.Expiry.SetValue(entry, components.ExpiryData{Ticks: max(int(seconds*cfg.TPS), 1)})

	return entry
}

// CreateTutorial starts the walkthrough of the first level.
func CreateTutorial(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Tutorial.Spawn(ecs)
	components.Tutorial.SetValue(entry, components.TutorialData{Step: components.TutorialMoveRight})
	components.Tween.SetValue(entry, fadeIn())
	return entry
}

// RestartFade replays the fade-in of a text entity.
func RestartFade(entry *donburi.Entry) {
	components.Tween.SetValue(entry, fadeIn())
}

func fadeIn() components.TweenData {
	return components.TweenData{
		Tween: gween.New(0, 1, cfg.Tutorial.FadeTime, ease.OutQuad),
	}
}
