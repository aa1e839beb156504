package factory

import (
	"fmt"
	"image"

	"github.com/automoto/shadow-runner/assets"
	"github.com/automoto/shadow-runner/assets/animations"
	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// GenerateAnimations builds every clip configured for a sprite sheet key,
// e.g. "player" or "sand_ghoul". Sheets are read from
// images/spritesheets/<key>/<state>.png.
func GenerateAnimations(key string) *components.AnimationData {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		panic(fmt.Sprintf("no animations configured for %q", key))
	}
	animData := newAnimationData(key)
	animData.CurrentSheet = cfg.Idle
	for state, def := range defs {
		addClip(animData, key, state, def)
	}
	return animData
}

func newAnimationData(key string) *components.AnimationData {
	w, h := assets.FrameSize(key)
	return &components.AnimationData{
		Animations:   make(map[cfg.StateID]*animations.Animation),
		CachedFrames: make(map[cfg.StateID]map[int]*ebiten.Image),
		FrameWidth:   w,
		FrameHeight:  h,
	}
}

// addClip registers the clip of one state and cuts its frames out of the
// sheet through the shared frame cache.
func addClip(animData *components.AnimationData, key string, state cfg.StateID, def cfg.AnimationDef) {
	clip := animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
	if def.Hold {
		clip.Mode = animations.Hold
	}
	animData.Animations[state] = clip

	w, h := animData.FrameWidth, animData.FrameHeight
	frames := make(map[int]*ebiten.Image)
	for _, i := range clip.Frames() {
		sx := i * w
		frames[i] = assets.GetFrame(key, state, i, image.Rect(sx, 0, sx+w, h))
	}
	animData.CachedFrames[state] = frames
}
