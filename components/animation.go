package components

import (
	"github.com/automoto/shadow-runner/assets/animations"
	"github.com/automoto/shadow-runner/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// AnimationData holds every clip of a sprite and the frames cut from its
// sheets. Frames are keyed by state, then by sheet index.
type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentSheet     config.StateID
	FrameWidth       int
	FrameHeight      int

	CachedFrames map[config.StateID]map[int]*ebiten.Image
	Animations   map[config.StateID]*animations.Animation
}

// SetAnimation switches to the clip of state and plays it from the start.
// Asking for the clip already playing is a no-op. A state without a clip
// draws nothing.
func (a *AnimationData) SetAnimation(state config.StateID) {
	clip := a.Animations[state]
	if a.CurrentSheet == state && a.CurrentAnimation == clip {
		return
	}
	a.CurrentSheet = state
	a.CurrentAnimation = clip
	if clip != nil {
		clip.Restart()
	}
}

// CurrentFrame returns the image to draw this tick, or nil.
func (a *AnimationData) CurrentFrame() *ebiten.Image {
	if a.CurrentAnimation == nil {
		return nil
	}
	return a.CachedFrames[a.CurrentSheet][a.CurrentAnimation.Frame()]
}

var Animation = donburi.NewComponentType[AnimationData]()
