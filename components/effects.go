package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData jolts the camera with a strength that decays to zero over
// Total ticks.
type ScreenShakeData struct {
	Strength float64 // pixels
	Total    int
	Elapsed  int
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tints a sprite while Ticks is positive.
type FlashData struct {
	Ticks int
	Color color.Color
}

var Flash = donburi.NewComponentType[FlashData]()

// SquashData deforms a sprite around its feet. Both axes ease back to 1.
type SquashData struct {
	X, Y           *gween.Tween
	ScaleX, ScaleY float64
}

var Squash = donburi.NewComponentType[SquashData]()

// ExpiryData removes an entity after Ticks ticks, or once its animation
// has played through when Ticks is zero.
type ExpiryData struct {
	Ticks int
}

var Expiry = donburi.NewComponentType[ExpiryData]()

// TweenData drives one eased value, such as a fade or a pulse.
type TweenData struct {
	Tween *gween.Tween
	Value float32
	Done  bool
}

var Tween = donburi.NewComponentType[TweenData]()
