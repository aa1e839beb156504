package systems

import (
	"github.com/automoto/shadow-runner/assets"
	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/fonts"
	"github.com/automoto/shadow-runner/shared/gamemath"
	"github.com/automoto/shadow-runner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

var (
	heartIcon      *ebiten.Image
	heartEmptyIcon *ebiten.Image
	hudDrawOp      = &ebiten.DrawImageOptions{}
)

// DrawHUD renders the player's hearts in the top-left corner and the level
// stopwatch in the top-right corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		drawHearts(components.Health.Get(playerEntry), screen)
	}
	drawTimer(ecs, screen)
}

func drawHearts(hp *components.HealthData, screen *ebiten.Image) {
	// Lazy load heart icons
	if heartIcon == nil {
		heartIcon = assets.MustIconImage("heart.png")
		heartEmptyIcon = assets.MustIconImage("heart_empty.png")
	}

	scale := cfg.HUD.HeartSize / float64(heartIcon.Bounds().Dx())
	for i := 0; i < hp.Max; i++ {
		icon := heartIcon
		if i >= hp.Current {
			icon = heartEmptyIcon
		}
		hudDrawOp.GeoM.Reset()
		hudDrawOp.GeoM.Scale(scale, scale)
		hudDrawOp.GeoM.Translate(cfg.HUD.Margin+float64(i)*(cfg.HUD.HeartSize+cfg.HUD.HeartGap), cfg.HUD.Margin)
		screen.DrawImage(icon, hudDrawOp)
	}
}

func drawTimer(ecs *ecs.ECS, screen *ebiten.Image) {
	if _, ok := levelTimer(ecs); !ok {
		return
	}
	face := fonts.Bold.Get()
	label := gamemath.FormatDuration(Elapsed(ecs))
	bounds := text.BoundString(face, label)

	x := screen.Bounds().Dx() - int(cfg.HUD.Margin) - bounds.Dx()
	y := int(cfg.HUD.Margin) + bounds.Dy()
	text.Draw(screen, label, face, x, y, cfg.HUD.TimerColor)
}
