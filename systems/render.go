package systems

import (
	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// cullPadding keeps sprites from popping in at the screen edges.
const cullPadding = 64.0

// UpdateHazardAnimations advances the spike, booster and effect animations.
// The player and hostiles animate in their own systems.
func UpdateHazardAnimations(ecs *ecs.ECS) {
	step := func(e *donburi.Entry) {
		if anim := components.Animation.Get(e); anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	}
	tags.Spike.Each(ecs.World, step)
	tags.Booster.Each(ecs.World, step)
	tags.VFX.Each(ecs.World, step)
}

// DrawAnimated renders entities with an Animation component based on their current frame and state.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	world := worldToScreen(camera, screen)
	minX, minY, maxX, maxY := visibleBounds(camera, screen, cullPadding)

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)

		// Viewport Culling
		if o.X+o.W < minX || o.X > maxX || o.Y+o.H < minY || o.Y > maxY {
			return
		}

		animData := components.Animation.Get(e)
		img := animData.CurrentFrame()
		if img == nil {
			drawPlaceholder(e, o, world, screen)
			return
		}

		if e.HasComponent(tags.Spike) {
			drawSpikes(img, o, world, screen)
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		// Anchor at bottom-center so feet line up with collision box
		drawOp.GeoM.Translate(-float64(animData.FrameWidth)/2, -float64(animData.FrameHeight))

		// Scaled around the feet.
		if e.HasComponent(components.Squash) {
			sq := components.Squash.Get(e)
			drawOp.GeoM.Scale(sq.ScaleX, sq.ScaleY)
		}
		if e.HasComponent(tags.Booster) {
			if tw := components.Tween.Get(e); tw.Value > 0 {
				drawOp.GeoM.Scale(1, float64(tw.Value))
			}
		}

		// Flip the sprite if facing left.
		if facingLeft(e) {
			drawOp.GeoM.Scale(-1, 1)
		}

		drawOp.GeoM.Translate(o.X+o.W/2, o.Y+o.H)
		drawOp.GeoM.Concat(world)

		if e.HasComponent(components.Player) {
			player := components.Player.Get(e)
			if player.InvulnFrames > 0 && player.InvulnFrames%4 < 2 && !e.HasComponent(components.Death) {
				drawOp.ColorScale.Scale(1, 0.5, 0.5, 0.8) // Red tint and semi-transparent
			}
		}

		// A flash replaces any other tint. The dying are never flashed.
		if e.HasComponent(components.Flash) && !e.HasComponent(components.Death) {
			if flash := components.Flash.Get(e); flash.Ticks > 0 {
				drawOp.ColorScale.Reset()
				drawOp.ColorScale.ScaleWithColor(flash.Color)
			}
		}

		screen.DrawImage(img, drawOp)
	})
}

func facingLeft(e *donburi.Entry) bool {
	if e.HasComponent(components.Player) {
		return components.Player.Get(e).Direction.X < 0
	}
	if e.HasComponent(components.Hostile) {
		return components.Hostile.Get(e).Direction.X < 0
	}
	return false
}

// drawSpikes repeats the spike frame over every cell of a merged rectangle.
func drawSpikes(img *ebiten.Image, o *components.ObjectData, world ebiten.GeoM, screen *ebiten.Image) {
	for y := o.Y; y < o.Y+o.H; y += cfg.GridSize {
		for x := o.X; x < o.X+o.W; x += cfg.GridSize {
			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			drawOp.GeoM.Translate(x, y)
			drawOp.GeoM.Concat(world)
			screen.DrawImage(img, drawOp)
		}
	}
}

// drawPlaceholder draws a flat box for entities without a sprite.
func drawPlaceholder(e *donburi.Entry, o *components.ObjectData, world ebiten.GeoM, screen *ebiten.Image) {
	c := cfg.Gray
	switch {
	case e.HasComponent(components.Player):
		c = cfg.Blue
	case e.HasComponent(components.Hostile):
		c = cfg.LightRed
	case e.HasComponent(tags.Spike):
		c = cfg.Orange
	case e.HasComponent(tags.Booster):
		c = cfg.Green
	}

	x0, y0 := world.Apply(o.X, o.Y)
	x1, y1 := world.Apply(o.X+o.W, o.Y+o.H)
	vector.FillRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), c, false)
}
