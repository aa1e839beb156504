package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/fonts"
	"github.com/automoto/shadow-runner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// debugColors maps resolv tags to outline colours, checked in order.
var debugColors = []struct {
	tag string
	c   color.RGBA
}{
	{tags.ResolvSolid, color.RGBA{100, 100, 100, 255}},
	{tags.ResolvOutOfWorld, color.RGBA{160, 0, 200, 255}},
	{tags.ResolvNextLevel, color.RGBA{255, 215, 0, 255}},
	{tags.ResolvSpike, color.RGBA{255, 120, 0, 255}},
	{tags.ResolvBooster, color.RGBA{0, 255, 0, 255}},
	{tags.ResolvHostile, color.RGBA{255, 0, 0, 255}},
	{tags.ResolvPlayer, color.RGBA{0, 0, 255, 255}},
}

func debugColor(obj *resolv.Object) color.RGBA {
	for _, dc := range debugColors {
		if obj.HasTags(dc.tag) {
			return dc.c
		}
	}
	return color.RGBA{0, 255, 255, 255} // Cyan default
}

// UpdateDebug toggles collider drawing with F1.
func UpdateDebug(ecs *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		cfg.Debug.DrawColliders = !cfg.Debug.DrawColliders
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawColliders {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	world := worldToScreen(camera, screen)
	minX, minY, maxX, maxY := visibleBounds(camera, screen, 0)

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		// Cull objects outside viewport
		if obj.X+obj.W < minX || obj.X > maxX || obj.Y+obj.H < minY || obj.Y > maxY {
			continue
		}

		c := debugColor(obj)
		x0, y0 := world.Apply(obj.X, obj.Y)
		x1, y1 := world.Apply(obj.X+obj.W, obj.Y+obj.H)
		vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 1, c, false)
	}

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		levelData := components.Level.Get(levelEntry)
		label := fmt.Sprintf("level %d  walls %d  objects %d", levelData.LevelID, levelData.WallCount, len(space.Objects()))
		text.Draw(screen, label, fonts.Small.Get(), 8, screen.Bounds().Dy()-8, cfg.Yellow)
	}
}
