package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"io/fs"
	"path"

	"github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/logging"
	"github.com/automoto/shadow-runner/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:images
	animationFS embed.FS
)

const levelDir = "levels"

// Level is one loaded map: its rendered background plus the wall grid and
// object layout the factories build entities from.
type Level struct {
	ID         int
	Name       string
	Path       string
	Background *ebiten.Image
	Walls      *leveldata.WallGrid
	Layout     *leveldata.Layout
	Width      int
	Height     int
}

// LevelFS exposes the embedded level files.
func LevelFS() fs.FS {
	sub, err := fs.Sub(assetFS, levelDir)
	if err != nil {
		panic(err)
	}
	return sub
}

// DefaultCatalog returns the embedded catalog.yaml.
func DefaultCatalog() []byte {
	data, err := assetFS.ReadFile(path.Join(levelDir, "catalog.yaml"))
	if err != nil {
		panic(fmt.Sprintf("Failed to read embedded catalog: %v", err))
	}
	return data
}

type LevelLoader struct {
	cache map[int]*Level
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{cache: make(map[int]*Level)}
}

type AnimationLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewAnimationLoader() *AnimationLoader {
	return &AnimationLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

// LoadImage decodes an embedded image once and caches it.
func (l *AnimationLoader) LoadImage(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	imgBytes, err := animationFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}

	l.cache[path] = img
	return img, nil
}

func (l *AnimationLoader) MustLoadImage(path string) *ebiten.Image {
	img, err := l.LoadImage(path)
	if err != nil {
		panic(err)
	}
	return img
}

// GetFrame returns a cached sub-image for a specific animation frame.
func (l *AnimationLoader) GetFrame(dir string, state config.StateID, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	key := fmt.Sprintf("%s/%s/%d", dir, state.String(), frameIndex)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	sheetPath := fmt.Sprintf("images/spritesheets/%s/%s.png", dir, state.String())
	sheet := l.MustLoadImage(sheetPath)

	frame := sheet.SubImage(srcRect).(*ebiten.Image)
	l.frameCache[key] = frame

	return frame
}

func iconPath(name string) string {
	return path.Join("images", "icons", name)
}

// HasIcon reports whether an icon with this file name is embedded.
func HasIcon(name string) bool {
	if name == "" {
		return false
	}
	_, err := fs.Stat(animationFS, iconPath(name))
	return err == nil
}

// IconImage loads an icon from images/icons. Icon names can come from a user
// catalog, so a missing one is an error rather than a panic.
func IconImage(name string) (*ebiten.Image, error) {
	if !HasIcon(name) {
		return nil, fmt.Errorf("icon %q: %w", name, fs.ErrNotExist)
	}
	return animationLoader.LoadImage(iconPath(name))
}

// MustIconImage is IconImage for the icons the game itself ships with.
func MustIconImage(name string) *ebiten.Image {
	img, err := IconImage(name)
	if err != nil {
		panic(err)
	}
	return img
}

func GetFrame(dir string, state config.StateID, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	return animationLoader.GetFrame(dir, state, frameIndex, srcRect)
}

// MustLoadLevels loads every level of the catalog, for preloading.
func (l *LevelLoader) MustLoadLevels(catalog *leveldata.Catalog) []*Level {
	levels := make([]*Level, 0, catalog.Len())
	for _, entry := range catalog.Levels {
		levels = append(levels, l.MustLoadLevel(entry))
	}
	return levels
}

func (l *LevelLoader) MustLoadLevel(entry leveldata.CatalogLevel) *Level {
	level, err := l.LoadLevel(entry)
	if err != nil {
		panic(err)
	}
	return level
}

// LoadLevel parses and renders the map of a catalog entry. Results are cached
// per level id; the wall grid is immutable so sharing it is safe.
func (l *LevelLoader) LoadLevel(entry leveldata.CatalogLevel) (*Level, error) {
	if level, ok := l.cache[entry.ID]; ok {
		return level, nil
	}

	logger := logging.For("assets")
	levelPath := path.Join(levelDir, entry.File)

	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return nil, fmt.Errorf("load level %d: %w", entry.ID, err)
	}

	walls, err := leveldata.WallGridFromMap(levelMap, levelPath)
	if err != nil {
		return nil, fmt.Errorf("load level %d: %w", entry.ID, err)
	}
	if walls.Skipped > 0 {
		logger.Warn("tiles without a known kind were ignored", "level", entry.ID, "count", walls.Skipped)
	}

	layout := leveldata.LayoutFromMap(levelMap)

	level := &Level{
		ID:     entry.ID,
		Name:   entry.Name,
		Path:   levelPath,
		Walls:  walls,
		Layout: layout,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	background, err := renderBackground(levelMap)
	if err != nil {
		return nil, fmt.Errorf("render level %d: %w", entry.ID, err)
	}
	level.Background = background

	l.cache[entry.ID] = level
	logger.Debug("level loaded", "id", entry.ID, "file", entry.File, "cells", walls.Count())

	return level, nil
}

// renderBackground flattens image layers and tile layers marked with the
// "render" property into one image.
func renderBackground(levelMap *tiled.Map) (*ebiten.Image, error) {
	logger := logging.For("assets")
	background := ebiten.NewImage(levelMap.Width*levelMap.TileWidth, levelMap.Height*levelMap.TileHeight)

	for _, imgLayer := range levelMap.ImageLayers {
		if !imgLayer.Properties.GetBool("render") || imgLayer.Image == nil {
			continue
		}
		// Skip fully transparent layers
		if imgLayer.Opacity <= 0 {
			continue
		}

		imgBytes, err := assetFS.ReadFile(path.Join(levelDir, imgLayer.Image.Source))
		if err != nil {
			logger.Warn("failed to load image layer", "layer", imgLayer.Name, "err", err)
			continue
		}

		img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
		if err != nil {
			logger.Warn("failed to decode image layer", "layer", imgLayer.Name, "err", err)
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(imgLayer.OffsetX), float64(imgLayer.OffsetY))
		op.ColorScale.ScaleAlpha(float32(imgLayer.Opacity))
		background.DrawImage(img, op)
		img.Deallocate()
	}

	renderer, err := render.NewRendererWithFileSystem(levelMap, assetFS)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	for i, layer := range levelMap.Layers {
		if !layer.Properties.GetBool("render") || layer.Opacity <= 0 {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			logger.Warn("failed to render layer", "layer", layer.Name, "err", err)
			continue
		}

		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		background.DrawImage(layerImage, op)
		layerImage.Deallocate()
	}

	return background, nil
}

var (
	animationLoader = NewAnimationLoader()
)

func GetSheet(dir string, state config.StateID) *ebiten.Image {
	path := fmt.Sprintf("images/spritesheets/%s/%s.png", dir, state.String())
	return animationLoader.MustLoadImage(path)
}

// FrameSize returns the frame dimensions of a sprite sheet key.
func FrameSize(key string) (int, int) {
	if key == "player" {
		return config.Player.FrameWidth, config.Player.FrameHeight
	}
	for _, t := range config.Hostile.Types {
		if t.SpriteSheetKey == key {
			return t.FrameWidth, t.FrameHeight
		}
	}
	return config.GridSize, config.GridSize
}

// PreloadAllAnimations preloads all sprite sheets and frames to avoid lag on first render.
// This is especially important for WASM where texture uploads are slower.
func PreloadAllAnimations() {
	for key, defs := range config.CharacterAnimations {
		w, h := FrameSize(key)
		for state, def := range defs {
			_ = GetSheet(key, state)

			step := def.Step
			if step <= 0 {
				step = 1
			}
			for i := def.First; i <= def.Last; i += step {
				sx := i * w
				_ = GetFrame(key, state, i, image.Rect(sx, 0, sx+w, h))
			}
		}
	}
}
