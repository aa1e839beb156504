// shadow-runner is a 2D platformer built on levels authored in Tiled.
//
// Usage:
//
//	shadow-runner                 - Start the game
//	shadow-runner levels          - List the catalog and best times
//	shadow-runner walls <id>      - Print the merged wall rectangles of a level
//
// Flags:
//
//	--level <id>      - Start directly in a level
//	--skip-menu       - Skip the main menu
//	--debug           - Draw colliders and log at debug level
//	--catalog <path>  - Load the level catalog from a file
//	--fullscreen      - Start in fullscreen
package main

import (
	"fmt"
	"image"
	"os"

	"github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/fonts"
	"github.com/automoto/shadow-runner/logging"
	"github.com/automoto/shadow-runner/scenes"
	"github.com/automoto/shadow-runner/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds  image.Rectangle
	scene   Scene
	catalog *leveldata.Catalog
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Catalog returns the level catalog shared by all scenes.
func (g *Game) Catalog() *leveldata.Catalog {
	return g.catalog
}

func NewGame(catalog *leveldata.Catalog) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		logging.For("main").Fatal("could not load fonts", "err", err)
	}

	g := &Game{
		bounds:  image.Rectangle{},
		catalog: catalog,
	}

	next := func() interface{} {
		if config.Debug.SkipMenu {
			return scenes.NewPlatformerScene(g, config.Debug.StartLevel)
		}
		return scenes.NewMenuScene(g)
	}
	g.scene = scenes.NewLoadingScene(g, next)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
