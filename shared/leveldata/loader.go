package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"

	"github.com/automoto/shadow-runner/shared/walls"
)

// WallGrid is the typed wall layer of one level. Rows are counted from the
// top of the map, as Tiled stores them.
type WallGrid struct {
	Width, Height int
	TileSize      int
	cells         []Kind

	// Skipped counts tiles whose kind property was missing or unknown.
	Skipped int
}

// NewWallGrid returns an empty grid.
func NewWallGrid(width, height, tileSize int) *WallGrid {
	return &WallGrid{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		cells:    make([]Kind, width*height),
	}
}

// Set marks the cell at (x, y). A zero kind clears it.
func (g *WallGrid) Set(x, y int, k Kind) {
	g.cells[y*g.Width+x] = k
}

// KindAt reports the kind of the cell at (x, y).
func (g *WallGrid) KindAt(x, y int) (Kind, bool) {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return 0, false
	}
	k := g.cells[y*g.Width+x]
	return k, k != 0
}

// Count returns the number of marked cells.
func (g *WallGrid) Count() int {
	n := 0
	for _, k := range g.cells {
		if k != 0 {
			n++
		}
	}
	return n
}

// Rectangles merges the grid into wall rectangles.
func (g *WallGrid) Rectangles() []Rect {
	return walls.BuildRectangles(g.Width, g.Height, g.KindAt)
}

// LoadWallGrid reads the "walls" tile layer of a TMX file. It takes an fs.FS
// so callers can pass embed.FS (game) or os.DirFS (CLI, tests).
func LoadWallGrid(fsys fs.FS, tmxPath string) (*WallGrid, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return WallGridFromMap(levelMap, tmxPath)
}

// WallGridFromMap builds the wall grid of an already parsed map. name is only
// used in errors.
func WallGridFromMap(levelMap *tiled.Map, name string) (*WallGrid, error) {
	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == WallLayerName {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrNoWallLayer)
	}

	grid := NewWallGrid(levelMap.Width, levelMap.Height, levelMap.TileWidth)
	kinds := make(map[*tiled.Tileset]map[uint32]Kind)

	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				continue
			}

			byID, ok := kinds[tile.Tileset]
			if !ok {
				byID = make(map[uint32]Kind)
				kinds[tile.Tileset] = byID
			}
			k, ok := byID[tile.ID]
			if !ok {
				k = tileKind(tile)
				byID[tile.ID] = k
			}
			if k == 0 {
				grid.Skipped++
				continue
			}
			grid.Set(x, y, k)
		}
	}

	return grid, nil
}

func tileKind(tile *tiled.LayerTile) Kind {
	tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		return 0
	}
	k, err := ParseKind(tilesetTile.Properties.GetInt("kind"))
	if err != nil {
		return 0
	}
	return k
}

// LoadLayout reads the object layers of a TMX file.
func LoadLayout(fsys fs.FS, tmxPath string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return LayoutFromMap(levelMap), nil
}

// LayoutFromMap collects spawns, patrols and areas from a parsed map.
func LayoutFromMap(levelMap *tiled.Map) *Layout {
	layout := &Layout{}
	paths := make(map[string][]Point)

	for _, og := range levelMap.ObjectGroups {
		if og.Name != "patrols" {
			continue
		}
		for _, o := range og.Objects {
			if len(o.PolyLines) == 0 || o.PolyLines[0].Points == nil {
				continue
			}
			var points []Point
			for _, p := range *o.PolyLines[0].Points {
				points = append(points, Point{X: o.X + p.X, Y: o.Y + p.Y})
			}
			paths[o.Name] = points
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "player":
			if len(og.Objects) > 0 {
				layout.Spawn = Point{X: og.Objects[0].X, Y: og.Objects[0].Y}
			}
		case "hostiles":
			for _, o := range og.Objects {
				hostileType := o.Class
				if hostileType == "" {
					hostileType = o.Type //nolint:staticcheck // older TMX files use type=
				}
				area := Area{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
				patrol := []Point{{X: area.X, Y: area.Y}}
				patrol = append(patrol, paths[o.Properties.GetString("pathName")]...)
				layout.Hostiles = append(layout.Hostiles, HostileSpawn{
					Type:   hostileType,
					Area:   area,
					Patrol: patrol,
				})
			}
		case "boosters":
			for _, o := range og.Objects {
				layout.Boosters = append(layout.Boosters, Area{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "messages":
			for _, o := range og.Objects {
				layout.Messages = append(layout.Messages, MessageSpawn{
					X:    o.X,
					Y:    o.Y,
					Text: o.Properties.GetString("text"),
				})
			}
		}
	}

	return layout
}
