package leveldata

import (
	"errors"
	"reflect"
	"testing"
	"testing/fstest"

	"github.com/lafriks/go-tiled"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="6" nextobjectid="6">
 <tileset firstgid="1" name="walls" tilewidth="16" tileheight="16" tilecount="5" columns="5">
  <image source="walls.png" width="80" height="16"/>
  <tile id="0"><properties><property name="kind" type="int" value="1"/></properties></tile>
  <tile id="1"><properties><property name="kind" type="int" value="2"/></properties></tile>
  <tile id="2"><properties><property name="kind" type="int" value="3"/></properties></tile>
  <tile id="3"><properties><property name="kind" type="int" value="4"/></properties></tile>
 </tileset>
 <layer id="1" name="walls" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
1,1,0,3,
1,1,2,5
</data>
 </layer>
 <objectgroup id="2" name="player">
  <object id="1" x="8" y="16" width="16" height="32"/>
 </objectgroup>
 <objectgroup id="3" name="patrols">
  <object id="2" name="p1" x="16" y="0">
   <polyline points="0,0 32,0"/>
  </object>
 </objectgroup>
 <objectgroup id="4" name="hostiles">
  <object id="3" class="Sand_Ghoul" x="16" y="0" width="16" height="16">
   <properties><property name="pathName" value="p1"/></properties>
  </object>
  <object id="4" class="Grave_Revenant" x="0" y="0" width="16" height="16"/>
 </objectgroup>
 <objectgroup id="5" name="messages">
  <object id="5" x="40" y="8">
   <properties><property name="text" value="Mind the gap"/></properties>
  </object>
 </objectgroup>
</map>
`

const noWallsTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="1" tilewidth="16" tileheight="16" infinite="0">
 <layer id="1" name="decor" width="2" height="1">
  <data encoding="csv">
0,0
</data>
 </layer>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/test.tmx":    {Data: []byte(testTMX)},
		"levels/nowalls.tmx": {Data: []byte(noWallsTMX)},
	}
}

func TestLoadWallGrid(t *testing.T) {
	grid, err := LoadWallGrid(testFS(), "levels/test.tmx")
	if err != nil {
		t.Fatalf("LoadWallGrid() error = %v", err)
	}

	if grid.Width != 4 || grid.Height != 3 || grid.TileSize != 16 {
		t.Fatalf("grid dims = %dx%d@%d, want 4x3@16", grid.Width, grid.Height, grid.TileSize)
	}
	if grid.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", grid.Skipped)
	}
	if grid.Count() != 6 {
		t.Errorf("Count() = %d, want 6", grid.Count())
	}

	cells := []struct {
		x, y int
		want Kind
		ok   bool
	}{
		{0, 0, 0, false},
		{0, 1, KindSolid, true},
		{3, 1, KindNextLevel, true},
		{2, 2, KindOutOfWorld, true},
		{3, 2, 0, false},
		{-1, 0, 0, false},
		{4, 0, 0, false},
	}
	for _, c := range cells {
		got, ok := grid.KindAt(c.x, c.y)
		if got != c.want || ok != c.ok {
			t.Errorf("KindAt(%d, %d) = %v, %v; want %v, %v", c.x, c.y, got, ok, c.want, c.ok)
		}
	}

	want := []Rect{
		{Left: 3, Right: 3, Bottom: 1, Top: 1, Kind: KindNextLevel},
		{Left: 0, Right: 1, Bottom: 1, Top: 2, Kind: KindSolid},
		{Left: 2, Right: 2, Bottom: 2, Top: 2, Kind: KindOutOfWorld},
	}
	if got := grid.Rectangles(); !reflect.DeepEqual(got, want) {
		t.Errorf("Rectangles() = %+v, want %+v", got, want)
	}
}

func TestLoadWallGridErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "missing file", path: "levels/missing.tmx"},
		{name: "no walls layer", path: "levels/nowalls.tmx", wantErr: ErrNoWallLayer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadWallGrid(testFS(), tt.path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFromParsedMap(t *testing.T) {
	fsys := testFS()
	levelMap, err := tiled.LoadFile("levels/test.tmx", tiled.WithFileSystem(fsys))
	if err != nil {
		t.Fatalf("tiled.LoadFile() error = %v", err)
	}

	grid, err := WallGridFromMap(levelMap, "test.tmx")
	if err != nil {
		t.Fatalf("WallGridFromMap() error = %v", err)
	}
	loaded, err := LoadWallGrid(fsys, "levels/test.tmx")
	if err != nil {
		t.Fatalf("LoadWallGrid() error = %v", err)
	}
	if !reflect.DeepEqual(grid.Rectangles(), loaded.Rectangles()) || grid.Skipped != loaded.Skipped {
		t.Errorf("WallGridFromMap() = %+v, want %+v", grid.Rectangles(), loaded.Rectangles())
	}

	layout, err := LoadLayout(fsys, "levels/test.tmx")
	if err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}
	if got := LayoutFromMap(levelMap); !reflect.DeepEqual(got, layout) {
		t.Errorf("LayoutFromMap() = %+v, want %+v", got, layout)
	}
}

func TestLoadLayout(t *testing.T) {
	layout, err := LoadLayout(testFS(), "levels/test.tmx")
	if err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}

	if layout.Spawn != (Point{X: 8, Y: 16}) {
		t.Errorf("Spawn = %+v, want {8 16}", layout.Spawn)
	}

	if len(layout.Hostiles) != 2 {
		t.Fatalf("len(Hostiles) = %d, want 2", len(layout.Hostiles))
	}
	ghoul := layout.Hostiles[0]
	if ghoul.Type != "Sand_Ghoul" {
		t.Errorf("Hostiles[0].Type = %q, want Sand_Ghoul", ghoul.Type)
	}
	wantPatrol := []Point{{X: 16, Y: 0}, {X: 16, Y: 0}, {X: 48, Y: 0}}
	if !reflect.DeepEqual(ghoul.Patrol, wantPatrol) {
		t.Errorf("Hostiles[0].Patrol = %+v, want %+v", ghoul.Patrol, wantPatrol)
	}
	if got := layout.Hostiles[1].Patrol; len(got) != 1 {
		t.Errorf("hostile without a path should only patrol its spawn, got %+v", got)
	}

	if len(layout.Messages) != 1 || layout.Messages[0].Text != "Mind the gap" {
		t.Errorf("Messages = %+v", layout.Messages)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      int
		want    Kind
		trigger bool
		blocks  bool
		wantErr bool
	}{
		{in: 1, want: KindSolid, blocks: true},
		{in: 2, want: KindOutOfWorld, trigger: true},
		{in: 3, want: KindNextLevel, trigger: true},
		{in: 4, want: KindSpike, trigger: true, blocks: true},
		{in: 0, wantErr: true},
		{in: 9, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%d) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("ParseKind(%d) = %v, want %v", tt.in, got, tt.want)
			}
			if got.IsTrigger() != tt.trigger {
				t.Errorf("%v.IsTrigger() = %v", got, got.IsTrigger())
			}
			if got.Blocks() != tt.blocks {
				t.Errorf("%v.Blocks() = %v", got, got.Blocks())
			}
		})
	}
}
