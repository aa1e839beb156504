package factory

import (
	"fmt"
	"sort"
	"testing"

	"github.com/automoto/shadow-runner/components"
	"github.com/automoto/shadow-runner/shared/leveldata"
	"github.com/automoto/shadow-runner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestWallBounds(t *testing.T) {
	tests := []struct {
		name       string
		r          leveldata.Rect
		x, y, w, h float64
	}{
		{"single tile", leveldata.Rect{Left: 2, Right: 2, Bottom: 5, Top: 5, Kind: leveldata.KindSolid}, 32, 80, 16, 16},
		{"ground strip", leveldata.Rect{Left: 0, Right: 59, Bottom: 19, Top: 22, Kind: leveldata.KindSolid}, 0, 304, 960, 64},
		{"gate", leveldata.Rect{Left: 57, Right: 58, Bottom: 15, Top: 18, Kind: leveldata.KindNextLevel}, 912, 240, 32, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := WallBounds(tt.r, 16)
			if x != tt.x || y != tt.y || w != tt.w || h != tt.h {
				t.Errorf("WallBounds() = (%v, %v, %v, %v), want (%v, %v, %v, %v)", x, y, w, h, tt.x, tt.y, tt.w, tt.h)
			}
		})
	}
}

func TestResolvTag(t *testing.T) {
	tests := []struct {
		kind leveldata.Kind
		want string
	}{
		{leveldata.KindSolid, tags.ResolvSolid},
		{leveldata.KindOutOfWorld, tags.ResolvOutOfWorld},
		{leveldata.KindNextLevel, tags.ResolvNextLevel},
		{leveldata.KindSpike, tags.ResolvSpike},
	}

	for _, tt := range tests {
		if got := resolvTag(tt.kind); got != tt.want {
			t.Errorf("resolvTag(%v) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestCreateWalls(t *testing.T) {
	// An L of solid tiles, a two-tile gate and a single pit tile.
	grid := leveldata.NewWallGrid(8, 6, 16)
	for x := 0; x < 8; x++ {
		grid.Set(x, 5, leveldata.KindSolid)
	}
	grid.Set(0, 4, leveldata.KindSolid)
	grid.Set(0, 3, leveldata.KindSolid)
	grid.Set(7, 3, leveldata.KindNextLevel)
	grid.Set(7, 4, leveldata.KindNextLevel)
	grid.Set(4, 4, leveldata.KindOutOfWorld)

	e := ecs.NewECS(donburi.NewWorld())
	spaceEntry := CreateSpace(e, 8*16, 6*16, 16)

	rects := grid.Rectangles()
	if got := CreateWalls(e, grid); got != len(rects) {
		t.Fatalf("CreateWalls() = %d, want %d", got, len(rects))
	}

	var want []string
	for _, r := range rects {
		x, y, w, h := WallBounds(r, 16)
		want = append(want, fmt.Sprintf("%s %v,%v %vx%v", resolvTag(r.Kind), x, y, w, h))
	}

	var got []string
	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		objTags := obj.Tags()
		if len(objTags) != 1 {
			t.Errorf("object at %v,%v has tags %v, want exactly one", obj.X, obj.Y, objTags)
			continue
		}
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.HasComponent(components.Wall) {
			t.Errorf("object %v is not linked to a wall entity", objTags)
			continue
		}
		if wall := components.Wall.Get(entry); resolvTag(leveldata.Kind(wall.Kind)) != objTags[0] {
			t.Errorf("wall kind %d carries tag %q", wall.Kind, objTags[0])
		}
		got = append(got, fmt.Sprintf("%s %v,%v %vx%v", objTags[0], obj.X, obj.Y, obj.W, obj.H))
	}

	sort.Strings(want)
	sort.Strings(got)
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("space objects:\n got %v\nwant %v", got, want)
	}

	triggers := 0
	tags.Trigger.Each(e.World, func(*donburi.Entry) { triggers++ })
	if triggers != 2 {
		t.Errorf("trigger entities = %d, want 2 (gate and pit)", triggers)
	}
}
