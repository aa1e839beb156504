package scenes

import (
	"reflect"
	"testing"

	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/shared/leveldata"
	"github.com/automoto/shadow-runner/systems"
	"github.com/automoto/shadow-runner/ui"
)

func testCatalog() *leveldata.Catalog {
	return &leveldata.Catalog{Levels: []leveldata.CatalogLevel{
		{ID: 0, Name: "First Steps", File: "first_steps.tmx"},
		{ID: 1, Name: "Sharp Ground", File: "sharp_ground.tmx"},
		{ID: 2, Name: "Updraft", File: "updraft.tmx"},
	}}
}

func TestResumeLevel(t *testing.T) {
	tests := []struct {
		unlocked, want int
	}{
		{0, 0},
		{2, 2},
		{3, 2}, // finished the last level
		{10, 2},
		{-1, 0},
	}

	catalog := testCatalog()
	for _, tt := range tests {
		if got := resumeLevel(catalog, tt.unlocked); got != tt.want {
			t.Errorf("resumeLevel(%d) = %d, want %d", tt.unlocked, got, tt.want)
		}
	}
}

func TestLevelEntries(t *testing.T) {
	progress := &systems.SavedProgress{
		BestTimes: map[int]int64{0: 75400},
		Unlocked:  1,
	}

	got := levelEntries(testCatalog(), progress)
	want := []ui.LevelEntry{
		{ID: 0, Name: "First Steps", Best: "01:15"},
		{ID: 1, Name: "Sharp Ground", Best: cfg.LevelsMenu.EmptyTime},
		{ID: 2, Name: "Updraft", Best: cfg.LevelsMenu.EmptyTime, Locked: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("levelEntries() = %+v, want %+v", got, want)
	}
}

func TestCheckIcons(t *testing.T) {
	catalog := testCatalog()
	catalog.Levels[0].Intro = &leveldata.Intro{Legend: []leveldata.LegendEntry{
		{Icon: "spike.png", Text: "Spikes hurt"},
		{Icon: "does_not_exist.png", Text: "Typo"},
	}}
	catalog.Levels[1].Intro = &leveldata.Intro{Legend: []leveldata.LegendEntry{
		{Icon: "does_not_exist.png", Text: "Same typo"},
	}}

	if got := checkIcons(catalog); got != 1 {
		t.Errorf("checkIcons() = %d, want 1", got)
	}
}
