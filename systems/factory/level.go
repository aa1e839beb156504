package factory

import (
	"fmt"

	"github.com/automoto/shadow-runner/archetypes"
	"github.com/automoto/shadow-runner/assets"
	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/shared/leveldata"
	"github.com/automoto/shadow-runner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Loaded levels are shared between scenes so retrying does not parse the map
// again.
var levelLoader = assets.NewLevelLoader()

// PreloadLevels parses and renders every level of the catalog.
func PreloadLevels(catalog *leveldata.Catalog) {
	levelLoader.MustLoadLevels(catalog)
}

// CreateLevel spawns the level singleton. No map is loaded until
// PopulateLevel runs.
func CreateLevel(ecs *ecs.ECS, catalog *leveldata.Catalog) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Catalog: catalog,
		LevelID: -1,
	})
	return level
}

// PopulateLevel loads a catalog level and spawns its collision space, merged
// walls, player, hostiles, boosters, signs and intro text. The previous
// level's entities must have been removed with ClearLevel.
func PopulateLevel(ecs *ecs.ECS, levelEntry *donburi.Entry, entry leveldata.CatalogLevel) error {
	level, err := levelLoader.LoadLevel(entry)
	if err != nil {
		return err
	}
	if level.Layout == nil {
		return fmt.Errorf("level %d: no layout", entry.ID)
	}

	data := components.Level.Get(levelEntry)
	data.CurrentLevel = level
	data.LevelID = entry.ID

	CreateSpace(ecs, level.Width, level.Height, cfg.GridSize)
	data.WallCount = CreateWalls(ecs, level.Walls)

	for _, spawn := range level.Layout.Hostiles {
		CreateHostile(ecs, spawn)
	}
	for _, area := range level.Layout.Boosters {
		CreateBooster(ecs, area)
	}
	for _, msg := range level.Layout.Messages {
		CreateMessagePoint(ecs, msg)
	}

	CreatePlayer(ecs, level.Layout.Spawn.X, level.Layout.Spawn.Y)

	if entry.Tutorial {
		CreateTutorial(ecs)
	}
	if entry.Intro != nil {
		CreateIntro(ecs, entry.Intro)
	}

	return nil
}

// ClearLevel removes every entity that belongs to the loaded level. The level
// singleton, camera and menus survive.
func ClearLevel(ecs *ecs.ECS) {
	var remove []*donburi.Entry
	collect := func(e *donburi.Entry) {
		remove = append(remove, e)
	}

	tags.Player.Each(ecs.World, collect)
	tags.Hostile.Each(ecs.World, collect)
	tags.Wall.Each(ecs.World, collect)
	tags.Trigger.Each(ecs.World, collect)
	tags.Spike.Each(ecs.World, collect)
	tags.Booster.Each(ecs.World, collect)
	tags.VFX.Each(ecs.World, collect)
	components.MessagePoint.Each(ecs.World, collect)
	components.Intro.Each(ecs.World, collect)
	components.Tutorial.Each(ecs.World, collect)
	components.Space.Each(ecs.World, collect)

	seen := make(map[donburi.Entity]bool, len(remove))
	for _, e := range remove {
		if seen[e.Entity()] || !e.Valid() {
			continue
		}
		seen[e.Entity()] = true
		e.Remove()
	}
}
