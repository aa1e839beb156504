package systems

import (
	"errors"

	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/logging"
	"github.com/automoto/shadow-runner/shared/gamemath"
	"github.com/automoto/shadow-runner/shared/leveldata"
	"github.com/automoto/shadow-runner/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SelectLevel tears down the loaded level and builds the level with the given
// id. Selecting the current level again restarts it. An id missing from the
// catalog marks the run finished so the scene can show the credits.
func SelectLevel(ecs *ecs.ECS, id int) error {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return errors.New("no level entity")
	}
	levelData := components.Level.Get(levelEntry)
	logger := logging.For("level")

	entry, err := levelData.Catalog.Lookup(id)
	if errors.Is(err, leveldata.ErrLevelNotFound) {
		logger.Info("no more levels", "id", id)
		levelData.Finished = true
		if timer, ok := levelTimer(ecs); ok {
			timer.Running = false
		}
		return nil
	}
	if err != nil {
		return err
	}

	factory.ClearLevel(ecs)
	if err := factory.PopulateLevel(ecs, levelEntry, entry); err != nil {
		logger.Error("could not build level", "id", id, "err", err)
		levelData.Finished = true
		return err
	}
	levelData.Finished = false

	ResetTimer(ecs)
	ResetMessageState(ecs)
	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		factory.StartIntroZoom(components.Camera.Get(cameraEntry))
	}
	SnapCamera(ecs)

	logger.Info("level started", "id", id, "name", entry.Name, "walls", levelData.WallCount)
	return nil
}

// RequestLevel queues a level change for UpdateLevelChange. A later request
// in the same frame replaces an earlier one.
func RequestLevel(ecs *ecs.ECS, id int) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	if levelEntry.HasComponent(components.LevelChangeRequest) {
		components.LevelChangeRequest.Get(levelEntry).LevelID = id
		return
	}
	donburi.Add(levelEntry, components.LevelChangeRequest, &components.LevelChangeRequestData{LevelID: id})
}

// UpdateLevelChange applies a queued level change.
func UpdateLevelChange(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok || !levelEntry.HasComponent(components.LevelChangeRequest) {
		return
	}
	id := components.LevelChangeRequest.Get(levelEntry).LevelID
	levelEntry.RemoveComponent(components.LevelChangeRequest)

	if err := SelectLevel(ecs, id); err != nil {
		logging.For("level").Error("level change failed", "id", id, "err", err)
	}
}

// CompleteLevel records the finish time, unlocks the next level and queues it.
func CompleteLevel(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok || levelEntry.HasComponent(components.LevelChangeRequest) {
		return
	}
	levelData := components.Level.Get(levelEntry)

	timer := components.Timer.Get(levelEntry)
	timer.Running = false
	elapsed := Elapsed(ecs)

	progress := LoadProgress()
	best := progress.RecordLevelTime(levelData.LevelID, elapsed)
	_ = SaveProgress(progress)

	PlaySFX(ecs, cfg.SoundLevelComplete)
	logging.For("level").Info("level complete", "id", levelData.LevelID,
		"time", gamemath.FormatDuration(elapsed), "best", best)

	RequestLevel(ecs, levelData.LevelID+1)
}

// RestartLevel rebuilds the current level from scratch.
func RestartLevel(ecs *ecs.ECS) {
	if id, ok := CurrentLevelID(ecs); ok {
		RequestLevel(ecs, id)
	}
}

// CurrentLevelID returns the id of the loaded level.
func CurrentLevelID(ecs *ecs.ECS) (int, bool) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return 0, false
	}
	levelData := components.Level.Get(levelEntry)
	return levelData.LevelID, levelData.CurrentLevel != nil
}

// IsRunFinished reports whether there is no level left to play.
func IsRunFinished(ecs *ecs.ECS) bool {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return false
	}
	return components.Level.Get(levelEntry).Finished
}
