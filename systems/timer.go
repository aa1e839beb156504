package systems

import (
	"time"

	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTimer advances the level stopwatch. It is wrapped in the gameplay
// checks, so it holds still while paused.
func UpdateTimer(ecs *ecs.ECS) {
	timer, ok := levelTimer(ecs)
	if !ok || !timer.Running {
		return
	}
	timer.Ticks++
}

func levelTimer(ecs *ecs.ECS) (*components.TimerData, bool) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Timer.Get(levelEntry), true
}

// timerMayRun reports whether the stopwatch should tick once play resumes. It
// stays stopped while the player is dying, after the gate was reached and
// when the run is over.
func timerMayRun(ecs *ecs.ECS) bool {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return false
	}
	if components.Level.Get(levelEntry).Finished || levelEntry.HasComponent(components.LevelChangeRequest) {
		return false
	}
	return !playerDying(ecs)
}

// ResetTimer restarts the stopwatch from zero.
func ResetTimer(ecs *ecs.ECS) {
	if timer, ok := levelTimer(ecs); ok {
		timer.Ticks = 0
		timer.Running = true
	}
}

// Elapsed returns the time spent in the current level.
func Elapsed(ecs *ecs.ECS) time.Duration {
	timer, ok := levelTimer(ecs)
	if !ok {
		return 0
	}
	return gamemath.TicksToDuration(timer.Ticks, cfg.TPS)
}
