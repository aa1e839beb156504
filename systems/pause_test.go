package systems

import (
	"testing"

	"github.com/automoto/shadow-runner/archetypes"
	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestResumeRestartsTimer(t *testing.T) {
	tests := []struct {
		name  string
		setup func(e *ecs.ECS, player *donburi.Entry)
		want  bool
	}{
		{"playing", func(*ecs.ECS, *donburi.Entry) {}, true},
		{"death delay", func(_ *ecs.ECS, player *donburi.Entry) {
			donburi.Add(player, components.Death, &components.DeathData{Timer: cfg.Death.DelayFrames})
		}, false},
		{"game over", func(_ *ecs.ECS, player *donburi.Entry) {
			donburi.Add(player, components.Death, &components.DeathData{})
		}, false},
		{"gate reached", func(e *ecs.ECS, _ *donburi.Entry) { RequestLevel(e, 1) }, false},
		{"run finished", func(e *ecs.ECS, _ *donburi.Entry) {
			entry, _ := components.Level.First(e.World)
			components.Level.Get(entry).Finished = true
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newLevelWorld(t)
			player := archetypes.Player.Spawn(e)
			tt.setup(e, player)

			pause := &components.PauseData{}
			setPaused(e, pause, true)
			timer, _ := levelTimer(e)
			if timer.Running {
				t.Fatal("timer running while paused")
			}

			setPaused(e, pause, false)
			if timer.Running != tt.want {
				t.Errorf("timer running after resume = %v, want %v", timer.Running, tt.want)
			}
		})
	}
}
