package factory

import (
	"github.com/automoto/shadow-runner/archetypes"
	"github.com/automoto/shadow-runner/components"
	"github.com/automoto/shadow-runner/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMessagePoint creates a sign entity from Tiled data
func CreateMessagePoint(ecs *ecs.ECS, msg leveldata.MessageSpawn) *donburi.Entry {
	entry := archetypes.MessagePoint.Spawn(ecs)

	components.MessagePoint.SetValue(entry, components.MessagePointData{
		Text: msg.Text,
		X:    msg.X,
		Y:    msg.Y,
	})

	return entry
}
