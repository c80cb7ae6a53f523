package factory

import (
	"github.com/automoto/kallis-world/archetypes"
	"github.com/automoto/kallis-world/components"
	"github.com/automoto/kallis-world/config"
	"github.com/automoto/kallis-world/engine"
	"github.com/automoto/kallis-world/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMeteor places a stationary meteor centred on (x, y).
func CreateMeteor(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	meteor := archetypes.Meteor.Spawn(ecs)

	obj := engine.NewBox(x, y, config.Meteor.Size, config.Meteor.Size, tags.ResolvMeteor)
	AddToSpace(ecs, meteor, obj)

	components.Sprite.SetValue(meteor, components.SpriteData{Color: config.Gray, Round: true})
	return meteor
}
