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

// CreatePlayer spawns the player centred on (x, y), which also becomes its
// respawn point.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := engine.NewBox(x, y, config.Player.Width, config.Player.Height, tags.ResolvPlayer)
	AddToSpace(ecs, player, obj)

	components.Physics.SetValue(player, components.PhysicsData{Velocity: &engine.Velocity{}})
	components.Player.SetValue(player, components.PlayerData{StartX: x, StartY: y})
	components.Sprite.SetValue(player, components.SpriteData{Color: config.Orange})

	return player
}
