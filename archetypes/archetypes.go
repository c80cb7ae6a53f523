package archetypes

import (
	"github.com/automoto/kallis-world/components"
	cfg "github.com/automoto/kallis-world/config"
	"github.com/automoto/kallis-world/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
		components.Tile,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Object,
		components.Tile,
	)
	Scenery = newArchetype(
		tags.Scenery,
		components.Tile,
	)
	Coin = newArchetype(
		tags.Coin,
		components.Object,
		components.Sprite,
		components.Bob,
	)
	Meteor = newArchetype(
		tags.Meteor,
		components.Object,
		components.Sprite,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.Physics,
		components.Sprite,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Sprite,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Level = newArchetype(
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
