package factory

import (
	"math/rand"

	"github.com/automoto/kallis-world/archetypes"
	"github.com/automoto/kallis-world/assets"
	"github.com/automoto/kallis-world/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel creates the level singleton. No map is loaded until the level
// is set up.
func CreateLevel(ecs *ecs.ECS, loader assets.MapLoader, rng *rand.Rand) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Loader: loader,
		Rng:    rng,
	})
	return level
}
