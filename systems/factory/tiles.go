package factory

import (
	"github.com/automoto/kallis-world/archetypes"
	"github.com/automoto/kallis-world/assets"
	"github.com/automoto/kallis-world/components"
	"github.com/automoto/kallis-world/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func tileData(layer string, t assets.Tile) components.TileData {
	return components.TileData{
		Layer: layer,
		X:     t.X,
		Y:     t.Y,
		Size:  t.Size,
		Color: t.Color,
	}
}

// CreatePlatform creates a solid tile the player stands on.
func CreatePlatform(ecs *ecs.ECS, layer string, t assets.Tile) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	AddToSpace(ecs, platform, resolv.NewObject(t.X, t.Y, t.Size, t.Size, tags.ResolvSolid))
	components.Tile.SetValue(platform, tileData(layer, t))
	return platform
}

// CreateHazard creates a tile that ends the game on contact.
func CreateHazard(ecs *ecs.ECS, layer string, t assets.Tile) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)
	AddToSpace(ecs, hazard, resolv.NewObject(t.X, t.Y, t.Size, t.Size, tags.ResolvHazard))
	components.Tile.SetValue(hazard, tileData(layer, t))
	return hazard
}

// CreateScenery creates a decorative tile with no collision box.
func CreateScenery(ecs *ecs.ECS, layer string, t assets.Tile) *donburi.Entry {
	scenery := archetypes.Scenery.Spawn(ecs)
	components.Tile.SetValue(scenery, tileData(layer, t))
	return scenery
}
