package systems

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/automoto/kallis-world/assets"
	"github.com/automoto/kallis-world/components"
	cfg "github.com/automoto/kallis-world/config"
	"github.com/automoto/kallis-world/systems/factory"
	"github.com/automoto/kallis-world/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

const tileSize = 64.0

type fakeLoader map[int]*assets.TileMap

func (f fakeLoader) LoadLevel(index int) (*assets.TileMap, error) {
	m, ok := f[index]
	if !ok {
		return nil, fmt.Errorf("%w: level %d", assets.ErrLevelNotFound, index)
	}
	return m, nil
}

// flatMap is a map with solid ground along its bottom row.
func flatMap(width int) *assets.TileMap {
	m := &assets.TileMap{
		Name:     fmt.Sprintf("flat_%d", width),
		Width:    width,
		Height:   12,
		TileSize: tileSize,
		Layers:   map[string][]assets.Tile{},
	}
	for col := 0; col < width; col++ {
		m.Layers[cfg.Level.PlatformsLayer] = append(m.Layers[cfg.Level.PlatformsLayer], tileAt(col, 0))
	}
	return m
}

func tileAt(col, row int) assets.Tile {
	return assets.Tile{
		Col:   col,
		Row:   11 - row,
		X:     float64(col) * tileSize,
		Y:     float64(row) * tileSize,
		Size:  tileSize,
		Color: cfg.Brown,
	}
}

// quietLevels turns off the random meteors and the generated coin row so a
// test controls every entity.
func quietLevels(t *testing.T) {
	t.Helper()
	meteor, coin := cfg.Meteor, cfg.Coin
	t.Cleanup(func() {
		cfg.Meteor, cfg.Coin = meteor, coin
	})
	cfg.Meteor.Count = 0
	cfg.Coin.EndX = 0
}

func newTestWorld(t *testing.T, loader assets.MapLoader) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateCamera(e)
	factory.CreateLevel(e, loader, rand.New(rand.NewSource(1)))
	if err := SetupLevel(e, 1, false); err != nil {
		t.Fatalf("SetupLevel(1): %v", err)
	}
	return e
}

func count(e *ecs.ECS, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(e.World)
}

func playerBody(t *testing.T, e *ecs.ECS) (*resolv.Object, *components.PhysicsData) {
	t.Helper()
	entry, ok := tags.Player.First(e.World)
	if !ok {
		t.Fatal("no player in world")
	}
	return components.Object.Get(entry).Object, components.Physics.Get(entry)
}

func pendingSounds(e *ecs.ECS, id cfg.SoundID) int {
	n := 0
	for _, s := range GetOrCreateAudio(e).PendingSFX {
		if s == id {
			n++
		}
	}
	return n
}
