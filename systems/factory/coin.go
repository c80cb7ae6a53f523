package factory

import (
	"github.com/automoto/kallis-world/archetypes"
	"github.com/automoto/kallis-world/components"
	"github.com/automoto/kallis-world/config"
	"github.com/automoto/kallis-world/engine"
	"github.com/automoto/kallis-world/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCoin places a collectible coin centred on (x, y).
func CreateCoin(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	coin := archetypes.Coin.Spawn(ecs)

	obj := engine.NewBox(x, y, config.Coin.Size, config.Coin.Size, tags.ResolvCoin)
	AddToSpace(ecs, coin, obj)

	components.Sprite.SetValue(coin, components.SpriteData{Color: config.Yellow, Round: true})

	// Only the drawing bobs; the sequence restarts when it finishes.
	h, d := config.Coin.BobHeight, config.Coin.BobDuration
	seq := gween.NewSequence()
	seq.Add(
		gween.New(0, h, d, ease.InOutSine),
		gween.New(h, 0, d, ease.InOutSine),
	)
	components.Bob.SetValue(coin, components.BobData{Sequence: seq})

	return coin
}
