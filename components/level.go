package components

import (
	"image/color"
	"math/rand"

	"github.com/automoto/kallis-world/assets"
	"github.com/automoto/kallis-world/engine"
	"github.com/yohamta/donburi"
)

// LevelData is the single source of truth for progress through the game:
// the active map, its bounds, the physics stepper and the score.
type LevelData struct {
	Index    int
	Score    int
	EndOfMap float64

	Map     *assets.TileMap
	Stepper engine.Stepper
	Loader  assets.MapLoader
	Rng     *rand.Rand

	Background color.RGBA

	// Raised by the update loop when the player touches a hazard. The
	// scene consumes it after the frame.
	GameOverRequested bool
}

var Level = donburi.NewComponentType[LevelData]()
