package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/kallis-world/components"
	cfg "github.com/automoto/kallis-world/config"
	"github.com/automoto/kallis-world/engine"
	"github.com/automoto/kallis-world/logging"
	"github.com/automoto/kallis-world/systems/factory"
	"github.com/automoto/kallis-world/tags"
	"github.com/yohamta/donburi/ecs"
)

// ErrNoLevel is returned when a level operation runs on a world without the
// level singleton.
var ErrNoLevel = errors.New("world has no level")

// SetupLevel replaces the world's contents with level index. The score is
// reset unless preserveScore is set. If the map cannot be loaded nothing in
// the world is changed.
func SetupLevel(e *ecs.ECS, index int, preserveScore bool) error {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return ErrNoLevel
	}
	level := components.Level.Get(levelEntry)

	tileMap, err := level.Loader.LoadLevel(index)
	if err != nil {
		return fmt.Errorf("failed to set up level %d: %w", index, err)
	}

	factory.ClearLevel(e)
	factory.CreateSpace(e, tileMap.PixelWidth(), tileMap.PixelHeight(), cfg.Physics.CellSize)

	for _, t := range tileMap.Layer(cfg.Level.BackgroundLayer) {
		factory.CreateScenery(e, cfg.Level.BackgroundLayer, t)
	}
	for _, t := range tileMap.Layer(cfg.Level.PlatformsLayer) {
		factory.CreatePlatform(e, cfg.Level.PlatformsLayer, t)
	}
	for _, t := range tileMap.Layer(cfg.Level.HazardLayer) {
		factory.CreateHazard(e, cfg.Level.HazardLayer, t)
	}
	for _, t := range tileMap.Layer(cfg.Level.CoinsLayer) {
		factory.CreateCoin(e, t.X+t.Size/2, t.Y+t.Size/2)
	}

	player := factory.CreatePlayer(e, cfg.Player.StartX, cfg.Player.StartY)

	// Generated row of coins on top of the ones placed in the map
	for x := cfg.Coin.StartX; x < cfg.Coin.EndX; x += cfg.Coin.StepX {
		factory.CreateCoin(e, x, cfg.Coin.Y)
	}

	for i := 0; i < cfg.Meteor.Count; i++ {
		x := float64(level.Rng.Intn(cfg.C.Width))
		y := cfg.Meteor.MinY + float64(level.Rng.Intn(cfg.C.Height-int(cfg.Meteor.MinY)))
		factory.CreateMeteor(e, x, y)
	}

	// Foreground last so it draws over everything else
	for _, t := range tileMap.Layer(cfg.Level.ForegroundLayer) {
		factory.CreateScenery(e, cfg.Level.ForegroundLayer, t)
	}

	level.Index = index
	level.Map = tileMap
	level.EndOfMap = tileMap.PixelWidth()
	level.GameOverRequested = false
	level.Stepper = engine.NewPlatformer(
		components.Object.Get(player).Object,
		components.Physics.Get(player).Velocity,
		cfg.Physics.Gravity,
		cfg.Physics.GroundProbe,
		tags.ResolvSolid,
	)
	if !preserveScore {
		level.Score = 0
	}

	level.Background = cfg.Screen.GameBackground
	if tileMap.HasBackground {
		level.Background = tileMap.Background
	}

	UpdateCamera(e)
	ShowMessage(e, fmt.Sprintf(cfg.Message.LevelFormat, index))

	logging.L.Info("level loaded",
		"level", index,
		"map", tileMap.Name,
		"width", tileMap.PixelWidth(),
		"score", level.Score,
	)
	return nil
}

// GetLevel returns the level singleton, or nil if the world has none.
func GetLevel(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}
