package scenes

import (
	"image/color"
	"math/rand"
	"time"

	"github.com/automoto/kallis-world/assets"
	cfg "github.com/automoto/kallis-world/config"
	"github.com/automoto/kallis-world/logging"
	"github.com/automoto/kallis-world/systems"
	"github.com/automoto/kallis-world/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameScene plays the levels. Every entry starts a fresh game.
type GameScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *Session
	loader       assets.MapLoader

	// First error returned by the update loop this frame
	err error
}

// NewGameScene creates the gameplay scene
func NewGameScene(sc SceneChanger, session *Session, loader assets.MapLoader) *GameScene {
	return &GameScene{
		sceneChanger: sc,
		session:      session,
		loader:       loader,
	}
}

func (gs *GameScene) Enter() error {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdatePause)

	// Game systems skipped while paused
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePlayerControl))
	e.AddSystem(systems.WithPauseCheck(gs.updateGameplay))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateBobs))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateMessage))
	e.AddSystem(systems.UpdateAudio)

	e.AddRenderer(cfg.Default, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.DrawTiles(cfg.Level.BackgroundLayer))
	e.AddRenderer(cfg.Default, systems.DrawTiles(cfg.Level.PlatformsLayer))
	e.AddRenderer(cfg.Default, systems.DrawTiles(cfg.Level.HazardLayer))
	e.AddRenderer(cfg.Default, systems.DrawSprites)
	e.AddRenderer(cfg.Default, systems.DrawTiles(cfg.Level.ForegroundLayer))
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawMessage)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	seed := cfg.Debug.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	factory.CreateCamera(e)
	factory.CreateLevel(e, gs.loader, rand.New(rand.NewSource(seed)))
	systems.GetOrCreateSettings(e)

	gs.ecs = e
	gs.err = nil

	logging.L.Debug("new game", "level", cfg.Debug.StartLevel, "seed", seed)
	return systems.SetupLevel(e, cfg.Debug.StartLevel, false)
}

func (gs *GameScene) Exit() {
	gs.ecs = nil
}

func (gs *GameScene) Update() error {
	gs.ecs.Update()
	return gs.afterFrame()
}

// afterFrame reports a failed update or hands a finished game to the game
// over screen.
func (gs *GameScene) afterFrame() error {
	if gs.err != nil {
		return gs.err
	}

	level := systems.GetLevel(gs.ecs)
	if level == nil || !level.GameOverRequested {
		return nil
	}

	gs.session.LastScore = level.Score
	gs.session.LastLevel = level.Index
	gs.sceneChanger.Request(StateGameOver)
	return nil
}

func (gs *GameScene) updateGameplay(e *ecs.ECS) {
	if gs.err != nil {
		return
	}
	gs.err = systems.UpdateGameplay(e)
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}
