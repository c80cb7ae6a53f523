package scenes

import (
	cfg "github.com/automoto/kallis-world/config"
	"github.com/automoto/kallis-world/systems"
	"github.com/automoto/kallis-world/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const fadeInSeconds = 0.5

// GameOverScene shows the final score and waits for a click to restart.
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *Session
	screenUI     *ui.ScreenUI
	latch        systems.ClickLatch

	fade    *gween.Tween
	opacity float32
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, session *Session) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, session: session}
}

func (gs *GameOverScene) Enter() error {
	gs.ecs = ecs.NewECS(donburi.NewWorld())
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.UpdateSettings)
	gs.ecs.AddSystem(gs.updateRestart)

	gs.session.Best = systems.RecordScore(gs.session.LastScore, gs.session.LastLevel)
	systems.BestScore = gs.session.Best

	gs.latch = systems.ClickLatch{}
	gs.fade = gween.New(0, 1, fadeInSeconds, ease.OutQuad)
	gs.opacity = 0
	gs.screenUI = ui.NewGameOverUI(gs.session.LastScore, gs.session.Best, gs.requestRestart)
	return nil
}

func (gs *GameOverScene) Exit() {
	gs.ecs = nil
	gs.screenUI = nil
}

func (gs *GameOverScene) Update() error {
	gs.opacity, _ = gs.fade.Update(1.0 / 60.0)
	gs.ecs.Update()
	gs.screenUI.Update()
	return nil
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Screen.GameOverBackground)
	gs.screenUI.Draw(screen)

	// Fade in from black
	if gs.opacity < 1 {
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		shade := cfg.Black
		shade.A = uint8(255 * (1 - gs.opacity))
		vector.FillRect(screen, 0, 0, float32(w), float32(h), shade, false)
	}
}

func (gs *GameOverScene) updateRestart(e *ecs.ECS) {
	input := systems.GetInput(e)
	if gs.latch.Update(systems.GetAction(input, cfg.ActionAdvance)) {
		gs.requestRestart()
	}
}

// requestRestart starts a new game unless the screen is still fading in.
// Both the click latch and the restart button go through it.
func (gs *GameOverScene) requestRestart() {
	if gs.opacity < 1 {
		return
	}
	gs.sceneChanger.Request(StateGame)
}
