package scenes

import (
	cfg "github.com/automoto/kallis-world/config"
	"github.com/automoto/kallis-world/systems"
	"github.com/automoto/kallis-world/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InstructionsScene shows how to play and waits for a click.
type InstructionsScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	screenUI     *ui.ScreenUI
	latch        systems.ClickLatch
}

// NewInstructionsScene creates the welcome screen
func NewInstructionsScene(sc SceneChanger) *InstructionsScene {
	return &InstructionsScene{sceneChanger: sc}
}

func (is *InstructionsScene) Enter() error {
	is.ecs = ecs.NewECS(donburi.NewWorld())
	is.ecs.AddSystem(systems.UpdateInput)
	is.ecs.AddSystem(systems.UpdateSettings)
	is.ecs.AddSystem(is.updateAdvance)

	is.latch = systems.ClickLatch{}
	is.screenUI = ui.NewInstructionsUI(is.advance)
	return nil
}

func (is *InstructionsScene) Exit() {
	is.ecs = nil
	is.screenUI = nil
}

func (is *InstructionsScene) Update() error {
	is.ecs.Update()
	is.screenUI.Update()
	return nil
}

func (is *InstructionsScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Screen.InstructionsBackground)
	is.screenUI.Draw(screen)
}

func (is *InstructionsScene) updateAdvance(e *ecs.ECS) {
	input := systems.GetInput(e)
	if is.latch.Update(systems.GetAction(input, cfg.ActionAdvance)) {
		is.advance()
	}
}

func (is *InstructionsScene) advance() {
	is.sceneChanger.Request(StateGame)
}
