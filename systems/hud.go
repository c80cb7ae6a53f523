package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/kallis-world/config"
	"github.com/automoto/kallis-world/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin  = 10
	hudPadding = 8
)

var hudBackdrop = color.RGBA{R: 0, G: 0, B: 0, A: 120}

// BestScore is shown next to the running score. Scenes refresh it when a
// game ends.
var BestScore int

// DrawHUD renders the score in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	level := GetLevel(e)
	if level == nil {
		return
	}

	face := fonts.HUD.Get()
	small := fonts.HUDSmall.Get()

	scoreStr := fmt.Sprintf("Score: %d", level.Score)
	levelStr := fmt.Sprintf("Level %d   Best: %d", level.Index, max(BestScore, level.Score))

	bounds := text.BoundString(face, scoreStr)
	boxW := float32(max(bounds.Dx(), text.BoundString(small, levelStr).Dx()) + hudPadding*2)
	boxH := float32(bounds.Dy() + 18 + hudPadding*2)
	vector.FillRect(screen, hudMargin, hudMargin, boxW, boxH, hudBackdrop, false)

	text.Draw(screen, scoreStr, face, hudMargin+hudPadding, hudMargin+hudPadding+bounds.Dy(), cfg.White)
	text.Draw(screen, levelStr, small, hudMargin+hudPadding, hudMargin+hudPadding+bounds.Dy()+18, cfg.White)

	if IsMuted() {
		text.Draw(screen, "muted", small, screen.Bounds().Dx()-60, hudMargin+14, cfg.White)
	}
}
