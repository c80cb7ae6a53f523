package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/kallis-world/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ScreenUI is a full-window ebitenui layout: a coloured background, a column
// of centred text and one button.
type ScreenUI struct {
	UI *ebitenui.UI

	// Called when the button is clicked
	OnAdvance func()

	background color.RGBA
	content    *widget.Container

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewInstructionsUI builds the welcome screen from the configured lines.
// The first line is the title.
func NewInstructionsUI(onAdvance func()) *ScreenUI {
	s := newScreenUI(cfg.Screen.InstructionsBackground, onAdvance)

	lines := cfg.Screen.InstructionLines
	if len(lines) > 0 {
		s.addLabel(lines[0], &s.titleFace, cfg.Black)
		for _, line := range lines[1:] {
			s.addLabel(line, &s.normalFace, cfg.Black)
		}
	}
	s.addButton("Play")
	return s
}

// NewGameOverUI builds the game over screen for a finished game.
func NewGameOverUI(score, best int, onRestart func()) *ScreenUI {
	s := newScreenUI(cfg.Screen.GameOverBackground, onRestart)

	s.addLabel(cfg.Screen.GameOverTitle, &s.titleFace, cfg.White)
	s.addLabel(ScoreLine(score, best), &s.normalFace, cfg.White)
	s.addLabel(cfg.Screen.GameOverHint, &s.smallFace, cfg.White)
	s.addButton("Play again")
	return s
}

// ScoreLine is the summary shown once a game ends.
func ScoreLine(score, best int) string {
	if score > 0 && score >= best {
		return fmt.Sprintf("Score: %d  (new best!)", score)
	}
	return fmt.Sprintf("Score: %d  Best: %d", score, best)
}

func newScreenUI(bg color.RGBA, onAdvance func()) *ScreenUI {
	s := &ScreenUI{
		OnAdvance:  onAdvance,
		background: bg,
	}
	s.loadFonts()
	s.buildUI()
	return s
}

func (s *ScreenUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	s.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   40,
	}
	s.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   22,
	}
	s.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
}

func (s *ScreenUI) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(s.background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	s.content = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(14),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	rootContainer.AddChild(s.content)

	s.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *ScreenUI) addLabel(str string, face *text.Face, c color.RGBA) *widget.Label {
	label := widget.NewLabel(
		widget.LabelOpts.Text(str, face, &widget.LabelColor{
			Idle: c,
		}),
		widget.LabelOpts.TextOpts(
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
			),
		),
	)
	s.content.AddChild(label)
	return label
}

func (s *ScreenUI) addButton(label string) {
	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 40),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &s.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if s.OnAdvance != nil {
				s.OnAdvance()
			}
		}),
	)
	s.content.AddChild(button)
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// Update runs the ebitenui event loop for one frame.
func (s *ScreenUI) Update() {
	s.UI.Update()
}

// Draw renders the screen.
func (s *ScreenUI) Draw(screen *ebiten.Image) {
	s.UI.Draw(screen)
}
