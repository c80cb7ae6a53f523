package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/kallis-world/components"
	cfg "github.com/automoto/kallis-world/config"
	"github.com/automoto/kallis-world/fonts"
	"github.com/automoto/kallis-world/logging"
	"github.com/automoto/kallis-world/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the settings singleton, creating it from the
// current flags if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug: cfg.Debug.ShowHitboxes,
			Muted: IsMuted(),
		})
	}
	return components.Settings.Get(entry)
}

// UpdateSettings handles the debug overlay and mute toggles.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := GetInput(e)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		cfg.Debug.ShowHitboxes = settings.Debug
		logging.L.Debug("debug overlay toggled", "enabled", settings.Debug)
	}

	if GetAction(input, cfg.ActionToggleMute).JustPressed {
		settings.Muted = !settings.Muted
		SetMuted(settings.Muted)
		SaveCurrentSettings()
	}
}

// DrawDebug outlines every collision box in the space.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	v := newViewport(e, screen)

	for _, obj := range space.Objects() {
		if !v.visible(obj.X, obj.Y, obj.W, obj.H) {
			continue
		}

		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{100, 100, 100, 255}
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255}
		} else if obj.HasTags(tags.ResolvHazard) {
			c = color.RGBA{255, 0, 0, 255}
		} else if obj.HasTags(tags.ResolvProjectile) {
			c = color.RGBA{0, 255, 0, 255}
		}

		x, y := v.rect(obj.X, obj.Y, obj.H)
		vector.StrokeRect(screen, x, y, float32(obj.W), float32(obj.H), 1, c, false)
	}

	if level := GetLevel(e); level != nil && level.Stepper != nil {
		info := fmt.Sprintf("objects: %d  end: %.0f  can jump: %t  tps: %.0f",
			len(space.Objects()), level.EndOfMap, level.Stepper.CanJump(), ebiten.ActualTPS())
		text.Draw(screen, info, fonts.Debug.Get(), hudMargin, screen.Bounds().Dy()-hudMargin, cfg.White)
	}
}
