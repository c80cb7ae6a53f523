package systems

import (
	"image/color"

	"github.com/automoto/kallis-world/components"
	cfg "github.com/automoto/kallis-world/config"
	"github.com/automoto/kallis-world/engine"
	"github.com/automoto/kallis-world/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Entities further than this outside the viewport are not drawn.
const cullPadding = 64.0

type viewport struct {
	camX, camY float64
	w, h       float64
}

func newViewport(e *ecs.ECS, screen *ebiten.Image) viewport {
	camX, camY := CameraPosition(e)
	return viewport{
		camX: camX,
		camY: camY,
		w:    float64(screen.Bounds().Dx()),
		h:    float64(screen.Bounds().Dy()),
	}
}

// visible reports whether a world box (x, y bottom-left) may appear on
// screen.
func (v viewport) visible(x, y, w, h float64) bool {
	return x+w >= v.camX-cullPadding && x <= v.camX+v.w+cullPadding &&
		y+h >= v.camY-cullPadding && y <= v.camY+v.h+cullPadding
}

// rect converts a world box into its screen top-left corner.
func (v viewport) rect(x, y, h float64) (float32, float32) {
	sx, sy := WorldToScreen(v.camX, v.camY, x, y+h)
	return float32(sx), float32(sy)
}

// DrawBackground fills the screen with the level's background colour.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	bg := cfg.Screen.GameBackground
	if level := GetLevel(e); level != nil && level.Map != nil {
		bg = level.Background
	}
	screen.Fill(bg)
}

// DrawTiles draws the tiles of one map layer.
func DrawTiles(layer string) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		v := newViewport(e, screen)
		components.Tile.Each(e.World, func(entry *donburi.Entry) {
			t := components.Tile.Get(entry)
			if t.Layer != layer || !v.visible(t.X, t.Y, t.Size, t.Size) {
				return
			}
			x, y := v.rect(t.X, t.Y, t.Size)
			vector.FillRect(screen, x, y, float32(t.Size), float32(t.Size), t.Color, false)
		})
	}
}

// DrawSprites draws every entity with a sprite as a coloured shape. Coins
// are drawn at their bobbing offset.
func DrawSprites(e *ecs.ECS, screen *ebiten.Image) {
	v := newViewport(e, screen)

	components.Sprite.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry).Object
		if !v.visible(obj.X, obj.Y, obj.W, obj.H) {
			return
		}
		sprite := components.Sprite.Get(entry)

		y := obj.Y
		if entry.HasComponent(components.Bob) {
			y += components.Bob.Get(entry).OffsetY
		}

		switch {
		case entry.HasComponent(tags.Projectile):
			drawProjectile(screen, v, entry, sprite.Color)
		case sprite.Round:
			cx, cy := WorldToScreen(v.camX, v.camY, obj.X+obj.W/2, y+obj.H/2)
			vector.FillCircle(screen, float32(cx), float32(cy), float32(obj.W/2), sprite.Color, true)
		default:
			x, sy := v.rect(obj.X, y, obj.H)
			vector.FillRect(screen, x, sy, float32(obj.W), float32(obj.H), sprite.Color, false)
		}
	})
}

// drawProjectile draws a laser as a line along its direction of travel.
func drawProjectile(screen *ebiten.Image, v viewport, entry *donburi.Entry, c color.RGBA) {
	obj := components.Object.Get(entry).Object
	vel := components.Physics.Get(entry)
	cx, cy := engine.Center(obj)

	speed := components.Projectile.Get(entry).Speed
	if speed == 0 {
		return
	}
	half := obj.W / 2
	dx, dy := vel.ChangeX/speed*half, vel.ChangeY/speed*half

	x0, y0 := WorldToScreen(v.camX, v.camY, cx-dx, cy-dy)
	x1, y1 := WorldToScreen(v.camX, v.camY, cx+dx, cy+dy)
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), float32(obj.H/2), c, true)
}
