package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// SpriteData is how an entity's box is drawn. Rotation is in degrees.
type SpriteData struct {
	Color    color.RGBA
	Rotation float64
	Round    bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
