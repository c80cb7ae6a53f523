package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// TileData is a map tile placed in the world. Decorative tiles have no
// collision box.
type TileData struct {
	Layer string
	X, Y  float64
	Size  float64
	Color color.RGBA
}

var Tile = donburi.NewComponentType[TileData]()
