package components

import (
	"github.com/yohamta/donburi"
)

// ProjectileData describes a fired laser. Angle is in degrees, counter
// clockwise from +x.
type ProjectileData struct {
	Angle float64
	Speed float64
}

var Projectile = donburi.NewComponentType[ProjectileData]()
