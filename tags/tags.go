package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Platform   = donburi.NewTag().SetName("Platform")
	Hazard     = donburi.NewTag().SetName("Hazard")
	Coin       = donburi.NewTag().SetName("Coin")
	Meteor     = donburi.NewTag().SetName("Meteor")
	Projectile = donburi.NewTag().SetName("Projectile")
	Scenery    = donburi.NewTag().SetName("Scenery")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvPlayer     = "Player"
	ResolvHazard     = "hazard"
	ResolvCoin       = "coin"
	ResolvMeteor     = "meteor"
	ResolvProjectile = "projectile"
)
