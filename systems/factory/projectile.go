package factory

import (
	"math"

	"github.com/automoto/kallis-world/archetypes"
	"github.com/automoto/kallis-world/components"
	"github.com/automoto/kallis-world/config"
	"github.com/automoto/kallis-world/engine"
	"github.com/automoto/kallis-world/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile fires a laser from (startX, startY) towards
// (targetX, targetY) at the configured speed.
func CreateProjectile(ecs *ecs.ECS, startX, startY, targetX, targetY float64) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	obj := engine.NewBox(startX, startY, config.Projectile.Width, config.Projectile.Height, tags.ResolvProjectile)
	AddToSpace(ecs, p, obj)

	angle := math.Atan2(targetY-startY, targetX-startX)
	speed := config.Projectile.Speed
	degrees := angle * 180 / math.Pi

	components.Physics.SetValue(p, components.PhysicsData{Velocity: &engine.Velocity{
		ChangeX: speed * math.Cos(angle),
		ChangeY: speed * math.Sin(angle),
	}})
	components.Projectile.SetValue(p, components.ProjectileData{
		Angle: degrees,
		Speed: speed,
	})
	components.Sprite.SetValue(p, components.SpriteData{Color: config.Lime, Rotation: degrees})

	return p
}
