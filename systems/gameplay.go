package systems

import (
	"github.com/automoto/kallis-world/components"
	cfg "github.com/automoto/kallis-world/config"
	"github.com/automoto/kallis-world/engine"
	"github.com/automoto/kallis-world/systems/factory"
	"github.com/automoto/kallis-world/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGameplay advances the level by one frame. The order of the steps
// matters: hazards are checked before coins, and both before the end of the
// map, so a frame never both kills the player and advances the level.
func UpdateGameplay(e *ecs.ECS) error {
	level := GetLevel(e)
	if level == nil || level.Stepper == nil {
		return nil
	}

	moveProjectiles(e)
	resolveProjectileHits(e, level)
	removeEscapedProjectiles(e)

	level.Stepper.Step()

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return nil
	}
	obj := components.Object.Get(playerEntry).Object
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	if _, y := engine.Center(obj); y < cfg.Player.FallThreshold {
		respawn(obj, player)
		PlaySFX(e, cfg.SoundGameOver)
	}

	if engine.Colliding(obj, tags.ResolvHazard) {
		physics.ChangeX = 0
		physics.ChangeY = 0
		respawn(obj, player)
		if !level.GameOverRequested {
			level.GameOverRequested = true
			PlaySFX(e, cfg.SoundGameOver)
		}
	}

	for _, coin := range engine.Collisions(obj, tags.ResolvCoin) {
		if entry, ok := coin.Data.(*donburi.Entry); ok {
			factory.Destroy(e, entry)
		} else {
			coin.Space.Remove(coin)
		}
		PlaySFX(e, cfg.SoundCoin)
		level.Score += cfg.Coin.Points
	}

	if x, _ := engine.Center(obj); x >= level.EndOfMap {
		// SetupLevel rebuilds the player and positions the camera.
		return SetupLevel(e, level.Index+1, true)
	}

	UpdateCamera(e)
	return nil
}

func respawn(obj *resolv.Object, player *components.PlayerData) {
	engine.SetCenter(obj, player.StartX, player.StartY)
	obj.Update()
}

func moveProjectiles(e *ecs.ECS) {
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		vel := components.Physics.Get(entry)
		obj.X += vel.ChangeX
		obj.Y += vel.ChangeY
		obj.Update()
	})
}

// resolveProjectileHits removes every projectile touching a meteor together
// with all the meteors it touches.
func resolveProjectileHits(e *ecs.ECS, level *components.LevelData) {
	var spent []*donburi.Entry
	var hit []*donburi.Entry

	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry).Object
		meteors := engine.Collisions(obj, tags.ResolvMeteor)
		if len(meteors) == 0 {
			return
		}
		spent = append(spent, entry)
		for _, m := range meteors {
			// Out of the hash now so a second projectile cannot score it again.
			m.Space.Remove(m)
			if meteorEntry, ok := m.Data.(*donburi.Entry); ok {
				hit = append(hit, meteorEntry)
			}
			level.Score += cfg.Meteor.Points
		}
	})

	for _, entry := range spent {
		factory.Destroy(e, entry)
	}
	for _, entry := range hit {
		factory.Destroy(e, entry)
	}
}

// removeEscapedProjectiles drops projectiles that left the play area. Both
// axes are bounded by the screen width.
func removeEscapedProjectiles(e *ecs.ECS) {
	bound := float64(cfg.C.Width)

	var escaped []*donburi.Entry
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry).Object
		if engine.Bottom(obj) > bound || engine.Top(obj) < 0 ||
			engine.Right(obj) < 0 || engine.Left(obj) > bound {
			escaped = append(escaped, entry)
		}
	})

	for _, entry := range escaped {
		factory.Destroy(e, entry)
	}
}
