package systems

import (
	"math"

	"github.com/automoto/kallis-world/components"
	cfg "github.com/automoto/kallis-world/config"
	"github.com/automoto/kallis-world/engine"
	"github.com/automoto/kallis-world/logging"
	"github.com/automoto/kallis-world/systems/factory"
	"github.com/automoto/kallis-world/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerControl maps this frame's actions onto the player. Runs after
// UpdateInput and before UpdateGameplay.
func UpdatePlayerControl(e *ecs.ECS) {
	level := GetLevel(e)
	playerEntry, ok := tags.Player.First(e.World)
	if !ok || level == nil || level.Stepper == nil {
		return
	}
	input := GetInput(e)
	physics := components.Physics.Get(playerEntry)

	ApplyMovement(physics.Velocity,
		GetAction(input, cfg.ActionMoveLeft),
		GetAction(input, cfg.ActionMoveRight),
	)

	if GetAction(input, cfg.ActionJump).JustPressed && TryJump(physics.Velocity, level.Stepper) {
		PlaySFX(e, cfg.SoundJump)
	}

	if GetAction(input, cfg.ActionFire).JustPressed {
		camX, camY := CameraPosition(e)
		wx, wy := ScreenToWorld(camX, camY, float64(input.CursorX), float64(input.CursorY))
		FireAt(e, wx, wy)
	}
}

// ApplyMovement sets the horizontal speed from the direction keys. A press
// takes effect on the frame it happens; releasing either key stops the
// player. With neither key held the player stops as well, which covers a
// release that happened while the game was paused.
func ApplyMovement(vel *engine.Velocity, left, right components.ActionState) {
	if left.JustPressed {
		vel.ChangeX = -cfg.Player.MovementSpeed
	}
	if right.JustPressed {
		vel.ChangeX = cfg.Player.MovementSpeed
	}
	if left.JustReleased || right.JustReleased {
		vel.ChangeX = 0
	}
	if !left.Pressed && !right.Pressed {
		vel.ChangeX = 0
	}
}

// TryJump launches the player if the stepper reports ground underfoot.
func TryJump(vel *engine.Velocity, stepper engine.Stepper) bool {
	if !stepper.CanJump() {
		return false
	}
	vel.ChangeY = cfg.Player.JumpSpeed
	return true
}

// FireAt shoots a projectile from the player's centre towards the world
// point (x, y).
func FireAt(e *ecs.ECS, x, y float64) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	px, py := engine.Center(components.Object.Get(playerEntry).Object)

	p := factory.CreateProjectile(e, px, py, x, y)
	PlaySFX(e, cfg.SoundLaser)

	logging.L.Debug("projectile fired",
		"angle", math.Round(components.Projectile.Get(p).Angle*100)/100,
		"from_x", px, "from_y", py,
	)
}
