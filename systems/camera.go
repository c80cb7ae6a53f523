package systems

import (
	"math"

	"github.com/automoto/kallis-world/components"
	"github.com/automoto/kallis-world/config"
	"github.com/automoto/kallis-world/engine"
	"github.com/automoto/kallis-world/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera centres the viewport on the player, never scrolling past the
// left or bottom edge of the world.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	px, py := engine.Center(components.Object.Get(playerEntry).Object)

	camera.Position.X = math.Max(0, px-float64(config.C.Width)/2)
	camera.Position.Y = math.Max(0, py-float64(config.C.Height)/2)
}

// CameraPosition returns the world position of the viewport's bottom-left
// corner.
func CameraPosition(e *ecs.ECS) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return camera.Position.X, camera.Position.Y
}

// WorldToScreen converts a y-up world point into y-down screen pixels.
func WorldToScreen(camX, camY, x, y float64) (float64, float64) {
	return x - camX, float64(config.C.Height) - (y - camY)
}

// ScreenToWorld converts a y-down screen point into y-up world space.
func ScreenToWorld(camX, camY, sx, sy float64) (float64, float64) {
	return camX + sx, camY + float64(config.C.Height) - sy
}
