package components

import (
	"github.com/automoto/kallis-world/engine"
	"github.com/yohamta/donburi"
)

// PhysicsData holds a moving entity's velocity. The player's velocity is
// shared with the level's platformer stepper.
type PhysicsData struct {
	*engine.Velocity
}

var Physics = donburi.NewComponentType[PhysicsData]()
