package systems

import (
	"github.com/automoto/kallis-world/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBobs advances every coin's bobbing tween by one frame.
func UpdateBobs(e *ecs.ECS) {
	dt := float32(1.0 / 60.0)
	components.Bob.Each(e.World, func(entry *donburi.Entry) {
		bob := components.Bob.Get(entry)
		if bob.Sequence == nil {
			return
		}
		value, _, done := bob.Sequence.Update(dt)
		if done {
			bob.Sequence.Reset()
		}
		bob.OffsetY = float64(value)
	})
}
