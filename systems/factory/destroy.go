package factory

import (
	"github.com/automoto/kallis-world/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// Destroy removes an entity and its collision box.
func Destroy(ecs *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	ecs.World.Remove(entry.Entity())
}

var levelContents = donburi.NewQuery(filter.Or(
	filter.Contains(components.Object),
	filter.Contains(components.Tile),
	filter.Contains(components.Space),
))

// ClearLevel removes every entity that belongs to the current map: tiles,
// bodies and the spatial hash. Singletons such as the level, camera and
// input survive.
func ClearLevel(ecs *ecs.ECS) {
	var toRemove []donburi.Entity
	levelContents.Each(ecs.World, func(e *donburi.Entry) {
		toRemove = append(toRemove, e.Entity())
	})
	for _, e := range toRemove {
		ecs.World.Remove(e)
	}
}
