package systems

import (
	"github.com/automoto/slingshot/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// syncObject moves the entry's broadphase object so its bounding box is
// centered on the entry's position.
func syncObject(e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	body := components.Physics.Get(e)
	obj.X = body.X - obj.W/2
	obj.Y = body.Y - obj.H/2
	obj.Update()
}

// removeBody takes the entry out of the broadphase and the world.
func removeBody(ecs *ecs.ECS, e *donburi.Entry) {
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}

// roundEntry returns the singleton holding round state, rules and the
// structure lists.
func roundEntry(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return components.Round.First(ecs.World)
}
