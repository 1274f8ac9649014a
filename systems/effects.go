package systems

import (
	"github.com/automoto/slingshot/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const hitFlashFrames = 6

// UpdateEffects counts down hit flashes.
func UpdateEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		if f := components.Flash.Get(e); f.Duration > 0 {
			f.Duration--
		}
	})
}
