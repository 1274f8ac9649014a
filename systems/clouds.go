package systems

import (
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// cloudStep is one tick at 60 TPS, in the seconds the cloud tweens use.
const cloudStep = float32(1.0 / 60)

// UpdateClouds drifts the background clouds. It runs every tick, whether or
// not the round is still being played.
func UpdateClouds(ecs *ecs.ECS) {
	tags.Cloud.Each(ecs.World, func(e *donburi.Entry) {
		cloud := components.Cloud.Get(e)
		tw := components.Tween.Get(e)
		offset, _, done := tw.Update(cloudStep)
		cloud.X = cloud.BaseX + float64(offset)
		if done {
			tw.Reset()
		}
	})
}
