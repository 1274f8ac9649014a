package factory

import (
	"math/rand/v2"

	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// CreateClouds spreads the background clouds evenly across the width. Each
// cloud drifts right and back using a tween sequence.
func CreateClouds(ecs *ecs.ECS, width float64, rng *rand.Rand) {
	c := cfg.Clouds
	for i := 0; i < c.Count; i++ {
		cloud := archetypes.Cloud.Spawn(ecs)

		x := width * (float64(i) + 0.5) / float64(c.Count)
		y := c.MinY + rng.Float64()*(c.MaxY-c.MinY)
		w := 80 + rng.Float64()*60
		components.Cloud.SetValue(cloud, components.CloudData{X: x, Y: y, W: w, H: w * 0.4, BaseX: x})

		drift := float32(c.Drift)
		tw := gween.NewSequence()
		tw.Add(
			gween.New(0, drift, c.Duration, ease.InOutSine),
			gween.New(drift, 0, c.Duration, ease.InOutSine),
		)
		components.Tween.Set(cloud, tw)
	}
}
