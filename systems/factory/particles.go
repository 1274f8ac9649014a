package factory

import (
	"image/color"
	"math"

	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// SpawnParticles sprays count particles from (x, y) in random directions.
// Directions, speeds and sizes come from the round's seeded source.
func SpawnParticles(ecs *ecs.ECS, x, y float64, count int, c color.RGBA) {
	roundEntry, ok := components.Random.First(ecs.World)
	if !ok {
		return
	}
	rng := components.Random.Get(roundEntry)
	p := cfg.Particles

	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := p.MinSpeed + rng.Float64()*(p.MaxSpeed-p.MinSpeed)
		radius := p.MinRadius + rng.Float64()*(p.MaxRadius-p.MinRadius)

		particle := archetypes.Particle.Spawn(ecs)
		components.Physics.SetValue(particle, components.PhysicsData{
			X:      x,
			Y:      y,
			SpeedX: math.Cos(angle) * speed,
			SpeedY: math.Sin(angle) * speed,
		})
		components.Particle.SetValue(particle, components.ParticleData{
			Radius: radius,
			Color:  c,
			Life:   p.Life,
			Alpha:  1,
			Fade:   gween.New(1, 0, float32(p.Life), ease.Linear),
		})
	}
}
