package systems

import (
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles moves debris, fades it and prunes it once its life runs out.
func UpdateParticles(ecs *ecs.ECS) {
	re, ok := roundEntry(ecs)
	if !ok {
		return
	}
	groundY := components.Rules.Get(re).GroundY

	var expired []*donburi.Entry
	tags.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		body := components.Physics.Get(e)

		body.SpeedY += cfg.Particles.Gravity
		body.X += body.SpeedX
		body.Y += body.SpeedY
		if body.Y+p.Radius > groundY {
			body.Y = groundY - p.Radius
			body.SpeedY = -body.SpeedY * cfg.Particles.Restitution
		}

		p.Life--
		p.Alpha, _ = p.Fade.Update(1)
		if p.Life <= 0 {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		ecs.World.Remove(e.Entity())
	}
}
