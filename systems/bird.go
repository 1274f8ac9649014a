package systems

import (
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBird integrates a flying bird one frame and stops it once it has
// come to rest after a bounce or left the playfield horizontally.
func UpdateBird(ecs *ecs.ECS) {
	re, ok := roundEntry(ecs)
	if !ok {
		return
	}
	birdEntry, ok := tags.Bird.First(ecs.World)
	if !ok {
		return
	}
	bird := components.Bird.Get(birdEntry)
	if bird.State != components.BirdFlying {
		return
	}

	rules := components.Rules.Get(re)
	body := components.Physics.Get(birdEntry)

	s := gamemath.FlightState{X: body.X, Y: body.Y, SpeedX: body.SpeedX, SpeedY: body.SpeedY}
	ev := gamemath.StepFlight(&s, rules.Flight)
	body.X, body.Y, body.SpeedX, body.SpeedY = s.X, s.Y, s.SpeedX, s.SpeedY

	if ev == gamemath.FlightStopped || body.X+bird.Radius < 0 || body.X-bird.Radius > rules.Width {
		bird.State = components.BirdStopped
	}
	syncObject(birdEntry)
}
