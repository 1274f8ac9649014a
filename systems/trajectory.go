package systems

import (
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTrajectory recomputes the aim preview from the current pull. The
// preview runs the same flight step as the bird but never touches a body.
func UpdateTrajectory(ecs *ecs.ECS) {
	re, ok := roundEntry(ecs)
	if !ok {
		return
	}
	trajectory := components.Trajectory.Get(re)
	trajectory.Points = nil

	birdEntry, ok := tags.Bird.First(ecs.World)
	if !ok || components.Bird.Get(birdEntry).State != components.BirdAiming {
		return
	}

	rules := components.Rules.Get(re)
	sling := components.Sling.Get(birdEntry)
	body := components.Physics.Get(birdEntry)
	launch := gamemath.ComputeLaunch(sling.PullX, sling.PullY, rules.Launch)
	trajectory.Points = gamemath.PredictTrajectory(body.X, body.Y, launch.SpeedX, launch.SpeedY, rules.Flight, rules.TrajectorySteps)
}
