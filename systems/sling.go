package systems

import (
	"log"

	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSling drives the bird through AtRest, Aiming and Flying from the
// tick's pull sample. A release before the minimum aim duration puts the bird
// back on the slingshot without spending ammunition.
func UpdateSling(ecs *ecs.ECS) {
	re, ok := roundEntry(ecs)
	if !ok {
		return
	}
	birdEntry, ok := tags.Bird.First(ecs.World)
	if !ok {
		return
	}

	pull := components.Pull.Get(re)
	bird := components.Bird.Get(birdEntry)
	sling := components.Sling.Get(birdEntry)

	if bird.State == components.BirdAtRest {
		if !pull.Active {
			return
		}
		bird.State = components.BirdAiming
		sling.AimStart = pull.Now
	}
	if bird.State != components.BirdAiming {
		return
	}

	rules := components.Rules.Get(re)
	if pull.Active {
		aim(birdEntry, pull, rules)
	}
	if pull.Released || !pull.Active {
		release(birdEntry, components.Round.Get(re), pull, rules)
	}
}

func aim(birdEntry *donburi.Entry, pull *components.PullData, rules *components.RulesData) {
	sling := components.Sling.Get(birdEntry)
	body := components.Physics.Get(birdEntry)

	sling.PullX, sling.PullY = gamemath.ClampPull(pull.DX, pull.DY, rules.Launch.MaxPull)
	sling.Power = gamemath.ComputeLaunch(sling.PullX, sling.PullY, rules.Launch).Power
	body.X = rules.RestX + sling.PullX
	body.Y = rules.RestY + sling.PullY
	syncObject(birdEntry)
}

func release(birdEntry *donburi.Entry, round *components.RoundData, pull *components.PullData, rules *components.RulesData) {
	bird := components.Bird.Get(birdEntry)
	sling := components.Sling.Get(birdEntry)
	body := components.Physics.Get(birdEntry)

	held := pull.Now.Sub(sling.AimStart)
	if held < rules.MinAimDuration {
		log.Printf("Shot cancelled: released after %v, need %v", held, rules.MinAimDuration)
		bird.State = components.BirdAtRest
		*body = components.PhysicsData{X: rules.RestX, Y: rules.RestY}
		*sling = components.SlingData{}
		syncObject(birdEntry)
		return
	}

	launch := gamemath.ComputeLaunch(sling.PullX, sling.PullY, rules.Launch)
	body.SpeedX = launch.SpeedX
	body.SpeedY = launch.SpeedY
	bird.State = components.BirdFlying
	round.Ammo--
	*sling = components.SlingData{}
}
