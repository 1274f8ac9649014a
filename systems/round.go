package systems

import (
	"log"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRound ends the round or reloads the slingshot. The round is won as
// soon as no pigs remain. A stopped bird is removed; the next one is spawned
// while ammunition remains, otherwise the round is lost.
func UpdateRound(ecs *ecs.ECS) {
	re, ok := roundEntry(ecs)
	if !ok {
		return
	}
	round := components.Round.Get(re)
	if round.Result != components.RoundInProgress {
		return
	}

	structure := components.Structure.Get(re)
	if len(structure.Pigs) == 0 {
		round.Result = components.RoundWon
		round.Stars = StarRating(round.StartingAmmo-round.Ammo, round.StartingAmmo)
		log.Printf("Level %q won: score %d, %d stars", round.LevelName, round.Score, round.Stars)
		return
	}

	if birdEntry, ok := tags.Bird.First(ecs.World); ok {
		if components.Bird.Get(birdEntry).State != components.BirdStopped {
			return
		}
		removeBody(ecs, birdEntry)
	}

	if round.Ammo <= 0 {
		round.Result = components.RoundLost
		log.Printf("Level %q lost: %d pigs remain, score %d", round.LevelName, len(structure.Pigs), round.Score)
		return
	}
	factory.CreateBird(ecs, components.Rules.Get(re))
}

// StarRating grades a won round by the share of birds used.
func StarRating(used, starting int) int {
	if starting <= 0 {
		return 1
	}
	usage := float64(used) / float64(starting)
	switch {
	case usage <= cfg.Round.ThreeStarUsage:
		return 3
	case usage <= cfg.Round.TwoStarUsage:
		return 2
	default:
		return 1
	}
}

// WithRoundActive wraps a system to skip execution once the round is decided.
func WithRoundActive(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if re, ok := roundEntry(e); ok && components.Round.Get(re).Result != components.RoundInProgress {
			return
		}
		system(e)
	}
}
