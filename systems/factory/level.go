package factory

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/automoto/slingshot/shared/placement"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel places the level's objects and spawns the round, its pigs and
// blocks and the first bird. Placement runs before any entity is created, so
// a malformed level leaves the world untouched.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level, index int, rules components.RulesData, seed uint64) (*donburi.Entry, error) {
	if err := leveldata.Validate(level); err != nil {
		return nil, err
	}
	placed, err := placement.Place(level.Objects, placement.Canvas{Width: rules.Width, GroundY: rules.GroundY})
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", level.Name, err)
	}

	round := archetypes.Round.Spawn(ecs)
	components.Round.SetValue(round, components.RoundData{
		LevelIndex:   index,
		LevelName:    level.Name,
		StartingAmmo: level.Birds,
		Ammo:         level.Birds,
		Result:       components.RoundInProgress,
	})
	components.Rules.SetValue(round, rules)
	components.Random.SetValue(round, components.RandomData{Rand: rand.New(rand.NewPCG(seed, uint64(index)))})

	structure := components.Structure.Get(round)
	bySource := make(map[int]*donburi.Entry, len(level.Objects))
	supports := make(map[*donburi.Entry][]int, len(level.Objects))

	// Spawn in descriptor order so entity creation matches placement order.
	pi, bi := 0, 0
	for src := range level.Objects {
		switch {
		case pi < len(placed.Pigs) && placed.Pigs[pi].Source == src:
			p := placed.Pigs[pi]
			e := CreatePig(ecs, p)
			structure.Pigs = append(structure.Pigs, e)
			bySource[src] = e
			supports[e] = p.Supports
			pi++
		case bi < len(placed.Blocks) && placed.Blocks[bi].Source == src:
			b := placed.Blocks[bi]
			e := CreateBlock(ecs, b)
			structure.Blocks = append(structure.Blocks, e)
			bySource[src] = e
			supports[e] = b.Supports
			bi++
		}
	}

	for e, srcs := range supports {
		support := components.Support.Get(e)
		for _, src := range srcs {
			support.Supports = append(support.Supports, bySource[src].Entity())
		}
	}

	CreateBird(ecs, components.Rules.Get(round))

	log.Printf("Loaded level %d %q: %d pigs, %d blocks, %d birds",
		index, level.Name, len(structure.Pigs), len(structure.Blocks), level.Birds)
	return round, nil
}
