package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/automoto/slingshot/shared/placement"
	"github.com/automoto/slingshot/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBird spawns a bird on the slingshot.
func CreateBird(ecs *ecs.ECS, rules *components.RulesData) *donburi.Entry {
	bird := archetypes.Bird.Spawn(ecs)
	r := rules.Flight.Radius

	components.Bird.SetValue(bird, components.BirdData{State: components.BirdAtRest, Radius: r})
	components.Physics.SetValue(bird, components.PhysicsData{X: rules.RestX, Y: rules.RestY})

	obj := resolv.NewObject(rules.RestX-r, rules.RestY-r, 2*r, 2*r, tags.ResolvBird)
	obj.Data = bird
	components.Object.SetValue(bird, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return bird
}

// CreatePig spawns a placed pig. Health scales with its radius.
func CreatePig(ecs *ecs.ECS, p placement.PigInit) *donburi.Entry {
	pig := archetypes.Pig.Spawn(ecs)

	components.Pig.SetValue(pig, components.PigData{Radius: p.Radius, Source: p.Source})
	components.Physics.SetValue(pig, components.PhysicsData{X: p.X, Y: p.Y})
	hp := p.Radius * cfg.Damage.PigHealthPerRadius
	components.Health.SetValue(pig, components.HealthData{Current: hp, Max: hp})
	components.Support.SetValue(pig, components.SupportData{Resting: true})

	obj := resolv.NewObject(p.X-p.Radius, p.Y-p.Radius, 2*p.Radius, 2*p.Radius, tags.ResolvPig)
	obj.Data = pig
	components.Object.SetValue(pig, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return pig
}

// CreateBlock spawns a placed pillar, beam or block.
func CreateBlock(ecs *ecs.ECS, b placement.BlockInit) *donburi.Entry {
	block := archetypes.Block.Spawn(ecs)

	components.Block.SetValue(block, components.BlockData{
		Kind:     b.Kind,
		Material: b.Material,
		HalfW:    b.HalfW,
		HalfH:    b.HalfH,
		Source:   b.Source,
	})
	components.Physics.SetValue(block, components.PhysicsData{X: b.X, Y: b.Y})
	hp := MaterialHealth(b.Material)
	components.Health.SetValue(block, components.HealthData{Current: hp, Max: hp})
	components.Support.SetValue(block, components.SupportData{Resting: true})

	w, h := 2*b.HalfW, 2*b.HalfH
	obj := resolv.NewObject(b.X-b.HalfW, b.Y-b.HalfH, w, h, tags.ResolvBlock)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = block
	components.Object.SetValue(block, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return block
}

// MaterialHealth returns the starting health of a block.
func MaterialHealth(m leveldata.Material) float64 {
	switch m {
	case leveldata.MaterialStone:
		return cfg.Damage.StoneHealth
	default:
		return cfg.Damage.WoodHealth
	}
}
