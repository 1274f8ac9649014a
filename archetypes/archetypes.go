package archetypes

import (
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Bird = newArchetype(
		tags.Bird,
		components.Bird,
		components.Object,
		components.Physics,
		components.Sling,
	)
	Pig = newArchetype(
		tags.Pig,
		components.Pig,
		components.Object,
		components.Physics,
		components.Health,
		components.Support,
		components.Flash,
	)
	Block = newArchetype(
		tags.Block,
		components.Block,
		components.Object,
		components.Physics,
		components.Health,
		components.Support,
		components.Flash,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
		components.Physics,
	)
	Cloud = newArchetype(
		tags.Cloud,
		components.Cloud,
		components.Tween,
	).onLayer(cfg.LayerBackground)
	Space = newArchetype(
		components.Space,
	)
	Round = newArchetype(
		components.Round,
		components.Structure,
		components.Trajectory,
		components.Pull,
		components.Rules,
		components.Random,
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
	layer      ecs.LayerID
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
		layer:      cfg.Default,
	}
}

func (a *archetype) onLayer(l ecs.LayerID) *archetype {
	a.layer = l
	return a
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		a.layer,
		append(a.components, cs...)...,
	))
	return e
}
