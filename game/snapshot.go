package game

import (
	"image/color"

	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi"
)

type BirdView struct {
	X, Y           float64
	SpeedX, SpeedY float64
	Radius         float64
	State          components.BirdState
}

type PigView struct {
	Source         int
	X, Y           float64
	SpeedX, SpeedY float64
	Radius         float64
	Health         float64
	Resting        bool
}

type BlockView struct {
	Source         int
	Kind           leveldata.Kind
	Material       leveldata.Material
	X, Y           float64
	SpeedX, SpeedY float64
	HalfW, HalfH   float64
	Health         float64
	Resting        bool
}

type ParticleView struct {
	X, Y   float64
	Radius float64
	Color  color.RGBA
	Life   int
}

// Snapshot is a copy of the world after the last tick. Pigs and blocks are
// in placement order. Bird is nil once the last bird has stopped.
type Snapshot struct {
	Bird       *BirdView
	Pigs       []PigView
	Blocks     []BlockView
	Particles  []ParticleView
	Trajectory []gamemath.Point

	LevelIndex int
	Score      int
	Ammo       int
	Result     Result
	Stars      int
}

func (s *Simulation) Snapshot() Snapshot {
	round := components.Round.Get(s.round)
	structure := components.Structure.Get(s.round)

	snap := Snapshot{
		Trajectory: s.Trajectory(),
		LevelIndex: s.index,
		Score:      round.Score,
		Ammo:       round.Ammo,
		Result:     round.Result,
		Stars:      s.Stars(),
	}

	if birdEntry, ok := tags.Bird.First(s.ecs.World); ok {
		bird := components.Bird.Get(birdEntry)
		body := components.Physics.Get(birdEntry)
		snap.Bird = &BirdView{
			X:      body.X,
			Y:      body.Y,
			SpeedX: body.SpeedX,
			SpeedY: body.SpeedY,
			Radius: bird.Radius,
			State:  bird.State,
		}
	}

	for _, e := range structure.Pigs {
		pig := components.Pig.Get(e)
		body := components.Physics.Get(e)
		snap.Pigs = append(snap.Pigs, PigView{
			Source:  pig.Source,
			X:       body.X,
			Y:       body.Y,
			SpeedX:  body.SpeedX,
			SpeedY:  body.SpeedY,
			Radius:  pig.Radius,
			Health:  components.Health.Get(e).Current,
			Resting: components.Support.Get(e).Resting,
		})
	}

	for _, e := range structure.Blocks {
		block := components.Block.Get(e)
		body := components.Physics.Get(e)
		snap.Blocks = append(snap.Blocks, BlockView{
			Source:   block.Source,
			Kind:     block.Kind,
			Material: block.Material,
			X:        body.X,
			Y:        body.Y,
			SpeedX:   body.SpeedX,
			SpeedY:   body.SpeedY,
			HalfW:    block.HalfW,
			HalfH:    block.HalfH,
			Health:   components.Health.Get(e).Current,
			Resting:  components.Support.Get(e).Resting,
		})
	}

	tags.Particle.Each(s.ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		body := components.Physics.Get(e)
		snap.Particles = append(snap.Particles, ParticleView{
			X:      body.X,
			Y:      body.Y,
			Radius: p.Radius,
			Color:  p.Color,
			Life:   p.Life,
		})
	})

	return snap
}
