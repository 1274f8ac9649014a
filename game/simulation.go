// Package game owns a running slingshot session. A Simulation holds the ECS
// world with every body, the score and the round status, and advances it one
// frame per Tick. Callers drive Tick from their own loop; nothing here
// schedules itself.
package game

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/automoto/slingshot/systems"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Result is the outcome of the current round.
type Result = components.RoundResult

const (
	InProgress = components.RoundInProgress
	Won        = components.RoundWon
	Lost       = components.RoundLost
)

const spaceCellSize = 20

// Options configures a Simulation. DefaultOptions fills it from the config
// package.
type Options struct {
	Width, Height  float64
	GroundY        float64
	MinAimDuration time.Duration
	Seed           uint64
	Clock          FrameClock
	Input          PullSignal
}

func DefaultOptions() Options {
	return Options{
		Width:          cfg.Canvas.Width,
		Height:         cfg.Canvas.Height,
		GroundY:        cfg.Canvas.GroundY(),
		MinAimDuration: cfg.Launch.MinAimDuration,
		Seed:           cfg.Particles.Seed,
		Clock:          SystemClock{},
	}
}

type Simulation struct {
	ecs    *ecs.ECS
	round  *donburi.Entry
	levels []leveldata.Level
	index  int
	opts   Options
	rules  components.RulesData
}

// New validates every level and loads the first one. A malformed level is
// reported as a *leveldata.ConfigurationError before any body exists.
func New(levels []leveldata.Level, opts Options) (*Simulation, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	for i := range levels {
		if err := leveldata.Validate(&levels[i]); err != nil {
			return nil, fmt.Errorf("level %d: %w", i, err)
		}
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}

	s := &Simulation{
		levels: levels,
		opts:   opts,
		rules:  rulesFor(opts),
	}
	if err := s.load(0); err != nil {
		return nil, err
	}
	return s, nil
}

func rulesFor(opts Options) components.RulesData {
	return components.RulesData{
		Width:   opts.Width,
		Height:  opts.Height,
		GroundY: opts.GroundY,
		Flight: gamemath.FlightParams{
			Gravity:     cfg.Physics.Gravity,
			Friction:    cfg.Physics.Friction,
			Restitution: cfg.Physics.Restitution,
			GroundDamp:  cfg.Physics.GroundDamp,
			StopSpeed:   cfg.Physics.StopSpeed,
			GroundY:     opts.GroundY,
			Radius:      cfg.Launch.BirdRadius,
		},
		Settle: gamemath.SettleParams{
			Gravity:     cfg.Settle.Gravity,
			Damping:     cfg.Settle.Damping,
			Restitution: cfg.Settle.Restitution,
			GroundDamp:  cfg.Settle.GroundDamp,
			RestSpeed:   cfg.Settle.RestSpeed,
			GroundY:     opts.GroundY,
		},
		Launch: gamemath.LaunchParams{
			MaxPull:         cfg.Launch.MaxPull,
			PowerMultiplier: cfg.Launch.PowerMultiplier,
			MaxSpeed:        cfg.Launch.MaxSpeed,
		},
		MinAimDuration:  opts.MinAimDuration,
		RestX:           cfg.Launch.RestX,
		RestY:           cfg.Launch.RestY,
		TrajectorySteps: cfg.Trajectory.Steps,
	}
}

// load builds a fresh world for levels[index] and swaps it in only once the
// level has been placed, so a failed load leaves the running world intact.
func (s *Simulation) load(index int) error {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateClouds)
	e.AddSystem(systems.WithRoundActive(systems.UpdateSling))
	e.AddSystem(systems.WithRoundActive(systems.UpdateBird))
	e.AddSystem(systems.WithRoundActive(systems.UpdatePigHits))
	e.AddSystem(systems.WithRoundActive(systems.UpdateBlockHits))
	e.AddSystem(systems.WithRoundActive(systems.UpdateSettling))
	e.AddSystem(systems.UpdateParticles)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateRound)
	e.AddSystem(systems.WithRoundActive(systems.UpdateTrajectory))

	e.AddRenderer(cfg.LayerBackground, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.DrawStructure)
	e.AddRenderer(cfg.Default, systems.DrawSling)
	e.AddRenderer(cfg.Default, systems.DrawParticles)
	e.AddRenderer(cfg.Default, systems.DrawTrajectory)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.LayerHUD, systems.DrawHUD)

	factory.CreateSpace(e, int(s.opts.Width), int(s.opts.Height), spaceCellSize, spaceCellSize)
	round, err := factory.CreateLevel(e, &s.levels[index], index, s.rules, s.opts.Seed)
	if err != nil {
		return err
	}
	factory.CreateClouds(e, s.opts.Width, rand.New(rand.NewPCG(s.opts.Seed, uint64(index)+1)))

	debug := s.round != nil && components.Settings.Get(s.round).Debug
	components.Settings.Get(round).Debug = debug

	s.ecs = e
	s.round = round
	s.index = index
	return nil
}

// Tick advances the simulation by one frame: it samples input, then runs the
// systems in their fixed order. When the sample fails the error is logged,
// only the background moves, and Tick reports false.
func (s *Simulation) Tick(ctx context.Context) bool {
	p, released, err := sample(ctx, s.opts.Input)
	if err != nil {
		log.Printf("Skipping physics this tick: %v", err)
		systems.UpdateClouds(s.ecs)
		return false
	}

	components.Pull.SetValue(s.round, components.PullData{
		DX:       p.DX,
		DY:       p.DY,
		Active:   p.Active,
		Released: released,
		Now:      s.opts.Clock.Now(),
	})
	s.ecs.Update()
	return true
}

// Restart reloads the current level from scratch.
func (s *Simulation) Restart() error {
	return s.load(s.index)
}

// Advance loads the next level, wrapping to the first after the last.
func (s *Simulation) Advance() error {
	return s.load((s.index + 1) % len(s.levels))
}

// Draw renders the world. It reads state only.
func (s *Simulation) Draw(screen *ebiten.Image) {
	s.ecs.Draw(screen)
}

func (s *Simulation) ToggleDebug() {
	settings := components.Settings.Get(s.round)
	settings.Debug = !settings.Debug
}

func (s *Simulation) Score() int { return components.Round.Get(s.round).Score }
func (s *Simulation) Ammo() int { return components.Round.Get(s.round).Ammo }
func (s *Simulation) Result() Result { return components.Round.Get(s.round).Result }
func (s *Simulation) LevelIndex() int { return s.index }
func (s *Simulation) LevelCount() int { return len(s.levels) }

// Stars is the rating of a won round, or 0 while it is not won.
func (s *Simulation) Stars() int {
	round := components.Round.Get(s.round)
	if round.Result != Won {
		return 0
	}
	return round.Stars
}

// Trajectory returns a copy of the current aim preview.
func (s *Simulation) Trajectory() []gamemath.Point {
	points := components.Trajectory.Get(s.round).Points
	return append([]gamemath.Point(nil), points...)
}

// RestPosition is where a bird waits on the slingshot.
func (s *Simulation) RestPosition() gamemath.Point {
	return gamemath.Point{X: s.rules.RestX, Y: s.rules.RestY}
}
