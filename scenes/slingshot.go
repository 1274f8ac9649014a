package scenes

import (
	"context"
	"image/color"
	"log"

	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/game"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
)

// SlingshotScene plays a level set. It owns the simulation and advances it
// exactly once per ebiten tick.
type SlingshotScene struct {
	sim   *game.Simulation
	input *PointerPull
}

// NewSlingshotScene validates the levels and loads the first one. opts.Input
// is replaced by a pointer drag anchored at the slingshot.
func NewSlingshotScene(levels []leveldata.Level, opts game.Options) (*SlingshotScene, error) {
	input := &PointerPull{}
	opts.Input = input

	sim, err := game.New(levels, opts)
	if err != nil {
		return nil, err
	}
	input.rest = sim.RestPosition()
	return &SlingshotScene{sim: sim, input: input}, nil
}

func (s *SlingshotScene) Update() error {
	switch {
	case actionJustPressed(cfg.ActionRestart):
		if err := s.sim.Restart(); err != nil {
			return err
		}
	case actionJustPressed(cfg.ActionAdvance):
		if err := s.sim.Advance(); err != nil {
			return err
		}
		log.Printf("Advanced to level %d of %d", s.sim.LevelIndex()+1, s.sim.LevelCount())
	case actionJustPressed(cfg.ActionDebug):
		s.sim.ToggleDebug()
	}

	s.sim.Tick(context.Background())
	return nil
}

func (s *SlingshotScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	s.sim.Draw(screen)
}
