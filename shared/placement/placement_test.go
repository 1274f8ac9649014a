package placement

import (
	"errors"
	"reflect"
	"testing"

	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/shared/leveldata"
)

var testCanvas = Canvas{Width: 1000, GroundY: 680}

func stackingObjects(leftPillar, rightPillar float64) []leveldata.ObjectDescriptor {
	return []leveldata.ObjectDescriptor{
		{X: leftPillar, Kind: leveldata.KindPillar, Height: 80},
		{X: rightPillar, Kind: leveldata.KindPillar, Height: 80},
		{X: 0.25, Kind: leveldata.KindBeam, Width: 160},
		{X: 0.25, Kind: leveldata.KindPig, Radius: 22},
		{X: 0.25, Kind: leveldata.KindBlock, Width: 50, Height: 20},
	}
}

func TestPlaceStacking(t *testing.T) {
	t.Run("beam spans both pillars", func(t *testing.T) {
		res, err := Place(stackingObjects(0.17, 0.33), testCanvas)
		if err != nil {
			t.Fatalf("Place() failed: %v", err)
		}

		wantBottoms := []float64{680, 680, 600, 585, 541}
		for i, want := range wantBottoms {
			if res.Spans[i].Bottom != want {
				t.Errorf("span %d bottom = %v, want %v", i, res.Spans[i].Bottom, want)
			}
		}

		if len(res.Blocks) != 4 || len(res.Pigs) != 1 {
			t.Fatalf("expected 4 blocks and 1 pig, got %d and %d", len(res.Blocks), len(res.Pigs))
		}
		beam := res.Blocks[2]
		if beam.Y != 592.5 || beam.HalfW != 80 || beam.HalfH != BeamHeight/2 {
			t.Errorf("beam = %+v", beam)
		}
		if !reflect.DeepEqual(beam.Supports, []int{0, 1}) {
			t.Errorf("beam supports = %v, want [0 1]", beam.Supports)
		}

		pig := res.Pigs[0]
		if pig.X != 250 || pig.Y != 563 || pig.Source != 3 {
			t.Errorf("pig = %+v", pig)
		}
		if !reflect.DeepEqual(pig.Supports, []int{2}) {
			t.Errorf("pig supports = %v, want [2]", pig.Supports)
		}

		block := res.Blocks[3]
		if block.Y != 531 || !reflect.DeepEqual(block.Supports, []int{3}) {
			t.Errorf("block = %+v", block)
		}
	})

	t.Run("pillars outside the beam extent", func(t *testing.T) {
		// Pillars at 0.15 and 0.35 end at 157.5 and start at 342.5 while the
		// beam covers 170..330, so the beam goes to the ground.
		res, err := Place(stackingObjects(0.15, 0.35), testCanvas)
		if err != nil {
			t.Fatalf("Place() failed: %v", err)
		}

		wantBottoms := []float64{680, 680, 680, 665, 621}
		for i, want := range wantBottoms {
			if res.Spans[i].Bottom != want {
				t.Errorf("span %d bottom = %v, want %v", i, res.Spans[i].Bottom, want)
			}
		}
		for _, b := range res.Blocks[:3] {
			if len(b.Supports) != 0 {
				t.Errorf("block %d should rest on the ground, supports = %v", b.Source, b.Supports)
			}
		}
	})
}

func TestPlaceTouchingEdges(t *testing.T) {
	objects := []leveldata.ObjectDescriptor{
		{X: 0.25, Kind: leveldata.KindBlock, Width: 50, Height: 30},
		{X: 0.75, Kind: leveldata.KindBlock, Width: 50, Height: 30},
	}
	res, err := Place(objects, Canvas{Width: 100, GroundY: 100})
	if err != nil {
		t.Fatalf("Place() failed: %v", err)
	}
	if res.Spans[0].Right != res.Spans[1].Left {
		t.Fatalf("fixture should touch: %+v", res.Spans)
	}
	if res.Spans[1].Bottom != 100 {
		t.Errorf("touching block should rest on the ground, bottom = %v", res.Spans[1].Bottom)
	}
}

func TestPlaceDeterministic(t *testing.T) {
	levels, err := leveldata.LoadShipped()
	if err != nil {
		t.Fatalf("LoadShipped() failed: %v", err)
	}
	for _, l := range levels {
		first, err := Place(l.Objects, testCanvas)
		if err != nil {
			t.Fatalf("%s: Place() failed: %v", l.Name, err)
		}
		second, _ := Place(l.Objects, testCanvas)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: repeated placement differs", l.Name)
		}
	}
}

func TestPlaceShippedLevelsDoNotOverlap(t *testing.T) {
	levels, err := leveldata.LoadShipped()
	if err != nil {
		t.Fatalf("LoadShipped() failed: %v", err)
	}

	for _, l := range levels {
		t.Run(l.Name, func(t *testing.T) {
			res, err := Place(l.Objects, testCanvas)
			if err != nil {
				t.Fatalf("Place() failed: %v", err)
			}
			if len(res.Spans) != len(l.Objects) {
				t.Fatalf("expected %d spans, got %d", len(l.Objects), len(res.Spans))
			}
			if len(res.Pigs)+len(res.Blocks) != len(l.Objects) {
				t.Errorf("expected %d bodies, got %d", len(l.Objects), len(res.Pigs)+len(res.Blocks))
			}

			for j, b := range res.Spans {
				// every object rests on the ground or exactly on an earlier one
				rests := b.Bottom == testCanvas.GroundY
				for i := 0; i < j; i++ {
					a := res.Spans[i]
					if !gamemath.SpansOverlap(a.Left, a.Right, b.Left, b.Right) {
						continue
					}
					if b.Bottom > a.Top && b.Top < a.Bottom {
						t.Errorf("objects %d and %d overlap: %+v %+v", i, j, a, b)
					}
					if b.Bottom == a.Top {
						rests = true
					}
				}
				if !rests {
					t.Errorf("object %d floats at bottom %v", j, b.Bottom)
				}
			}
		})
	}
}

func TestPlaceRejectsMalformed(t *testing.T) {
	objects := []leveldata.ObjectDescriptor{
		{X: 0.5, Kind: leveldata.KindPillar, Height: 40},
		{X: 0.5, Kind: leveldata.KindBlock, Width: 30},
	}
	res, err := Place(objects, testCanvas)

	var ce *leveldata.ConfigurationError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ConfigurationError, got %v", err)
	}
	if ce.Index != 1 || ce.Field != "height" {
		t.Errorf("error = %+v, want object 1 height", ce)
	}
	if res.Pigs != nil || res.Blocks != nil || res.Spans != nil {
		t.Errorf("expected no partial result, got %+v", res)
	}
}

func TestFootprint(t *testing.T) {
	tests := []struct {
		name string
		obj  leveldata.ObjectDescriptor
		w, h float64
	}{
		{"pig", leveldata.ObjectDescriptor{Kind: leveldata.KindPig, Radius: 12}, 24, 24},
		{"pillar", leveldata.ObjectDescriptor{Kind: leveldata.KindPillar, Height: 90}, PillarWidth, 90},
		{"beam", leveldata.ObjectDescriptor{Kind: leveldata.KindBeam, Width: 140}, 140, BeamHeight},
		{"block", leveldata.ObjectDescriptor{Kind: leveldata.KindBlock, Width: 30, Height: 45}, 30, 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := Footprint(tt.obj)
			if err != nil {
				t.Fatalf("Footprint() failed: %v", err)
			}
			if w != tt.w || h != tt.h {
				t.Errorf("Footprint() = %v x %v, want %v x %v", w, h, tt.w, tt.h)
			}
		})
	}

	if _, _, err := Footprint(leveldata.ObjectDescriptor{}); !errors.Is(err, leveldata.ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}
