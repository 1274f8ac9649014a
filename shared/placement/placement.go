// Package placement turns an ordered list of object descriptors into resting
// positions for pigs and blocks. Objects are processed once, in list order:
// each one rests on the ground or on top of the highest earlier object whose
// horizontal extent it overlaps. Earlier objects are never moved.
package placement

import (
	"fmt"

	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/shared/leveldata"
)

// Fixed dimensions for the kinds that only declare one of them.
const (
	PillarWidth = 15.0
	BeamHeight  = 15.0
)

// Canvas is the playfield the descriptors are laid out on.
type Canvas struct {
	Width   float64
	GroundY float64
}

// Span is the footprint claimed by a placed object.
type Span struct {
	Left, Right float64
	Top, Bottom float64
}

// PigInit is the initial state of a placed pig. Supports holds the descriptor
// indices of the objects it rests on; it is empty for objects on the ground.
type PigInit struct {
	Source   int
	X, Y     float64
	Radius   float64
	Supports []int
}

// BlockInit is the initial state of a placed pillar, beam or block.
type BlockInit struct {
	Source       int
	Kind         leveldata.Kind
	Material     leveldata.Material
	X, Y         float64
	HalfW, HalfH float64
	Supports     []int
}

// Result holds the placed bodies. Spans has one entry per descriptor, indexed
// like the input.
type Result struct {
	Pigs   []PigInit
	Blocks []BlockInit
	Spans  []Span
}

// Footprint returns the bounding box size an object occupies.
func Footprint(o leveldata.ObjectDescriptor) (w, h float64, err error) {
	switch o.Kind {
	case leveldata.KindPig:
		return 2 * o.Radius, 2 * o.Radius, nil
	case leveldata.KindPillar:
		return PillarWidth, o.Height, nil
	case leveldata.KindBeam:
		return o.Width, BeamHeight, nil
	case leveldata.KindBlock:
		return o.Width, o.Height, nil
	default:
		return 0, 0, fmt.Errorf("footprint: %w: %v", leveldata.ErrUnknownKind, o.Kind)
	}
}

// Place validates every descriptor and then stacks them. A malformed
// descriptor fails the whole call and no partial result is returned.
func Place(objects []leveldata.ObjectDescriptor, c Canvas) (Result, error) {
	if err := leveldata.ValidateObjects(objects); err != nil {
		return Result{}, fmt.Errorf("place: %w", err)
	}

	res := Result{Spans: make([]Span, 0, len(objects))}
	for i, o := range objects {
		w, h, err := Footprint(o)
		if err != nil {
			return Result{}, fmt.Errorf("place object %d: %w", i, err)
		}

		centerX := o.X * c.Width
		left := centerX - w/2
		right := centerX + w/2

		bottom, supports := restingBottom(res.Spans, left, right, c.GroundY)
		span := Span{Left: left, Right: right, Top: bottom - h, Bottom: bottom}
		res.Spans = append(res.Spans, span)

		centerY := bottom - h/2
		if o.Kind == leveldata.KindPig {
			res.Pigs = append(res.Pigs, PigInit{
				Source:   i,
				X:        centerX,
				Y:        centerY,
				Radius:   o.Radius,
				Supports: supports,
			})
			continue
		}
		res.Blocks = append(res.Blocks, BlockInit{
			Source:   i,
			Kind:     o.Kind,
			Material: o.Material,
			X:        centerX,
			Y:        centerY,
			HalfW:    w / 2,
			HalfH:    h / 2,
			Supports: supports,
		})
	}
	return res, nil
}

// restingBottom returns the lowest free y above every overlapping span, capped
// at the ground, along with the spans whose top equals it.
func restingBottom(spans []Span, left, right, groundY float64) (float64, []int) {
	bottom := groundY
	for _, s := range spans {
		if gamemath.SpansOverlap(left, right, s.Left, s.Right) && s.Top < bottom {
			bottom = s.Top
		}
	}

	var supports []int
	for i, s := range spans {
		if s.Top == bottom && gamemath.SpansOverlap(left, right, s.Left, s.Right) {
			supports = append(supports, i)
		}
	}
	return bottom, supports
}
