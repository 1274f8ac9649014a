package systems

import (
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// settleSlop lets a falling body land on a surface it sank into by rounding.
const settleSlop = 1.0

// UpdateSettling lets dislodged pigs and blocks fall under reduced gravity
// until they come to rest on the ground or on another body. A resting body
// whose supporter was removed or dislodged is dislodged too, cascading up a
// stack within the same frame.
func UpdateSettling(ecs *ecs.ECS) {
	re, ok := roundEntry(ecs)
	if !ok {
		return
	}
	structure := components.Structure.Get(re)
	rules := components.Rules.Get(re)

	bodies := make([]*donburi.Entry, 0, len(structure.Blocks)+len(structure.Pigs))
	bodies = append(bodies, structure.Blocks...)
	bodies = append(bodies, structure.Pigs...)

	for changed := true; changed; {
		changed = false
		for _, e := range bodies {
			support := components.Support.Get(e)
			if support.Resting && !supported(ecs.World, support) {
				support.Resting = false
				changed = true
			}
		}
	}

	for _, e := range bodies {
		support := components.Support.Get(e)
		if support.Resting {
			continue
		}

		body := components.Physics.Get(e)
		halfW, halfH := extents(e)
		floor, under := floorBelow(bodies, e, body.X-halfW, body.X+halfW, body.Y+halfH, rules.GroundY)

		p := rules.Settle
		p.GroundY = floor
		s := gamemath.FlightState{X: body.X, Y: body.Y, SpeedX: body.SpeedX, SpeedY: body.SpeedY}
		rested := gamemath.StepSettle(&s, halfH, p)
		body.X, body.Y, body.SpeedX, body.SpeedY = s.X, s.Y, s.SpeedX, s.SpeedY

		if rested {
			support.Resting = true
			support.Supports = nil
			if under != nil {
				support.Supports = []donburi.Entity{under.Entity()}
			}
		}
		syncObject(e)
	}
}

func supported(w donburi.World, support *components.SupportData) bool {
	for _, s := range support.Supports {
		if !w.Valid(s) {
			return false
		}
		if !components.Support.Get(w.Entry(s)).Resting {
			return false
		}
	}
	return true
}

// floorBelow returns the highest surface under the span (left, right) at or
// below bottom, and the body providing it, or the ground and nil.
func floorBelow(bodies []*donburi.Entry, self *donburi.Entry, left, right, bottom, groundY float64) (float64, *donburi.Entry) {
	floor := groundY
	var under *donburi.Entry
	for _, o := range bodies {
		if o == self {
			continue
		}
		ob := components.Physics.Get(o)
		halfW, halfH := extents(o)
		top := ob.Y - halfH
		if !gamemath.SpansOverlap(left, right, ob.X-halfW, ob.X+halfW) {
			continue
		}
		if top+settleSlop >= bottom && top < floor {
			floor = top
			under = o
		}
	}
	return floor, under
}

// extents returns the half width and half height of a pig or block.
func extents(e *donburi.Entry) (float64, float64) {
	if e.HasComponent(components.Pig) {
		r := components.Pig.Get(e).Radius
		return r, r
	}
	b := components.Block.Get(e)
	return b.HalfW, b.HalfH
}
