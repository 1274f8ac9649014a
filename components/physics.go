package components

import "github.com/yohamta/donburi"

// PhysicsData is the center position and velocity of a body, in pixels and
// pixels per frame.
type PhysicsData struct {
	X, Y   float64
	SpeedX float64
	SpeedY float64
}

var Physics = donburi.NewComponentType[PhysicsData]()

// SupportData tracks a placed pig or block. While Resting it keeps the position
// placement gave it; it is dislodged when knocked back or when any body in
// Supports is removed or dislodged itself.
type SupportData struct {
	Resting  bool
	Supports []donburi.Entity
}

var Support = donburi.NewComponentType[SupportData]()
