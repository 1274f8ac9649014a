package components

import (
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/yohamta/donburi"
)

// TrajectoryData is the aim preview. It is empty unless the bird is aiming.
type TrajectoryData struct {
	Points []gamemath.Point
}

var Trajectory = donburi.NewComponentType[TrajectoryData]()
