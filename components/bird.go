package components

import (
	"fmt"

	"github.com/yohamta/donburi"
)

type BirdState int

const (
	BirdAtRest BirdState = iota
	BirdAiming
	BirdFlying
	BirdStopped
)

func (s BirdState) String() string {
	switch s {
	case BirdAtRest:
		return "AtRest"
	case BirdAiming:
		return "Aiming"
	case BirdFlying:
		return "Flying"
	case BirdStopped:
		return "Stopped"
	default:
		return fmt.Sprintf("BirdState(%d)", int(s))
	}
}

type BirdData struct {
	State  BirdState
	Radius float64
}

var Bird = donburi.NewComponentType[BirdData]()
