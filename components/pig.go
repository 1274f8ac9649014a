package components

import "github.com/yohamta/donburi"

type PigData struct {
	Radius float64
	Source int // index of the descriptor that placed it
}

var Pig = donburi.NewComponentType[PigData]()
