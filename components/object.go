package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the broadphase grid every bird, pig and block object lives in.
var Space = donburi.NewComponentType[resolv.Space]()
