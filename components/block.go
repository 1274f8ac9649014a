package components

import (
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/yohamta/donburi"
)

type BlockData struct {
	Kind     leveldata.Kind
	Material leveldata.Material
	HalfW    float64
	HalfH    float64
	Source   int
}

var Block = donburi.NewComponentType[BlockData]()
