package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type CloudData struct {
	X, Y  float64
	W, H  float64
	BaseX float64
}

var Cloud = donburi.NewComponentType[CloudData]()

// Tween drives a cloud back and forth around its BaseX.
var Tween = donburi.NewComponentType[gween.Sequence]()
