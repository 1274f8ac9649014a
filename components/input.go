package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// PullData is the input sample for the current tick. It is written once per
// tick before any system runs.
type PullData struct {
	DX, DY   float64
	Active   bool
	Released bool
	Now      time.Time
}

var Pull = donburi.NewComponentType[PullData]()
