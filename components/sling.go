package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// SlingData is the aim in progress. PullX/PullY is the clamped pull vector
// recorded on the last active sample.
type SlingData struct {
	AimStart time.Time
	PullX    float64
	PullY    float64
	Power    float64
}

var Sling = donburi.NewComponentType[SlingData]()
