package components

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/yohamta/donburi"
)

// RulesData holds the tunables a simulation was built with. Systems read it
// instead of the config globals so tests can run with their own values.
type RulesData struct {
	Width   float64
	Height  float64
	GroundY float64

	Flight gamemath.FlightParams
	Settle gamemath.SettleParams
	Launch gamemath.LaunchParams

	MinAimDuration  time.Duration
	RestX, RestY    float64
	TrajectorySteps int
}

var Rules = donburi.NewComponentType[RulesData]()

type RandomData struct {
	*rand.Rand
}

// Random is the seeded source for particle spray.
var Random = donburi.NewComponentType[RandomData]()

type SettingsData struct {
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()
