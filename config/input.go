package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a driver-level action outside the slingshot pull itself
type ActionID int

const (
	ActionNone ActionID = iota
	ActionRestart
	ActionAdvance
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Pointer drags that start farther than this from the bird are ignored
	GrabRadius float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		GrabRadius: 60,
		Bindings: map[ActionID]InputBinding{
			ActionRestart: {Keys: []ebiten.Key{ebiten.KeyR}},
			ActionAdvance: {Keys: []ebiten.Key{ebiten.KeyN, ebiten.KeyEnter}},
			ActionDebug:   {Keys: []ebiten.Key{ebiten.KeyF1}},
		},
	}
}
