package config

import (
	"image/color"
	"time"
)

// CanvasConfig describes the playfield in pixels. Y grows downward.
type CanvasConfig struct {
	Width        float64
	Height       float64
	GroundOffset float64 // distance from the bottom edge to the ground line
}

// GroundY returns the y coordinate of the ground line.
func (c CanvasConfig) GroundY() float64 {
	return c.Height - c.GroundOffset
}

// PhysicsConfig contains the flight model shared by the bird and the trajectory preview.
type PhysicsConfig struct {
	Gravity     float64 // added to SpeedY every frame
	Friction    float64 // velocity multiplier applied every frame in flight
	Restitution float64 // vertical velocity kept (sign flipped) on a ground bounce
	GroundDamp  float64 // horizontal velocity multiplier on a ground bounce
	StopSpeed   float64 // below this on both axes after a bounce the bird stops
}

// SettleConfig contains the lightweight dynamics used for dislodged pigs and blocks.
type SettleConfig struct {
	Gravity     float64
	Damping     float64 // velocity multiplier applied every frame
	Restitution float64
	GroundDamp  float64
	RestSpeed   float64 // below this on both axes while grounded the body rests again
}

// LaunchConfig contains slingshot parameters.
type LaunchConfig struct {
	MaxPull         float64       // maximum pull distance in pixels
	PowerMultiplier float64       // launch velocity per pixel of pull
	MaxSpeed        float64       // launch speed cap
	MinAimDuration  time.Duration // releases before this are cancelled
	RestX, RestY    float64       // slingshot rest position of the bird
	BirdRadius      float64
}

// TrajectoryConfig controls the aim-assist preview.
type TrajectoryConfig struct {
	Steps int
}

// DamageConfig contains hit rules for bird impacts.
type DamageConfig struct {
	PigHealthPerRadius float64 // pig health = radius * PigHealthPerRadius
	PigHitDamage       float64
	PigKnockback       float64 // fraction of bird velocity transferred to a pig
	BirdDampOnPig      float64 // bird velocity multiplier on a pig hit

	WoodHealth       float64
	StoneHealth      float64
	BlockDamageScale float64 // block damage = bird speed * BlockDamageScale
	BlockKnockback   float64
	BirdBounceX      float64 // bird SpeedX multiplier on a block hit
	BirdDampY        float64 // bird SpeedY multiplier on a block hit
}

// ScoreConfig contains points awarded per destroyed body.
type ScoreConfig struct {
	Pig   int
	Block int
}

// ParticleConfig controls cosmetic debris.
type ParticleConfig struct {
	PigHit      int // particles per pig hit
	PigKill     int
	BlockHit    int
	BlockKill   int
	Life        int // frames
	MinSpeed    float64
	MaxSpeed    float64
	Gravity     float64
	MinRadius   float64
	MaxRadius   float64
	Seed        uint64
	PigColor    color.RGBA
	WoodColor   color.RGBA
	StoneColor  color.RGBA
	KillColor   color.RGBA
	Restitution float64
}

// CloudConfig controls the drifting background clouds.
type CloudConfig struct {
	Count    int
	MinY     float64
	MaxY     float64
	Drift    float64 // pixels travelled per half cycle
	Duration float32 // seconds per half cycle
}

// RoundConfig contains star-rating thresholds as a fraction of starting birds used.
type RoundConfig struct {
	ThreeStarUsage float64
	TwoStarUsage   float64
}

// HUDConfig contains overlay layout.
type HUDConfig struct {
	Margin        float64
	LineHeight    float64
	TextColor     color.RGBA
	PowerBarWidth float64
	PowerBarColor color.RGBA
	PreviewColor  color.RGBA
	PreviewRadius float32
}

// Global configuration instances
var Canvas CanvasConfig
var Physics PhysicsConfig
var Settle SettleConfig
var Launch LaunchConfig
var Trajectory TrajectoryConfig
var Damage DamageConfig
var Score ScoreConfig
var Particles ParticleConfig
var Clouds CloudConfig
var Round RoundConfig
var HUD HUDConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Sky        = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	Grass      = color.RGBA{R: 88, G: 160, B: 64, A: 255}
	BirdRed    = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	PigGreen   = color.RGBA{R: 120, G: 200, B: 80, A: 255}
	Wood       = color.RGBA{R: 160, G: 110, B: 60, A: 255}
	Stone      = color.RGBA{R: 130, G: 130, B: 140, A: 255}
	SlingBrown = color.RGBA{R: 100, G: 60, B: 30, A: 255}
	Dust       = color.RGBA{R: 230, G: 220, B: 190, A: 255}
)

func init() {
	Canvas = CanvasConfig{
		Width:        1000,
		Height:       800,
		GroundOffset: 120,
	}

	Physics = PhysicsConfig{
		Gravity:     0.5,
		Friction:    0.99,
		Restitution: 0.5,
		GroundDamp:  0.8,
		StopSpeed:   0.5,
	}

	Settle = SettleConfig{
		Gravity:     0.25, // half of flight gravity
		Damping:     0.92,
		Restitution: 0.3,
		GroundDamp:  0.8,
		RestSpeed:   0.3,
	}

	Launch = LaunchConfig{
		MaxPull:         150,
		PowerMultiplier: 0.2,
		MaxSpeed:        25,
		MinAimDuration:  200 * time.Millisecond,
		RestX:           150,
		RestY:           560,
		BirdRadius:      15,
	}

	Trajectory = TrajectoryConfig{
		Steps: 60,
	}

	Damage = DamageConfig{
		PigHealthPerRadius: 3,
		PigHitDamage:       35,
		PigKnockback:       0.5,
		BirdDampOnPig:      0.7,

		WoodHealth:       50,
		StoneHealth:      100,
		BlockDamageScale: 3,
		BlockKnockback:   0.3,
		BirdBounceX:      -0.5,
		BirdDampY:        0.8,
	}

	Score = ScoreConfig{
		Pig:   5000,
		Block: 500,
	}

	Particles = ParticleConfig{
		PigHit:      8,
		PigKill:     20,
		BlockHit:    4,
		BlockKill:   10,
		Life:        30, // half a second at 60fps
		MinSpeed:    1,
		MaxSpeed:    5,
		Gravity:     0.2,
		MinRadius:   2,
		MaxRadius:   5,
		Seed:        0x5eed,
		PigColor:    PigGreen,
		WoodColor:   Wood,
		StoneColor:  Stone,
		KillColor:   Dust,
		Restitution: 0.4,
	}

	Clouds = CloudConfig{
		Count:    4,
		MinY:     60,
		MaxY:     220,
		Drift:    120,
		Duration: 20,
	}

	Round = RoundConfig{
		ThreeStarUsage: 0.3,
		TwoStarUsage:   0.6,
	}

	HUD = HUDConfig{
		Margin:        12,
		LineHeight:    22,
		TextColor:     White,
		PowerBarWidth: 120,
		PowerBarColor: color.RGBA{R: 255, G: 180, B: 50, A: 255},
		PreviewColor:  color.RGBA{R: 255, G: 255, B: 255, A: 180},
		PreviewRadius: 2,
	}
}
