package systems

import (
	"image/color"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/automoto/slingshot/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var hitTint = color.RGBA{255, 255, 255, 255}

// DrawBackground renders the sky, clouds and ground.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sky)

	tags.Cloud.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Cloud.Get(e)
		x, y := float32(c.X), float32(c.Y)
		w, h := float32(c.W), float32(c.H)
		vector.FillCircle(screen, x-w/4, y, h/2, cfg.White, true)
		vector.FillCircle(screen, x+w/4, y, h/2, cfg.White, true)
		vector.FillCircle(screen, x, y-h/3, h*0.6, cfg.White, true)
	})

	re, ok := roundEntry(ecs)
	if !ok {
		return
	}
	rules := components.Rules.Get(re)
	vector.FillRect(screen, 0, float32(rules.GroundY), float32(rules.Width), float32(rules.Height-rules.GroundY), cfg.Grass, false)
}

// DrawStructure renders blocks and pigs. Bodies flash white for a few frames
// after a hit.
func DrawStructure(ecs *ecs.ECS, screen *ebiten.Image) {
	re, ok := roundEntry(ecs)
	if !ok {
		return
	}
	structure := components.Structure.Get(re)

	for _, e := range structure.Blocks {
		block := components.Block.Get(e)
		body := components.Physics.Get(e)
		c := cfg.Wood
		if block.Material == leveldata.MaterialStone {
			c = cfg.Stone
		}
		if components.Flash.Get(e).Duration > 0 {
			c = hitTint
		}
		x := float32(body.X - block.HalfW)
		y := float32(body.Y - block.HalfH)
		w := float32(2 * block.HalfW)
		h := float32(2 * block.HalfH)
		vector.FillRect(screen, x, y, w, h, damaged(c, components.Health.Get(e)), false)
		vector.StrokeRect(screen, x, y, w, h, 1, color.RGBA{40, 30, 20, 255}, false)
	}

	for _, e := range structure.Pigs {
		pig := components.Pig.Get(e)
		body := components.Physics.Get(e)
		c := cfg.PigGreen
		if components.Flash.Get(e).Duration > 0 {
			c = hitTint
		}
		x, y, r := float32(body.X), float32(body.Y), float32(pig.Radius)
		vector.FillCircle(screen, x, y, r, damaged(c, components.Health.Get(e)), true)
		vector.FillCircle(screen, x-r/3, y-r/4, r/5, cfg.White, true)
		vector.FillCircle(screen, x+r/3, y-r/4, r/5, cfg.White, true)
	}
}

// damaged darkens c as health drops, down to half brightness.
func damaged(c color.RGBA, h *components.HealthData) color.RGBA {
	if h.Max <= 0 {
		return c
	}
	f := 0.5 + 0.5*h.Current/h.Max
	if f > 1 {
		f = 1
	}
	return color.RGBA{uint8(float64(c.R) * f), uint8(float64(c.G) * f), uint8(float64(c.B) * f), c.A}
}

// DrawSling renders the slingshot, its band while aiming, and the bird.
func DrawSling(ecs *ecs.ECS, screen *ebiten.Image) {
	re, ok := roundEntry(ecs)
	if !ok {
		return
	}
	rules := components.Rules.Get(re)
	restX, restY := float32(rules.RestX), float32(rules.RestY)

	vector.FillRect(screen, restX-5, restY, 10, float32(rules.GroundY)-restY, cfg.SlingBrown, false)
	vector.StrokeLine(screen, restX, restY+10, restX-15, restY-20, 6, cfg.SlingBrown, true)
	vector.StrokeLine(screen, restX, restY+10, restX+15, restY-20, 6, cfg.SlingBrown, true)

	birdEntry, ok := tags.Bird.First(ecs.World)
	if !ok {
		return
	}
	bird := components.Bird.Get(birdEntry)
	body := components.Physics.Get(birdEntry)
	x, y := float32(body.X), float32(body.Y)

	if bird.State == components.BirdAiming {
		band := color.RGBA{60, 30, 10, 255}
		vector.StrokeLine(screen, restX-15, restY-20, x, y, 3, band, true)
		vector.StrokeLine(screen, restX+15, restY-20, x, y, 3, band, true)
	}
	vector.FillCircle(screen, x, y, float32(bird.Radius), cfg.BirdRed, true)
	vector.FillCircle(screen, x+float32(bird.Radius)/3, y-float32(bird.Radius)/4, 3, cfg.White, true)
}

// DrawParticles renders debris with its faded alpha.
func DrawParticles(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		body := components.Physics.Get(e)
		c := p.Color
		c.A = uint8(float32(c.A) * clampAlpha(p.Alpha))
		vector.FillCircle(screen, float32(body.X), float32(body.Y), float32(p.Radius), premultiply(c), true)
	})
}

// DrawTrajectory renders the aim preview as a dotted arc.
func DrawTrajectory(ecs *ecs.ECS, screen *ebiten.Image) {
	re, ok := roundEntry(ecs)
	if !ok {
		return
	}
	points := components.Trajectory.Get(re).Points
	for i := 0; i < len(points); i += 3 {
		vector.FillCircle(screen, float32(points[i].X), float32(points[i].Y), cfg.HUD.PreviewRadius, cfg.HUD.PreviewColor, true)
	}
}

func clampAlpha(a float32) float32 {
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// premultiply converts a straight-alpha color to the premultiplied form
// color.RGBA expects.
func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}
