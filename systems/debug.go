package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/fonts"
	"github.com/automoto/slingshot/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every broadphase object and prints pig and block health.
// Dislodged bodies are outlined in red.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	re, ok := roundEntry(ecs)
	if !ok || !components.Settings.Get(re).Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	face := fonts.Small.Get()

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255}
		if obj.HasTags(tags.ResolvBird) {
			c = color.RGBA{0, 0, 255, 255}
		}
		vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
	}

	structure := components.Structure.Get(re)
	bodies := make([]*donburi.Entry, 0, len(structure.Blocks)+len(structure.Pigs))
	bodies = append(bodies, structure.Blocks...)
	bodies = append(bodies, structure.Pigs...)
	for _, e := range bodies {
		body := components.Physics.Get(e)
		hp := components.Health.Get(e)
		if !components.Support.Get(e).Resting {
			halfW, halfH := extents(e)
			vector.StrokeRect(screen, float32(body.X-halfW), float32(body.Y-halfH), float32(2*halfW), float32(2*halfH), 2, color.RGBA{255, 0, 0, 255}, false)
		}
		text.Draw(screen, fmt.Sprintf("%.0f", hp.Current), face, int(body.X)-8, int(body.Y)+4, color.Black)
	}
}
