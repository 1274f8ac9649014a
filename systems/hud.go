package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/fonts"
	"github.com/automoto/slingshot/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders score, birds left and the level name in the top-left
// corner, the launch power bar while aiming, and the round result.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	re, ok := roundEntry(ecs)
	if !ok {
		return
	}
	round := components.Round.Get(re)
	face := fonts.HUD.Get()
	margin := int(cfg.HUD.Margin)
	line := int(cfg.HUD.LineHeight)

	text.Draw(screen, fmt.Sprintf("Level %d: %s", round.LevelIndex+1, round.LevelName), face, margin, margin+line, cfg.HUD.TextColor)
	text.Draw(screen, fmt.Sprintf("Score: %d", round.Score), face, margin, margin+2*line, cfg.HUD.TextColor)
	text.Draw(screen, fmt.Sprintf("Birds: %d/%d", round.Ammo, round.StartingAmmo), face, margin, margin+3*line, cfg.HUD.TextColor)

	if birdEntry, ok := tags.Bird.First(ecs.World); ok && components.Bird.Get(birdEntry).State == components.BirdAiming {
		power := components.Sling.Get(birdEntry).Power
		x, y := float32(cfg.HUD.Margin), float32(cfg.HUD.Margin)+float32(3*line)+10
		vector.FillRect(screen, x, y, float32(cfg.HUD.PowerBarWidth), 10, color.RGBA{40, 40, 40, 200}, false)
		vector.FillRect(screen, x, y, float32(cfg.HUD.PowerBarWidth*power), 10, cfg.HUD.PowerBarColor, false)
	}

	if round.Result != components.RoundInProgress {
		drawResult(screen, round)
	}
}

func drawResult(screen *ebiten.Image, round *components.RoundData) {
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, height/2-60, width, 120, color.RGBA{0, 0, 0, 160}, false)

	title := "Level failed!"
	hint := "R: retry"
	if round.Result == components.RoundWon {
		title = "Level cleared! " + strings.Repeat("*", round.Stars) + strings.Repeat("-", 3-round.Stars)
		hint = "N: next level   R: replay"
	}

	titleFace := fonts.Title.Get()
	face := fonts.HUD.Get()
	text.Draw(screen, title, titleFace, int(width/2)-len(title)*9, int(height/2)-10, cfg.White)
	text.Draw(screen, hint, face, int(width/2)-len(hint)*4, int(height/2)+30, cfg.White)
}
