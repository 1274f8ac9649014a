package main

import (
	"flag"
	"log"
	"time"

	"github.com/automoto/slingshot/assets"
	"github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/fonts"
	"github.com/automoto/slingshot/game"
	"github.com/automoto/slingshot/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return int(config.Canvas.Width), int(config.Canvas.Height)
}

func main() {
	levelPath := flag.String("levels", "", "Level file or directory (empty = bundled levels)")
	aimMs := flag.Int("aim-ms", int(config.Launch.MinAimDuration/time.Millisecond), "Minimum aim duration before a release launches")
	seed := flag.Uint64("seed", config.Particles.Seed, "Seed for debris and clouds")
	flag.Parse()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	levels, err := assets.LoadLevels(*levelPath)
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	opts := game.DefaultOptions()
	opts.MinAimDuration = time.Duration(*aimMs) * time.Millisecond
	opts.Seed = *seed

	scene, err := scenes.NewSlingshotScene(levels, opts)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	ebiten.SetWindowSize(int(config.Canvas.Width), int(config.Canvas.Height))
	ebiten.SetWindowTitle("Slingshot")

	log.Printf("Starting with %d levels", len(levels))
	if err := ebiten.RunGame(&Game{scene: scene}); err != nil {
		log.Fatal(err)
	}
}
