package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/movingsquare/config"
	"github.com/automoto/movingsquare/fonts"
	"github.com/automoto/movingsquare/scenes"
	"github.com/automoto/movingsquare/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewRunScene(g, config.Levels.DefaultRun)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skipmenu", config.Debug.SkipMenu, "Start the run given by -run without the main menu")
	flag.StringVar(&config.Levels.DefaultRun, "run", config.Levels.DefaultRun, "Run played by Play and -skipmenu")
	flag.StringVar(&config.Levels.Dir, "levels", config.Levels.Dir, "Read runs from this directory instead of the embedded ones")
	flag.BoolVar(&config.Debug.ShowColliders, "debug", config.Debug.ShowColliders, "Show colliders and player state (toggle with F1)")
	volume := flag.Float64("volume", config.Audio.DefaultSFXVol, "Sound effect volume (0.0 - 1.0)")
	flag.Parse()

	systems.SetSFXVolume(*volume)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
