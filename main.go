package main

import (
	"flag"
	"image"
	"log"
	"log/slog"
	"os"

	"github.com/automoto/mauricefight/config"
	"github.com/automoto/mauricefight/fonts"
	"github.com/automoto/mauricefight/scenes"
	"github.com/automoto/mauricefight/systems"
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
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewArenaScene(g, "")
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
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", config.Debug.SkipMenu, "Go straight to the arena")
	flag.BoolVar(&config.Debug.TraceTransitions, "trace", config.Debug.TraceTransitions, "Log every fighter state transition")
	flag.BoolVar(&config.Debug.Overlay, "debug", config.Debug.Overlay, "Start with the debug overlay visible")
	flag.Parse()

	level := slog.LevelInfo
	if config.Debug.TraceTransitions {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ebiten.SetWindowSize(config.C.Width*config.C.WindowScale, config.C.Height*config.C.WindowScale)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, _ := systems.LoadSettings()
	systems.ApplySavedSettingsGlobal(saved)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
