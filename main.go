package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/automoto/babel/config"
	"github.com/automoto/babel/fonts"
	"github.com/automoto/babel/log"
	"github.com/automoto/babel/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Done() bool
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
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipTitle {
		g.scene = scenes.NewBattleScene()
	} else {
		g.scene = scenes.NewTitleScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func run() error {
	logLevel := flag.String("log-level", config.Debug.LogLevel, "Log level (error, warn, info, debug, trace)")
	skipTitle := flag.Bool("skip-title", config.Debug.SkipTitle, "Start directly in battle")
	clamp := flag.Bool("clamp", config.Interface.ClampSelection, "Stop the menu selection at the first and last item instead of wrapping")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	log.SetDefaultLogger(log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel))
	log.Info("Log level set to %s", parsedLogLevel)

	config.Debug.LogLevel = *logLevel
	config.Debug.SkipTitle = *skipTitle
	config.Interface.ClampSelection = *clamp

	if err := fonts.LoadDefaults(); err != nil {
		return fmt.Errorf("load fonts: %w", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	log.Info("Bye")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal("%v", err)
	}
}
