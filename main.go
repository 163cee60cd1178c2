package main

import (
	"image"
	"log"
	"os"

	"github.com/automoto/animtester/config"
	"github.com/automoto/animtester/fonts"
	"github.com/automoto/animtester/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	QuitRequested() bool
	Close()
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() (*Game, error) {
	if err := fonts.LoadFontWithSize(fonts.Regular, goregular.TTF, 16); err != nil {
		return nil, err
	}
	if err := fonts.LoadFontWithSize(fonts.Title, goregular.TTF, 26); err != nil {
		return nil, err
	}
	if err := fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 14); err != nil {
		return nil, err
	}

	root := config.Viewer.AssetRoot
	g := &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewViewerScene(os.DirFS(root), root, config.Viewer.Characters),
	}
	return g, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.QuitRequested() {
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

func main() {
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	game, err := NewGame()
	if err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	err = ebiten.RunGame(game)
	game.scene.Close()
	if err != nil {
		log.Fatal(err)
	}
}
