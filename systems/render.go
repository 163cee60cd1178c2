package systems

import (
	"github.com/automoto/animtester/components"
	cfg "github.com/automoto/animtester/config"
	"github.com/automoto/animtester/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawBackground clears the canvas and draws the left control panel.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)
	vector.FillRect(
		screen,
		0, 0,
		cfg.UI.PanelWidth, float32(screen.Bounds().Dy()),
		cfg.UI.PanelColor,
		false,
	)
}

// DrawCharacter composes the current frame: the body centred on the canvas
// and the hat one scaled tile above it. Nothing is drawn when the current
// animation has no sheet.
func DrawCharacter(e *ecs.ECS, screen *ebiten.Image) {
	hat, body := CurrentSprites(e)
	if hat == nil && body == nil {
		return
	}

	alpha := float32(1)
	if entry, ok := tags.Character.First(e.World); ok {
		if fade := components.Fade.Get(entry); !fade.Done {
			alpha = fade.Alpha
		}
	}

	tile := float64(cfg.C.TileSize * cfg.C.Scale)
	x := float64(screen.Bounds().Dx())/2 - tile/2
	y := float64(screen.Bounds().Dy()) / 2

	drawTile(screen, body, x, y, alpha)
	drawTile(screen, hat, x, y-tile, alpha)
}

func drawTile(screen, img *ebiten.Image, x, y float64, alpha float32) {
	if img == nil {
		return
	}
	drawOp.GeoM.Reset()
	drawOp.GeoM.Scale(float64(cfg.C.Scale), float64(cfg.C.Scale))
	drawOp.GeoM.Translate(x, y)
	drawOp.ColorScale.Reset()
	drawOp.ColorScale.ScaleAlpha(alpha)
	drawOp.Filter = ebiten.FilterNearest
	screen.DrawImage(img, drawOp)
}
