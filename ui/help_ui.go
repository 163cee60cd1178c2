package ui

import (
	"bytes"

	cfg "github.com/automoto/animtester/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// HelpLines is the keyboard reference shown in the side panel. The first
// line is the heading.
var HelpLines = []string{
	"Controls:",
	"Arrow keys: Change direction",
	"1-4: Change animation",
	"PgUp/PgDn: Change character",
	"-/=: Slower/faster",
	"Click buttons to change",
	"ESC: Quit",
}

// HelpUI holds the ebitenui instructions panel
type HelpUI struct {
	UI *ebitenui.UI

	headingFace text.Face
	lineFace    text.Face

	labels []*widget.Label
}

// NewHelpUI builds the instructions panel anchored to the bottom-left
// corner of the canvas.
func NewHelpUI() (*HelpUI, error) {
	hui := &HelpUI{}
	if err := hui.loadFonts(); err != nil {
		return nil, err
	}
	hui.buildUI()
	return hui, nil
}

func (hui *HelpUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}

	hui.headingFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
	hui.lineFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	return nil
}

func (hui *HelpUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{
				Left:   cfg.UI.HelpPaddingLeft,
				Bottom: cfg.UI.HelpPaddingBelow,
			}),
		)),
	)

	listContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(cfg.UI.HelpLineSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	for i, line := range HelpLines {
		face := &hui.lineFace
		color := &widget.LabelColor{Idle: cfg.UI.SubtleTextColor}
		if i == 0 {
			face = &hui.headingFace
			color = &widget.LabelColor{Idle: cfg.UI.TextColor}
		}
		label := widget.NewLabel(widget.LabelOpts.Text(line, face, color))
		hui.labels = append(hui.labels, label)
		listContainer.AddChild(label)
	}

	rootContainer.AddChild(listContainer)
	hui.UI = &ebitenui.UI{Container: rootContainer}
}

// Update processes ebitenui input for the panel.
func (hui *HelpUI) Update() {
	hui.UI.Update()
}

// Draw renders the panel.
func (hui *HelpUI) Draw(screen *ebiten.Image) {
	hui.UI.Draw(screen)
}
