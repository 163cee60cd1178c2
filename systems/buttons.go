package systems

import (
	"github.com/automoto/animtester/components"
	cfg "github.com/automoto/animtester/config"
	"github.com/automoto/animtester/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateButtonStates highlights the buttons matching the current animation
// and facing.
func UpdateButtonStates(e *ecs.ECS) {
	playback := GetPlayback(e)
	if playback == nil {
		return
	}
	components.Button.Each(e.World, func(entry *donburi.Entry) {
		button := components.Button.Get(entry)
		button.Active = ButtonActive(button.Action, playback)
	})
}

// DrawButtons renders every button as a filled, bordered rectangle with a
// centred label.
func DrawButtons(e *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Small.Get()

	components.Button.Each(e.World, func(entry *donburi.Entry) {
		button := components.Button.Get(entry)
		r := button.Bounds
		x, y := float32(r.Min.X), float32(r.Min.Y)
		w, h := float32(r.Dx()), float32(r.Dy())

		vector.FillRect(screen, x, y, w, h, button.FillColor(), false)
		vector.StrokeRect(screen, x, y, w, h, cfg.Button.BorderWidth, cfg.Button.BorderColor, false)

		// BoundString is relative to the dot, so Min is subtracted to centre
		// the glyphs rather than the baseline.
		b := text.BoundString(face, button.Label)
		cx := r.Min.X + r.Dx()/2
		cy := r.Min.Y + r.Dy()/2
		text.Draw(screen, button.Label, face, cx-b.Dx()/2-b.Min.X, cy-b.Dy()/2-b.Min.Y, cfg.UI.TextColor)
	})
}
